// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Pair/Result types, build options and sentinel errors.
package kinship

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unrelated/core"
)

// Sentinel errors for relatedness graph construction.
var (
	// ErrSelfPair indicates a pair (A,A) at or above the threshold.
	ErrSelfPair = errors.New("kinship: self pair meets threshold")

	// ErrBadThreshold indicates a negative, NaN or infinite threshold.
	ErrBadThreshold = errors.New("kinship: threshold must be finite and non-negative")

	// ErrEmptyID indicates an empty individual ID in the population or a pair.
	ErrEmptyID = errors.New("kinship: empty individual ID")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kinship: invalid option supplied")
)

// Pair is one row of a kinship table. Orientation carries no meaning.
type Pair struct {
	ID1     string
	ID2     string
	Kinship float64
}

// Stats counts what happened to the input pairs.
type Stats struct {
	PairsRead      int // every pair seen
	DroppedOutside int // at least one endpoint outside the population
	DroppedBelow   int // kinship < threshold, NaN included
	Duplicates     int // retained pairs that repeated an existing edge
}

// Result is the output of Build.
type Result struct {
	// Graph holds one vertex per related individual, registered in
	// population order, and one edge per retained pair.
	Graph *core.Graph

	// Population is the input population with repeated IDs collapsed.
	Population []string

	// StrictlyUnrelated lists population members with no retained pair,
	// in population order.
	StrictlyUnrelated []string

	// Retained lists the pairs that met the threshold, in input order.
	Retained []Pair

	Threshold float64
	Stats     Stats
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	onRetain func(Pair)
	capacity int
	err      error
}

func defaultOptions() buildOptions {
	return buildOptions{onRetain: func(Pair) {}}
}

// WithOnRetain registers a hook called for every pair that meets the threshold.
func WithOnRetain(fn func(Pair)) Option {
	return func(o *buildOptions) {
		if fn != nil {
			o.onRetain = fn
		}
	}
}

// WithCapacity pre-sizes the graph for n related individuals.
// n < 0 → ErrOptionViolation.
func WithCapacity(n int) Option {
	return func(o *buildOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.capacity = n
	}
}
