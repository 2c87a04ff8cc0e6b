// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Phenotype classes, vertex states, options, result and sentinel errors.
package selector

import (
	"errors"
	"fmt"
)

// Sentinel errors for selection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("selector: graph is nil")

	// ErrUnclassified indicates a graph vertex with no phenotype class.
	ErrUnclassified = errors.New("selector: vertex has no class")

	// ErrBadClass indicates a class value outside Case, Control, Unknown.
	ErrBadClass = errors.New("selector: invalid class")

	// ErrInvalidGraph wraps structural problems reported by core.Graph.Validate.
	ErrInvalidGraph = errors.New("selector: invalid graph")
)

// Class is the phenotype class of an individual.
type Class int

// Classes in selection priority order.
const (
	Case Class = iota
	Control
	Unknown

	numClasses = 3
)

var priority = [numClasses]Class{Case, Control, Unknown}

// Priority returns the fixed tier order: Case, Control, Unknown.
// The returned slice is a copy.
func Priority() []Class {
	out := make([]Class, numClasses)
	copy(out, priority[:])
	return out
}

// Valid reports whether c is one of Case, Control, Unknown.
func (c Class) Valid() bool { return c >= Case && c <= Unknown }

func (c Class) String() string {
	switch c {
	case Case:
		return "case"
	case Control:
		return "control"
	case Unknown:
		return "unknown"
	}

	return fmt.Sprintf("Class(%d)", int(c))
}

// State is the lifecycle state of a vertex during a selection run.
type State int

// Vertex states. Accepted and Disqualified are terminal.
const (
	Eligible State = iota
	Accepted
	Disqualified
)

func (s State) String() string {
	switch s {
	case Eligible:
		return "eligible"
	case Accepted:
		return "accepted"
	case Disqualified:
		return "disqualified"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Disqualification records why a vertex left the graph without being accepted.
type Disqualification struct {
	ID    string
	Class Class  // class of the disqualified vertex
	By    string // accepted vertex that eliminated it
	Tier  Class  // tier being processed at the time
}

// TierStats summarises one tier of a selection run.
type TierStats struct {
	PoolSize    int // pool members at tier start
	Seeded      int // accepted in the seed pass
	Competitive int // accepted in the competitive pass
	SameTier    int // pool members disqualified during this tier
	CrossTier   int // lower-priority vertices disqualified during this tier
}

// Result is the outcome of Select.
type Result struct {
	tiers        [numClasses][]string
	stats        [numClasses]TierStats
	states       map[string]State
	Disqualified []Disqualification
}

// Tier returns the IDs accepted in tier c, in acceptance order.
func (r *Result) Tier(c Class) []string {
	if !c.Valid() {
		return nil
	}
	return r.tiers[c]
}

// TierStats returns the statistics of tier c.
func (r *Result) TierStats(c Class) TierStats {
	if !c.Valid() {
		return TierStats{}
	}
	return r.stats[c]
}

// Accepted returns every accepted ID: Case tier, then Control, then Unknown.
func (r *Result) Accepted() []string {
	n := 0
	for _, t := range r.tiers {
		n += len(t)
	}
	out := make([]string, 0, n)
	for _, c := range priority {
		out = append(out, r.tiers[c]...)
	}

	return out
}

// State returns the final state of id and whether id was part of the run.
func (r *Result) State(id string) (State, bool) {
	s, ok := r.states[id]
	return s, ok
}

// Option configures Select.
type Option func(*options)

type options struct {
	onAccept     func(id string, c Class, seeded bool)
	onDisqualify func(id string, c Class, by string)
	inPlace      bool
}

func defaultOptions() options {
	return options{
		onAccept:     func(string, Class, bool) {},
		onDisqualify: func(string, Class, string) {},
	}
}

// WithOnAccept registers a hook called for every accepted vertex.
func WithOnAccept(fn func(id string, c Class, seeded bool)) Option {
	return func(o *options) {
		if fn != nil {
			o.onAccept = fn
		}
	}
}

// WithOnDisqualify registers a hook called for every disqualified vertex.
func WithOnDisqualify(fn func(id string, c Class, by string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDisqualify = fn
		}
	}
}

// WithInPlace makes Select consume the caller's graph instead of a clone.
// The graph is empty when Select returns successfully.
func WithInPlace() Option {
	return func(o *options) { o.inPlace = true }
}
