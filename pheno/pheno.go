// Package pheno maps phenotype records to selection classes.
//
// A record whose status equals the case code is a Case, any other present
// status is a Control, and a missing status ("NA" or an empty field) or an
// individual absent from the phenotype source is Unknown.
package pheno

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/unrelated/selector"
)

// MissingCode marks a missing phenotype. Matching is case sensitive.
const MissingCode = "NA"

// Maximum number of distinct status values: case code, control code, NA.
const maxLevels = 3

// ErrBadLevels indicates a status column that cannot be a case/control/NA coding.
var ErrBadLevels = errors.New("pheno: status column must hold 1 to 3 distinct values")

// Record is one row of a phenotype file.
type Record struct {
	FID     string
	IID     string
	Status  string
	Missing bool
}

// NewRecord builds a Record and flags it missing when status is "NA" or empty.
func NewRecord(fid, iid, status string) Record {
	return Record{
		FID:     fid,
		IID:     iid,
		Status:  status,
		Missing: status == "" || status == MissingCode,
	}
}

// Classify returns the class of one individual. ok reports whether the
// individual was found in the phenotype source at all.
func Classify(rec Record, ok bool, caseCode string) selector.Class {
	switch {
	case !ok || rec.Missing:
		return selector.Unknown
	case rec.Status == caseCode:
		return selector.Case
	default:
		return selector.Control
	}
}

// Index maps IID to record. The first record of a repeated IID wins; the
// number of repeats dropped is returned alongside.
func Index(records []Record) (map[string]Record, int) {
	out := make(map[string]Record, len(records))
	dups := 0
	for _, r := range records {
		if _, seen := out[r.IID]; seen {
			dups++
			continue
		}
		out[r.IID] = r
	}

	return out, dups
}

// ClassifyGraph returns a class for every id, suitable for selector.Select.
func ClassifyGraph(ids []string, records map[string]Record, caseCode string) map[string]selector.Class {
	out := make(map[string]selector.Class, len(ids))
	for _, id := range ids {
		rec, ok := records[id]
		out[id] = Classify(rec, ok, caseCode)
	}

	return out
}

// Levels returns the distinct raw status values, sorted. An empty field is
// reported as MissingCode.
func Levels(records []Record) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		s := r.Status
		if r.Missing {
			s = MissingCode
		}
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// CheckLevels fails with ErrBadLevels unless the status column holds between
// one and three distinct values, NA included.
func CheckLevels(records []Record) error {
	levels := Levels(records)
	if len(levels) < 1 || len(levels) > maxLevels {
		return fmt.Errorf("%w: found %d %v", ErrBadLevels, len(levels), levels)
	}

	return nil
}

// Counts is the number of individuals per class.
type Counts struct {
	Case    int
	Control int
	Unknown int
}

// Total returns the sum of all classes.
func (c Counts) Total() int { return c.Case + c.Control + c.Unknown }

// Of returns the count for class cl.
func (c Counts) Of(cl selector.Class) int {
	switch cl {
	case selector.Case:
		return c.Case
	case selector.Control:
		return c.Control
	case selector.Unknown:
		return c.Unknown
	}
	return 0
}

// CountClasses tallies a classification map.
func CountClasses(classes map[string]selector.Class) Counts {
	var c Counts
	for _, cl := range classes {
		switch cl {
		case selector.Case:
			c.Case++
		case selector.Control:
			c.Control++
		case selector.Unknown:
			c.Unknown++
		}
	}

	return c
}

// CountIDs tallies the classes of ids, e.g. one tier of a selection.
func CountIDs(ids []string, classes map[string]selector.Class) Counts {
	sub := make(map[string]selector.Class, len(ids))
	for _, id := range ids {
		if cl, ok := classes[id]; ok {
			sub[id] = cl
		}
	}

	return CountClasses(sub)
}
