package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jgbaldwinbrown/csvh"

	"github.com/katalvlaran/unrelated/kinship"
	"github.com/katalvlaran/unrelated/pheno"
	"github.com/katalvlaran/unrelated/selector"
)

// Report summarises one run.
type Report struct {
	PiHat     float64
	Threshold float64 // kinship cut-off, PiHat / 2

	Samples             int
	Phenotypes          int
	DuplicatePhenotypes int
	PhenotypeLevels     []string

	Pairs              kinship.Stats
	RelatedPairs       int // distinct edges
	RelatedIndividuals int
	MaxRelatives       int // most relatives of any one sample
	StrictlyUnrelated  int
	KinGroups          int
	LargestKinGroup    int
	WidestKinGroupSpan int // hops from a group's root to its farthest member
	Kinship            kinship.Summary

	Original     pheno.Counts // classes among related individuals
	Selected     pheno.Counts
	Tiers        [3]selector.TierStats // indexed by selector.Class
	Disqualified int
	Final        int // selected + strictly unrelated

	Output   string
	Started  time.Time
	Finished time.Time
}

// Rows flattens the report into ordered key/value pairs.
func (r *Report) Rows() [][2]string {
	f := func(v float64) string { return fmt.Sprintf("%g", v) }
	d := func(v int) string { return fmt.Sprintf("%d", v) }

	rows := [][2]string{
		{"pihat", f(r.PiHat)},
		{"kinship_threshold", f(r.Threshold)},
		{"samples", d(r.Samples)},
		{"phenotype_records", d(r.Phenotypes)},
		{"phenotype_duplicates", d(r.DuplicatePhenotypes)},
		{"phenotype_levels", strings.Join(r.PhenotypeLevels, ",")},
		{"pairs_read", d(r.Pairs.PairsRead)},
		{"pairs_outside_samples", d(r.Pairs.DroppedOutside)},
		{"pairs_below_threshold", d(r.Pairs.DroppedBelow)},
		{"pairs_duplicate", d(r.Pairs.Duplicates)},
		{"related_pairs", d(r.RelatedPairs)},
		{"related_individuals", d(r.RelatedIndividuals)},
		{"max_relatives", d(r.MaxRelatives)},
		{"strictly_unrelated", d(r.StrictlyUnrelated)},
		{"kin_groups", d(r.KinGroups)},
		{"largest_kin_group", d(r.LargestKinGroup)},
		{"widest_kin_group_span", d(r.WidestKinGroupSpan)},
		{"kinship_min", f(r.Kinship.Min)},
		{"kinship_max", f(r.Kinship.Max)},
		{"kinship_mean", f(r.Kinship.Mean)},
		{"kinship_median", f(r.Kinship.Median)},
	}
	for deg := kinship.Duplicate; deg < kinship.Unrelated; deg++ {
		rows = append(rows, [2]string{"pairs_degree_" + deg.String(), d(r.Kinship.ByDegree[deg])})
	}
	for _, c := range selector.Priority() {
		st := r.Tiers[c]
		rows = append(rows,
			[2]string{"original_" + c.String(), d(r.Original.Of(c))},
			[2]string{"selected_" + c.String(), d(r.Selected.Of(c))},
			[2]string{c.String() + "_seeded", d(st.Seeded)},
			[2]string{c.String() + "_competitive", d(st.Competitive)},
		)
	}
	rows = append(rows,
		[2]string{"disqualified", d(r.Disqualified)},
		[2]string{"final", d(r.Final)},
		[2]string{"selection_seconds", f(r.Finished.Sub(r.Started).Seconds())},
		[2]string{"output", r.Output},
	)

	return rows
}

// WriteReportTo writes the report as key<TAB>value lines.
func WriteReportTo(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	for _, row := range r.Rows() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", row[0], row[1]); err != nil {
			return pfx.Err(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteReport writes the report to path, gzip-compressed for .gz paths.
func WriteReport(path string, r *Report) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return pfx.Err(e)
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	return WriteReportTo(w, r)
}
