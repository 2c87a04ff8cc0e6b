// Package pipeline runs one unrelated-sample selection end to end: load the
// cohort files, build the relatedness graph, classify, select and write.
package pipeline

import (
	"time"

	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/unrelated/bfs"
	"github.com/katalvlaran/unrelated/config"
	"github.com/katalvlaran/unrelated/dataset"
	"github.com/katalvlaran/unrelated/kinship"
	"github.com/katalvlaran/unrelated/pheno"
	"github.com/katalvlaran/unrelated/selector"
)

// Run executes the selection described by cfg and logs each step to logger.
// cfg is validated first. The returned Report is also written to cfg.Report
// when that is set.
func Run(cfg *config.Config, logger log.FieldLogger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rep := &Report{
		PiHat:     cfg.PiHat,
		Threshold: kinship.ThresholdFromPiHat(cfg.PiHat),
		Output:    cfg.Output,
	}

	logger.Info("starting related pair case prioritization")
	logger.WithFields(log.Fields{
		"pheno":          cfg.Pheno,
		"kinship":        cfg.Kinship,
		"kinship_matrix": cfg.KinshipMatrix,
		"samples":        cfg.Samples,
		"case_value":     cfg.CaseValue,
		"pihat":          cfg.PiHat,
		"output":         cfg.Output,
	}).Info("input parameters")

	records, err := dataset.ReadPhenotypes(cfg.Pheno)
	if err != nil {
		return nil, err
	}
	if err = pheno.CheckLevels(records); err != nil {
		return nil, pfx.Err(err)
	}
	index, dups := pheno.Index(records)
	rep.Phenotypes = len(records)
	rep.DuplicatePhenotypes = dups
	rep.PhenotypeLevels = pheno.Levels(records)
	if dups > 0 {
		logger.WithField("duplicates", dups).Warn("repeated IIDs in phenotype file, keeping the first record")
	}

	samples, err := dataset.ReadSamples(cfg.Samples)
	if err != nil {
		return nil, err
	}
	rep.Samples = len(samples)
	logger.Infof("Total number of samples: %d", len(samples))

	pairs, err := loadPairs(cfg)
	if err != nil {
		return nil, err
	}
	built, err := kinship.Build(samples, pairs, rep.Threshold,
		kinship.WithOnRetain(func(p kinship.Pair) {
			logger.WithFields(log.Fields{
				"iid1": p.ID1, "iid2": p.ID2, "kinship": p.Kinship, "degree": kinship.Classify(p.Kinship),
			}).Debug("related pair")
		}),
	)
	if err != nil {
		return nil, pfx.Err(err)
	}
	widest, err := rep.describeGraph(built)
	if err != nil {
		return nil, pfx.Err(err)
	}
	logger.WithFields(log.Fields{
		"read":              built.Stats.PairsRead,
		"outside_samples":   built.Stats.DroppedOutside,
		"below_threshold":   built.Stats.DroppedBelow,
		"duplicates":        built.Stats.Duplicates,
		"kinship_threshold": rep.Threshold,
	}).Debug("kinship pairs filtered")
	logger.Infof("Number of related pairs: %d", len(built.Retained))
	logger.Infof("Number of people who are not related to anyone else: %d", rep.StrictlyUnrelated)
	logger.Infof("Number of people who have relatedness: %d", rep.RelatedIndividuals)
	logger.WithFields(log.Fields{
		"groups":        rep.KinGroups,
		"largest":       rep.LargestKinGroup,
		"widest_span":   rep.WidestKinGroupSpan,
		"max_relatives": rep.MaxRelatives,
	}).Info("kin groups")
	logger.WithField("chain", widest.Chain).Debug("longest relationship chain")

	classes := pheno.ClassifyGraph(built.Graph.Vertices(), index, cfg.CaseValue)
	rep.Original = pheno.CountClasses(classes)
	logger.Infof("Original Number of Cases: %d", rep.Original.Case)
	logger.Infof("Original Number of Controls: %d", rep.Original.Control)
	logger.Infof("Original Number of NAs: %d", rep.Original.Unknown)

	rep.Started = time.Now()
	logger.WithField("start", rep.Started.Format(time.ANSIC)).Info("starting selection step")
	sel, err := selector.Select(built.Graph, classes,
		selector.WithInPlace(),
		selector.WithOnAccept(func(id string, c selector.Class, seeded bool) {
			logger.WithFields(log.Fields{"iid": id, "class": c, "seeded": seeded}).Debug("accepted")
		}),
		selector.WithOnDisqualify(func(id string, c selector.Class, by string) {
			logger.WithFields(log.Fields{"iid": id, "class": c, "by": by}).Debug("disqualified")
		}),
	)
	if err != nil {
		return nil, pfx.Err(err)
	}
	rep.Finished = time.Now()
	rep.recordSelection(sel, classes)
	for _, c := range selector.Priority() {
		st := sel.TierStats(c)
		logger.WithFields(log.Fields{
			"pool":        st.PoolSize,
			"seeded":      st.Seeded,
			"competitive": st.Competitive,
			"same_tier":   st.SameTier,
			"cross_tier":  st.CrossTier,
		}).Infof("Number of %s selected: %d", c, len(sel.Tier(c)))
	}
	logger.WithField("end", rep.Finished.Format(time.ANSIC)).Infof("selection took %v", rep.Finished.Sub(rep.Started))

	if err = dataset.WriteIDs(cfg.Output, sel.Accepted(), built.StrictlyUnrelated); err != nil {
		return nil, err
	}
	logger.WithField("output", cfg.Output).Infof("Final number of unrelated individuals: %d", rep.Final)

	if cfg.Report != "" {
		if err = WriteReport(cfg.Report, rep); err != nil {
			return nil, err
		}
		logger.WithField("report", cfg.Report).Info("run report written")
	}

	return rep, nil
}

// loadPairs reads the kinship source named by cfg.
func loadPairs(cfg *config.Config) ([]kinship.Pair, error) {
	if cfg.UsesMatrix() {
		return dataset.ReadKinshipMatrix(cfg.KinshipMatrix, cfg.KinshipIDs)
	}
	return dataset.ReadKinshipTable(cfg.Kinship)
}

// describeGraph fills the graph-level fields of the report and returns the
// kin group with the longest relationship chain. It must run before
// selection consumes the graph.
func (r *Report) describeGraph(built *kinship.Result) (bfs.KinGroup, error) {
	st := built.Graph.Stats()
	r.Pairs = built.Stats
	r.RelatedPairs = st.EdgeCount
	r.RelatedIndividuals = st.VertexCount
	r.MaxRelatives = st.MaxDegree
	r.StrictlyUnrelated = len(built.StrictlyUnrelated)

	groups, err := bfs.Components(built.Graph)
	if err != nil {
		return bfs.KinGroup{}, err
	}
	r.KinGroups = len(groups)
	r.LargestKinGroup = bfs.LargestComponent(groups)
	widest, _ := bfs.WidestComponent(groups)
	r.WidestKinGroupSpan = widest.Span

	summary, err := kinship.Summarize(built.Retained)
	if err != nil {
		return bfs.KinGroup{}, err
	}
	r.Kinship = summary

	return widest, nil
}

func (r *Report) recordSelection(sel *selector.Result, classes map[string]selector.Class) {
	r.Selected = pheno.CountIDs(sel.Accepted(), classes)
	for _, c := range selector.Priority() {
		r.Tiers[c] = sel.TierStats(c)
	}
	r.Disqualified = len(sel.Disqualified)
	r.Final = r.Selected.Total() + r.StrictlyUnrelated
}
