package pipeline_test

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/kshedden/gonpy"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unrelated/config"
	"github.com/katalvlaran/unrelated/dataset"
	"github.com/katalvlaran/unrelated/kinship"
	"github.com/katalvlaran/unrelated/pheno"
	"github.com/katalvlaran/unrelated/pipeline"
	"github.com/katalvlaran/unrelated/selector"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// cohort lays out a small run: two case pairs, one control/NA pair, one
// pair below threshold and one pair naming a sample outside the cohort.
func cohort(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Pheno:     write(t, dir, "pheno.txt", "a a 1\nb b 0\nc c 1\nd d 1\ne e 0\nf f NA\nu1 u1 0\n"),
		CaseValue: "1",
		PiHat:     0.25,
		Kinship:   write(t, dir, "kin.txt", "a b 0.25\nc d 0.26\ne f 0.2\nu1 u2 0.01\na zz 0.3\n"),
		Samples:   write(t, dir, "samples.fam", "a a 0 0 1 1\nb b 0 0 1 1\nc c 0 0 1 1\nd d 0 0 1 1\ne e 0 0 1 1\nf f 0 0 1 1\nu1 u1 0 0 1 1\nu2 u2 0 0 1 1\n"),
		Output:    filepath.Join(dir, "unrelated.txt"),
	}
}

func TestRun(t *testing.T) {
	cfg := cohort(t)
	cfg.Report = filepath.Join(filepath.Dir(cfg.Output), "report.tsv.gz")
	logger, hook := test.NewNullLogger()

	rep, err := pipeline.Run(cfg, logger)
	require.NoError(t, err)

	got, err := dataset.ReadSamples(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "e", "u1", "u2"}, got)

	assert.Equal(t, 8, rep.Samples)
	assert.Equal(t, 0.125, rep.Threshold)
	assert.Equal(t, kinship.Stats{PairsRead: 5, DroppedOutside: 1, DroppedBelow: 1}, rep.Pairs)
	assert.Equal(t, 3, rep.RelatedPairs)
	assert.Equal(t, 6, rep.RelatedIndividuals)
	assert.Equal(t, 2, rep.StrictlyUnrelated)
	assert.Equal(t, 3, rep.KinGroups)
	assert.Equal(t, 2, rep.LargestKinGroup)
	assert.Equal(t, 1, rep.WidestKinGroupSpan)
	assert.Equal(t, 1, rep.MaxRelatives)
	assert.Equal(t, 3, rep.Kinship.Count)
	assert.Equal(t, 0.2, rep.Kinship.Min)
	assert.Equal(t, 0.26, rep.Kinship.Max)
	assert.Equal(t, pheno.Counts{Case: 3, Control: 2, Unknown: 1}, rep.Original)
	assert.Equal(t, pheno.Counts{Case: 2, Control: 1}, rep.Selected)
	assert.Equal(t, selector.TierStats{PoolSize: 3, Seeded: 1, Competitive: 1, SameTier: 1, CrossTier: 1}, rep.Tiers[selector.Case])
	assert.Equal(t, 3, rep.Disqualified)
	assert.Equal(t, 5, rep.Final)
	assert.False(t, rep.Finished.Before(rep.Started))

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "Total number of samples: 8")
	assert.Contains(t, messages, "Number of related pairs: 3")
	assert.Contains(t, messages, "Original Number of Cases: 3")
	assert.Contains(t, messages, "Final number of unrelated individuals: 5")
	assert.Equal(t, "run report written", hook.LastEntry().Message)

	r, err := csvh.OpenMaybeGz(cfg.Report)
	require.NoError(t, err)
	written, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Contains(t, string(written), "\nfinal\t5\n")

	rows := make(map[string]string)
	for _, row := range rep.Rows() {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "5", rows["final"])
	assert.Equal(t, "2", rows["selected_case"])
	assert.Equal(t, "1", rows["original_unknown"])
	assert.Equal(t, "3", rows["pairs_degree_1st"])
	assert.Equal(t, "0,1,NA", rows["phenotype_levels"])
	assert.Equal(t, "1", rows["widest_kin_group_span"])
}

// TestRun_DebugChain: a pedigree chain is reported by span and logged at debug level.
func TestRun_DebugChain(t *testing.T) {
	cfg := cohort(t)
	cfg.Kinship = write(t, filepath.Dir(cfg.Output), "chain.txt", "a b 0.25\nb c 0.25\nc d 0.25\ne f 0.2\n")
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	rep, err := pipeline.Run(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.KinGroups)
	assert.Equal(t, 4, rep.LargestKinGroup)
	assert.Equal(t, 3, rep.WidestKinGroupSpan)
	assert.Equal(t, 2, rep.MaxRelatives)

	var chain interface{}
	related := 0
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "longest relationship chain":
			chain = e.Data["chain"]
		case "related pair":
			related++
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, chain)
	assert.Equal(t, 4, related)
}

func TestRun_KinshipMatrix(t *testing.T) {
	cfg := cohort(t)
	dir := filepath.Dir(cfg.Output)

	// a-b related, u1 unrelated to both.
	npy := filepath.Join(dir, "kin.npy")
	f, err := os.Create(npy)
	require.NoError(t, err)
	bufw := bufio.NewWriter(f)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	require.NoError(t, err)
	npw.Shape = []int{3, 3}
	require.NoError(t, npw.WriteFloat64([]float64{
		0.5, 0.2, 0.0,
		0.2, 0.5, 0.01,
		0.0, 0.01, 0.5,
	}))
	require.NoError(t, bufw.Flush())
	require.NoError(t, f.Close())

	cfg.Kinship = ""
	cfg.KinshipMatrix = npy
	cfg.KinshipIDs = write(t, dir, "kin.ids", "a\nb\nu1\n")

	logger, _ := test.NewNullLogger()
	rep, err := pipeline.Run(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.RelatedPairs)

	got, err := dataset.ReadSamples(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "e", "f", "u1", "u2"}, got)
}

func TestRun_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("invalid config", func(t *testing.T) {
		cfg := cohort(t)
		cfg.Output = ""
		_, err := pipeline.Run(cfg, logger)
		require.ErrorIs(t, err, config.ErrMissingField)
	})

	t.Run("too many phenotype levels", func(t *testing.T) {
		cfg := cohort(t)
		cfg.Pheno = write(t, filepath.Dir(cfg.Output), "multi.txt", "a a 1\nb b 2\nc c 3\nd d 4\n")
		_, err := pipeline.Run(cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), pheno.ErrBadLevels.Error())
	})

	t.Run("missing samples", func(t *testing.T) {
		cfg := cohort(t)
		cfg.Samples = filepath.Join(filepath.Dir(cfg.Output), "absent.fam")
		_, err := pipeline.Run(cfg, logger)
		require.Error(t, err)
	})

	t.Run("self pair", func(t *testing.T) {
		cfg := cohort(t)
		cfg.Kinship = write(t, filepath.Dir(cfg.Output), "self.txt", "a a 0.5\n")
		_, err := pipeline.Run(cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), kinship.ErrSelfPair.Error())
	})

	t.Run("no output written on failure", func(t *testing.T) {
		cfg := cohort(t)
		cfg.Kinship = write(t, filepath.Dir(cfg.Output), "bad.txt", "a b x\n")
		_, err := pipeline.Run(cfg, logger)
		require.Error(t, err)
		_, statErr := os.Stat(cfg.Output)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestWriteReportTo(t *testing.T) {
	var b strings.Builder
	rep := &pipeline.Report{PiHat: 0.125, Threshold: 0.0625, Final: 7, Output: "out.txt"}
	require.NoError(t, pipeline.WriteReportTo(&b, rep))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	assert.Equal(t, "pihat\t0.125", lines[0])
	assert.Equal(t, "kinship_threshold\t0.0625", lines[1])
	assert.Contains(t, lines, "final\t7")
	assert.Equal(t, "output\tout.txt", lines[len(lines)-1])
	for _, l := range lines {
		assert.Len(t, strings.Split(l, "\t"), 2, l)
	}
}
