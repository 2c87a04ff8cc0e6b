package kinship

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the kinship values of a set of pairs.
type Summary struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	ByDegree map[Degree]int
}

// Summarize computes descriptive statistics over the kinship values of pairs.
// An empty input yields a zero Summary with an empty ByDegree map.
func Summarize(pairs []Pair) (Summary, error) {
	s := Summary{Count: len(pairs), ByDegree: make(map[Degree]int)}
	if len(pairs) == 0 {
		return s, nil
	}

	values := make(stats.Float64Data, len(pairs))
	for i, p := range pairs {
		values[i] = p.Kinship
		s.ByDegree[Classify(p.Kinship)]++
	}

	var err error
	if s.Min, err = stats.Min(values); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(values); err != nil {
		return s, err
	}
	if s.Mean, err = stats.Mean(values); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(values); err != nil {
		return s, err
	}

	return s, nil
}
