package dataset

import (
	"math"
	"strings"

	"github.com/jgbaldwinbrown/csvh"

	"github.com/katalvlaran/unrelated/kinship"
)

// kinshipLayout says where the pair and its coefficient live in a row.
type kinshipLayout struct {
	id1, id2, value int
	fromPiHat       bool // value column is PI_HAT, halve it
}

// plainLayout is the headerless "IID1 IID2 Kinship" table.
var plainLayout = kinshipLayout{id1: 0, id2: 1, value: 2}

// headerLayout recognises a header row and locates the columns it needs.
// Supported: UKBB ukb_rel.dat (ID1 ID2 HetHet IBS0 Kinship), KING
// (FID1 ID1 FID2 ID2 ... Kinship) and PLINK .genome (FID1 IID1 FID2 IID2 ... PI_HAT).
func headerLayout(fields []string) (kinshipLayout, bool) {
	l := kinshipLayout{id1: -1, id2: -1, value: -1}
	piHat := -1
	for i, f := range fields {
		switch strings.ToUpper(strings.TrimPrefix(f, "#")) {
		case "ID1", "IID1":
			l.id1 = i
		case "ID2", "IID2":
			l.id2 = i
		case "KINSHIP":
			l.value = i
		case "PI_HAT":
			piHat = i
		}
	}
	if l.value < 0 && piHat >= 0 {
		l.value, l.fromPiHat = piHat, true
	}
	if l.id1 < 0 || l.id2 < 0 || l.value < 0 {
		return kinshipLayout{}, false
	}

	return l, true
}

func (l kinshipLayout) width() int {
	w := l.id1
	if l.id2 > w {
		w = l.id2
	}
	if l.value > w {
		w = l.value
	}
	return w + 1
}

// ReadKinshipTable reads pairwise kinship coefficients from path.
//
// Without a header the first three columns are IID1 IID2 Kinship. A first
// row naming ID1/IID1, ID2/IID2 and Kinship (or PI_HAT) columns is taken as
// a header and those columns are used. "NA" or "nan" coefficients load as
// NaN, which never meets a threshold.
func ReadKinshipTable(path string) ([]kinship.Pair, error) {
	var pairs []kinship.Pair
	layout := plainLayout
	first := true
	err := eachRow(path, func(line int, fields []string) error {
		if first {
			first = false
			if l, ok := headerLayout(fields); ok {
				layout = l
				return nil
			}
		}
		if len(fields) < layout.width() {
			return rowError(line, "want at least %d columns, got %d", layout.width(), len(fields))
		}

		p := kinship.Pair{ID1: fields[layout.id1], ID2: fields[layout.id2]}
		raw := fields[layout.value]
		if strings.EqualFold(raw, "NA") {
			p.Kinship = math.NaN()
		} else if _, err := csvh.Scan([]string{raw}, &p.Kinship); err != nil {
			return rowError(line, "kinship %q: %v", raw, err)
		}
		if layout.fromPiHat {
			p.Kinship = kinship.ThresholdFromPiHat(p.Kinship)
		}
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}
