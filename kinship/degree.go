package kinship

// Degree is a relationship class inferred from a kinship coefficient.
type Degree int

// Relationship classes, closest first.
const (
	Duplicate Degree = iota // duplicate sample or monozygotic twin
	First                   // parent/offspring, full siblings
	Second                  // grandparents, aunts/uncles, half-siblings
	Third                   // first cousins
	Fourth                  // first cousins once removed
	Fifth                   // second cousins
	Unrelated
)

// boundaries[d] is the smallest kinship classified as degree d. Each bound
// sits halfway between the expected kinship of degree d and of degree d+1.
var boundaries = func() [Unrelated]float64 {
	var b [Unrelated]float64
	k := 0.5
	for d := Duplicate; d < Unrelated; d++ {
		b[d] = 0.5 * (k + k/2)
		k /= 2
	}
	return b
}()

// Classify maps a kinship coefficient to its relationship class.
func Classify(kinship float64) Degree {
	for d := Duplicate; d < Unrelated; d++ {
		if kinship >= boundaries[d] {
			return d
		}
	}

	return Unrelated
}

func (d Degree) String() string {
	switch d {
	case Duplicate:
		return "DUP/MZ"
	case First:
		return "1st"
	case Second:
		return "2nd"
	case Third:
		return "3rd"
	case Fourth:
		return "4th"
	case Fifth:
		return "5th"
	case Unrelated:
		return "UN"
	}

	return "invalid"
}
