package tradecal

import "fmt"

// Percent is a percentage value, e.g. Percent(10) is 10%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// SignedString renders the percentage with an explicit leading '+' for
// strictly positive values. Zero and negative values render plain.
func (p Percent) SignedString() string {
	if p > 0 {
		return fmt.Sprintf("+%.1f%%", float64(p))
	}
	return p.String()
}
