package domain

type ChangeStatus string

const (
	StatusIncreased ChangeStatus = "Increased"
	StatusDecreased ChangeStatus = "Decreased"
	StatusNoChange  ChangeStatus = "No Change"
)

// Comparison describes how Comparand moved relative to Base.
type Comparison struct {
	Base          Money
	Comparand     Money
	Difference    Money
	PercentChange float64
	Status        ChangeStatus
}

// Compare computes the difference and percent change from base to comparand.
// A base that is zero or negative yields a zero percent change.
func Compare(base, comparand Money) Comparison {
	diff := comparand.Sub(base)
	pct := PercentChange(base, diff)
	return Comparison{
		Base:          base,
		Comparand:     comparand,
		Difference:    diff,
		PercentChange: pct,
		Status:        StatusOf(pct),
	}
}

func PercentChange(base, diff Money) float64 {
	if base.Amount() > 0 {
		return diff.Amount() / base.Amount() * 100
	}
	return 0
}

func StatusOf(percentChange float64) ChangeStatus {
	switch {
	case percentChange > 0:
		return StatusIncreased
	case percentChange < 0:
		return StatusDecreased
	default:
		return StatusNoChange
	}
}
