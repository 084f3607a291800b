package api

// Money is an amount in thousands with its full-currency value.
type Money struct {
	Amount      float64 `json:"amount"`
	AmountPesos float64 `json:"amountPesos"`
}

type Comparison struct {
	Difference      float64 `json:"difference"`
	DifferencePesos float64 `json:"differencePesos"`
	PercentChange   float64 `json:"percentChange"`
	Status          string  `json:"status"`
}

type VariantAmount struct {
	Amount      float64 `json:"amount"`
	AmountPesos float64 `json:"amountPesos"`
	RecordCount int     `json:"recordCount"`
}

type NamedAmount struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	AmountPesos float64 `json:"amountPesos"`
}
