package api

type BudgetFilters struct {
	Year       string `json:"year"`
	Type       string `json:"type"`
	Department string `json:"department,omitempty"`
	Region     string `json:"region,omitempty"`
}

type BudgetTotal struct {
	Total        float64       `json:"total"`
	TotalInPesos float64       `json:"totalInPesos"`
	Currency     string        `json:"currency"`
	RecordCount  int           `json:"recordCount"`
	Filters      BudgetFilters `json:"filters"`
}

// Allocation is one ranked entry of a budget split, e.g. a department or region.
type Allocation struct {
	Code             string        `json:"code"`
	Name             string        `json:"name"`
	TotalBudget      float64       `json:"totalBudget"`
	TotalBudgetPesos float64       `json:"totalBudgetPesos"`
	RecordCount      int           `json:"recordCount"`
	Percentage       float64       `json:"percentage"`
	Breakdown        []NamedAmount `json:"breakdown,omitempty"`
}

type DepartmentVariance struct {
	DepartmentCode string         `json:"departmentCode"`
	DepartmentName string         `json:"departmentName"`
	Percentage     float64        `json:"percentage"`
	NEP            *VariantAmount `json:"nep,omitempty"`
	GAA            VariantAmount  `json:"gaa"`
	ChangePercent  *float64       `json:"changePercent,omitempty"`
	ChangePesos    *float64       `json:"changePesos,omitempty"`
}

type VariantTotal struct {
	Total        float64 `json:"total"`
	TotalInPesos float64 `json:"totalInPesos"`
	RecordCount  int     `json:"recordCount"`
}

type NEPvsGAA struct {
	DepartmentCode   string       `json:"departmentCode,omitempty"`
	DepartmentName   string       `json:"departmentName,omitempty"`
	NEP              VariantTotal `json:"nep"`
	GAA              VariantTotal `json:"gaa"`
	Difference       float64      `json:"difference"`
	PercentageChange float64      `json:"percentageChange"`
	Status           string       `json:"status"`
}

type SelectedYear struct {
	Year             string        `json:"year"`
	NEP              VariantAmount `json:"nep"`
	GAA              VariantAmount `json:"gaa"`
	NEPGAAComparison Comparison    `json:"nepGaaComparison"`
}

type AdjacentComparison struct {
	NEPDifference      float64 `json:"nepDifference"`
	NEPDifferencePesos float64 `json:"nepDifferencePesos"`
	NEPPercentChange   float64 `json:"nepPercentChange"`
	NEPStatus          string  `json:"nepStatus"`
	GAADifference      float64 `json:"gaaDifference"`
	GAADifferencePesos float64 `json:"gaaDifferencePesos"`
	GAAPercentChange   float64 `json:"gaaPercentChange"`
	GAAStatus          string  `json:"gaaStatus"`
}

type AdjacentYear struct {
	Year                   string             `json:"year"`
	NEP                    Money              `json:"nep"`
	GAA                    Money              `json:"gaa"`
	ComparisonWithSelected AdjacentComparison `json:"comparisonWithSelected"`
}

type SummaryStatistics struct {
	TotalDepartments int `json:"totalDepartments"`
	TotalProjects    int `json:"totalProjects"`
}

type YearSummary struct {
	SelectedYear SelectedYear      `json:"selectedYear"`
	PreviousYear AdjacentYear      `json:"previousYear"`
	NextYear     AdjacentYear      `json:"nextYear"`
	Statistics   SummaryStatistics `json:"statistics"`
}
