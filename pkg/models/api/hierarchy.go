package api

type Ref struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type TreeNode struct {
	Code        string            `json:"code"`
	Description string            `json:"description"`
	Level       string            `json:"level"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	References  map[string]*Ref   `json:"references,omitempty"`
	NEP         *Money            `json:"nep,omitempty"`
	GAA         *Money            `json:"gaa,omitempty"`
	Comparison  *Comparison       `json:"comparison,omitempty"`
	Children    []TreeNode        `json:"children"`
}

type Hierarchy struct {
	Data []TreeNode     `json:"data"`
	Meta map[string]int `json:"meta"`
}

// MemberBudget fields beyond the amount are only set when the GAA budget was fetched.
type MemberBudget struct {
	TotalBudget             float64       `json:"totalBudget"`
	TotalBudgetPesos        float64       `json:"totalBudgetPesos"`
	PercentOfTotalBudget    *float64      `json:"percentOfTotalBudget,omitempty"`
	TotalBudgetGAA          *float64      `json:"totalBudgetGaa,omitempty"`
	TotalBudgetGAAPesos     *float64      `json:"totalBudgetGaaPesos,omitempty"`
	PercentDifferenceNEPGAA *float64      `json:"percentDifferenceNepGaa,omitempty"`
	RecordCount             int           `json:"recordCount,omitempty"`
	Top                     []NamedAmount `json:"top,omitempty"`
}

type VariantTotals struct {
	NEP        Money      `json:"nep"`
	GAA        Money      `json:"gaa"`
	Comparison Comparison `json:"comparison"`
}

type Member struct {
	Code        string            `json:"code"`
	Description string            `json:"description"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Counts      map[string]int    `json:"counts,omitempty"`
	*MemberBudget
	Budget *VariantTotals `json:"budget,omitempty"`
}

type DepartmentStatistics struct {
	TotalAgencies               int `json:"totalAgencies"`
	TotalOperatingUnitClasses   int `json:"totalOperatingUnitClasses"`
	TotalRegions                int `json:"totalRegions"`
	TotalFundingSources         int `json:"totalFundingSources"`
	TotalExpenseClassifications int `json:"totalExpenseClassifications"`
	TotalProjects               int `json:"totalProjects"`
}

type DepartmentDetails struct {
	Code                   string               `json:"code"`
	Description            string               `json:"description"`
	Abbreviation           string               `json:"abbreviation"`
	Year                   string               `json:"year,omitempty"`
	Agencies               []Member             `json:"agencies"`
	OperatingUnitClasses   []Member             `json:"operatingUnitClasses"`
	BudgetComparison       *VariantTotals       `json:"budgetComparison,omitempty"`
	Regions                []Member             `json:"regions,omitempty"`
	FundingSources         []Member             `json:"fundingSources,omitempty"`
	ExpenseClassifications []TreeNode           `json:"expenseClassifications,omitempty"`
	Projects               []Member             `json:"projects,omitempty"`
	Statistics             DepartmentStatistics `json:"statistics"`
}
