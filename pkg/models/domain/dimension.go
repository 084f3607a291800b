package domain

// VariantTotals holds the NEP and GAA budgets of one member side by side.
type VariantTotals struct {
	NEP    Money
	GAA    Money
	Change Comparison
}

func NewVariantTotals(nep, gaa Money) VariantTotals {
	return VariantTotals{
		NEP:    nep,
		GAA:    gaa,
		Change: Compare(nep, gaa),
	}
}

// MemberBudget is a member's budget for the requested variant. When GAA is present the
// share of the variant total and the change to GAA are filled in.
type MemberBudget struct {
	Amount         Money
	GAA            Optional[Money]
	PercentOfTotal float64
	ChangeToGAA    Comparison
	RecordCount    int
	Top            []KeyedAmount
}

// NewRankedBudget builds a member budget compared against the enacted budget and
// the variant total of all members.
func NewRankedBudget(amount, gaa, total Money) MemberBudget {
	return MemberBudget{
		Amount:         amount,
		GAA:            Some(gaa),
		PercentOfTotal: ShareOf(amount, total),
		ChangeToGAA:    Compare(amount, gaa),
	}
}

// Member is one member of a dimension: a region, department, organization, funding
// source or expense category.
type Member struct {
	Code        string
	Description string
	Attributes  map[string]string
	Counts      map[string]int
	Budget      Optional[MemberBudget]
	Variants    Optional[VariantTotals]
}

// Variance is a department's NEP and GAA budgets with its share of the GAA total.
// NEP and Change are absent when only GAA was requested.
type Variance struct {
	Code           string
	Name           string
	NEP            Optional[VariantCount]
	GAA            VariantCount
	PercentOfTotal float64
	Change         Optional[Comparison]
}

type VariantCount struct {
	Amount  Money
	Records int
}

// Allocation is a ranked share of a variant total with its record count and an
// optional per-item breakdown.
type Allocation struct {
	ShareItem
	RecordCount int
	Breakdown   []KeyedAmount
}

type BudgetFilter struct {
	Year       string
	Type       BudgetType
	Department string
	Region     string
}

type BudgetTotal struct {
	Filter      BudgetFilter
	Total       Money
	RecordCount int
}

// VariantComparison compares a year's NEP (base) with its GAA, optionally for one department.
type VariantComparison struct {
	Department Optional[Entity]
	NEP        VariantCount
	GAA        VariantCount
	Comparison Comparison
}

type DepartmentStatistics struct {
	TotalAgencies               int
	TotalOperatingUnitClasses   int
	TotalRegions                int
	TotalFundingSources         int
	TotalExpenseClassifications int
	TotalProjects               int
}

// DepartmentDetails is a department with its breakdowns. Budget breakdowns are only
// filled when a year was requested.
type DepartmentDetails struct {
	Department           Member
	Year                 string
	Agencies             []Member
	OperatingUnitClasses []Member
	Comparison           Optional[VariantTotals]
	Regions              []Member
	FundingSources       []Member
	Expense              []TreeNode
	Projects             []Member
	Statistics           DepartmentStatistics
}

type HealthStatus string

const (
	HealthOK       HealthStatus = "ok"
	HealthDegraded HealthStatus = "error"
)

// DatasourceHealth is the outcome of pinging the query backend.
type DatasourceHealth struct {
	Status       HealthStatus
	Driver       DriverType
	ResponseTime int64
	Error        string
}
