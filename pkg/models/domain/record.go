package domain

// Entity is a code/description pair from one dimension.
type Entity struct {
	Code        string
	Description string
}

type Organization struct {
	UACSCode      string
	Description   string
	Department    Optional[Entity]
	Agency        Optional[Entity]
	OperatingUnit Optional[Entity]
}

// Location is present only when the record's region matched.
type Location struct {
	Region   Entity
	Province Optional[Entity]
	City     Optional[Entity]
}

type Funding struct {
	UACSCode        string
	Description     string
	FundCluster     Optional[Entity]
	FinancingSource Optional[Entity]
}

// ExpenseClassification is present only when the record's sub-object matched.
type ExpenseClassification struct {
	SubObject Entity
	Category  Optional[Entity]
}

// MappedRecord is one budget record with its optional joined dimensions.
// A nested dimension is only present when every dimension above it is present.
type MappedRecord struct {
	ID                    string
	FiscalYear            string
	BudgetType            BudgetType
	Amount                Money
	Description           string
	Organization          Optional[Organization]
	Location              Optional[Location]
	Funding               Optional[Funding]
	ExpenseClassification Optional[ExpenseClassification]
}

type Pagination struct {
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Offset returns the number of records preceding page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

type RecordPage struct {
	Records    []MappedRecord
	Pagination Pagination
}
