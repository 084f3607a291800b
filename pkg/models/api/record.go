package api

type Entity struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type UACSEntity struct {
	UACSCode    string `json:"uacsCode"`
	Description string `json:"description"`
}

// Optional joins are always present as keys and encoded as null when absent.

type RecordOrganization struct {
	UACSCode      string  `json:"uacsCode"`
	Description   string  `json:"description"`
	Department    *Entity `json:"department"`
	Agency        *Entity `json:"agency"`
	OperatingUnit *Entity `json:"operatingUnit"`
}

type RecordLocation struct {
	Region   Entity  `json:"region"`
	Province *Entity `json:"province"`
	City     *Entity `json:"city"`
}

type RecordFunding struct {
	UACSCode        string  `json:"uacsCode"`
	Description     string  `json:"description"`
	FundCluster     *Entity `json:"fundCluster"`
	FinancingSource *Entity `json:"financingSource"`
}

type RecordClassification struct {
	SubObject UACSEntity `json:"subObject"`
	Category  *Entity    `json:"category"`
}

type MappedRecord struct {
	ID                    string                `json:"id"`
	FiscalYear            string                `json:"fiscalYear"`
	BudgetType            string                `json:"budgetType"`
	Amount                float64               `json:"amount"`
	AmountPesos           float64               `json:"amountPesos"`
	Description           string                `json:"description"`
	Organization          *RecordOrganization   `json:"organization"`
	Location              *RecordLocation       `json:"location"`
	FundingSource         *RecordFunding        `json:"fundingSource"`
	ExpenseClassification *RecordClassification `json:"expenseClassification"`
}

type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type RecordPage struct {
	Data []MappedRecord `json:"data"`
	Meta PageMeta       `json:"meta"`
}
