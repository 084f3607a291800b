package domain

// Report is a renderer-agnostic budget report used by the terminal reporters.
type Report struct {
	Title       string
	Year        string
	BudgetType  BudgetType
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail is one table row. Depth indents hierarchy rows.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
	Depth       int
}
