package query

// Name identifies a query implemented by every backend catalog.
type Name string

const (
	Ping Name = "ping"

	BudgetTotal          Name = "budget_total"
	BudgetByDepartment   Name = "budget_by_department"
	BudgetNepGaaByDept   Name = "budget_nep_gaa_by_department"
	BudgetCompareNepGaa  Name = "budget_compare_nep_gaa"
	YearTotals           Name = "year_totals"
	DepartmentCount      Name = "department_count"
	ProjectCount         Name = "project_count"
	RecordsMapped        Name = "records_mapped"
	RecordsCount         Name = "records_count"
	Classifications      Name = "classifications"
	ExpenseHierarchy     Name = "expense_hierarchy"
	ClassifiedTotal      Name = "classified_total"
	ExpenseCategories    Name = "expense_categories"
	TopSubObjects        Name = "top_sub_objects"
	RegionTotal          Name = "region_total"
	Regions              Name = "regions"
	RegionalAllocation   Name = "regional_allocation"
	RegionTopDepartments Name = "region_top_departments"
	Provinces            Name = "provinces"
	Cities               Name = "cities"
	Barangays            Name = "barangays"
	Organizations        Name = "organizations"
	OrganizationByCode   Name = "organization_by_code"
	Agencies             Name = "agencies"
	OperatingUnits       Name = "operating_units"
	OrganizationBudget   Name = "organization_budget"
	FundingSources       Name = "funding_sources"
	FundingSourceByCode  Name = "funding_source_by_code"
	FundingHierarchy     Name = "funding_hierarchy"
	Departments          Name = "departments"
	DepartmentByCode     Name = "department_by_code"
	DepartmentBudget     Name = "department_budget"
	DepartmentAgencies   Name = "department_agencies"
	DepartmentOUClasses  Name = "department_ou_classes"
	DepartmentRegions    Name = "department_regions"
	DepartmentFunding    Name = "department_funding_sources"
	DepartmentProjects   Name = "department_projects"
)

// Names lists every query a catalog must define.
var Names = []Name{
	Ping,
	BudgetTotal, BudgetByDepartment, BudgetNepGaaByDept, BudgetCompareNepGaa,
	YearTotals, DepartmentCount, ProjectCount, RecordsMapped, RecordsCount,
	Classifications, ExpenseHierarchy, ClassifiedTotal, ExpenseCategories, TopSubObjects,
	RegionTotal, Regions, RegionalAllocation, RegionTopDepartments,
	Provinces, Cities, Barangays,
	Organizations, OrganizationByCode, Agencies, OperatingUnits, OrganizationBudget,
	FundingSources, FundingSourceByCode, FundingHierarchy,
	Departments, DepartmentByCode, DepartmentBudget, DepartmentAgencies, DepartmentOUClasses,
	DepartmentRegions, DepartmentFunding, DepartmentProjects,
}
