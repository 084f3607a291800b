package adapters

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
)

// Entity bag names of a mapped record row.
const (
	bagRecord          = "record"
	bagOrganization    = "organization"
	bagDepartment      = "department"
	bagAgency          = "agency"
	bagOperatingUnit   = "operatingUnit"
	bagRegion          = "region"
	bagProvince        = "province"
	bagCity            = "city"
	bagFundingSource   = "fundingSource"
	bagFundCluster     = "fundCluster"
	bagFinancingSource = "financingSource"
	bagSubObject       = "subObject"
	bagCategory        = "category"
)

// MapRecordRow maps one wide record row to a MappedRecord. Each optional dimension is
// built only when its own entity bag is present, and nested dimensions additionally
// require their parent: an operating unit without an agency is absent.
func MapRecordRow(row store.Row) domain.MappedRecord {
	record, ok := row.Entity(bagRecord)
	if !ok {
		record = row
	}

	return domain.MappedRecord{
		ID:                    record.String("id"),
		FiscalYear:            record.String("fiscal_year"),
		BudgetType:            domain.BudgetType(record.String("budget_type")),
		Amount:                domain.NewMoney(record.Float("amount")),
		Description:           record.String("description"),
		Organization:          mapOrganization(row),
		Location:              mapLocation(row),
		Funding:               mapFunding(row),
		ExpenseClassification: mapClassification(row),
	}
}

func MapRecordRows(rows []store.Row) []domain.MappedRecord {
	records := make([]domain.MappedRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, MapRecordRow(row))
	}
	return records
}

func mapOrganization(row store.Row) domain.Optional[domain.Organization] {
	org, ok := row.Entity(bagOrganization)
	if !ok {
		return domain.None[domain.Organization]()
	}

	out := domain.Organization{
		UACSCode:    org.String("uacs_code"),
		Description: org.String("description"),
		Department:  entityOf(row, bagDepartment, "code"),
	}
	if out.Department.IsPresent() {
		out.Agency = entityOf(row, bagAgency, "code")
	}
	if out.Agency.IsPresent() {
		out.OperatingUnit = entityOf(row, bagOperatingUnit, "code")
	}
	return domain.Some(out)
}

func mapLocation(row store.Row) domain.Optional[domain.Location] {
	region, ok := entityOf(row, bagRegion, "code").Get()
	if !ok {
		return domain.None[domain.Location]()
	}

	out := domain.Location{
		Region:   region,
		Province: entityOf(row, bagProvince, "psgc_code"),
	}
	if out.Province.IsPresent() {
		out.City = entityOf(row, bagCity, "psgc_code")
	}
	return domain.Some(out)
}

func mapFunding(row store.Row) domain.Optional[domain.Funding] {
	fs, ok := row.Entity(bagFundingSource)
	if !ok {
		return domain.None[domain.Funding]()
	}
	return domain.Some(domain.Funding{
		UACSCode:        fs.String("uacs_code"),
		Description:     fs.String("description"),
		FundCluster:     entityOf(row, bagFundCluster, "code"),
		FinancingSource: entityOf(row, bagFinancingSource, "code"),
	})
}

func mapClassification(row store.Row) domain.Optional[domain.ExpenseClassification] {
	subObject, ok := entityOf(row, bagSubObject, "uacs_code").Get()
	if !ok {
		return domain.None[domain.ExpenseClassification]()
	}
	return domain.Some(domain.ExpenseClassification{
		SubObject: subObject,
		Category:  entityOf(row, bagCategory, "code"),
	})
}

func entityOf(row store.Row, name, codeField string) domain.Optional[domain.Entity] {
	bag, ok := row.Entity(name)
	if !ok {
		return domain.None[domain.Entity]()
	}
	return domain.Some(domain.Entity{
		Code:        bag.String(codeField),
		Description: bag.String("description"),
	})
}
