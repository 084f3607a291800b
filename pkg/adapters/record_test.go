package adapters

import (
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRecordRow_NestedBags(t *testing.T) {
	row := store.Row{
		"record": store.Row{
			"id": "BR-1", "fiscal_year": "2025", "budget_type": "GAA", "amount": int64(1250), "description": "Basic education",
		},
		"organization":    store.Row{"uacs_code": "070010100001", "description": "DepEd Central Office"},
		"department":      store.Row{"code": "07", "description": "Department of Education"},
		"agency":          store.Row{"code": "001", "description": "Office of the Secretary"},
		"operatingUnit":   store.Row{"code": "0100001", "description": "Central Office"},
		"region":          store.Row{"code": "13", "description": "NCR"},
		"province":        nil,
		"city":            store.Row{"psgc_code": "137401", "description": "Manila"},
		"fundingSource":   store.Row{"uacs_code": "01101101", "description": "GF"},
		"fundCluster":     store.Row{"code": "01", "description": "Regular"},
		"financingSource": nil,
		"subObject":       store.Row{"uacs_code": "5010101001", "description": "Basic Salary"},
		"category":        store.Row{"code": "PS", "description": "Personnel Services"},
	}

	rec := MapRecordRow(row)

	assert.Equal(t, "BR-1", rec.ID)
	assert.Equal(t, domain.BudgetTypeGAA, rec.BudgetType)
	assert.Equal(t, 1250.0, rec.Amount.Amount())
	assert.Equal(t, 1250000.0, rec.Amount.BaseUnits())

	org, ok := rec.Organization.Get()
	require.True(t, ok)
	assert.True(t, org.OperatingUnit.IsPresent())

	loc, ok := rec.Location.Get()
	require.True(t, ok)
	assert.Equal(t, "NCR", loc.Region.Description)
	assert.False(t, loc.Province.IsPresent())
	// a city is only kept below a matched province
	assert.False(t, loc.City.IsPresent())

	fs, ok := rec.Funding.Get()
	require.True(t, ok)
	assert.True(t, fs.FundCluster.IsPresent())
	assert.False(t, fs.FinancingSource.IsPresent())

	cls, ok := rec.ExpenseClassification.Get()
	require.True(t, ok)
	assert.Equal(t, "5010101001", cls.SubObject.Code)
	cat, _ := cls.Category.Get()
	assert.Equal(t, "PS", cat.Code)
}

func TestMapRecordRow_AgencyNullPropagates(t *testing.T) {
	// Given a flattened row whose agency join did not match
	row := store.Row{
		"record__id":                 "BR-4",
		"record__fiscal_year":        "2025",
		"record__budget_type":        "NEP",
		"record__amount":             250.0,
		"record__description":        nil,
		"organization__uacs_code":    "070020100001",
		"organization__description":  "Unknown agency unit",
		"department__code":           "07",
		"department__description":    "Department of Education",
		"agency__code":               nil,
		"agency__description":        nil,
		"operatingUnit__code":        "0100001",
		"operatingUnit__description": "Stale unit",
		"region__code":               nil,
		"region__description":        nil,
		"subObject__uacs_code":       nil,
		"subObject__description":     nil,
	}

	// When
	rec := MapRecordRow(row)

	// Then
	org, ok := rec.Organization.Get()
	require.True(t, ok)
	dept, ok := org.Department.Get()
	require.True(t, ok)
	assert.Equal(t, "07", dept.Code)
	assert.False(t, org.Agency.IsPresent())
	assert.False(t, org.OperatingUnit.IsPresent())
	assert.False(t, rec.Location.IsPresent())
	assert.False(t, rec.Funding.IsPresent())
	assert.False(t, rec.ExpenseClassification.IsPresent())

	out := MapRecordDomainToApi(rec)
	require.NotNil(t, out.Organization)
	assert.Nil(t, out.Organization.Agency)
	assert.Nil(t, out.Organization.OperatingUnit)
	assert.Nil(t, out.Location)
	assert.Equal(t, 250000.0, out.AmountPesos)
}
