package adapters

import (
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHierarchyToReport(t *testing.T) {
	cmp := domain.Compare(domain.NewMoney(800), domain.NewMoney(850))
	h := domain.Hierarchy{
		Nodes: []domain.TreeNode{{
			Key:        "1",
			Label:      "Personnel Services",
			Level:      "classification",
			Totals:     map[domain.Measure]domain.Money{domain.MeasureNEP: domain.NewMoney(800), domain.MeasureGAA: domain.NewMoney(850)},
			Comparison: &cmp,
			Children: []domain.TreeNode{{
				Key:    "10",
				Label:  "Salaries",
				Level:  "subClass",
				Totals: map[domain.Measure]domain.Money{domain.MeasureNEP: domain.NewMoney(800), domain.MeasureGAA: domain.NewMoney(850)},
			}},
		}},
		Meta: map[string]int{"totalClassifications": 1},
	}

	report := MapHierarchyToReport("Expense classifications", "2025", h)

	assert.Equal(t, 850000.0, report.TotalAmount)
	assert.Equal(t, domain.Currency, report.Currency)
	require.Len(t, report.Sections, 1)
	assert.Equal(t, 1, report.Sections[0].Summary["totalClassifications"])

	details := report.Sections[0].Details
	require.Len(t, details, 2)
	assert.Equal(t, domain.ReportDetail{
		Name:        "1",
		Value:       "800.00 / 850.00",
		Unit:        unitThousands,
		Description: "Personnel Services (Increased 6.25%)",
	}, details[0])
	assert.Equal(t, 1, details[1].Depth)
	assert.Equal(t, "Salaries", details[1].Description)
}

func TestMapHierarchyToReport_StructureOnly(t *testing.T) {
	report := MapHierarchyToReport("Funding sources", "", domain.Hierarchy{
		Nodes: []domain.TreeNode{{Key: "01", Label: "Regular Agency Fund", Level: "fund_cluster"}},
	})

	require.Len(t, report.Sections[0].Details, 1)
	assert.Equal(t, "fund_cluster", report.Sections[0].Details[0].Value)
	assert.Empty(t, report.Sections[0].Details[0].Unit)
	assert.Zero(t, report.TotalAmount)
}

func TestMapVariantComparisonToReport(t *testing.T) {
	c := domain.VariantComparison{
		Department: domain.Some(domain.Entity{Code: "07", Description: "DepEd"}),
		NEP:        domain.VariantCount{Amount: domain.NewMoney(100), Records: 3},
		GAA:        domain.VariantCount{Amount: domain.NewMoney(90), Records: 2},
		Comparison: domain.Compare(domain.NewMoney(100), domain.NewMoney(90)),
	}

	report := MapVariantComparisonToReport("2025", c)

	assert.Equal(t, "NEP vs GAA: DepEd", report.Title)
	details := report.Sections[0].Details
	require.Len(t, details, 4)
	assert.Equal(t, "3 records", details[0].Description)
	assert.Equal(t, "-10.00", details[2].Value)
	assert.Equal(t, "-10.00", details[3].Value)
	assert.Equal(t, string(domain.StatusDecreased), details[3].Description)
}
