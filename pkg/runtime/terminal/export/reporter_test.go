package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(&domain.Report{
		Title:       "Funding sources",
		Year:        "2025",
		TotalAmount: 1500000,
		Currency:    domain.Currency,
		Sections: []domain.ReportSection{{
			Title:   "Funding sources",
			Summary: map[string]interface{}{"totalFundClusters": 1},
			Details: []domain.ReportDetail{
				{Name: "01", Value: "fund_cluster", Description: "Regular Agency Fund"},
				{Name: "01101101", Value: "funding_source", Description: "General Fund", Depth: 1},
			},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Funding sources (FY 2025)")
	assert.Contains(t, out, "Total Amount: PHP 1500000.00")
	assert.Contains(t, out, "totalFundClusters: 1")
	assert.Contains(t, out, "| 01 ")
	assert.Contains(t, out, "|   01101101 ")
}

func TestReporter_TruncatesLongNames(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.Handle(&domain.Report{
		Title: "Organizations",
		Sections: []domain.ReportSection{{
			Title:   "Organizations",
			Details: []domain.ReportDetail{{Name: strings.Repeat("x", 40), Value: "department"}},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "(FY")
	assert.Contains(t, out, strings.Repeat("x", 21)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 25))
}
