package adapters

import (
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
)

const unitThousands = "PHP '000"

func comparisonDetails(name string, c domain.Comparison) []domain.ReportDetail {
	return []domain.ReportDetail{
		{Name: name + " difference", Value: fmt.Sprintf("%.2f", c.Difference.Amount()), Unit: unitThousands},
		{
			Name:        name + " change",
			Value:       fmt.Sprintf("%.2f", domain.Round2(c.PercentChange)),
			Unit:        "%",
			Description: string(c.Status),
		},
	}
}

func MapYearSummaryToReport(s domain.YearSummary) *domain.Report {
	selected := domain.ReportSection{
		Title: "Fiscal year " + s.Selected.Year,
		Summary: map[string]interface{}{
			"Departments": s.Statistics.TotalDepartments,
			"Projects":    s.Statistics.TotalProjects,
		},
		Details: []domain.ReportDetail{
			{Name: "NEP", Value: fmt.Sprintf("%.2f", s.Selected.NEP.Amount()), Unit: unitThousands,
				Description: fmt.Sprintf("%d records", s.Selected.NEPRecords)},
			{Name: "GAA", Value: fmt.Sprintf("%.2f", s.Selected.GAA.Amount()), Unit: unitThousands,
				Description: fmt.Sprintf("%d records", s.Selected.GAARecords)},
		},
	}
	selected.Details = append(selected.Details, comparisonDetails("NEP to GAA", s.Selected.NEPvsGAA)...)

	adjacent := func(title string, y domain.AdjacentYear) domain.ReportSection {
		section := domain.ReportSection{
			Title: fmt.Sprintf("%s (%s)", title, y.Year),
			Details: []domain.ReportDetail{
				{Name: "NEP", Value: fmt.Sprintf("%.2f", y.NEP.Amount()), Unit: unitThousands},
				{Name: "GAA", Value: fmt.Sprintf("%.2f", y.GAA.Amount()), Unit: unitThousands},
			},
		}
		section.Details = append(section.Details, comparisonDetails("NEP", y.NEPComparison)...)
		section.Details = append(section.Details, comparisonDetails("GAA", y.GAAComparison)...)
		return section
	}

	return &domain.Report{
		Title:       "Budget summary",
		Year:        s.Selected.Year,
		TotalAmount: s.Selected.GAA.BaseUnits(),
		Currency:    domain.Currency,
		Sections: []domain.ReportSection{
			selected,
			adjacent("Previous year", s.Previous),
			adjacent("Next year", s.Next),
		},
	}
}

func MapVariantComparisonToReport(year string, c domain.VariantComparison) *domain.Report {
	title := "NEP vs GAA"
	if dept, ok := c.Department.Get(); ok {
		title = fmt.Sprintf("NEP vs GAA: %s", dept.Description)
	}
	section := domain.ReportSection{
		Title: title,
		Details: []domain.ReportDetail{
			{Name: "NEP", Value: fmt.Sprintf("%.2f", c.NEP.Amount.Amount()), Unit: unitThousands,
				Description: fmt.Sprintf("%d records", c.NEP.Records)},
			{Name: "GAA", Value: fmt.Sprintf("%.2f", c.GAA.Amount.Amount()), Unit: unitThousands,
				Description: fmt.Sprintf("%d records", c.GAA.Records)},
		},
	}
	section.Details = append(section.Details, comparisonDetails("NEP to GAA", c.Comparison)...)

	return &domain.Report{
		Title:       title,
		Year:        year,
		TotalAmount: c.GAA.Amount.BaseUnits(),
		Currency:    domain.Currency,
		Sections:    []domain.ReportSection{section},
	}
}

// MapHierarchyToReport flattens a hierarchy into one indented row per node.
func MapHierarchyToReport(title, year string, h domain.Hierarchy) *domain.Report {
	summary := make(map[string]interface{}, len(h.Meta))
	for k, v := range h.Meta {
		summary[k] = v
	}

	var details []domain.ReportDetail
	var total domain.Money
	for _, root := range h.Nodes {
		total = total.Add(root.Total(domain.MeasureGAA))
		root.Walk(func(n domain.TreeNode, depth int) {
			details = append(details, nodeDetail(n, depth))
		})
	}

	return &domain.Report{
		Title:       title,
		Year:        year,
		TotalAmount: total.BaseUnits(),
		Currency:    domain.Currency,
		Sections: []domain.ReportSection{{
			Title:   title,
			Summary: summary,
			Details: details,
		}},
	}
}

func nodeDetail(n domain.TreeNode, depth int) domain.ReportDetail {
	detail := domain.ReportDetail{
		Name:        n.Key,
		Description: n.Label,
		Depth:       depth,
		Value:       n.Level,
	}
	if len(n.Totals) == 0 {
		return detail
	}
	detail.Unit = unitThousands
	detail.Value = fmt.Sprintf("%.2f / %.2f", n.Total(domain.MeasureNEP).Amount(), n.Total(domain.MeasureGAA).Amount())
	if n.Comparison != nil {
		detail.Description = fmt.Sprintf("%s (%s %.2f%%)", n.Label, n.Comparison.Status, domain.Round2(n.Comparison.PercentChange))
	}
	return detail
}
