package adapters

import (
	"github.com/de-tools/budget-atlas/pkg/models/api"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
)

// Percentages are rounded to two decimals here and nowhere else.

func MapMoneyDomainToApi(m domain.Money) api.Money {
	return api.Money{Amount: m.Amount(), AmountPesos: m.BaseUnits()}
}

func MapComparisonDomainToApi(c domain.Comparison) api.Comparison {
	return api.Comparison{
		Difference:      c.Difference.Amount(),
		DifferencePesos: c.Difference.BaseUnits(),
		PercentChange:   domain.Round2(c.PercentChange),
		Status:          string(c.Status),
	}
}

func mapVariantAmount(m domain.Money, records int) api.VariantAmount {
	return api.VariantAmount{Amount: m.Amount(), AmountPesos: m.BaseUnits(), RecordCount: records}
}

func mapVariantTotal(v domain.VariantCount) api.VariantTotal {
	return api.VariantTotal{Total: v.Amount.Amount(), TotalInPesos: v.Amount.BaseUnits(), RecordCount: v.Records}
}

func mapNamedAmounts(items []domain.KeyedAmount) []api.NamedAmount {
	if len(items) == 0 {
		return nil
	}
	out := make([]api.NamedAmount, 0, len(items))
	for _, item := range items {
		out = append(out, api.NamedAmount{
			Code:        item.Key,
			Name:        item.Label,
			Amount:      item.Amount.Amount(),
			AmountPesos: item.Amount.BaseUnits(),
		})
	}
	return out
}

func MapBudgetTotalDomainToApi(t domain.BudgetTotal) api.BudgetTotal {
	return api.BudgetTotal{
		Total:        t.Total.Amount(),
		TotalInPesos: t.Total.BaseUnits(),
		Currency:     domain.Currency,
		RecordCount:  t.RecordCount,
		Filters: api.BudgetFilters{
			Year:       t.Filter.Year,
			Type:       string(t.Filter.Type),
			Department: t.Filter.Department,
			Region:     t.Filter.Region,
		},
	}
}

func MapAllocationsDomainToApi(items []domain.Allocation) []api.Allocation {
	out := make([]api.Allocation, 0, len(items))
	for _, a := range items {
		out = append(out, api.Allocation{
			Code:             a.Key,
			Name:             a.Label,
			TotalBudget:      a.Amount.Amount(),
			TotalBudgetPesos: a.Amount.BaseUnits(),
			RecordCount:      a.RecordCount,
			Percentage:       domain.Round2(a.PercentageOfTotal),
			Breakdown:        mapNamedAmounts(a.Breakdown),
		})
	}
	return out
}

func MapVariancesDomainToApi(items []domain.Variance) []api.DepartmentVariance {
	out := make([]api.DepartmentVariance, 0, len(items))
	for _, v := range items {
		res := api.DepartmentVariance{
			DepartmentCode: v.Code,
			DepartmentName: v.Name,
			Percentage:     domain.Round2(v.PercentOfTotal),
			GAA:            mapVariantAmount(v.GAA.Amount, v.GAA.Records),
		}
		if nep, ok := v.NEP.Get(); ok {
			amount := mapVariantAmount(nep.Amount, nep.Records)
			res.NEP = &amount
		}
		if change, ok := v.Change.Get(); ok {
			pct := domain.Round2(change.PercentChange)
			pesos := change.Difference.BaseUnits()
			res.ChangePercent = &pct
			res.ChangePesos = &pesos
		}
		out = append(out, res)
	}
	return out
}

func MapVariantComparisonDomainToApi(c domain.VariantComparison) api.NEPvsGAA {
	res := api.NEPvsGAA{
		NEP:              mapVariantTotal(c.NEP),
		GAA:              mapVariantTotal(c.GAA),
		Difference:       c.Comparison.Difference.Amount(),
		PercentageChange: domain.Round2(c.Comparison.PercentChange),
		Status:           string(c.Comparison.Status),
	}
	if dept, ok := c.Department.Get(); ok {
		res.DepartmentCode = dept.Code
		res.DepartmentName = dept.Description
	}
	return res
}

func mapAdjacentYear(y domain.AdjacentYear) api.AdjacentYear {
	return api.AdjacentYear{
		Year: y.Year,
		NEP:  MapMoneyDomainToApi(y.NEP),
		GAA:  MapMoneyDomainToApi(y.GAA),
		ComparisonWithSelected: api.AdjacentComparison{
			NEPDifference:      y.NEPComparison.Difference.Amount(),
			NEPDifferencePesos: y.NEPComparison.Difference.BaseUnits(),
			NEPPercentChange:   domain.Round2(y.NEPComparison.PercentChange),
			NEPStatus:          string(y.NEPComparison.Status),
			GAADifference:      y.GAAComparison.Difference.Amount(),
			GAADifferencePesos: y.GAAComparison.Difference.BaseUnits(),
			GAAPercentChange:   domain.Round2(y.GAAComparison.PercentChange),
			GAAStatus:          string(y.GAAComparison.Status),
		},
	}
}

func MapYearSummaryDomainToApi(s domain.YearSummary) api.YearSummary {
	return api.YearSummary{
		SelectedYear: api.SelectedYear{
			Year:             s.Selected.Year,
			NEP:              mapVariantAmount(s.Selected.NEP, s.Selected.NEPRecords),
			GAA:              mapVariantAmount(s.Selected.GAA, s.Selected.GAARecords),
			NEPGAAComparison: MapComparisonDomainToApi(s.Selected.NEPvsGAA),
		},
		PreviousYear: mapAdjacentYear(s.Previous),
		NextYear:     mapAdjacentYear(s.Next),
		Statistics: api.SummaryStatistics{
			TotalDepartments: s.Statistics.TotalDepartments,
			TotalProjects:    s.Statistics.TotalProjects,
		},
	}
}

func mapEntityPtr(e domain.Optional[domain.Entity]) *api.Entity {
	v := e.Ptr()
	if v == nil {
		return nil
	}
	return &api.Entity{Code: v.Code, Description: v.Description}
}

func MapRecordDomainToApi(r domain.MappedRecord) api.MappedRecord {
	res := api.MappedRecord{
		ID:          r.ID,
		FiscalYear:  r.FiscalYear,
		BudgetType:  string(r.BudgetType),
		Amount:      r.Amount.Amount(),
		AmountPesos: r.Amount.BaseUnits(),
		Description: r.Description,
	}
	if org, ok := r.Organization.Get(); ok {
		res.Organization = &api.RecordOrganization{
			UACSCode:      org.UACSCode,
			Description:   org.Description,
			Department:    mapEntityPtr(org.Department),
			Agency:        mapEntityPtr(org.Agency),
			OperatingUnit: mapEntityPtr(org.OperatingUnit),
		}
	}
	if loc, ok := r.Location.Get(); ok {
		res.Location = &api.RecordLocation{
			Region:   api.Entity{Code: loc.Region.Code, Description: loc.Region.Description},
			Province: mapEntityPtr(loc.Province),
			City:     mapEntityPtr(loc.City),
		}
	}
	if fs, ok := r.Funding.Get(); ok {
		res.FundingSource = &api.RecordFunding{
			UACSCode:        fs.UACSCode,
			Description:     fs.Description,
			FundCluster:     mapEntityPtr(fs.FundCluster),
			FinancingSource: mapEntityPtr(fs.FinancingSource),
		}
	}
	if cls, ok := r.ExpenseClassification.Get(); ok {
		res.ExpenseClassification = &api.RecordClassification{
			SubObject: api.UACSEntity{UACSCode: cls.SubObject.Code, Description: cls.SubObject.Description},
			Category:  mapEntityPtr(cls.Category),
		}
	}
	return res
}

func MapRecordPageDomainToApi(p domain.RecordPage) api.RecordPage {
	data := make([]api.MappedRecord, 0, len(p.Records))
	for _, r := range p.Records {
		data = append(data, MapRecordDomainToApi(r))
	}
	return api.RecordPage{
		Data: data,
		Meta: api.PageMeta{
			Total:      p.Pagination.Total,
			Page:       p.Pagination.Page,
			Limit:      p.Pagination.Limit,
			TotalPages: p.Pagination.TotalPages,
		},
	}
}

func MapTreeNodeDomainToApi(n domain.TreeNode) api.TreeNode {
	res := api.TreeNode{
		Code:        n.Key,
		Description: n.Label,
		Level:       n.Level,
		Attributes:  n.Attributes,
		Children:    make([]api.TreeNode, 0, len(n.Children)),
	}
	if len(n.References) > 0 {
		res.References = make(map[string]*api.Ref, len(n.References))
		for name, ref := range n.References {
			if r, ok := ref.Get(); ok {
				res.References[name] = &api.Ref{Code: r.Code, Description: r.Description}
			} else {
				res.References[name] = nil
			}
		}
	}
	if nep, ok := n.Totals[domain.MeasureNEP]; ok {
		m := MapMoneyDomainToApi(nep)
		res.NEP = &m
	}
	if gaa, ok := n.Totals[domain.MeasureGAA]; ok {
		m := MapMoneyDomainToApi(gaa)
		res.GAA = &m
	}
	if n.Comparison != nil {
		c := MapComparisonDomainToApi(*n.Comparison)
		res.Comparison = &c
	}
	for _, child := range n.Children {
		res.Children = append(res.Children, MapTreeNodeDomainToApi(child))
	}
	return res
}

func MapTreeDomainToApi(forest []domain.TreeNode) []api.TreeNode {
	out := make([]api.TreeNode, 0, len(forest))
	for _, n := range forest {
		out = append(out, MapTreeNodeDomainToApi(n))
	}
	return out
}

func MapHierarchyDomainToApi(h domain.Hierarchy) api.Hierarchy {
	return api.Hierarchy{
		Data: MapTreeDomainToApi(h.Nodes),
		Meta: h.Meta,
	}
}

func mapVariantTotals(v domain.VariantTotals) *api.VariantTotals {
	return &api.VariantTotals{
		NEP:        MapMoneyDomainToApi(v.NEP),
		GAA:        MapMoneyDomainToApi(v.GAA),
		Comparison: MapComparisonDomainToApi(v.Change),
	}
}

func MapMemberDomainToApi(m domain.Member) api.Member {
	res := api.Member{
		Code:        m.Code,
		Description: m.Description,
		Attributes:  m.Attributes,
		Counts:      m.Counts,
	}
	if b, ok := m.Budget.Get(); ok {
		budget := &api.MemberBudget{
			TotalBudget:      b.Amount.Amount(),
			TotalBudgetPesos: b.Amount.BaseUnits(),
			RecordCount:      b.RecordCount,
			Top:              mapNamedAmounts(b.Top),
		}
		if gaa, ok := b.GAA.Get(); ok {
			share := domain.Round2(b.PercentOfTotal)
			amount := gaa.Amount()
			pesos := gaa.BaseUnits()
			diff := domain.Round2(b.ChangeToGAA.PercentChange)
			budget.PercentOfTotalBudget = &share
			budget.TotalBudgetGAA = &amount
			budget.TotalBudgetGAAPesos = &pesos
			budget.PercentDifferenceNEPGAA = &diff
		}
		res.MemberBudget = budget
	}
	if v, ok := m.Variants.Get(); ok {
		res.Budget = mapVariantTotals(v)
	}
	return res
}

func MapMembersDomainToApi(members []domain.Member) []api.Member {
	out := make([]api.Member, 0, len(members))
	for _, m := range members {
		out = append(out, MapMemberDomainToApi(m))
	}
	return out
}

func MapDepartmentDetailsDomainToApi(d domain.DepartmentDetails) api.DepartmentDetails {
	res := api.DepartmentDetails{
		Code:                 d.Department.Code,
		Description:          d.Department.Description,
		Abbreviation:         d.Department.Attributes["abbreviation"],
		Year:                 d.Year,
		Agencies:             MapMembersDomainToApi(d.Agencies),
		OperatingUnitClasses: MapMembersDomainToApi(d.OperatingUnitClasses),
		Statistics: api.DepartmentStatistics{
			TotalAgencies:               d.Statistics.TotalAgencies,
			TotalOperatingUnitClasses:   d.Statistics.TotalOperatingUnitClasses,
			TotalRegions:                d.Statistics.TotalRegions,
			TotalFundingSources:         d.Statistics.TotalFundingSources,
			TotalExpenseClassifications: d.Statistics.TotalExpenseClassifications,
			TotalProjects:               d.Statistics.TotalProjects,
		},
	}
	if v, ok := d.Comparison.Get(); ok {
		res.BudgetComparison = mapVariantTotals(v)
		res.Regions = MapMembersDomainToApi(d.Regions)
		res.FundingSources = MapMembersDomainToApi(d.FundingSources)
		res.ExpenseClassifications = MapTreeDomainToApi(d.Expense)
		res.Projects = MapMembersDomainToApi(d.Projects)
	}
	return res
}

func MapDatasourceHealthDomainToApi(h domain.DatasourceHealth) api.DatasourceHealth {
	return api.DatasourceHealth{
		Status:       string(h.Status),
		Driver:       string(h.Driver),
		ResponseTime: h.ResponseTime,
		Error:        h.Error,
	}
}
