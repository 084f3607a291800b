package budget

import (
	"context"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/de-tools/budget-atlas/pkg/services/grouping"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var resolvers = map[string]fanout.Resolver{
	"sequential": {Mode: fanout.Sequential},
	"concurrent": {Mode: fanout.Concurrent, Limit: 2},
}

func TestExpenseService_CategoryBudgets(t *testing.T) {
	for name, resolver := range resolvers {
		t.Run(name, func(t *testing.T) {
			params := map[string]any{"year": "2025", "type": "NEP"}
			runner := new(mockRunner)
			runner.On("QuerySingle", mock.Anything, query.ClassifiedTotal, params).
				Return(store.Row{"total": 1000.0}, true, nil)
			runner.On("Query", mock.Anything, query.ExpenseCategories, params).Return([]store.Row{
				{"categoryCode": "PS", "categoryName": "Personnel Services", "totalBudgetNep": 600.0, "totalBudgetGaa": 660.0, "recordCount": int64(12)},
				{"categoryCode": "MOOE", "categoryName": "Maintenance", "totalBudgetNep": 400.0, "totalBudgetGaa": 400.0, "recordCount": int64(8)},
			}, nil)
			for _, code := range []string{"PS", "MOOE"} {
				runner.On("Query", mock.Anything, query.TopSubObjects, map[string]any{
					"year":         "2025",
					"type":         "NEP",
					"categoryCode": code,
					"limit":        topItemsLimit,
				}).Return([]store.Row{
					{"uacsCode": code + "-1", "description": "first", "amount": 5.0},
				}, nil)
			}

			categories, err := NewExpenseService(runner, resolver).
				CategoryBudgets(context.Background(), "2025", domain.BudgetTypeNEP, true)
			require.NoError(t, err)
			require.Len(t, categories, 2)

			ps, ok := categories[0].Budget.Get()
			require.True(t, ok)
			assert.Equal(t, "PS", categories[0].Code)
			assert.InDelta(t, 60.0, ps.PercentOfTotal, 1e-9)
			assert.InDelta(t, 10.0, ps.ChangeToGAA.PercentChange, 1e-9)
			assert.Equal(t, 12, ps.RecordCount)
			require.Len(t, ps.Top, 1)
			assert.Equal(t, "PS-1", ps.Top[0].Key)

			mooe, _ := categories[1].Budget.Get()
			assert.Equal(t, "MOOE-1", mooe.Top[0].Key)
			runner.AssertExpectations(t)
		})
	}
}

func TestExpenseService_CategoryBudgets_WithoutSubObjects(t *testing.T) {
	runner := new(mockRunner)
	runner.On("QuerySingle", mock.Anything, query.ClassifiedTotal, mock.Anything).Return(nil, false, nil)
	runner.On("Query", mock.Anything, query.ExpenseCategories, mock.Anything).Return([]store.Row{
		{"categoryCode": "CO", "categoryName": "Capital Outlay", "totalBudgetNep": 10.0, "totalBudgetGaa": 0.0},
	}, nil)

	categories, err := NewExpenseService(runner, fanout.Resolver{}).
		CategoryBudgets(context.Background(), "2025", domain.BudgetTypeNEP, false)
	require.NoError(t, err)

	budget, _ := categories[0].Budget.Get()
	// a missing total yields a zero share instead of an error
	assert.Equal(t, 0.0, budget.PercentOfTotal)
	assert.Nil(t, budget.Top)
	runner.AssertNotCalled(t, "Query", mock.Anything, query.TopSubObjects, mock.Anything)
}

func TestExpenseService_Hierarchy(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Query", mock.Anything, query.ExpenseHierarchy, map[string]any{"year": "2025", "department": ""}).
		Return([]store.Row{
			{
				"classificationCode": "5", "classificationDescription": "Expenses",
				"subClassCode": "01", "subClassDescription": "PS",
				"groupCode": "01", "groupDescription": "Salaries",
				"objectCode": "001", "objectDescription": "Basic Salary",
				"nepBudget": 500.0, "gaaBudget": 550.0,
			},
			{
				"classificationCode": "5", "classificationDescription": "Expenses",
				"subClassCode": "02", "subClassDescription": "MOOE",
				"groupCode": "01", "groupDescription": "Travel",
				"objectCode": "001", "objectDescription": "Local Travel",
				"nepBudget": 300.0, "gaaBudget": 300.0,
			},
		}, nil)

	h, err := NewExpenseService(runner, fanout.Resolver{}).Hierarchy(context.Background(), "2025", "")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"totalClassifications": 1,
		"totalSubClasses":      2,
		"totalGroups":          2,
		"totalObjects":         2,
	}, h.Meta)
	require.Len(t, h.Nodes, 1)
	assert.Equal(t, 800.0, h.Nodes[0].Total(domain.MeasureNEP).Amount())
	assert.Equal(t, 850.0, h.Nodes[0].Total(domain.MeasureGAA).Amount())
}

func TestRegionService_Allocation(t *testing.T) {
	for name, resolver := range resolvers {
		t.Run(name, func(t *testing.T) {
			runner := new(mockRunner)
			runner.On("Query", mock.Anything, query.RegionalAllocation, map[string]any{"year": "2025", "type": "GAA"}).
				Return([]store.Row{
					{"regionCode": "13", "regionName": "NCR", "totalBudget": 60.0, "recordCount": int64(6)},
					{"regionCode": "01", "regionName": "Ilocos", "totalBudget": 40.0, "recordCount": int64(4)},
				}, nil)
			for _, code := range []string{"13", "01"} {
				runner.On("Query", mock.Anything, query.RegionTopDepartments, map[string]any{
					"year":       "2025",
					"type":       "GAA",
					"regionCode": code,
					"limit":      topItemsLimit,
				}).Return([]store.Row{
					{"departmentCode": "07", "departmentName": "DepEd", "amount": 1.0},
				}, nil)
			}

			allocations, err := NewRegionService(runner, resolver).
				Allocation(context.Background(), "2025", domain.BudgetTypeGAA, true)
			require.NoError(t, err)
			require.Len(t, allocations, 2)

			assert.Equal(t, "13", allocations[0].Key)
			assert.InDelta(t, 60.0, allocations[0].PercentageOfTotal, 1e-9)
			assert.Equal(t, 6, allocations[0].RecordCount)
			require.Len(t, allocations[1].Breakdown, 1)
			assert.Equal(t, "07", allocations[1].Breakdown[0].Key)
			runner.AssertExpectations(t)
		})
	}
}

func TestRegionService_List(t *testing.T) {
	q := BudgetQuery{WithBudget: true, Year: "2025", Type: domain.BudgetTypeNEP}
	runner := new(mockRunner)
	runner.On("QuerySingle", mock.Anything, query.RegionTotal, q.params()).
		Return(store.Row{"total": 200.0}, true, nil)
	runner.On("Query", mock.Anything, query.Regions, q.params()).Return([]store.Row{
		{"code": "13", "description": "NCR", "totalBudgetNep": 50.0, "totalBudgetGaa": 40.0},
	}, nil)

	regions, err := NewRegionService(runner, fanout.Resolver{}).List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	budget, ok := regions[0].Budget.Get()
	require.True(t, ok)
	assert.InDelta(t, 25.0, budget.PercentOfTotal, 1e-9)
	assert.Equal(t, domain.StatusDecreased, budget.ChangeToGAA.Status)
}

func TestRegionService_LocationHierarchy(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Query", mock.Anything, query.Regions, map[string]any{"year": "", "type": ""}).Return([]store.Row{
		{"code": "01", "description": "Ilocos Region"},
	}, nil)
	runner.On("Query", mock.Anything, query.Provinces, map[string]any(nil)).Return([]store.Row{
		{"regionCode": "01", "psgcCode": "0128", "description": "Ilocos Norte"},
	}, nil)
	runner.On("Query", mock.Anything, query.Cities, map[string]any(nil)).Return([]store.Row{
		{"regionCode": "01", "psgcCode": "012801", "description": "Adams", "provinceCode": "28"},
	}, nil)
	runner.On("Query", mock.Anything, query.Barangays, map[string]any(nil)).Return([]store.Row{
		{"regionCode": "01", "psgcCode": "012801001", "description": "Adams Pob."},
		{"regionCode": "01", "psgcCode": "012801002", "description": "Adams East"},
	}, nil)

	h, err := NewRegionService(runner, fanout.Resolver{}).LocationHierarchy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"totalRegions":   1,
		"totalProvinces": 1,
		"totalCities":    1,
		"totalBarangays": 2,
	}, h.Meta)
	assert.Equal(t, grouping.LevelBarangay, h.Nodes[0].Children[0].Children[0].Children[1].Level)
	runner.AssertExpectations(t)
}

func TestOrganizationService_Hierarchy(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Query", mock.Anything, query.Departments, map[string]any{"year": "", "type": ""}).Return([]store.Row{
		{"code": "07", "description": "DepEd"},
	}, nil)
	runner.On("Query", mock.Anything, query.Agencies, map[string]any(nil)).Return([]store.Row{
		{"departmentCode": "07", "code": "001", "uacsCode": "07001", "description": "OSEC"},
	}, nil)
	runner.On("Query", mock.Anything, query.OperatingUnits, map[string]any(nil)).Return([]store.Row{
		{"departmentCode": "07", "code": "0700101", "uacsCode": "070010100001", "description": "Central Office"},
		{"departmentCode": "07", "code": "0700102", "uacsCode": "070020100001", "description": "orphan"},
	}, nil)

	h, err := NewOrganizationService(runner).Hierarchy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"totalDepartments":    1,
		"totalAgencies":       1,
		"totalOperatingUnits": 1,
	}, h.Meta)
}

func TestOrganizationService_Search(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Query", mock.Anything, query.Organizations, map[string]any{
		"year":       "",
		"type":       "",
		"search":     "health",
		"department": "",
		"limit":      defaultSearchLimit,
	}).Return([]store.Row{
		{"uacsCode": "080010000000", "description": "DOH OSEC", "departmentCode": "08", "departmentDescription": "DOH"},
	}, nil)

	members, err := NewOrganizationService(runner).Search(context.Background(), OrganizationSearch{Search: "health"})
	require.NoError(t, err)
	require.Len(t, members, 1)

	assert.Equal(t, "080010000000", members[0].Code)
	assert.Equal(t, map[string]string{"departmentCode": "08", "departmentDescription": "DOH"}, members[0].Attributes)
	assert.False(t, members[0].Budget.IsPresent())
}

func TestFundingService_Hierarchy(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Query", mock.Anything, query.FundingHierarchy, map[string]any(nil)).Return([]store.Row{
		{"clusterCode": "01", "clusterDescription": "Regular", "fundingSourceCode": "01101101", "fundingSourceDescription": "GAA",
			"financingSourceCode": "1", "authorizationCode": "01"},
		{"clusterCode": "01", "clusterDescription": "Regular", "fundingSourceCode": "01101102", "fundingSourceDescription": "Unprogrammed",
			"financingSourceCode": "1", "authorizationCode": "02"},
		{"clusterCode": "07", "clusterDescription": "Trust", "fundingSourceCode": nil},
	}, nil)

	h, err := NewFundingService(runner).Hierarchy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"totalFundClusters":     2,
		"totalFundingSources":   2,
		"totalFinancingSources": 1,
		"totalAuthorizations":   2,
	}, h.Meta)
	assert.Empty(t, h.Nodes[1].Children)
}
