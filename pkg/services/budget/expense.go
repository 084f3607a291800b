package budget

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/de-tools/budget-atlas/pkg/services/grouping"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
)

type ExpenseService interface {
	Classifications(ctx context.Context) ([]domain.Member, error)
	// Hierarchy groups a year's classified budget Classification > SubClass > Group > Object.
	// An empty department covers every department.
	Hierarchy(ctx context.Context, year, department string) (domain.Hierarchy, error)
	CategoryBudgets(ctx context.Context, year string, budgetType domain.BudgetType, includeSubObjects bool) ([]domain.Member, error)
}

type expenseService struct {
	runner   query.Runner
	resolver fanout.Resolver
}

func NewExpenseService(runner query.Runner, resolver fanout.Resolver) ExpenseService {
	return &expenseService{runner: runner, resolver: resolver}
}

func (s *expenseService) Classifications(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.runner.Query(ctx, query.Classifications, nil)
	if err != nil {
		return nil, err
	}
	return plainMembers(rows, "code", nil), nil
}

func (s *expenseService) Hierarchy(ctx context.Context, year, department string) (domain.Hierarchy, error) {
	rows, err := s.runner.Query(ctx, query.ExpenseHierarchy, map[string]any{
		"year":       year,
		"department": department,
	})
	if err != nil {
		return domain.Hierarchy{}, err
	}

	forest := grouping.Group(rows, grouping.ExpenseSpec())
	counts := domain.CountLevels(forest)
	return domain.Hierarchy{
		Nodes: forest,
		Meta: map[string]int{
			"totalClassifications": counts[grouping.LevelClassification],
			"totalSubClasses":      counts[grouping.LevelSubClass],
			"totalGroups":          counts[grouping.LevelGroup],
			"totalObjects":         counts[grouping.LevelObject],
		},
	}, nil
}

// CategoryBudgets lists expense categories with their share of the classified budget of
// the requested type and the change to GAA. Top sub-objects are resolved per category.
func (s *expenseService) CategoryBudgets(
	ctx context.Context,
	year string,
	budgetType domain.BudgetType,
	includeSubObjects bool,
) ([]domain.Member, error) {
	logger := zerolog.Ctx(ctx)
	params := map[string]any{"year": year, "type": string(budgetType)}

	totalRow, _, err := s.runner.QuerySingle(ctx, query.ClassifiedTotal, params)
	if err != nil {
		return nil, err
	}
	total := money(totalRow, "total")

	rows, err := s.runner.Query(ctx, query.ExpenseCategories, params)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		budget := domain.NewRankedBudget(money(row, "totalBudgetNep"), money(row, "totalBudgetGaa"), total)
		budget.RecordCount = row.Int("recordCount")
		categories = append(categories, domain.Member{
			Code:        row.String("categoryCode"),
			Description: row.String("categoryName"),
			Budget:      domain.Some(budget),
		})
	}

	logger.Debug().
		Str("year", year).
		Int("categories", len(categories)).
		Bool("includeSubObjects", includeSubObjects).
		Msg("expense category budgets fetched")

	if !includeSubObjects {
		return categories, nil
	}

	codes := make([]string, 0, len(categories))
	for _, c := range categories {
		codes = append(codes, c.Code)
	}
	tops, err := fanout.Resolve(ctx, s.resolver, codes, func(ctx context.Context, code string) ([]domain.KeyedAmount, error) {
		rows, err := s.runner.Query(ctx, query.TopSubObjects, map[string]any{
			"year":         year,
			"type":         string(budgetType),
			"categoryCode": code,
			"limit":        topItemsLimit,
		})
		if err != nil {
			return nil, err
		}
		return keyedAmounts(rows, "uacsCode", "description", "amount"), nil
	})
	if err != nil {
		return nil, err
	}

	for i := range categories {
		budget, _ := categories[i].Budget.Get()
		budget.Top = tops[i]
		categories[i].Budget = domain.Some(budget)
	}
	return categories, nil
}
