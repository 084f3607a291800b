package budget

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/de-tools/budget-atlas/pkg/services/grouping"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"golang.org/x/sync/errgroup"
)

type RegionService interface {
	List(ctx context.Context, q BudgetQuery) ([]domain.Member, error)
	Allocation(ctx context.Context, year string, budgetType domain.BudgetType, byDepartment bool) ([]domain.Allocation, error)
	// LocationHierarchy links Region > Province > City/Municipality > Barangay.
	LocationHierarchy(ctx context.Context) (domain.Hierarchy, error)
}

type regionService struct {
	runner   query.Runner
	resolver fanout.Resolver
}

func NewRegionService(runner query.Runner, resolver fanout.Resolver) RegionService {
	return &regionService{runner: runner, resolver: resolver}
}

func (s *regionService) List(ctx context.Context, q BudgetQuery) ([]domain.Member, error) {
	if !q.Enabled() {
		rows, err := s.runner.Query(ctx, query.Regions, q.params())
		if err != nil {
			return nil, err
		}
		return plainMembers(rows, "code", nil), nil
	}

	totalRow, _, err := s.runner.QuerySingle(ctx, query.RegionTotal, q.params())
	if err != nil {
		return nil, err
	}
	rows, err := s.runner.Query(ctx, query.Regions, q.params())
	if err != nil {
		return nil, err
	}
	return rankedMembers(rows, money(totalRow, "total"), nil), nil
}

// Allocation splits a year's located budget across regions, optionally with the top
// departments of every region.
func (s *regionService) Allocation(
	ctx context.Context,
	year string,
	budgetType domain.BudgetType,
	byDepartment bool,
) ([]domain.Allocation, error) {
	params := map[string]any{"year": year, "type": string(budgetType)}
	rows, err := s.runner.Query(ctx, query.RegionalAllocation, params)
	if err != nil {
		return nil, err
	}

	shares := domain.AllocateShares(keyedAmounts(rows, "regionCode", "regionName", "totalBudget"))
	allocations := make([]domain.Allocation, 0, len(shares))
	for i, share := range shares {
		allocations = append(allocations, domain.Allocation{
			ShareItem:   share,
			RecordCount: rows[i].Int("recordCount"),
		})
	}
	if !byDepartment {
		return allocations, nil
	}

	codes := make([]string, 0, len(allocations))
	for _, a := range allocations {
		codes = append(codes, a.Key)
	}
	breakdowns, err := fanout.Resolve(ctx, s.resolver, codes, func(ctx context.Context, code string) ([]domain.KeyedAmount, error) {
		rows, err := s.runner.Query(ctx, query.RegionTopDepartments, map[string]any{
			"year":       year,
			"type":       string(budgetType),
			"regionCode": code,
			"limit":      topItemsLimit,
		})
		if err != nil {
			return nil, err
		}
		return keyedAmounts(rows, "departmentCode", "departmentName", "amount"), nil
	})
	if err != nil {
		return nil, err
	}
	for i := range allocations {
		allocations[i].Breakdown = breakdowns[i]
	}
	return allocations, nil
}

func (s *regionService) LocationHierarchy(ctx context.Context) (domain.Hierarchy, error) {
	results := make([][]store.Row, 4)
	names := []query.Name{query.Regions, query.Provinces, query.Cities, query.Barangays}

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			params := map[string]any(nil)
			if name == query.Regions {
				params = BudgetQuery{}.params()
			}
			rows, err := s.runner.Query(gctx, name, params)
			results[i] = rows
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Hierarchy{}, err
	}

	forest := grouping.AssembleLinked(grouping.LocationSpec(results[0], results[1], results[2], results[3]))
	counts := domain.CountLevels(forest)
	return domain.Hierarchy{
		Nodes: forest,
		Meta: map[string]int{
			"totalRegions":   counts[grouping.LevelRegion],
			"totalProvinces": counts[grouping.LevelProvince],
			"totalCities":    counts[grouping.LevelCity],
			"totalBarangays": counts[grouping.LevelBarangay],
		},
	}, nil
}
