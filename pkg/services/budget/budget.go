package budget

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/summary"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Service answers the cross-dimension budget questions: totals, department rankings,
// NEP vs GAA comparisons, the year summary and the mapped record listing.
type Service interface {
	Total(ctx context.Context, filter domain.BudgetFilter) (domain.BudgetTotal, error)
	ByDepartment(ctx context.Context, year string, budgetType domain.BudgetType, limit int) ([]domain.Allocation, error)
	ByDepartmentAll(ctx context.Context, year string, includeNEP bool) ([]domain.Variance, error)
	CompareNEPvsGAA(ctx context.Context, year, department string) (domain.VariantComparison, error)
	Summary(ctx context.Context, year string) (domain.YearSummary, error)
	RecordsMapped(ctx context.Context, year string, budgetType domain.BudgetType, page, limit int) (domain.RecordPage, error)
}

type service struct {
	runner    query.Runner
	assembler summary.Assembler
}

func NewService(runner query.Runner) Service {
	return &service{
		runner:    runner,
		assembler: summary.NewAssembler(runner),
	}
}

func (s *service) Total(ctx context.Context, filter domain.BudgetFilter) (domain.BudgetTotal, error) {
	row, _, err := s.runner.QuerySingle(ctx, query.BudgetTotal, map[string]any{
		"year":       filter.Year,
		"type":       string(filter.Type),
		"department": filter.Department,
		"region":     filter.Region,
	})
	if err != nil {
		return domain.BudgetTotal{}, err
	}
	return domain.BudgetTotal{
		Filter:      filter,
		Total:       money(row, "total"),
		RecordCount: row.Int("recordCount"),
	}, nil
}

// ByDepartment ranks departments by budget. Shares are relative to the returned set.
func (s *service) ByDepartment(
	ctx context.Context,
	year string,
	budgetType domain.BudgetType,
	limit int,
) ([]domain.Allocation, error) {
	if limit <= 0 {
		limit = defaultDepartmentLimit
	}
	rows, err := s.runner.Query(ctx, query.BudgetByDepartment, map[string]any{
		"year":  year,
		"type":  string(budgetType),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	shares := domain.AllocateShares(keyedAmounts(rows, "departmentCode", "departmentName", "totalBudget"))
	allocations := make([]domain.Allocation, 0, len(shares))
	for i, share := range shares {
		allocations = append(allocations, domain.Allocation{
			ShareItem:   share,
			RecordCount: rows[i].Int("recordCount"),
		})
	}
	return allocations, nil
}

// ByDepartmentAll lists departments with their GAA share of the year. With includeNEP
// every department with any budget is listed with its NEP to GAA change, otherwise the
// top GAA departments are returned.
func (s *service) ByDepartmentAll(ctx context.Context, year string, includeNEP bool) ([]domain.Variance, error) {
	if !includeNEP {
		allocations, err := s.ByDepartment(ctx, year, domain.BudgetTypeGAA, allDepartmentsLimit)
		if err != nil {
			return nil, err
		}
		variances := make([]domain.Variance, 0, len(allocations))
		for _, a := range allocations {
			variances = append(variances, domain.Variance{
				Code:           a.Key,
				Name:           a.Label,
				GAA:            domain.VariantCount{Amount: a.Amount, Records: a.RecordCount},
				PercentOfTotal: a.PercentageOfTotal,
			})
		}
		return variances, nil
	}

	rows, err := s.runner.Query(ctx, query.BudgetNepGaaByDept, map[string]any{"year": year})
	if err != nil {
		return nil, err
	}

	var gaaTotal domain.Money
	for _, row := range rows {
		gaaTotal = gaaTotal.Add(money(row, "gaaTotal"))
	}

	variances := make([]domain.Variance, 0, len(rows))
	for _, row := range rows {
		nep := domain.VariantCount{Amount: money(row, "nepTotal"), Records: row.Int("nepCount")}
		gaa := domain.VariantCount{Amount: money(row, "gaaTotal"), Records: row.Int("gaaCount")}
		if nep.Amount.IsZero() && gaa.Amount.IsZero() {
			continue
		}
		variances = append(variances, domain.Variance{
			Code:           row.String("departmentCode"),
			Name:           row.String("departmentName"),
			NEP:            domain.Some(nep),
			GAA:            gaa,
			PercentOfTotal: domain.ShareOf(gaa.Amount, gaaTotal),
			Change:         domain.Some(domain.Compare(nep.Amount, gaa.Amount)),
		})
	}
	return variances, nil
}

func (s *service) CompareNEPvsGAA(ctx context.Context, year, department string) (domain.VariantComparison, error) {
	var result domain.VariantComparison

	if department != "" {
		dept, ok, err := s.runner.QuerySingle(ctx, query.DepartmentByCode, map[string]any{"code": department})
		if err != nil {
			return result, err
		}
		if !ok {
			return result, &domain.NotFoundError{Entity: "department", Code: department}
		}
		result.Department = domain.Some(domain.Entity{Code: dept.String("code"), Description: dept.String("description")})
	}

	row, _, err := s.runner.QuerySingle(ctx, query.BudgetCompareNepGaa, map[string]any{
		"year":       year,
		"department": department,
	})
	if err != nil {
		return result, err
	}

	result.NEP = domain.VariantCount{Amount: money(row, "nepTotal"), Records: row.Int("nepCount")}
	result.GAA = domain.VariantCount{Amount: money(row, "gaaTotal"), Records: row.Int("gaaCount")}
	result.Comparison = domain.Compare(result.NEP.Amount, result.GAA.Amount)
	return result, nil
}

func (s *service) Summary(ctx context.Context, year string) (domain.YearSummary, error) {
	return s.assembler.Summarize(ctx, year)
}

// RecordsMapped returns one page of records with their joined dimensions. The page and
// the total count are fetched concurrently under the same filter.
func (s *service) RecordsMapped(
	ctx context.Context,
	year string,
	budgetType domain.BudgetType,
	page, limit int,
) (domain.RecordPage, error) {
	logger := zerolog.Ctx(ctx)
	pagination := domain.NewPagination(0, page, limit)

	var (
		records []domain.MappedRecord
		total   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.runner.Query(gctx, query.RecordsMapped, map[string]any{
			"year":   year,
			"type":   string(budgetType),
			"offset": pagination.Offset(),
			"limit":  limit,
		})
		if err != nil {
			return err
		}
		records = adapters.MapRecordRows(rows)
		return nil
	})
	g.Go(func() error {
		row, _, err := s.runner.QuerySingle(gctx, query.RecordsCount, map[string]any{
			"year": year,
			"type": string(budgetType),
		})
		if err != nil {
			return err
		}
		total = row.Int("total")
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.RecordPage{}, fmt.Errorf("failed to fetch records page: %w", err)
	}

	logger.Debug().
		Str("year", year).
		Str("type", string(budgetType)).
		Int("page", page).
		Int("records", len(records)).
		Int("total", total).
		Msg("mapped records fetched")

	return domain.RecordPage{
		Records:    records,
		Pagination: domain.NewPagination(total, page, limit),
	}, nil
}
