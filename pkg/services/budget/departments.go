package budget

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type DepartmentService interface {
	List(ctx context.Context, q BudgetQuery) ([]domain.Member, error)
	Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error)
	// Details returns a department's agencies and operating unit classes, and with a
	// year also its budget breakdowns by region, funding source, expense class and project.
	Details(ctx context.Context, code, year string) (domain.DepartmentDetails, error)
}

type departmentService struct {
	runner  query.Runner
	expense ExpenseService
}

func NewDepartmentService(runner query.Runner, expense ExpenseService) DepartmentService {
	return &departmentService{runner: runner, expense: expense}
}

var departmentAttributes = map[string]string{"abbreviation": "abbreviation"}

func (s *departmentService) List(ctx context.Context, q BudgetQuery) ([]domain.Member, error) {
	rows, err := s.runner.Query(ctx, query.Departments, q.params())
	if err != nil {
		return nil, err
	}
	if !q.Enabled() {
		return plainMembers(rows, "code", departmentAttributes), nil
	}

	totalRow, _, err := s.runner.QuerySingle(ctx, query.BudgetTotal, map[string]any{
		"year":       q.Year,
		"type":       string(q.Type),
		"department": "",
		"region":     "",
	})
	if err != nil {
		return nil, err
	}

	members := rankedMembers(rows, money(totalRow, "total"), departmentAttributes)
	for i, row := range rows {
		members[i].Counts = map[string]int{"agencies": row.Int("agencyCount")}
	}
	return members, nil
}

func (s *departmentService) Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error) {
	dept, err := s.department(ctx, code)
	if err != nil {
		return domain.Member{}, err
	}
	if !q.Enabled() {
		return dept, nil
	}

	params := q.params()
	params["code"] = code
	row, _, err := s.runner.QuerySingle(ctx, query.DepartmentBudget, params)
	if err != nil {
		return domain.Member{}, err
	}
	dept.Budget = domain.Some(domain.MemberBudget{Amount: money(row, "totalBudget")})
	return dept, nil
}

func (s *departmentService) department(ctx context.Context, code string) (domain.Member, error) {
	row, ok, err := s.runner.QuerySingle(ctx, query.DepartmentByCode, map[string]any{"code": code})
	if err != nil {
		return domain.Member{}, err
	}
	if !ok {
		return domain.Member{}, &domain.NotFoundError{Entity: "department", Code: code}
	}
	return domain.Member{
		Code:        row.String("code"),
		Description: row.String("description"),
		Attributes:  attributes(row, departmentAttributes),
	}, nil
}

func (s *departmentService) Details(ctx context.Context, code, year string) (domain.DepartmentDetails, error) {
	logger := zerolog.Ctx(ctx)

	dept, err := s.department(ctx, code)
	if err != nil {
		return domain.DepartmentDetails{}, err
	}

	details := domain.DepartmentDetails{Department: dept, Year: year}
	params := map[string]any{"code": code, "year": year}
	budgeted := year != ""

	var (
		agencies, classes, regions, funding, projects []store.Row
		totals                                        store.Row
		expense                                       domain.Hierarchy
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(name query.Name, dst *[]store.Row) {
		g.Go(func() error {
			rows, err := s.runner.Query(gctx, name, params)
			*dst = rows
			return err
		})
	}
	fetch(query.DepartmentAgencies, &agencies)
	fetch(query.DepartmentOUClasses, &classes)
	if budgeted {
		fetch(query.DepartmentRegions, &regions)
		fetch(query.DepartmentFunding, &funding)
		fetch(query.DepartmentProjects, &projects)
		g.Go(func() error {
			var err error
			totals, _, err = s.runner.QuerySingle(gctx, query.BudgetCompareNepGaa, map[string]any{
				"year":       year,
				"department": code,
			})
			return err
		})
		g.Go(func() error {
			var err error
			expense, err = s.expense.Hierarchy(gctx, year, code)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.DepartmentDetails{}, fmt.Errorf("failed to fetch details of department %s: %w", code, err)
	}

	if budgeted {
		details.Agencies = variantMembers(agencies, "code", map[string]string{"uacsCode": "uacsCode"})
		details.OperatingUnitClasses = variantMembers(classes, "code", map[string]string{"status": "status"})
		details.Comparison = domain.Some(domain.NewVariantTotals(money(totals, "nepTotal"), money(totals, "gaaTotal")))
		details.Regions = variantMembers(regions, "code", nil)
		details.FundingSources = variantMembers(funding, "uacsCode", map[string]string{"fundClusterCode": "fundClusterCode"})
		details.Expense = expense.Nodes
		details.Projects = variantMembers(projects, "prexcFpapId", nil)
	} else {
		details.Agencies = plainMembers(agencies, "code", map[string]string{"uacsCode": "uacsCode"})
		details.OperatingUnitClasses = plainMembers(classes, "code", map[string]string{"status": "status"})
	}
	for i, row := range classes {
		details.OperatingUnitClasses[i].Counts = map[string]int{"operatingUnits": row.Int("operatingUnitCount")}
	}

	details.Statistics = domain.DepartmentStatistics{
		TotalAgencies:               len(details.Agencies),
		TotalOperatingUnitClasses:   len(details.OperatingUnitClasses),
		TotalRegions:                len(details.Regions),
		TotalFundingSources:         len(details.FundingSources),
		TotalExpenseClassifications: len(details.Expense),
		TotalProjects:               len(details.Projects),
	}

	logger.Debug().
		Str("department", code).
		Str("year", year).
		Int("agencies", details.Statistics.TotalAgencies).
		Msg("department details assembled")

	return details, nil
}
