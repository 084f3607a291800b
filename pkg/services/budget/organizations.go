package budget

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/services/grouping"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"golang.org/x/sync/errgroup"
)

// OrganizationSearch filters the organization list. Empty fields do not filter.
type OrganizationSearch struct {
	Search     string
	Department string
	Limit      int
	Budget     BudgetQuery
}

type OrganizationService interface {
	Search(ctx context.Context, q OrganizationSearch) ([]domain.Member, error)
	Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error)
	Hierarchy(ctx context.Context) (domain.Hierarchy, error)
	BudgetHierarchy(ctx context.Context, year string) (domain.Hierarchy, error)
}

type organizationService struct {
	runner query.Runner
}

func NewOrganizationService(runner query.Runner) OrganizationService {
	return &organizationService{runner: runner}
}

var organizationAttributes = map[string]string{
	"departmentCode":        "departmentCode",
	"departmentDescription": "departmentDescription",
	"agencyCode":            "agencyCode",
	"agencyDescription":     "agencyDescription",
}

func organizationMember(row store.Row, q BudgetQuery) domain.Member {
	m := domain.Member{
		Code:        row.String("uacsCode"),
		Description: row.String("description"),
		Attributes:  attributes(row, organizationAttributes),
	}
	if q.Enabled() {
		m.Budget = domain.Some(domain.MemberBudget{Amount: money(row, "totalBudget")})
	}
	return m
}

func (s *organizationService) Search(ctx context.Context, q OrganizationSearch) ([]domain.Member, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	params := q.Budget.params()
	params["search"] = q.Search
	params["department"] = q.Department
	params["limit"] = limit

	rows, err := s.runner.Query(ctx, query.Organizations, params)
	if err != nil {
		return nil, err
	}
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, organizationMember(row, q.Budget))
	}
	return members, nil
}

func (s *organizationService) Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error) {
	params := q.params()
	params["code"] = code

	row, ok, err := s.runner.QuerySingle(ctx, query.OrganizationByCode, params)
	if err != nil {
		return domain.Member{}, err
	}
	if !ok {
		return domain.Member{}, &domain.NotFoundError{Entity: "organization", Code: code}
	}
	return organizationMember(row, q), nil
}

func (s *organizationService) Hierarchy(ctx context.Context) (domain.Hierarchy, error) {
	var departments, agencies, operatingUnits []store.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		departments, err = s.runner.Query(gctx, query.Departments, BudgetQuery{}.params())
		return err
	})
	g.Go(func() error {
		var err error
		agencies, err = s.runner.Query(gctx, query.Agencies, nil)
		return err
	})
	g.Go(func() error {
		var err error
		operatingUnits, err = s.runner.Query(gctx, query.OperatingUnits, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Hierarchy{}, err
	}

	forest := grouping.AssembleLinked(grouping.OrganizationSpec(departments, agencies, operatingUnits))
	return organizationHierarchy(forest), nil
}

// BudgetHierarchy rolls a year's NEP and GAA budget up Department > Agency > OperatingUnit.
func (s *organizationService) BudgetHierarchy(ctx context.Context, year string) (domain.Hierarchy, error) {
	rows, err := s.runner.Query(ctx, query.OrganizationBudget, map[string]any{"year": year})
	if err != nil {
		return domain.Hierarchy{}, err
	}
	return organizationHierarchy(grouping.Group(rows, grouping.OrganizationBudgetSpec())), nil
}

func organizationHierarchy(forest []domain.TreeNode) domain.Hierarchy {
	counts := domain.CountLevels(forest)
	return domain.Hierarchy{
		Nodes: forest,
		Meta: map[string]int{
			"totalDepartments":    counts[grouping.LevelDepartment],
			"totalAgencies":       counts[grouping.LevelAgency],
			"totalOperatingUnits": counts[grouping.LevelOperatingUnit],
		},
	}
}
