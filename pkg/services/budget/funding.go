package budget

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/services/grouping"
	"github.com/de-tools/budget-atlas/pkg/store/query"
)

type FundingService interface {
	List(ctx context.Context, q BudgetQuery) ([]domain.Member, error)
	Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error)
	// Hierarchy groups funding sources under their fund cluster. Clusters without
	// funding sources are kept.
	Hierarchy(ctx context.Context) (domain.Hierarchy, error)
}

type fundingService struct {
	runner query.Runner
}

func NewFundingService(runner query.Runner) FundingService {
	return &fundingService{runner: runner}
}

var fundingAttributes = map[string]string{
	"clusterCode":        "clusterCode",
	"clusterDescription": "clusterDescription",
}

func fundingMember(row store.Row, q BudgetQuery) domain.Member {
	m := domain.Member{
		Code:        row.String("uacsCode"),
		Description: row.String("description"),
		Attributes:  attributes(row, fundingAttributes),
	}
	if q.Enabled() {
		m.Budget = domain.Some(domain.MemberBudget{Amount: money(row, "totalBudget")})
	}
	return m
}

func (s *fundingService) List(ctx context.Context, q BudgetQuery) ([]domain.Member, error) {
	rows, err := s.runner.Query(ctx, query.FundingSources, q.params())
	if err != nil {
		return nil, err
	}
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, fundingMember(row, q))
	}
	return members, nil
}

func (s *fundingService) Get(ctx context.Context, code string, q BudgetQuery) (domain.Member, error) {
	params := q.params()
	params["code"] = code

	row, ok, err := s.runner.QuerySingle(ctx, query.FundingSourceByCode, params)
	if err != nil {
		return domain.Member{}, err
	}
	if !ok {
		return domain.Member{}, &domain.NotFoundError{Entity: "funding source", Code: code}
	}
	return fundingMember(row, q), nil
}

func (s *fundingService) Hierarchy(ctx context.Context) (domain.Hierarchy, error) {
	rows, err := s.runner.Query(ctx, query.FundingHierarchy, nil)
	if err != nil {
		return domain.Hierarchy{}, err
	}

	forest := grouping.Group(rows, grouping.FundingSpec())
	counts := domain.CountLevels(forest)
	return domain.Hierarchy{
		Nodes: forest,
		Meta: map[string]int{
			"totalFundClusters":     counts[grouping.LevelFundCluster],
			"totalFundingSources":   counts[grouping.LevelFundingSource],
			"totalFinancingSources": grouping.DistinctReferences(forest, grouping.LevelFundingSource, grouping.RefFinancingSource),
			"totalAuthorizations":   grouping.DistinctReferences(forest, grouping.LevelFundingSource, grouping.RefAuthorization),
		},
	}, nil
}
