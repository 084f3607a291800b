package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/spf13/cobra"
)

const (
	hierarchyExpense       = "expense"
	hierarchyLocations     = "locations"
	hierarchyOrganizations = "organizations"
	hierarchyFunding       = "funding"
)

func NewHierarchyCmd(connect Connector, reporter ReportHandler) *cobra.Command {
	var year, department string

	cmd := &cobra.Command{
		Use:       "hierarchy {expense|locations|organizations|funding}",
		Short:     "Print a dimension hierarchy",
		Long:      "Print a dimension hierarchy. Expense requires --year; organizations with --year shows the NEP/GAA rollup.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{hierarchyExpense, hierarchyLocations, hierarchyOrganizations, hierarchyFunding},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if year != "" || kind == hierarchyExpense {
				if err := validateYear(year); err != nil {
					return err
				}
			}
			return run(cmd, connect, reporter, func(ctx context.Context, s budget.Services) (*domain.Report, error) {
				h, title, err := fetchHierarchy(ctx, s, kind, year, department)
				if err != nil {
					return nil, err
				}
				return adapters.MapHierarchyToReport(title, year, h), nil
			})
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Fiscal year (e.g. 2025)")
	cmd.Flags().StringVar(&department, "department", "", "Department code (expense only)")

	return cmd
}

func fetchHierarchy(ctx context.Context, s budget.Services, kind, year, department string) (domain.Hierarchy, string, error) {
	switch kind {
	case hierarchyExpense:
		h, err := s.Expense.Hierarchy(ctx, year, department)
		return h, "Expense classifications", err
	case hierarchyLocations:
		h, err := s.Regions.LocationHierarchy(ctx)
		return h, "Locations", err
	case hierarchyOrganizations:
		if year != "" {
			h, err := s.Organizations.BudgetHierarchy(ctx, year)
			return h, "Organization budgets", err
		}
		h, err := s.Organizations.Hierarchy(ctx)
		return h, "Organizations", err
	case hierarchyFunding:
		h, err := s.Funding.Hierarchy(ctx)
		return h, "Funding sources", err
	default:
		return domain.Hierarchy{}, "", fmt.Errorf("%w: unknown hierarchy %q", domain.ErrInvalidInput, kind)
	}
}
