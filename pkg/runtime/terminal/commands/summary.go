package commands

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(connect Connector, reporter ReportHandler) *cobra.Command {
	var year string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize a fiscal year against its neighbours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateYear(year); err != nil {
				return err
			}
			return run(cmd, connect, reporter, func(ctx context.Context, s budget.Services) (*domain.Report, error) {
				summary, err := s.Budget.Summary(ctx, year)
				if err != nil {
					return nil, err
				}
				return adapters.MapYearSummaryToReport(summary), nil
			})
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Fiscal year (e.g. 2025)")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func NewCompareCmd(connect Connector, reporter ReportHandler) *cobra.Command {
	var year, department string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the NEP and GAA of a fiscal year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateYear(year); err != nil {
				return err
			}
			return run(cmd, connect, reporter, func(ctx context.Context, s budget.Services) (*domain.Report, error) {
				comparison, err := s.Budget.CompareNEPvsGAA(ctx, year, department)
				if err != nil {
					return nil, err
				}
				return adapters.MapVariantComparisonToReport(year, comparison), nil
			})
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Fiscal year (e.g. 2025)")
	cmd.Flags().StringVar(&department, "department", "", "Department code")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
