package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/spf13/cobra"
)

// Connector opens the services of a datasource profile. An empty profile selects the
// configured default. The returned func releases the datasource.
type Connector func(ctx context.Context, profile string) (budget.Services, func(context.Context) error, error)

type ReportHandler interface {
	Handle(report *domain.Report) error
}

// run connects, builds a report and hands it to the reporter.
func run(
	cmd *cobra.Command,
	connect Connector,
	reporter ReportHandler,
	build func(ctx context.Context, services budget.Services) (*domain.Report, error),
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	profile, _ := cmd.Flags().GetString("profile")

	services, closeFn, err := connect(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = closeFn(ctx) }()

	report, err := build(ctx, services)
	if err != nil {
		return err
	}
	return reporter.Handle(report)
}

func validateYear(year string) error {
	if _, _, err := domain.AdjacentYears(year); err != nil {
		return err
	}
	return nil
}
