package summary

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Assembler builds the year summary: selected, previous and next year totals with
// their comparisons, plus department and project counts.
type Assembler interface {
	Summarize(ctx context.Context, year string) (domain.YearSummary, error)
}

type assembler struct {
	runner query.Runner
}

func NewAssembler(runner query.Runner) Assembler {
	return &assembler{runner: runner}
}

func (a *assembler) Summarize(ctx context.Context, year string) (domain.YearSummary, error) {
	logger := zerolog.Ctx(ctx)

	prevYear, nextYear, err := domain.AdjacentYears(year)
	if err != nil {
		return domain.YearSummary{}, err
	}

	var (
		selected, previous, next domain.YearTotals
		selectedFound            bool
		stats                    domain.SummaryStatistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		selected, selectedFound, err = a.yearTotals(gctx, year)
		return err
	})
	g.Go(func() error {
		var err error
		previous, _, err = a.yearTotals(gctx, prevYear)
		return err
	})
	g.Go(func() error {
		var err error
		next, _, err = a.yearTotals(gctx, nextYear)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalDepartments, err = a.count(gctx, query.DepartmentCount, nil)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalProjects, err = a.count(gctx, query.ProjectCount, map[string]any{"year": year})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.YearSummary{}, fmt.Errorf("failed to summarize year %s: %w", year, err)
	}

	if !selectedFound || !selected.HasData() {
		return domain.YearSummary{}, &domain.NoDataError{Year: year}
	}

	logger.Debug().
		Str("year", year).
		Float64("nep", selected.NEP.Amount()).
		Float64("gaa", selected.GAA.Amount()).
		Msg("year summary assembled")

	return Assemble(selected, previous, next, stats), nil
}

// Assemble combines already fetched totals. Missing adjacent years are zero totals.
func Assemble(selected, previous, next domain.YearTotals, stats domain.SummaryStatistics) domain.YearSummary {
	return domain.YearSummary{
		Selected: domain.SelectedYear{
			YearTotals: selected,
			NEPvsGAA:   domain.Compare(selected.NEP, selected.GAA),
		},
		Previous: domain.AdjacentYear{
			YearTotals:    previous,
			NEPComparison: domain.Compare(previous.NEP, selected.NEP),
			GAAComparison: domain.Compare(previous.GAA, selected.GAA),
		},
		Next: domain.AdjacentYear{
			YearTotals:    next,
			NEPComparison: domain.Compare(selected.NEP, next.NEP),
			GAAComparison: domain.Compare(selected.GAA, next.GAA),
		},
		Statistics: stats,
	}
}

func (a *assembler) yearTotals(ctx context.Context, year string) (domain.YearTotals, bool, error) {
	row, ok, err := a.runner.QuerySingle(ctx, query.YearTotals, map[string]any{"year": year})
	if err != nil {
		return domain.YearTotals{}, false, err
	}
	if !ok {
		return domain.YearTotals{Year: year}, false, nil
	}
	return MapYearTotals(year, row), true, nil
}

func MapYearTotals(year string, row store.Row) domain.YearTotals {
	return domain.YearTotals{
		Year:       year,
		NEP:        domain.NewMoney(row.Float("nepTotal")),
		GAA:        domain.NewMoney(row.Float("gaaTotal")),
		NEPRecords: row.Int("nepRecords"),
		GAARecords: row.Int("gaaRecords"),
	}
}

func (a *assembler) count(ctx context.Context, name query.Name, params map[string]any) (int, error) {
	row, ok, err := a.runner.QuerySingle(ctx, name, params)
	if err != nil || !ok {
		return 0, err
	}
	return row.Int("total"), nil
}
