package query

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// Executor runs backend-specific query text with named parameters.
type Executor interface {
	Query(ctx context.Context, text string, params map[string]any) ([]store.Row, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Catalog maps query names to backend-specific text.
type Catalog map[Name]string

func (c Catalog) Lookup(name Name) (string, error) {
	text, ok := c[name]
	if !ok {
		return "", fmt.Errorf("query %q is not defined for this backend", name)
	}
	return text, nil
}

// Runner executes named queries against one backend.
type Runner interface {
	Query(ctx context.Context, name Name, params map[string]any) ([]store.Row, error)
	QuerySingle(ctx context.Context, name Name, params map[string]any) (store.Row, bool, error)
	Ping(ctx context.Context) error
}

type runner struct {
	executor Executor
	catalog  Catalog
}

func NewRunner(executor Executor, catalog Catalog) Runner {
	return &runner{
		executor: executor,
		catalog:  catalog,
	}
}

func (r *runner) Query(ctx context.Context, name Name, params map[string]any) ([]store.Row, error) {
	logger := zerolog.Ctx(ctx)

	text, err := r.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]any{}
	}

	rows, err := r.executor.Query(ctx, text, params)
	if err != nil {
		return nil, fmt.Errorf("%s query failed: %w", name, err)
	}

	logger.Debug().
		Str("query", string(name)).
		Int("rows", len(rows)).
		Msg("query executed")

	return rows, nil
}

// QuerySingle returns the first row. The boolean is false when the query yielded no rows.
func (r *runner) QuerySingle(ctx context.Context, name Name, params map[string]any) (store.Row, bool, error) {
	rows, err := r.Query(ctx, name, params)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func (r *runner) Ping(ctx context.Context) error {
	return r.executor.Ping(ctx)
}
