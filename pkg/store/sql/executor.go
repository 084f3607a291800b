package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
)

type executor struct {
	db *sql.DB
}

// NewExecutor runs catalog queries over any database/sql connection
// (DuckDB mirror, Databricks SQL warehouse or Snowflake).
func NewExecutor(db *sql.DB) query.Executor {
	return &executor{db: db}
}

func (e *executor) Query(ctx context.Context, text string, params map[string]any) ([]store.Row, error) {
	logger := zerolog.Ctx(ctx)

	bound, args, err := Bind(text, params)
	if err != nil {
		return nil, err
	}

	rows, err := e.db.QueryContext(ctx, bound, args...)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close query rows")
		}
	}(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var result []store.Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(store.Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (e *executor) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

func (e *executor) Close(_ context.Context) error {
	return e.db.Close()
}
