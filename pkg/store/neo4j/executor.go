package neo4j

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
)

type Settings struct {
	URI      string
	User     string
	Password string
	Database string
}

type executor struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewExecutor connects to the graph database and verifies connectivity.
func NewExecutor(ctx context.Context, settings Settings) (query.Executor, error) {
	driver, err := neo4j.NewDriverWithContext(
		settings.URI,
		neo4j.BasicAuth(settings.User, settings.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", settings.URI, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("uri", settings.URI).
		Str("database", settings.Database).
		Msg("connected to neo4j")

	return &executor{driver: driver, database: settings.Database}, nil
}

func (e *executor) Query(ctx context.Context, text string, params map[string]any) ([]store.Row, error) {
	opts := []neo4j.ExecuteQueryConfigurationOption{neo4j.ExecuteQueryWithReadersRouting()}
	if e.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(e.database))
	}

	result, err := neo4j.ExecuteQuery(ctx, e.driver, text, params, neo4j.EagerResultTransformer, opts...)
	if err != nil {
		return nil, err
	}

	rows := make([]store.Row, 0, len(result.Records))
	for _, record := range result.Records {
		rows = append(rows, toRow(record.Keys, record.Values))
	}
	return rows, nil
}

func (e *executor) Ping(ctx context.Context) error {
	return e.driver.VerifyConnectivity(ctx)
}

func (e *executor) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

func toRow(keys []string, values []any) store.Row {
	row := make(store.Row, len(keys))
	for i, key := range keys {
		row[key] = toValue(values[i])
	}
	return row
}

// toValue turns graph entities into property bags so callers see plain rows.
func toValue(v any) any {
	switch val := v.(type) {
	case neo4j.Node:
		return toBag(val.Props)
	case *neo4j.Node:
		if val == nil {
			return nil
		}
		return toBag(val.Props)
	case neo4j.Relationship:
		return toBag(val.Props)
	case map[string]any:
		return toBag(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toValue(item)
		}
		return out
	default:
		return v
	}
}

func toBag(props map[string]any) store.Row {
	bag := make(store.Row, len(props))
	for k, v := range props {
		bag[k] = toValue(v)
	}
	return bag
}
