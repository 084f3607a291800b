package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/store/duckdb"
	"github.com/de-tools/budget-atlas/pkg/store/neo4j"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/de-tools/budget-atlas/pkg/store/sql"
)

// Datasource is an open query backend.
type Datasource struct {
	Runner   query.Runner
	Driver   domain.DriverType
	executor query.Executor
}

func (d *Datasource) Close(ctx context.Context) error {
	return d.executor.Close(ctx)
}

// OpenDatasource connects to the backend a profile describes and pairs it with the
// matching query catalog: Cypher for the graph, SQL for every mirror.
func OpenDatasource(ctx context.Context, profile domain.DatasourceProfile) (*Datasource, error) {
	var (
		executor query.Executor
		catalog  query.Catalog
	)

	switch profile.Driver {
	case domain.DriverNeo4j:
		exec, err := neo4j.NewExecutor(ctx, neo4j.Settings{
			URI:      profile.URI,
			User:     profile.User,
			Password: profile.Password,
			Database: profile.Database,
		})
		if err != nil {
			return nil, err
		}
		executor, catalog = exec, neo4j.Catalog
	case domain.DriverDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: expandHome(profile.Path)})
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb mirror: %w", err)
		}
		executor, catalog = sql.NewExecutor(db), sql.Catalog
	case domain.DriverDatabricks, domain.DriverSnowflake:
		db, err := sql.Open(profile)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s mirror: %w", profile.Driver, err)
		}
		executor, catalog = sql.NewExecutor(db), sql.Catalog
	default:
		return nil, fmt.Errorf("unsupported driver %q", profile.Driver)
	}

	return &Datasource{
		Runner:   query.NewRunner(executor, catalog),
		Driver:   profile.Driver,
		executor: executor,
	}, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
