package sql

import (
	"database/sql"
	"fmt"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	sf "github.com/snowflakedb/gosnowflake"
)

const defaultHttpPath = "/sql/1.0/warehouses/"

// Open connects to a warehouse-hosted mirror described by a datasource profile.
// DuckDB mirrors are opened by the duckdb package.
func Open(profile domain.DatasourceProfile) (*sql.DB, error) {
	switch profile.Driver {
	case domain.DriverDatabricks:
		dsn := profile.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("token:%s@%s%s%s", profile.Password, profile.URI, defaultHttpPath, profile.Database)
		}
		return sql.Open("databricks", dsn)
	case domain.DriverSnowflake:
		dsn := profile.DSN
		if dsn == "" {
			var err error
			dsn, err = sf.DSN(&sf.Config{
				Account:  profile.URI,
				User:     profile.User,
				Password: profile.Password,
				Database: profile.Database,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create snowflake DSN: %w", err)
			}
		}
		return sql.Open("snowflake", dsn)
	default:
		return nil, fmt.Errorf("driver %q is not a warehouse driver", profile.Driver)
	}
}
