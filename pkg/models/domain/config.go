package domain

import "fmt"

type DriverType string

const (
	DriverNeo4j      DriverType = "neo4j"
	DriverDuckDB     DriverType = "duckdb"
	DriverDatabricks DriverType = "databricks"
	DriverSnowflake  DriverType = "snowflake"
)

// DatasourceProfile is one section of the profiles file.
type DatasourceProfile struct {
	Name     string
	Driver   DriverType
	URI      string
	User     string
	Password string
	Database string
	DSN      string
	Path     string
}

func (p DatasourceProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Driver, p.Name)
}
