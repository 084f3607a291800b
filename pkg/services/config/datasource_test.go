package config

import (
	"context"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatasource_DuckDB(t *testing.T) {
	ctx := context.Background()
	ds, err := OpenDatasource(ctx, domain.DatasourceProfile{Name: "local", Driver: domain.DriverDuckDB, Path: ":memory:"})
	require.NoError(t, err)
	defer ds.Close(ctx)

	assert.Equal(t, domain.DriverDuckDB, ds.Driver)
	assert.NoError(t, ds.Runner.Ping(ctx))
}

func TestOpenDatasource_UnsupportedDriver(t *testing.T) {
	_, err := OpenDatasource(context.Background(), domain.DatasourceProfile{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported driver "oracle"`)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/budget")
	assert.Equal(t, "/home/budget/mirror.duckdb", expandHome("~/mirror.duckdb"))
	assert.Equal(t, "/data/mirror.duckdb", expandHome("/data/mirror.duckdb"))
}
