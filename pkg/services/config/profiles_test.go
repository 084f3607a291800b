package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfiles = `
[default]
driver = neo4j
uri = neo4j://localhost:7687
user = neo4j
password = secret

[mirror]
driver = duckdb
path = /tmp/budget.duckdb

[broken]
driver = oracle

[nodriver]
uri = somewhere
`

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".budgetcfg")
	require.NoError(t, os.WriteFile(path, []byte(testProfiles), 0o600))
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "mirror", "broken", "nodriver"}, profiles)
}

func TestRegistry_GetProfile(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t))
	require.NoError(t, err)

	tests := []struct {
		name     string
		profile  string
		expected domain.DatasourceProfile
		wantErr  string
	}{
		{
			name:    "graph profile",
			profile: "default",
			expected: domain.DatasourceProfile{
				Name:     "default",
				Driver:   domain.DriverNeo4j,
				URI:      "neo4j://localhost:7687",
				User:     "neo4j",
				Password: "secret",
			},
		},
		{
			name:     "mirror profile",
			profile:  "mirror",
			expected: domain.DatasourceProfile{Name: "mirror", Driver: domain.DriverDuckDB, Path: "/tmp/budget.duckdb"},
		},
		{name: "unsupported driver", profile: "broken", wantErr: `unsupported driver "oracle"`},
		{name: "missing driver", profile: "nodriver", wantErr: "has no driver"},
		{name: "unknown profile", profile: "staging", wantErr: "profile staging not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := registry.GetProfile(context.Background(), tt.profile)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
