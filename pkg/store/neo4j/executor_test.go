package neo4j

import (
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRow(t *testing.T) {
	keys := []string{"record", "agency", "total", "items"}
	values := []any{
		neo4j.Node{Props: map[string]any{"id": "BR-1", "amount": 12.5}},
		nil,
		int64(7),
		[]any{map[string]any{"code": "01"}, nil},
	}

	row := toRow(keys, values)

	record, ok := row.Entity("record")
	require.True(t, ok)
	assert.Equal(t, "BR-1", record.String("id"))
	assert.Equal(t, 12.5, record.Float("amount"))

	_, ok = row.Entity("agency")
	assert.False(t, ok)

	assert.Equal(t, 7, row.Int("total"))

	items := row["items"].([]any)
	assert.Equal(t, store.Row{"code": "01"}, items[0])
	assert.Nil(t, items[1])
}

func TestCatalog_DefinesEveryQuery(t *testing.T) {
	for _, name := range query.Names {
		_, err := Catalog.Lookup(name)
		assert.NoError(t, err, name)
	}
}
