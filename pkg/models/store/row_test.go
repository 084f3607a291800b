package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Accessors(t *testing.T) {
	row := Row{
		"code":    "01",
		"amount":  int64(1500),
		"ratio":   "12.5",
		"count":   float64(3),
		"raw":     []byte("42"),
		"missing": nil,
		"flag":    true,
	}

	assert.Equal(t, "01", row.String("code"))
	assert.Equal(t, "1500", row.String("amount"))
	assert.Equal(t, "", row.String("missing"))
	assert.Equal(t, "", row.String("absent"))

	assert.Equal(t, 1500.0, row.Float("amount"))
	assert.Equal(t, 12.5, row.Float("ratio"))
	assert.Equal(t, 0.0, row.Float("missing"))
	assert.Equal(t, 42.0, row.Float("raw"))

	assert.Equal(t, 3, row.Int("count"))
	assert.Equal(t, 42, row.Int("raw"))
	assert.True(t, row.Bool("flag"))
	assert.True(t, row.IsNull("missing"))
	assert.True(t, row.IsNull("absent"))
	assert.False(t, row.IsNull("code"))
}

func TestRow_Entity(t *testing.T) {
	t.Run("nested bag", func(t *testing.T) {
		row := Row{"department": map[string]any{"code": "07"}, "agency": nil}

		dept, ok := row.Entity("department")
		require.True(t, ok)
		assert.Equal(t, "07", dept.String("code"))

		_, ok = row.Entity("agency")
		assert.False(t, ok)
	})

	t.Run("prefixed columns", func(t *testing.T) {
		row := Row{
			"region__code":        "13",
			"REGION__DESCRIPTION": "NCR",
			"province__psgc":      nil,
			"province__name":      nil,
		}

		region, ok := row.Entity("region")
		require.True(t, ok)
		assert.Equal(t, "NCR", region.String("description"))

		_, ok = row.Entity("province")
		assert.False(t, ok)
		_, ok = row.Entity("city")
		assert.False(t, ok)
	})
}

func TestRow_CaseInsensitiveLookup(t *testing.T) {
	row := Row{"TOTALBUDGET": 12.5, "totalBudget": 3.0}

	assert.Equal(t, 3.0, row.Float("totalBudget"))
	assert.Equal(t, 12.5, Row{"TOTALBUDGET": 12.5}.Float("totalBudget"))
	assert.False(t, row.IsNull("totalbudget"))
}
