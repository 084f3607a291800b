package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total, page, limit int
		totalPages, offset int
	}{
		{total: 101, page: 1, limit: 50, totalPages: 3, offset: 0},
		{total: 100, page: 2, limit: 50, totalPages: 2, offset: 50},
		{total: 0, page: 1, limit: 50, totalPages: 0, offset: 0},
		{total: 7, page: 3, limit: 3, totalPages: 3, offset: 6},
	}

	for _, tt := range tests {
		p := NewPagination(tt.total, tt.page, tt.limit)
		assert.Equal(t, tt.totalPages, p.TotalPages)
		assert.Equal(t, tt.offset, p.Offset())
	}
}

func TestOptional(t *testing.T) {
	some := Some(Entity{Code: "13"})
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, "13", v.Code)
	assert.Equal(t, "13", some.Ptr().Code)

	none := None[Entity]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.Nil(t, none.Ptr())
}

func TestAdjacentYears(t *testing.T) {
	prev, next, err := AdjacentYears("2025")
	require.NoError(t, err)
	assert.Equal(t, "2024", prev)
	assert.Equal(t, "2026", next)

	_, _, err = AdjacentYears("25")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = AdjacentYears("20x5")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestErrors(t *testing.T) {
	var err error = &NoDataError{Year: "2019"}
	assert.ErrorIs(t, err, ErrNoData)
	assert.EqualError(t, err, "no budget data found for year 2019")

	err = &NotFoundError{Entity: "department", Code: "99"}
	assert.ErrorIs(t, err, ErrNotFound)
}
