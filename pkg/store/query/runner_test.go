package query

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Query(ctx context.Context, text string, params map[string]any) ([]store.Row, error) {
	args := m.Called(ctx, text, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Row), args.Error(1)
}

func (m *mockExecutor) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockExecutor) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRunner_Query(t *testing.T) {
	ctx := context.Background()
	exec := new(mockExecutor)
	catalog := Catalog{YearTotals: "SELECT totals"}
	params := map[string]any{"year": "2025"}

	exec.On("Query", ctx, "SELECT totals", params).
		Return([]store.Row{{"nepTotal": 10.0}}, nil)

	r := NewRunner(exec, catalog)
	rows, err := r.Query(ctx, YearTotals, params)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	exec.AssertExpectations(t)
}

func TestRunner_UnknownQuery(t *testing.T) {
	r := NewRunner(new(mockExecutor), Catalog{})

	_, err := r.Query(context.Background(), Regions, nil)
	assert.ErrorContains(t, err, "regions")
}

func TestRunner_QuerySingle(t *testing.T) {
	ctx := context.Background()
	exec := new(mockExecutor)
	catalog := Catalog{DepartmentByCode: "dept", Regions: "regions", Ping: "ping"}

	exec.On("Query", ctx, "dept", map[string]any{"code": "99"}).Return([]store.Row{}, nil)
	exec.On("Query", ctx, "regions", map[string]any{}).Return(nil, errors.New("connection refused"))

	r := NewRunner(exec, catalog)

	row, ok, err := r.QuerySingle(ctx, DepartmentByCode, map[string]any{"code": "99"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, row)

	_, _, err = r.QuerySingle(ctx, Regions, nil)
	assert.ErrorContains(t, err, "connection refused")
}
