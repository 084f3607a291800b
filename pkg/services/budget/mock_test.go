package budget

import (
	"context"

	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/stretchr/testify/mock"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Query(ctx context.Context, name query.Name, params map[string]any) ([]store.Row, error) {
	args := m.Called(ctx, name, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Row), args.Error(1)
}

func (m *mockRunner) QuerySingle(ctx context.Context, name query.Name, params map[string]any) (store.Row, bool, error) {
	args := m.Called(ctx, name, params)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(store.Row), args.Bool(1), args.Error(2)
}

func (m *mockRunner) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
