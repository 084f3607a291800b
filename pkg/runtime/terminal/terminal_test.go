package terminal

import (
	"bytes"
	"context"
	"testing"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFundingService struct {
	budget.FundingService
	mock.Mock
}

func (m *mockFundingService) Hierarchy(ctx context.Context) (domain.Hierarchy, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Hierarchy), args.Error(1)
}

func TestCLI_HierarchyFunding(t *testing.T) {
	funding := &mockFundingService{}
	funding.On("Hierarchy", mock.Anything).Return(domain.Hierarchy{
		Nodes: []domain.TreeNode{{
			Key: "01", Label: "Regular Agency Fund", Level: "fund_cluster",
			Children: []domain.TreeNode{{Key: "01101101", Label: "General Fund", Level: "funding_source"}},
		}},
		Meta: map[string]int{"totalFundClusters": 1},
	}, nil)

	var profile string
	connect := func(_ context.Context, name string) (budget.Services, func(context.Context) error, error) {
		profile = name
		return budget.Services{Funding: funding}, func(context.Context) error { return nil }, nil
	}

	tests := []struct {
		name  string
		plain bool
		want  string
	}{
		{name: "table", plain: false, want: "|   01101101 "},
		{name: "plain", plain: true, want: "  - 01101101: funding_source\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cli := NewCLI(Options{Connect: connect, Output: &out, Plain: tt.plain})
			cli.SetArgs([]string{"hierarchy", "funding", "--profile", "mirror"})

			require.NoError(t, cli.Execute())
			assert.Equal(t, "mirror", profile)
			assert.Contains(t, out.String(), "Funding sources")
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
