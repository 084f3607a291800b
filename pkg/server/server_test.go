package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/budget-atlas/pkg/models/api"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var out T
		err := json.Unmarshal(data, &out)
		return out, err
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := new(mockRunner)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Services: budget.NewServices(runner, fanout.Resolver{}, domain.DriverDuckDB),
			Logger:   logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "BudgetTotal",
			path: "/api/v1/budget/total?year=2025&type=NEP",
			setupMocks: func() {
				runner.On("QuerySingle", mock.Anything, query.BudgetTotal, map[string]any{
					"year":       "2025",
					"type":       "NEP",
					"department": "",
					"region":     "",
				}).Return(store.Row{"total": 5268.0, "recordCount": int64(2)}, true, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.BudgetTotal{
				Total:        5268,
				TotalInPesos: 5268000,
				Currency:     "PHP",
				RecordCount:  2,
				Filters:      api.BudgetFilters{Year: "2025", Type: "NEP"},
			},
			parseResponse: unmarshalResponse[api.BudgetTotal](),
		},
		{
			name:           "BudgetTotal_InvalidYear",
			path:           "/api/v1/budget/total?year=twenty&type=NEP",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       http.StatusBadRequest,
			parseResponse: func(data []byte) (interface{}, error) {
				var p api.Problem
				err := json.Unmarshal(data, &p)
				return p.Status, err
			},
		},
		{
			name: "Organization_NotFound",
			path: "/api/v1/organizations/000000000000",
			setupMocks: func() {
				runner.On("QuerySingle", mock.Anything, query.OrganizationByCode, map[string]any{
					"code": "000000000000",
					"year": "",
					"type": "",
				}).Return(nil, false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expected:       `organization "000000000000" not found`,
			parseResponse: func(data []byte) (interface{}, error) {
				var p api.Problem
				err := json.Unmarshal(data, &p)
				return p.Detail, err
			},
		},
		{
			name: "FundingHierarchy",
			path: "/api/v1/funding-sources/hierarchy",
			setupMocks: func() {
				runner.On("Query", mock.Anything, query.FundingHierarchy, map[string]any(nil)).Return([]store.Row{
					{"clusterCode": "01", "clusterDescription": "Regular", "fundingSourceCode": "01101101", "fundingSourceDescription": "GAA"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: map[string]int{
				"totalFundClusters":     1,
				"totalFundingSources":   1,
				"totalFinancingSources": 0,
				"totalAuthorizations":   0,
			},
			parseResponse: func(data []byte) (interface{}, error) {
				var h api.Hierarchy
				err := json.Unmarshal(data, &h)
				return h.Meta, err
			},
		},
		{
			name: "HealthDetailed",
			path: "/api/v1/health/detailed",
			setupMocks: func() {
				runner.On("Ping", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expected:       "ok",
			parseResponse: func(data []byte) (interface{}, error) {
				var h api.DetailedHealth
				err := json.Unmarshal(data, &h)
				return h.Datasource.Status, err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_Metrics(t *testing.T) {
	config := Config{
		Dependencies: Dependencies{
			Services: budget.NewServices(new(mockRunner), fanout.Resolver{}, domain.DriverDuckDB),
			Logger:   zerolog.Nop(),
		},
	}
	router := ConfigureRouter(config)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `budget_http_requests_total{code="200",route="/api/v1/health"} 1`)
	assert.Contains(t, body, "budget_http_request_duration_seconds")
}
