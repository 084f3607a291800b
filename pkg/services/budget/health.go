package budget

import (
	"context"
	"time"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/store/query"
	"github.com/rs/zerolog"
)

type HealthService interface {
	Check(ctx context.Context) domain.DatasourceHealth
}

type healthService struct {
	runner query.Runner
	driver domain.DriverType
}

func NewHealthService(runner query.Runner, driver domain.DriverType) HealthService {
	return &healthService{runner: runner, driver: driver}
}

// Check pings the backend. Failures are reported in the result, never returned.
func (s *healthService) Check(ctx context.Context) domain.DatasourceHealth {
	start := time.Now()
	err := s.runner.Ping(ctx)
	health := domain.DatasourceHealth{
		Status:       domain.HealthOK,
		Driver:       s.driver,
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("driver", string(s.driver)).Msg("datasource ping failed")
		health.Status = domain.HealthDegraded
		health.Error = err.Error()
	}
	return health
}
