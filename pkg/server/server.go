package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/budget-atlas/pkg/handlers/budget"
	budgetmiddleware "github.com/de-tools/budget-atlas/pkg/server/middleware"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Services budget.Services
	PageSize int
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the read API under /api/v1 and the Prometheus endpoint at /metrics.
func ConfigureRouter(config Config) *chi.Mux {
	logger := config.Dependencies.Logger
	metrics := budgetmiddleware.NewMetrics()
	h := handlers.NewHandler(config.Dependencies.Services, config.Dependencies.PageSize)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(budgetmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/health/detailed", h.HealthDetailed)

		r.Route("/budget", func(r chi.Router) {
			r.Get("/total", h.Total)
			r.Get("/by-department", h.ByDepartment)
			r.Get("/by-department-all", h.ByDepartmentAll)
			r.Get("/compare-nep-gaa", h.CompareNEPvsGAA)
			r.Get("/summary", h.Summary)
			r.Get("/records-mapped", h.RecordsMapped)
		})

		r.Get("/expense-categories", h.ExpenseCategories)
		r.Get("/expense-categories/budget", h.ExpenseCategoryBudgets)

		r.Get("/regions", h.Regions)
		r.Get("/regions/allocation", h.RegionAllocation)
		r.Get("/locations/hierarchy", h.LocationHierarchy)

		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.Organizations)
			r.Get("/hierarchy", h.OrganizationHierarchy)
			r.Get("/budget-hierarchy", h.OrganizationBudgetHierarchy)
			r.Get("/{code}", h.Organization)
		})

		r.Route("/funding-sources", func(r chi.Router) {
			r.Get("/", h.FundingSources)
			r.Get("/hierarchy", h.FundingHierarchy)
			r.Get("/{code}", h.FundingSource)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Departments)
			r.Get("/{code}", h.Department)
			r.Get("/{code}/details", h.DepartmentDetails)
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
