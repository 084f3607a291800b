package budget

import (
	"net/http"
	"time"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/api"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
)

func (h *Handler) liveness() api.Health {
	return api.Health{
		Status:    string(domain.HealthOK),
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.started).Seconds(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.liveness())
}

// HealthDetailed pings the datasource. An unreachable datasource answers 503.
func (h *Handler) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	ds := h.services.Health.Check(r.Context())
	res := api.DetailedHealth{
		Health:     h.liveness(),
		Datasource: adapters.MapDatasourceHealthDomainToApi(ds),
	}
	status := http.StatusOK
	if ds.Status != domain.HealthOK {
		res.Status = string(domain.HealthDegraded)
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, res)
}
