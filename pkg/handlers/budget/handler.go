package budget

import (
	"time"

	"github.com/de-tools/budget-atlas/pkg/services/budget"
)

const defaultPageSize = 50

type Handler struct {
	services budget.Services
	pageSize int
	started  time.Time
}

func NewHandler(services budget.Services, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Handler{
		services: services,
		pageSize: pageSize,
		started:  time.Now(),
	}
}
