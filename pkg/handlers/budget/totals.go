package budget

import (
	"net/http"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
)

func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	year, budgetType, err := parseVariant(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	total, err := h.services.Budget.Total(r.Context(), domain.BudgetFilter{
		Year:       year,
		Type:       budgetType,
		Department: q.Get("department"),
		Region:     q.Get("region"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapBudgetTotalDomainToApi(total))
}

func (h *Handler) ByDepartment(w http.ResponseWriter, r *http.Request) {
	year, budgetType, err := parseVariant(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	allocations, err := h.services.Budget.ByDepartment(r.Context(), year, budgetType, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapAllocationsDomainToApi(allocations))
}

func (h *Handler) ByDepartmentAll(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	variances, err := h.services.Budget.ByDepartmentAll(r.Context(), year, flag(r, "includeNepGaa"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapVariancesDomainToApi(variances))
}

func (h *Handler) CompareNEPvsGAA(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	comparison, err := h.services.Budget.CompareNEPvsGAA(r.Context(), year, r.URL.Query().Get("department"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapVariantComparisonDomainToApi(comparison))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	summary, err := h.services.Budget.Summary(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapYearSummaryDomainToApi(summary))
}

func (h *Handler) RecordsMapped(w http.ResponseWriter, r *http.Request) {
	year, budgetType, err := parseVariant(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, limit, err := parsePage(r, h.pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := h.services.Budget.RecordsMapped(r.Context(), year, budgetType, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapRecordPageDomainToApi(records))
}
