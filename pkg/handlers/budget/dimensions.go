package budget

import (
	"net/http"

	"github.com/de-tools/budget-atlas/pkg/adapters"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/go-chi/chi/v5"
)

func writeMembers(w http.ResponseWriter, r *http.Request, members []domain.Member, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapMembersDomainToApi(members))
}

func writeMember(w http.ResponseWriter, r *http.Request, member domain.Member, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapMemberDomainToApi(member))
}

func writeHierarchy(w http.ResponseWriter, r *http.Request, hierarchy domain.Hierarchy, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapHierarchyDomainToApi(hierarchy))
}

// ExpenseCategories lists the expense classifications, or with a year their budget hierarchy.
func (h *Handler) ExpenseCategories(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("year") == "" {
		members, err := h.services.Expense.Classifications(r.Context())
		writeMembers(w, r, members, err)
		return
	}
	year, err := parseYear(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	hierarchy, err := h.services.Expense.Hierarchy(r.Context(), year, r.URL.Query().Get("department"))
	writeHierarchy(w, r, hierarchy, err)
}

func (h *Handler) ExpenseCategoryBudgets(w http.ResponseWriter, r *http.Request) {
	year, budgetType, err := parseVariant(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.services.Expense.CategoryBudgets(r.Context(), year, budgetType, flag(r, "includeSubObjects"))
	writeMembers(w, r, members, err)
}

func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	q, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.services.Regions.List(r.Context(), q)
	writeMembers(w, r, members, err)
}

func (h *Handler) RegionAllocation(w http.ResponseWriter, r *http.Request) {
	year, budgetType, err := parseVariant(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	allocations, err := h.services.Regions.Allocation(r.Context(), year, budgetType, flag(r, "byDepartment"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapAllocationsDomainToApi(allocations))
}

func (h *Handler) LocationHierarchy(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.services.Regions.LocationHierarchy(r.Context())
	writeHierarchy(w, r, hierarchy, err)
}

func (h *Handler) Organizations(w http.ResponseWriter, r *http.Request) {
	bq, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	members, err := h.services.Organizations.Search(r.Context(), budget.OrganizationSearch{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Limit:      limit,
		Budget:     bq,
	})
	writeMembers(w, r, members, err)
}

func (h *Handler) Organization(w http.ResponseWriter, r *http.Request) {
	bq, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.services.Organizations.Get(r.Context(), chi.URLParam(r, "code"), bq)
	writeMember(w, r, member, err)
}

func (h *Handler) OrganizationHierarchy(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.services.Organizations.Hierarchy(r.Context())
	writeHierarchy(w, r, hierarchy, err)
}

func (h *Handler) OrganizationBudgetHierarchy(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	hierarchy, err := h.services.Organizations.BudgetHierarchy(r.Context(), year)
	writeHierarchy(w, r, hierarchy, err)
}

func (h *Handler) FundingSources(w http.ResponseWriter, r *http.Request) {
	q, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.services.Funding.List(r.Context(), q)
	writeMembers(w, r, members, err)
}

func (h *Handler) FundingSource(w http.ResponseWriter, r *http.Request) {
	q, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.services.Funding.Get(r.Context(), chi.URLParam(r, "code"), q)
	writeMember(w, r, member, err)
}

func (h *Handler) FundingHierarchy(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.services.Funding.Hierarchy(r.Context())
	writeHierarchy(w, r, hierarchy, err)
}

func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	q, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.services.Departments.List(r.Context(), q)
	writeMembers(w, r, members, err)
}

func (h *Handler) Department(w http.ResponseWriter, r *http.Request) {
	q, err := parseBudgetQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.services.Departments.Get(r.Context(), chi.URLParam(r, "code"), q)
	writeMember(w, r, member, err)
}

func (h *Handler) DepartmentDetails(w http.ResponseWriter, r *http.Request) {
	p := optionalVariantParams{Year: r.URL.Query().Get("year")}
	if err := check(p); err != nil {
		writeError(w, r, err)
		return
	}
	details, err := h.services.Departments.Details(r.Context(), chi.URLParam(r, "code"), p.Year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDepartmentDetailsDomainToApi(details))
}
