package budget

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type yearParams struct {
	Year string `validate:"required,len=4,numeric"`
}

type variantParams struct {
	Year string `validate:"required,len=4,numeric"`
	Type string `validate:"required,oneof=NEP GAA"`
}

type optionalVariantParams struct {
	Year string `validate:"omitempty,len=4,numeric"`
	Type string `validate:"omitempty,oneof=NEP GAA"`
}

type pageParams struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=500"`
}

type limitParams struct {
	Limit int `validate:"omitempty,min=1,max=500"`
}

func check(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", strings.ToLower(fe.Field()), constraint(fe)))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func parseYear(r *http.Request) (string, error) {
	p := yearParams{Year: r.URL.Query().Get("year")}
	return p.Year, check(p)
}

func parseVariant(r *http.Request) (string, domain.BudgetType, error) {
	q := r.URL.Query()
	p := variantParams{Year: q.Get("year"), Type: strings.ToUpper(q.Get("type"))}
	return p.Year, domain.BudgetType(p.Type), check(p)
}

// parseBudgetQuery reads the withBudget, year and type parameters of dimension lists.
func parseBudgetQuery(r *http.Request) (budget.BudgetQuery, error) {
	q := r.URL.Query()
	p := optionalVariantParams{Year: q.Get("year"), Type: strings.ToUpper(q.Get("type"))}
	if err := check(p); err != nil {
		return budget.BudgetQuery{}, err
	}
	return budget.BudgetQuery{
		WithBudget: flag(r, "withBudget"),
		Year:       p.Year,
		Type:       domain.BudgetType(p.Type),
	}, nil
}

func parsePage(r *http.Request, defaultLimit int) (int, int, error) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err := intParam(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, check(pageParams{Page: page, Limit: limit})
}

func parseLimit(r *http.Request) (int, error) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		return 0, err
	}
	return limit, check(limitParams{Limit: limit})
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

func flag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
