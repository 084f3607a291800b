package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/budget-atlas/pkg/models/api"
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// writeError maps service errors to problem responses. Only unexpected errors are
// logged at error level; their detail is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var noData *domain.NoDataError
	switch {
	case errors.As(err, &noData):
		writeProblem(w, http.StatusNotFound, "No Data", noData.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	default:
		logger.Error().
			Err(err).
			Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	logger.Debug().
		Err(err).
		Msg("request rejected")
}
