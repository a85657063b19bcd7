package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/internal/service/results"
)

// resultsService defines the minimal interface needed by ResultsHandler.
type resultsService interface {
	Analyze(ctx context.Context, queryID uuid.UUID) (*results.Result, error)
}

// ResultsHandler serves the query results endpoint.
type ResultsHandler struct {
	svc resultsService
	log *slog.Logger
}

// NewResultsHandler creates a ResultsHandler.
func NewResultsHandler(svc resultsService, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{svc: svc, log: logger.With("handler", "results")}
}

// Get handles GET /api/queries/{id}/results. While the caller has a running
// job the service analyzes that job's query regardless of the id given here.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}
	h.analyze(w, r, queryID)
}

// GetCurrent handles GET /api/queries/results: the results of the query
// behind the caller's running job. With no running job the nil id resolves
// to nothing and the caller gets a not-found.
func (h *ResultsHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, uuid.Nil)
}

func (h *ResultsHandler) analyze(w http.ResponseWriter, r *http.Request, queryID uuid.UUID) {
	result, err := h.svc.Analyze(r.Context(), queryID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Query not found")
		case errors.Is(err, domain.ErrNoResults):
			writeError(w, http.StatusNotFound, "No tweets to analyse")
		default:
			h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"tweets":   toTweetResponses(result.Tweets),
		"analysis": result.Analysis,
	})
}
