package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/internal/service/query"
)

// queryService defines the minimal interface needed by QueryHandler.
type queryService interface {
	Create(ctx context.Context, input query.CreateInput) (*domain.Query, error)
	Get(ctx context.Context, queryID uuid.UUID) (*domain.Query, error)
	Edit(ctx context.Context, input query.EditInput) (*domain.Query, error)
	Delete(ctx context.Context, queryID uuid.UUID) error
	Run(ctx context.Context, queryID uuid.UUID) (domain.RunningJob, error)
	Stop(ctx context.Context, queryID uuid.UUID) error
	ListMine(ctx context.Context) (query.QueryList, error)
	ListGroup(ctx context.Context) (query.QueryList, error)
}

// QueryHandler serves the saved-query REST endpoints.
type QueryHandler struct {
	svc queryService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: logger.With("handler", "query")}
}

// Create handles POST /api/queries.
func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Fill all required fields")
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": "Query successfully created",
		"query":   toQueryResponse(created),
	})
}

// Get handles GET /api/queries/{id}.
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}

	q, err := h.svc.Get(r.Context(), queryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Query was found",
		"query":   toQueryResponse(q),
	})
}

// Edit handles PUT /api/queries/{id}.
func (h *QueryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	edited, err := h.svc.Edit(r.Context(), query.EditInput{
		QueryID:     queryID,
		CreateInput: input,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Fill all required fields")
		case errors.Is(err, domain.ErrQueryRunning):
			writeError(w, http.StatusConflict, "You can't edit running query")
		default:
			h.handleError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Query successfully edited!",
		"edited":  true,
		"query":   toQueryResponse(edited),
	})
}

// Delete handles DELETE /api/queries/{id}.
func (h *QueryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}

	if err := h.svc.Delete(r.Context(), queryID); err != nil {
		if errors.Is(err, domain.ErrQueryRunning) {
			writeError(w, http.StatusConflict, "You can't delete running query")
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Query was deleted!",
	})
}

// Run handles POST /api/queries/{id}/run.
func (h *QueryHandler) Run(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}

	if _, err := h.svc.Run(r.Context(), queryID); err != nil {
		if errors.Is(err, domain.ErrAlreadyRunning) {
			writeError(w, http.StatusConflict, "You can't run more than one query right now")
			return
		}
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"status":  "success",
		"message": "Query was run. Wait for results!",
	})
}

// Stop handles POST /api/queries/{id}/stop.
func (h *QueryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	queryID, ok := parseQueryID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid query id format")
		return
	}

	if err := h.svc.Stop(r.Context(), queryID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveJob):
			writeError(w, http.StatusConflict, "You have no running queries")
		case errors.Is(err, domain.ErrNotYourJob):
			writeError(w, http.StatusForbidden, "This query was run not by you")
		default:
			h.handleError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Query was stopped",
	})
}

// ListMine handles GET /api/queries/my.
func (h *QueryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMine(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQueryListResponse(list))
}

// ListGroup handles GET /api/queries/group. A caller without a group gets a
// null queries field, matching the listing contract for groupless users.
func (h *QueryHandler) ListGroup(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListGroup(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if list.Queries == nil {
		writeJSON(w, http.StatusOK, map[string]any{"queries": nil})
		return
	}
	writeJSON(w, http.StatusOK, toQueryListResponse(list))
}

func (h *QueryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Query not found")
	case errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
