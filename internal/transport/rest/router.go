package rest

import "net/http"

// NewRouter mounts every endpoint on a fresh mux. Auth is enforced per
// request by the middleware chain; handlers reject anonymous callers through
// the services' unauthorized errors.
func NewRouter(
	health *HealthHandler,
	queries *QueryHandler,
	results *ResultsHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/queries", queries.Create)
	mux.HandleFunc("GET /api/queries/my", queries.ListMine)
	mux.HandleFunc("GET /api/queries/group", queries.ListGroup)
	mux.HandleFunc("GET /api/queries/{id}", queries.Get)
	mux.HandleFunc("PUT /api/queries/{id}", queries.Edit)
	mux.HandleFunc("DELETE /api/queries/{id}", queries.Delete)
	mux.HandleFunc("POST /api/queries/{id}/run", queries.Run)
	mux.HandleFunc("POST /api/queries/{id}/stop", queries.Stop)
	mux.HandleFunc("GET /api/queries/results", results.GetCurrent)
	mux.HandleFunc("GET /api/queries/{id}/results", results.Get)

	return mux
}
