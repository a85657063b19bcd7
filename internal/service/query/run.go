package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Run starts an asynchronous tweet fetch for a query visible to the
// requester. At most one job per user may run at a time: a second Run before
// Stop fails with ErrAlreadyRunning regardless of which query it targets.
func (s *Service) Run(ctx context.Context, queryID uuid.UUID) (domain.RunningJob, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return domain.RunningJob{}, domain.ErrUnauthorized
	}
	if queryID == uuid.Nil {
		return domain.RunningJob{}, domain.NewValidationError("query_id", "is required")
	}

	if s.registry.HasActiveJob(requester.UserID) {
		return domain.RunningJob{}, domain.ErrAlreadyRunning
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, queryID))
	if err != nil {
		return domain.RunningJob{}, fmt.Errorf("find query: %w", err)
	}

	handle, err := s.dispatcher.Submit(q.ID, q.SearchString())
	if err != nil {
		return domain.RunningJob{}, fmt.Errorf("submit job: %w", err)
	}

	job, err := s.registry.Register(requester.UserID, q.ID, handle)
	if err != nil {
		// Lost the race against a concurrent Run; the submitted job must not
		// outlive its failed registration.
		s.dispatcher.Cancel(handle)
		return domain.RunningJob{}, err
	}

	s.log.InfoContext(ctx, "query run started",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", q.ID.String()),
		slog.String("job_handle", handle),
	)

	return job, nil
}
