package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Stop interrupts the requester's running job. The target query must both be
// visible to the requester and match the query the active job was started
// for; stopping someone else's run through an unrelated query id is refused.
// Cancellation is best-effort: the registry entry is cleared even when the
// job already finished on its own.
func (s *Service) Stop(ctx context.Context, queryID uuid.UUID) error {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if queryID == uuid.Nil {
		return domain.NewValidationError("query_id", "is required")
	}

	job, ok := s.registry.ActiveJob(requester.UserID)
	if !ok {
		return domain.ErrNoActiveJob
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, queryID))
	if err != nil {
		return fmt.Errorf("find query: %w", err)
	}

	if job.QueryID != q.ID {
		return domain.ErrNotYourJob
	}

	s.dispatcher.Cancel(job.JobHandle)

	if err := s.registry.Clear(requester.UserID, q.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "query run stopped",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", q.ID.String()),
		slog.String("job_handle", job.JobHandle),
	)

	return nil
}
