package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Delete removes a query visible to the requester along with its fetched
// tweets. Like Edit, the removal runs under the registry guard: a query with
// a running job cannot be deleted until the job is stopped.
func (s *Service) Delete(ctx context.Context, queryID uuid.UUID) error {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if queryID == uuid.Nil {
		return domain.NewValidationError("query_id", "is required")
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, queryID))
	if err != nil {
		return fmt.Errorf("find query: %w", err)
	}

	err = s.registry.GuardQueryNotRunning(q.ID, func() error {
		if deleteErr := s.queries.Delete(ctx, q.ID); deleteErr != nil {
			return fmt.Errorf("delete query: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// A stale registry entry referencing a deleted query would block the
	// requester from running anything else. The cleanup targets the caller's
	// own slot: a group admin deleting a member's query leaves the member's
	// registry state alone.
	s.registry.ClearIfQuery(requester.UserID, q.ID)

	s.log.InfoContext(ctx, "query deleted",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", q.ID.String()),
	)

	return nil
}
