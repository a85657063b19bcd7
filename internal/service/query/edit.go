package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Edit overwrites every mutable field of a query visible to the requester.
// Absent fields arrive as zero values and clear whatever the query held; there
// are no partial updates. The write runs under the registry guard so a query
// with a running job cannot change mid-fetch.
func (s *Service) Edit(ctx context.Context, input EditInput) (*domain.Query, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, input.QueryID))
	if err != nil {
		return nil, fmt.Errorf("find query: %w", err)
	}

	err = s.registry.GuardQueryNotRunning(q.ID, func() error {
		q.Apply(input.Fields())
		if updateErr := s.queries.Update(ctx, q); updateErr != nil {
			return fmt.Errorf("update query: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "query updated",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", q.ID.String()),
	)

	return q, nil
}
