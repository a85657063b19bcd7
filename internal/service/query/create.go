package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Create saves a new query for the authenticated user. The requester's
// group is snapshotted onto the query at creation time; later group
// changes do not move existing queries.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Query, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	q := &domain.Query{
		UserID:  requester.UserID,
		GroupID: requester.GroupID,
	}
	q.Apply(input.Fields())

	created, err := s.queries.Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("create query: %w", err)
	}

	s.log.InfoContext(ctx, "query created",
		slog.String("user_id", requester.UserID.String()),
		slog.String("query_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}
