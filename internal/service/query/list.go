package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// ListMine returns every query owned by the requester, newest first, together
// with the id of the query behind the requester's active job when one exists.
func (s *Service) ListMine(ctx context.Context) (QueryList, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return QueryList{}, domain.ErrUnauthorized
	}

	queries, err := s.queries.Find(ctx, domain.OwnQueriesFilter(requester))
	if err != nil {
		return QueryList{}, fmt.Errorf("find queries: %w", err)
	}

	return QueryList{
		Queries:        queries,
		RunningQueryID: s.activeQueryID(requester),
	}, nil
}

// ListGroup returns the public queries of the requester's group peers,
// excluding the requester's own. A requester without a group gets an empty
// listing, not an error.
func (s *Service) ListGroup(ctx context.Context) (QueryList, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return QueryList{}, domain.ErrUnauthorized
	}

	if !requester.HasGroup() {
		return QueryList{RunningQueryID: s.activeQueryID(requester)}, nil
	}

	queries, err := s.queries.Find(ctx, domain.GroupQueriesFilter(requester))
	if err != nil {
		return QueryList{}, fmt.Errorf("find group queries: %w", err)
	}

	return QueryList{
		Queries:        queries,
		RunningQueryID: s.activeQueryID(requester),
	}, nil
}

func (s *Service) activeQueryID(requester domain.Requester) *uuid.UUID {
	job, ok := s.registry.ActiveJob(requester.UserID)
	if !ok {
		return nil
	}
	queryID := job.QueryID
	return &queryID
}
