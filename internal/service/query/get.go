package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/pkg/ctxutil"
)

// Get returns a single query visible to the requester.
func (s *Service) Get(ctx context.Context, queryID uuid.UUID) (*domain.Query, error) {
	requester, ok := ctxutil.RequesterFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	q, err := s.queries.FindOne(ctx, domain.ScopedQueryFilter(requester, queryID))
	if err != nil {
		return nil, fmt.Errorf("find query: %w", err)
	}

	return q, nil
}
