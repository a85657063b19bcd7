// Package query implements the query execution coordinator: CRUD over saved
// queries plus the run/stop lifecycle against the job registry and the
// dispatcher. Every operation resolves its query through the shared scoped
// filter, so the visibility rule is identical across operations.
package query

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

type queryRepo interface {
	Create(ctx context.Context, q *domain.Query) (*domain.Query, error)
	FindOne(ctx context.Context, f domain.QueryFilter) (*domain.Query, error)
	Find(ctx context.Context, f domain.QueryFilter) ([]*domain.Query, error)
	Update(ctx context.Context, q *domain.Query) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRegistry interface {
	HasActiveJob(userID uuid.UUID) bool
	ActiveJob(userID uuid.UUID) (domain.RunningJob, bool)
	Register(userID, queryID uuid.UUID, jobHandle string) (domain.RunningJob, error)
	Clear(userID, queryID uuid.UUID) error
	ClearIfQuery(userID, queryID uuid.UUID)
	GuardQueryNotRunning(queryID uuid.UUID, fn func() error) error
}

type jobDispatcher interface {
	Submit(queryID uuid.UUID, search string) (string, error)
	Cancel(jobHandle string)
}

// Service coordinates saved-query operations.
type Service struct {
	queries    queryRepo
	registry   jobRegistry
	dispatcher jobDispatcher
	log        *slog.Logger
}

// NewService creates a new query coordinator.
func NewService(
	logger *slog.Logger,
	queries queryRepo,
	registry jobRegistry,
	dispatcher jobDispatcher,
) *Service {
	return &Service{
		queries:    queries,
		registry:   registry,
		dispatcher: dispatcher,
		log:        logger.With("service", "query"),
	}
}

// QueryList is the payload of the list operations: the visible queries plus
// the id of the query behind the requester's active job, if any.
type QueryList struct {
	Queries        []*domain.Query
	RunningQueryID *uuid.UUID
}
