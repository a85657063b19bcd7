// Package results implements the result analyzer: aggregate statistics over
// the tweets a query's last run fetched.
package results

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

type queryRepo interface {
	FindOne(ctx context.Context, f domain.QueryFilter) (*domain.Query, error)
}

type tweetRepo interface {
	ListByQuery(ctx context.Context, queryID uuid.UUID) ([]*domain.Tweet, error)
}

type jobRegistry interface {
	ActiveJob(userID uuid.UUID) (domain.RunningJob, bool)
}

type wordCounter interface {
	WordCounts(text string) map[string]int
}

// Service computes analyses over fetched tweets.
type Service struct {
	queries  queryRepo
	tweets   tweetRepo
	registry jobRegistry
	counter  wordCounter
	log      *slog.Logger
}

// NewService creates a new result analyzer.
func NewService(
	logger *slog.Logger,
	queries queryRepo,
	tweets tweetRepo,
	registry jobRegistry,
	counter wordCounter,
) *Service {
	return &Service{
		queries:  queries,
		tweets:   tweets,
		registry: registry,
		counter:  counter,
		log:      logger.With("service", "results"),
	}
}
