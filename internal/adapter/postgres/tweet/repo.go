// Package tweet implements the result-record repository using PostgreSQL.
// The core only reads tweets; the fetch worker writes them in batches.
package tweet

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tweetsight/backend/internal/adapter/postgres"
	"github.com/tweetsight/backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides tweet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tweet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByQuery returns all tweets fetched for a query, newest first.
// Returns an empty slice (not nil) when the query has no results yet.
func (r *Repo) ListByQuery(ctx context.Context, queryID uuid.UUID) ([]*domain.Tweet, error) {
	sql, args, err := builder.
		Select("id", "query_id", "author", "text", "hashtags", "tweeted_at", "created_at").
		From("tweets").
		Where(sq.Eq{"query_id": queryID}).
		OrderBy("tweeted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	defer rows.Close()

	tweets := []*domain.Tweet{}
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.QueryID, &t.Author, &t.Text, &t.Hashtags, &t.TweetedAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("list tweets: %w", err)
		}
		tweets = append(tweets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}

	return tweets, nil
}

// SaveBatch inserts a batch of fetched tweets in one round trip.
// Returns the number of rows written.
func (r *Repo) SaveBatch(ctx context.Context, tweets []domain.Tweet) (int, error) {
	if len(tweets) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	const insertSQL = `INSERT INTO tweets (query_id, author, text, hashtags, tweeted_at) VALUES ($1, $2, $3, $4, $5)`
	for _, t := range tweets {
		batch.Queue(insertSQL, t.QueryID, t.Author, t.Text, t.Hashtags, t.TweetedAt)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for range tweets {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "save tweets")
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}

// DeleteByQuery removes every tweet belonging to a query. The fetch job runs
// it before inserting a new run's results; query deletion itself relies on
// CASCADE.
func (r *Repo) DeleteByQuery(ctx context.Context, queryID uuid.UUID) error {
	sql, args, err := builder.Delete("tweets").Where(sq.Eq{"query_id": queryID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "delete tweets")
	}

	return nil
}
