// Package query implements the saved-query repository using PostgreSQL.
// Filter predicates are built with squirrel from domain.QueryFilter so the
// scoped-visibility rule compiles to one WHERE clause shared by every read.
package query

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tweetsight/backend/internal/adapter/postgres"
	"github.com/tweetsight/backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var queryColumns = []string{
	"id", "user_id", "group_id", "title",
	"all_words", "phrase", "any_word", "none_of", "hashtags", "users",
	"date_from", "date_to", "is_public", "created_at",
}

// Repo provides saved-query persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new query repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new query and returns the persisted domain.Query.
func (r *Repo) Create(ctx context.Context, q *domain.Query) (*domain.Query, error) {
	sql, args, err := builder.
		Insert("queries").
		Columns("user_id", "group_id", "title",
			"all_words", "phrase", "any_word", "none_of", "hashtags", "users",
			"date_from", "date_to", "is_public").
		Values(q.UserID, ptrUUIDToPg(q.GroupID), q.Title,
			q.AllWords, q.Phrase, q.AnyWord, q.NoneOf, q.Hashtags, q.Users,
			ptrTimeToPgDate(q.DateFrom), ptrTimeToPgDate(q.DateTo), q.IsPublic).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanQuery(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "create query")
	}

	return created, nil
}

// FindOne resolves a single query under the given filter.
// Returns domain.ErrNotFound when nothing matches; the caller cannot tell a
// missing query from an invisible one.
func (r *Repo) FindOne(ctx context.Context, f domain.QueryFilter) (*domain.Query, error) {
	sql, args, err := selectWithFilter(f).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuery(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "find query")
	}

	return q, nil
}

// Find lists all queries matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Find(ctx context.Context, f domain.QueryFilter) ([]*domain.Query, error) {
	sql, args, err := selectWithFilter(f).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}
	defer rows.Close()

	result := []*domain.Query{}
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("list queries: %w", err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list queries: %w", err)
	}

	return result, nil
}

// Update overwrites all mutable fields of a query.
// Returns domain.ErrNotFound if the row no longer exists.
func (r *Repo) Update(ctx context.Context, q *domain.Query) error {
	sql, args, err := builder.
		Update("queries").
		Set("title", q.Title).
		Set("all_words", q.AllWords).
		Set("phrase", q.Phrase).
		Set("any_word", q.AnyWord).
		Set("none_of", q.NoneOf).
		Set("hashtags", q.Hashtags).
		Set("users", q.Users).
		Set("date_from", ptrTimeToPgDate(q.DateFrom)).
		Set("date_to", ptrTimeToPgDate(q.DateTo)).
		Set("is_public", q.IsPublic).
		Where(sq.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "update query")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("query %s: %w", q.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a query. Tweets referencing it are removed by CASCADE.
// Returns domain.ErrNotFound if the row no longer exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder.Delete("queries").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete query")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("query %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// selectWithFilter translates a domain.QueryFilter into a SELECT builder.
func selectWithFilter(f domain.QueryFilter) sq.SelectBuilder {
	b := builder.Select(queryColumns...).From("queries")

	if f.ID != nil {
		b = b.Where(sq.Eq{"id": *f.ID})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.GroupID != nil {
		b = b.Where(sq.Eq{"group_id": *f.GroupID})
	}
	if f.PublicOnly {
		b = b.Where(sq.Eq{"is_public": true})
	}
	if f.ExcludeUserID != nil {
		b = b.Where(sq.NotEq{"user_id": *f.ExcludeUserID})
	}

	return b
}

func columnList() string {
	list := queryColumns[0]
	for _, c := range queryColumns[1:] {
		list += ", " + c
	}
	return list
}

// scanQuery scans one row in queryColumns order into a domain.Query.
func scanQuery(row pgx.Row) (*domain.Query, error) {
	var (
		q        domain.Query
		groupID  pgtype.UUID
		dateFrom pgtype.Date
		dateTo   pgtype.Date
	)

	err := row.Scan(
		&q.ID, &q.UserID, &groupID, &q.Title,
		&q.AllWords, &q.Phrase, &q.AnyWord, &q.NoneOf, &q.Hashtags, &q.Users,
		&dateFrom, &dateTo, &q.IsPublic, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if groupID.Valid {
		id := uuid.UUID(groupID.Bytes)
		q.GroupID = &id
	}
	if dateFrom.Valid {
		t := dateFrom.Time
		q.DateFrom = &t
	}
	if dateTo.Valid {
		t := dateTo.Time
		q.DateTo = &t
	}

	return &q, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func ptrUUIDToPg(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func ptrTimeToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
