package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tweetsight/backend/internal/domain"
)

// SeedQuery inserts a saved query owned by userID and returns the stored row.
// Pass nil groupID for a groupless owner.
func SeedQuery(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, groupID *uuid.UUID) domain.Query {
	t.Helper()
	ctx := context.Background()

	q := domain.Query{
		UserID:   userID,
		GroupID:  groupID,
		Title:    "seed query " + uuid.New().String()[:8],
		AllWords: "golang",
		Hashtags: "#go",
		IsPublic: false,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO queries (user_id, group_id, title, all_words, hashtags, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		q.UserID, q.GroupID, q.Title, q.AllWords, q.Hashtags, q.IsPublic,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedQuery insert: %v", err)
	}

	return q
}

// SeedTweet inserts a tweet tagged with queryID and returns the stored row.
func SeedTweet(t *testing.T, pool *pgxpool.Pool, queryID uuid.UUID, author, text, hashtags string) domain.Tweet {
	t.Helper()
	ctx := context.Background()

	tw := domain.Tweet{
		QueryID:   queryID,
		Author:    author,
		Text:      text,
		Hashtags:  hashtags,
		TweetedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO tweets (query_id, author, text, hashtags, tweeted_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		tw.QueryID, tw.Author, tw.Text, tw.Hashtags, tw.TweetedAt,
	).Scan(&tw.ID, &tw.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTweet insert: %v", err)
	}

	return tw
}
