package query_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tweetsight/backend/internal/adapter/postgres/query"
	"github.com/tweetsight/backend/internal/adapter/postgres/testhelper"
	"github.com/tweetsight/backend/internal/domain"
)

func TestRepo_Create_RoundTrip(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	userID := uuid.New()
	groupID := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, &domain.Query{
		UserID:   userID,
		GroupID:  &groupID,
		Title:    "release watch",
		AllWords: "go release",
		Phrase:   "generics are here",
		AnyWord:  "golang gopher",
		NoneOf:   "java",
		Hashtags: "#golang",
		Users:    "rob",
		DateFrom: &from,
		DateTo:   &to,
		IsPublic: true,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.FindOne(ctx, domain.ScopedQueryFilter(domain.Requester{UserID: userID}, created.ID))
	require.NoError(t, err)

	// Field-for-field round trip, including empty-string defaults.
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, userID, got.UserID)
	require.NotNil(t, got.GroupID)
	require.Equal(t, groupID, *got.GroupID)
	require.Equal(t, "release watch", got.Title)
	require.Equal(t, "go release", got.AllWords)
	require.Equal(t, "generics are here", got.Phrase)
	require.Equal(t, "golang gopher", got.AnyWord)
	require.Equal(t, "java", got.NoneOf)
	require.Equal(t, "#golang", got.Hashtags)
	require.Equal(t, "rob", got.Users)
	require.True(t, got.IsPublic)
	require.NotNil(t, got.DateFrom)
	require.Equal(t, from, got.DateFrom.UTC())
	require.NotNil(t, got.DateTo)
	require.Equal(t, to, got.DateTo.UTC())
}

func TestRepo_Create_EmptyOptionalFields(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	userID := uuid.New()
	created, err := repo.Create(ctx, &domain.Query{UserID: userID, Title: "bare"})
	require.NoError(t, err)

	got, err := repo.FindOne(ctx, domain.ScopedQueryFilter(domain.Requester{UserID: userID}, created.ID))
	require.NoError(t, err)
	require.Empty(t, got.AllWords)
	require.Empty(t, got.Phrase)
	require.Nil(t, got.GroupID)
	require.Nil(t, got.DateFrom)
	require.Nil(t, got.DateTo)
	require.False(t, got.IsPublic)
}

func TestRepo_FindOne_ScopedVisibility(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	groupID := uuid.New()
	owner := uuid.New()
	seeded := testhelper.SeedQuery(t, pool, owner, &groupID)

	// A stranger resolves nothing.
	_, err := repo.FindOne(ctx, domain.ScopedQueryFilter(domain.Requester{UserID: uuid.New()}, seeded.ID))
	require.ErrorIs(t, err, domain.ErrNotFound)

	// A group admin of the same group resolves it.
	admin := domain.Requester{UserID: uuid.New(), GroupID: &groupID, GroupAdmin: true}
	got, err := repo.FindOne(ctx, domain.ScopedQueryFilter(admin, seeded.ID))
	require.NoError(t, err)
	require.Equal(t, seeded.ID, got.ID)

	// A group admin of another group does not.
	otherGroup := uuid.New()
	foreignAdmin := domain.Requester{UserID: uuid.New(), GroupID: &otherGroup, GroupAdmin: true}
	_, err = repo.FindOne(ctx, domain.ScopedQueryFilter(foreignAdmin, seeded.ID))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Find_GroupListing(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	groupID := uuid.New()
	me := uuid.New()
	peer := uuid.New()

	mine := testhelper.SeedQuery(t, pool, me, &groupID)
	peerPrivate := testhelper.SeedQuery(t, pool, peer, &groupID)

	peerPublic, err := repo.Create(ctx, &domain.Query{
		UserID: peer, GroupID: &groupID, Title: "peer public", IsPublic: true,
	})
	require.NoError(t, err)

	got, err := repo.Find(ctx, domain.GroupQueriesFilter(domain.Requester{UserID: me, GroupID: &groupID}))
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	require.Contains(t, ids, peerPublic.ID)
	require.NotContains(t, ids, mine.ID, "own queries are excluded from the group listing")
	require.NotContains(t, ids, peerPrivate.ID, "private queries are excluded from the group listing")
}

func TestRepo_Update_OverwritesAllFields(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	userID := uuid.New()
	seeded := testhelper.SeedQuery(t, pool, userID, nil)

	updated := seeded
	updated.Apply(domain.QueryFields{Title: "renamed", Phrase: "exact words"})
	require.NoError(t, repo.Update(ctx, &updated))

	got, err := repo.FindOne(ctx, domain.ScopedQueryFilter(domain.Requester{UserID: userID}, seeded.ID))
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Title)
	require.Equal(t, "exact words", got.Phrase)
	require.Empty(t, got.AllWords, "overwrite must clear fields not present in the new set")
	require.Empty(t, got.Hashtags)
}

func TestRepo_Update_Missing(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)

	err := repo.Update(context.Background(), &domain.Query{ID: uuid.New(), Title: "ghost"})
	require.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func TestRepo_Delete_CascadesTweets(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := query.New(pool)
	ctx := context.Background()

	userID := uuid.New()
	seeded := testhelper.SeedQuery(t, pool, userID, nil)
	testhelper.SeedTweet(t, pool, seeded.ID, "alice", "hello", "#hi")

	require.NoError(t, repo.Delete(ctx, seeded.ID))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM tweets WHERE query_id = $1`, seeded.ID).Scan(&count))
	require.Zero(t, count, "tweets must be removed with their query")

	require.ErrorIs(t, repo.Delete(ctx, seeded.ID), domain.ErrNotFound)
}
