package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a fetched result record tagged with the Query that produced it.
// The core reads tweets; only the fetch worker writes them.
type Tweet struct {
	ID        uuid.UUID
	QueryID   uuid.UUID
	Author    string
	Text      string
	Hashtags  string // space-separated literal hashtag tokens
	TweetedAt time.Time
	CreatedAt time.Time
}
