package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Query is a saved tweet search owned by a single user.
// GroupID is a snapshot of the owner's group taken at creation time so that
// group-scoped visibility checks never need an account lookup.
//
// While any RunningJob references a Query it is locked: no field update and
// no deletion until the job is stopped or cleared.
type Query struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	GroupID *uuid.UUID

	Title    string
	AllWords string
	Phrase   string
	AnyWord  string
	NoneOf   string
	Hashtags string
	Users    string
	DateFrom *time.Time
	DateTo   *time.Time
	IsPublic bool

	CreatedAt time.Time
}

// QueryFields is the full mutable field set of a Query.
// Edit overwrites all of them at once; there are no partial updates.
type QueryFields struct {
	Title    string
	AllWords string
	Phrase   string
	AnyWord  string
	NoneOf   string
	Hashtags string
	Users    string
	DateFrom *time.Time
	DateTo   *time.Time
	IsPublic bool
}

// Apply overwrites the query's mutable fields.
func (q *Query) Apply(f QueryFields) {
	q.Title = f.Title
	q.AllWords = f.AllWords
	q.Phrase = f.Phrase
	q.AnyWord = f.AnyWord
	q.NoneOf = f.NoneOf
	q.Hashtags = f.Hashtags
	q.Users = f.Users
	q.DateFrom = f.DateFrom
	q.DateTo = f.DateTo
	q.IsPublic = f.IsPublic
}

// SearchString builds the search-engine query string from the predicate
// fields: plain tokens for all_words, a quoted phrase, an OR group for
// any_word, -exclusions, #hashtags, from: authors and since:/until: bounds.
func (q *Query) SearchString() string {
	var parts []string

	if fields := strings.Fields(q.AllWords); len(fields) > 0 {
		parts = append(parts, fields...)
	}
	if phrase := strings.TrimSpace(q.Phrase); phrase != "" {
		parts = append(parts, `"`+phrase+`"`)
	}
	if fields := strings.Fields(q.AnyWord); len(fields) > 0 {
		parts = append(parts, "("+strings.Join(fields, " OR ")+")")
	}
	for _, tok := range strings.Fields(q.NoneOf) {
		parts = append(parts, "-"+tok)
	}
	for _, tag := range strings.Fields(q.Hashtags) {
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		parts = append(parts, tag)
	}
	for _, user := range strings.Fields(q.Users) {
		parts = append(parts, "from:"+strings.TrimPrefix(user, "@"))
	}
	if q.DateFrom != nil {
		parts = append(parts, "since:"+q.DateFrom.Format("2006-01-02"))
	}
	if q.DateTo != nil {
		parts = append(parts, "until:"+q.DateTo.Format("2006-01-02"))
	}

	return strings.Join(parts, " ")
}

// Keywords returns the search-intent summary string used by the analyzer:
// the predicate fields space-joined and trimmed. It describes what was asked
// for, not what came back.
func (q *Query) Keywords() string {
	joined := q.AllWords + " " + q.AnyWord + " " + q.Phrase + " " + q.Users + " " + q.Hashtags
	return strings.TrimSpace(joined)
}
