package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
	"github.com/tweetsight/backend/internal/service/query"
)

const dateLayout = "2006-01-02"

// queryRequest is the JSON body of create and edit requests. Dates use the
// YYYY-MM-DD layout; empty strings mean unset.
type queryRequest struct {
	Title    string `json:"title"`
	AllWords string `json:"all_words"`
	Phrase   string `json:"phrase"`
	AnyWord  string `json:"any_word"`
	NoneOf   string `json:"none_of"`
	Hashtags string `json:"hashtags"`
	Users    string `json:"users"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	IsPublic bool   `json:"is_public"`
}

func (req *queryRequest) toInput() (query.CreateInput, error) {
	dateFrom, err := parseDate(req.DateFrom)
	if err != nil {
		return query.CreateInput{}, err
	}
	dateTo, err := parseDate(req.DateTo)
	if err != nil {
		return query.CreateInput{}, err
	}

	return query.CreateInput{
		Title:    req.Title,
		AllWords: req.AllWords,
		Phrase:   req.Phrase,
		AnyWord:  req.AnyWord,
		NoneOf:   req.NoneOf,
		Hashtags: req.Hashtags,
		Users:    req.Users,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		IsPublic: req.IsPublic,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryResponse is the JSON rendering of a saved query.
type queryResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	AllWords  string  `json:"all_words"`
	Phrase    string  `json:"phrase"`
	AnyWord   string  `json:"any_word"`
	NoneOf    string  `json:"none_of"`
	Hashtags  string  `json:"hashtags"`
	Users     string  `json:"users"`
	DateFrom  *string `json:"date_from"`
	DateTo    *string `json:"date_to"`
	IsPublic  bool    `json:"is_public"`
	CreatedAt string  `json:"created_at"`
}

func toQueryResponse(q *domain.Query) queryResponse {
	return queryResponse{
		ID:        q.ID.String(),
		Title:     q.Title,
		AllWords:  q.AllWords,
		Phrase:    q.Phrase,
		AnyWord:   q.AnyWord,
		NoneOf:    q.NoneOf,
		Hashtags:  q.Hashtags,
		Users:     q.Users,
		DateFrom:  formatDate(q.DateFrom),
		DateTo:    formatDate(q.DateTo),
		IsPublic:  q.IsPublic,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
	}
}

func toQueryResponses(queries []*domain.Query) []queryResponse {
	out := make([]queryResponse, 0, len(queries))
	for _, q := range queries {
		out = append(out, toQueryResponse(q))
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// queryListResponse mirrors the listing payload: the visible queries plus the
// id of the query behind the caller's running job, null when idle.
type queryListResponse struct {
	Queries        []queryResponse `json:"queries"`
	RunningQueryID *string         `json:"running_query_id"`
}

func toQueryListResponse(list query.QueryList) queryListResponse {
	resp := queryListResponse{Queries: toQueryResponses(list.Queries)}
	if list.RunningQueryID != nil {
		id := list.RunningQueryID.String()
		resp.RunningQueryID = &id
	}
	return resp
}

// tweetResponse is the JSON rendering of a fetched tweet.
type tweetResponse struct {
	ID       string `json:"id"`
	User     string `json:"user"`
	Text     string `json:"text"`
	Hashtags string `json:"hashtags"`
	Date     string `json:"date"`
}

func toTweetResponses(tweets []*domain.Tweet) []tweetResponse {
	out := make([]tweetResponse, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, tweetResponse{
			ID:       t.ID.String(),
			User:     t.Author,
			Text:     t.Text,
			Hashtags: t.Hashtags,
			Date:     t.TweetedAt.Format(time.RFC3339),
		})
	}
	return out
}

func parseQueryID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
