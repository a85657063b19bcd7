package query

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

// CreateInput carries the fields of a new saved query.
type CreateInput struct {
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

// Validate checks the input and returns a domain validation error
// describing every violated field.
func (in *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	}
	if !in.hasPredicate() {
		errs = append(errs, domain.FieldError{Field: "query", Message: "at least one search term is required"})
	}
	if in.DateFrom != nil && in.DateTo != nil && in.DateFrom.After(*in.DateTo) {
		errs = append(errs, domain.FieldError{Field: "date_from", Message: "must not be after date_to"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (in *CreateInput) hasPredicate() bool {
	for _, s := range []string{in.AllWords, in.Phrase, in.AnyWord, in.Hashtags, in.Users} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// Fields returns the input as a set of query fields with surrounding
// whitespace stripped.
func (in *CreateInput) Fields() domain.QueryFields {
	return domain.QueryFields{
		Title:    strings.TrimSpace(in.Title),
		AllWords: strings.TrimSpace(in.AllWords),
		Phrase:   strings.TrimSpace(in.Phrase),
		AnyWord:  strings.TrimSpace(in.AnyWord),
		NoneOf:   strings.TrimSpace(in.NoneOf),
		Hashtags: strings.TrimSpace(in.Hashtags),
		Users:    strings.TrimSpace(in.Users),
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
		IsPublic: in.IsPublic,
	}
}

// EditInput carries a full replacement of a saved query's fields.
// Fields absent from the request arrive as zero values and overwrite
// whatever the query held before.
type EditInput struct {
	QueryID uuid.UUID
	CreateInput
}

// Validate checks the input and returns a domain validation error
// describing every violated field.
func (in *EditInput) Validate() error {
	if in.QueryID == uuid.Nil {
		return domain.NewValidationError("query_id", "is required")
	}
	return in.CreateInput.Validate()
}
