package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/domain"
)

type ctxKey string

const (
	requesterKey ctxKey = "requester"
	requestIDKey ctxKey = "request_id"
)

// WithRequester stores the authenticated requester in the context.
func WithRequester(ctx context.Context, req domain.Requester) context.Context {
	return context.WithValue(ctx, requesterKey, req)
}

// RequesterFromCtx extracts the requester from the context.
// Returns false if the value is missing, has a nil user id, or a wrong type.
func RequesterFromCtx(ctx context.Context) (domain.Requester, bool) {
	req, ok := ctx.Value(requesterKey).(domain.Requester)
	if !ok || req.UserID == uuid.Nil {
		return domain.Requester{}, false
	}
	return req, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
