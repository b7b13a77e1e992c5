package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx extracts the authenticated user from the context.
// Returns nil and false if the value is missing, nil, or of the wrong type.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// UserIDFromCtx extracts the authenticated user's ID from the context.
// Returns uuid.Nil and false if there is no user or its ID is nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	u, ok := UserFromCtx(ctx)
	if !ok || u.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return u.ID, true
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
