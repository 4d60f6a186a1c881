package middleware

import (
	"context"

	"github.com/The0nly0ne1/MemeVotingApp/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser injects the authenticated user's id into the context.
func WithUser(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userContextKey, id)
}

// UserFromContext returns the authenticated user's id and whether one is set.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userContextKey).(domain.UserID)
	return id, ok
}
