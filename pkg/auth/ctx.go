package auth

import (
	"context"
)

type contextKey string

const (
	userContextKey  contextKey = "authenticated_user"
	tokenContextKey contextKey = "bearer_token"
)

// WithUser adds the caller identity to the context
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey, username)
}

// UserFromContext retrieves the caller identity from the context
func UserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userContextKey).(string)
	return username, ok
}

// WithToken stores the raw bearer token forwarded to the backend.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok && token != ""
}
