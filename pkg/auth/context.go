package auth

import (
	"context"
	"errors"
)

type contextKey string

const userContextKey contextKey = "user"

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID string
	Email  string
	Roles  []string
}

// SetUserInContext attaches the user to the context.
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext retrieves the user from the context.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("no user in context")
	}
	return user, nil
}
