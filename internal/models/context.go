package models

import (
	"context"
)

type userContextKey struct{}

// SetUserContext returns a child context carrying the resolved API user.
func SetUserContext(ctx context.Context, user *UserProfile) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUserFromContext returns the user stored by SetUserContext, or nil.
func GetUserFromContext(ctx context.Context) *UserProfile {
	user, _ := ctx.Value(userContextKey{}).(*UserProfile)
	return user
}
