// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, OTP generation and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context.
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key used to store the raw bearer token of the request.
// It is forwarded to the scorer so the scorer can call back on behalf of
// the same user.
var TokenCtxKey = contextKey("token")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext retrieves the raw bearer token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// WithAuth stores the authenticated user id and the raw token in ctx.
func WithAuth(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, TokenCtxKey, token)
}
