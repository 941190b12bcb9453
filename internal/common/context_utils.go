package common

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserNameKey contextKey = "user_name"
)

// WithUser attaches the authenticated identity to ctx.
func WithUser(ctx context.Context, userID uuid.UUID, name string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UserNameKey, name)
}

// GetUserIDFromContext extracts the authenticated user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserNameFromContext extracts the display name carried by the session token
func GetUserNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(UserNameKey).(string)
	return name, ok
}

// SanitizeHTMLElement neutralises markup in user supplied text. Only the
// opening angle bracket is escaped so ordinary punctuation survives.
func SanitizeHTMLElement(input string) string {
	return strings.ReplaceAll(input, "<", "&lt;")
}

// SanitizeHTMLField sanitizes an optional string field in place.
func SanitizeHTMLField(field *string) {
	if field != nil && *field != "" {
		*field = SanitizeHTMLElement(*field)
	}
}
