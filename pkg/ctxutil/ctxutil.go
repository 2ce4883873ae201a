// Package ctxutil carries request-scoped values: the authenticated curator,
// the request id, the anonymous client id and the resolved display language.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
	clientIDKey  ctxKey = "client_id"
	languageKey  ctxKey = "language"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the authenticated user's role.
func WithRole(ctx context.Context, role domain.UserRole) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx returns the role, or "" when the request is anonymous.
func RoleFromCtx(ctx context.Context) domain.UserRole {
	r, _ := ctx.Value(roleKey).(domain.UserRole)
	return r
}

// IsAdminCtx reports whether the request carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx).IsAdmin()
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

// WithClientID stores the anonymous browser id taken from the client cookie.
func WithClientID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

// ClientIDFromCtx returns the client id and whether one is present.
func ClientIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clientIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithLanguage stores the display language resolved for this request.
func WithLanguage(ctx context.Context, lang domain.Language) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// LanguageFromCtx returns the request language, or domain.DefaultLanguage.
func LanguageFromCtx(ctx context.Context) domain.Language {
	if l, ok := ctx.Value(languageKey).(domain.Language); ok && l.IsValid() {
		return l
	}
	return domain.DefaultLanguage
}
