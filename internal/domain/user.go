package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a curator account. Public visitors and reporters are anonymous.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuditRecord logs a curator mutation on a case.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// LanguagePreference is the persisted display language of an anonymous
// browser client, keyed by a client cookie.
type LanguagePreference struct {
	ClientID  uuid.UUID
	Language  Language
	UpdatedAt time.Time
}
