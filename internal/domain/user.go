package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account of the content site.
// PasswordHash is only populated by credential lookups.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Proficiency  *Proficiency
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the public projection of a user embedded in article responses.
type UserRef struct {
	ID    uuid.UUID
	Name  string
	Email string
}
