// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a single registered account.
// The password is stored only as a bcrypt hash; the plaintext never leaves the
// registration/login input handling.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned by the database at creation.
	Name         string    // The user's display name.
	Email        string    // The user's email, unique across all users and used as the login identifier.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized to clients.
	Role         Role      // The user's role. Only RoleUser exists in the current scope.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
