// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work owned by exactly one user. The owner is fixed at creation;
// only the owner may mutate or delete the task.
type Task struct {
	ID          uuid.UUID  // The unique identifier for the task, assigned by the database at creation.
	UserID      uuid.UUID  // Links this task to the User that owns it.
	Title       string     // Short summary of the task. Always non-empty.
	Description string     // Optional free-form details.
	Status      TaskStatus // Current state of the task. New tasks always start as TaskStatusOpen.
	CreatedAt   time.Time  // Timestamp of when this task was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this task.
}

// IsOwnedBy reports whether the task belongs to the given user.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
