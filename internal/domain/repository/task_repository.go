// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByUserID returns all tasks owned by the given user, in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
