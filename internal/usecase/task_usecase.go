// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"taskapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a new task.
// There is deliberately no status field: every new task starts as OPEN
// regardless of what the client sends.
type CreateTaskInput struct {
	Title       string
	Description string
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation takes the authenticated caller's email, resolved from the
// access token by the delivery layer; ownership of the referenced task is
// enforced on every mutation.
type TaskUsecase interface {
	// CreateTask creates a task owned by the given user.
	CreateTask(ctx context.Context, input *CreateTaskInput, ownerEmail string) (*entity.Task, error)

	// ListTasks returns all tasks owned by the given user, oldest first.
	ListTasks(ctx context.Context, ownerEmail string) ([]*entity.Task, error)

	// UpdateTaskStatus changes the status of a task. Only the owner may do so.
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status entity.TaskStatus, requesterEmail string) (*entity.Task, error)

	// DeleteTask removes a task. Only the owner may do so.
	DeleteTask(ctx context.Context, taskID uuid.UUID, requesterEmail string) error
}
