// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskapi/internal/delivery/context"
	"taskapi/internal/domain/entity"
	domainerrors "taskapi/internal/domain/errors"
	"taskapi/internal/domain/repository"
	"taskapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask creates a new task owned by the resolved user.
// The status is forced to OPEN regardless of any client-supplied value.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput, ownerEmail string) (*entity.Task, error) {
	srv.log(ctx).Info("Creating task", slog.String("ownerEmail", ownerEmail))

	var createdTask *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		taskRepo := repoFactory.TaskRepo()

		// 1. Resolve the owner.
		owner, err := userRepo.FindByEmail(ctx, ownerEmail)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("task owner not found")
			}

			return errors.Wrap(err, "failed to find task owner")
		}

		// 2. Create the task. The owner is fixed here and never changes.
		newTask := &entity.Task{
			UserID:      owner.ID,
			Title:       input.Title,
			Description: input.Description,
			Status:      entity.TaskStatusOpen,
		}

		if err := taskRepo.Create(ctx, newTask); err != nil {
			return errors.WithStack(err)
		}
		createdTask = newTask

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute task creation transaction", "error", err, "ownerEmail", ownerEmail)

		return nil, errors.Wrap(err, "failed to execute task creation transaction")
	}
	srv.log(ctx).Debug("Task created successfully", slog.Any("taskID", createdTask.ID))

	return createdTask, nil
}

// ListTasks returns all tasks owned by the resolved user, oldest first.
// A user with zero tasks yields an empty slice, not an error.
func (srv *taskService) ListTasks(ctx context.Context, ownerEmail string) ([]*entity.Task, error) {
	srv.log(ctx).Debug("Listing tasks", slog.String("ownerEmail", ownerEmail))

	var tasks []*entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		taskRepo := repoFactory.TaskRepo()

		owner, err := userRepo.FindByEmail(ctx, ownerEmail)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("task owner not found")
			}

			return errors.Wrap(err, "failed to find task owner")
		}

		tasks, err = taskRepo.FindByUserID(ctx, owner.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list tasks")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute task listing")
	}

	return tasks, nil
}

// UpdateTaskStatus changes the status of a task after enforcing the ownership invariant.
func (srv *taskService) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status entity.TaskStatus, requesterEmail string) (*entity.Task, error) {
	srv.log(ctx).Info("Updating task status",
		slog.Any("taskID", taskID),
		slog.String("status", status.String()),
		slog.String("requesterEmail", requesterEmail),
	)

	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status: " + status.String())
	}

	var updatedTask *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		task, err := srv.resolveOwnedTask(ctx, repoFactory, taskID, requesterEmail)
		if err != nil {
			return err
		}

		task.Status = status
		if err := repoFactory.TaskRepo().Update(ctx, task); err != nil {
			return errors.WithStack(err)
		}
		updatedTask = task

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute task status update")
	}
	srv.log(ctx).Debug("Task status updated", slog.Any("taskID", taskID))

	return updatedTask, nil
}

// DeleteTask removes a task after enforcing the ownership invariant.
func (srv *taskService) DeleteTask(ctx context.Context, taskID uuid.UUID, requesterEmail string) error {
	srv.log(ctx).Info("Deleting task",
		slog.Any("taskID", taskID),
		slog.String("requesterEmail", requesterEmail),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		task, err := srv.resolveOwnedTask(ctx, repoFactory, taskID, requesterEmail)
		if err != nil {
			return err
		}

		if err := repoFactory.TaskRepo().Delete(ctx, task.ID); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute task deletion")
	}
	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID))

	return nil
}

// resolveOwnedTask resolves the requester and the task, then enforces the ownership
// invariant shared by every mutation: existence is checked before ownership, so a
// non-owner acting on a missing task still sees 'task not found'.
func (srv *taskService) resolveOwnedTask(ctx context.Context, repoFactory repository.RepositoryFactory, taskID uuid.UUID, requesterEmail string) (*entity.Task, error) {
	userRepo := repoFactory.UserRepo()
	taskRepo := repoFactory.TaskRepo()

	// 1. Resolve the requester. The principal may have been removed between
	// token issuance and use.
	requester, err := userRepo.FindByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("requester not found")
		}

		return nil, errors.Wrap(err, "failed to find requester")
	}

	// 2. Fetch the task.
	task, err := taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	// 3. Enforce ownership.
	if !task.IsOwnedBy(requester.ID) {
		return nil, domainerrors.ErrTaskOwnershipViolation.WrapMessage("requester is not the task owner")
	}

	return task, nil
}
