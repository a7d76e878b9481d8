package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "taskapi/internal/delivery/context"
	"taskapi/internal/delivery/http/response"
	"taskapi/internal/domain/entity"
	domainerrors "taskapi/internal/domain/errors"
	"taskapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateTaskRequest is the payload for creating a task.
// Status is intentionally absent; new tasks always start as OPEN.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskStatusRequest is the payload for updating a task's status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TaskResponse is the task representation returned to clients.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return out
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	email := deliverycontext.GetUserEmail(c)
	if email == "" {
		return domainerrors.ErrInvalidToken
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}, email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// List handles listing the authenticated user's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	email := deliverycontext.GetUserEmail(c)
	if email == "" {
		return domainerrors.ErrInvalidToken
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks), "Tasks retrieved successfully")
}

// UpdateStatus handles updating the status of an owned task.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	email := deliverycontext.GetUserEmail(c)
	if email == "" {
		return domainerrors.ErrInvalidToken
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	var req UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.uc.UpdateTaskStatus(c.Request().Context(), taskID, entity.TaskStatus(req.Status), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete handles deleting an owned task.
func (h *TaskHandler) Delete(c echo.Context) error {
	email := deliverycontext.GetUserEmail(c)
	if email == "" {
		return domainerrors.ErrInvalidToken
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), taskID, email); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
