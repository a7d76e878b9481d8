package impl

import (
	"context"
	"testing"
	"time"

	"taskapi/internal/domain/entity"
	domainerrors "taskapi/internal/domain/errors"
	"taskapi/internal/domain/repository"
	mockRepo "taskapi/internal/mocks/repository"
	"taskapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMocks struct {
	userRepo *mockRepo.MockUserRepository
	taskRepo *mockRepo.MockTaskRepository
	svc      usecase.TaskUsecase
}

func newTaskServiceMocks(t *testing.T) *taskServiceMocks {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().TaskRepo().Return(taskRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return &taskServiceMocks{
		userRepo: userRepo,
		taskRepo: taskRepo,
		svc:      NewTaskService(txManager, testLogger()),
	}
}

func someUser(email string) *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: email,
		Role:  entity.RoleUser,
	}
}

func TestTaskService_CreateTask_ForcesOpenStatus(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, task *entity.Task) {
			task.ID = uuid.New()
			task.CreatedAt = time.Now()
			task.UpdatedAt = time.Now()
		}).
		Return(nil)

	task, err := m.svc.CreateTask(context.Background(), &usecase.CreateTaskInput{
		Title:       "Write report",
		Description: "Quarterly numbers",
	}, "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, entity.TaskStatusOpen, task.Status)
	assert.Equal(t, owner.ID, task.UserID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.NotEqual(t, uuid.Nil, task.ID)
}

func TestTaskService_CreateTask_OwnerNotFound(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	task, err := m.svc.CreateTask(context.Background(), &usecase.CreateTaskInput{Title: "orphan"}, "ghost@example.com")

	require.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	m.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_ListTasks_ReturnsOwnTasks(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")
	expected := []*entity.Task{
		{ID: uuid.New(), UserID: owner.ID, Title: "first", Status: entity.TaskStatusOpen},
		{ID: uuid.New(), UserID: owner.ID, Title: "second", Status: entity.TaskStatusCompleted},
	}

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().FindByUserID(mock.Anything, owner.ID).Return(expected, nil)

	tasks, err := m.svc.ListTasks(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestTaskService_ListTasks_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().FindByUserID(mock.Anything, owner.ID).Return([]*entity.Task{}, nil)

	tasks, err := m.svc.ListTasks(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_UpdateTaskStatus_Success(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")
	task := &entity.Task{
		ID:     uuid.New(),
		UserID: owner.ID,
		Title:  "Write report",
		Status: entity.TaskStatusOpen,
	}

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)
	m.taskRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, updated *entity.Task) {
			assert.Equal(t, entity.TaskStatusInProgress, updated.Status)
		}).
		Return(nil)

	updated, err := m.svc.UpdateTaskStatus(context.Background(), task.ID, entity.TaskStatusInProgress, "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.TaskStatusInProgress, updated.Status)
}

func TestTaskService_UpdateTaskStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)

	updated, err := m.svc.UpdateTaskStatus(context.Background(), uuid.New(), entity.TaskStatus("DONE"), "alice@example.com")

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_UpdateTaskStatus_NotOwner(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	requester := someUser("mallory@example.com")
	task := &entity.Task{
		ID:     uuid.New(),
		UserID: uuid.New(), // owned by someone else
		Title:  "Write report",
		Status: entity.TaskStatusOpen,
	}

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "mallory@example.com").Return(requester, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)

	updated, err := m.svc.UpdateTaskStatus(context.Background(), task.ID, entity.TaskStatusCompleted, "mallory@example.com")

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrTaskOwnershipViolation)
	m.taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// A missing task reports not-found even to a requester who would not own it,
// so existence is never leaked through the ownership check.
func TestTaskService_UpdateTaskStatus_TaskNotFound(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	requester := someUser("mallory@example.com")
	taskID := uuid.New()

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "mallory@example.com").Return(requester, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, taskID).Return(nil, repository.ErrTaskNotFound)

	updated, err := m.svc.UpdateTaskStatus(context.Background(), taskID, entity.TaskStatusCompleted, "mallory@example.com")

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")
	task := &entity.Task{ID: uuid.New(), UserID: owner.ID, Title: "old task"}

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)
	m.taskRepo.EXPECT().Delete(mock.Anything, task.ID).Return(nil)

	err := m.svc.DeleteTask(context.Background(), task.ID, "alice@example.com")

	require.NoError(t, err)
}

func TestTaskService_DeleteTask_TaskNotFound(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	owner := someUser("alice@example.com")
	taskID := uuid.New()

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(owner, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, taskID).Return(nil, repository.ErrTaskNotFound)

	err := m.svc.DeleteTask(context.Background(), taskID, "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	m.taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_DeleteTask_NotOwner(t *testing.T) {
	t.Parallel()

	m := newTaskServiceMocks(t)
	requester := someUser("mallory@example.com")
	task := &entity.Task{ID: uuid.New(), UserID: uuid.New(), Title: "someone else's"}

	m.userRepo.EXPECT().FindByEmail(mock.Anything, "mallory@example.com").Return(requester, nil)
	m.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)

	err := m.svc.DeleteTask(context.Background(), task.ID, "mallory@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskOwnershipViolation)
	m.taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
