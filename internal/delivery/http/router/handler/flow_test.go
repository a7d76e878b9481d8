package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"taskapi/config"
	"taskapi/internal/delivery/http/middleware"
	"taskapi/internal/delivery/http/router"
	"taskapi/internal/delivery/http/router/handler"
	"taskapi/internal/delivery/http/validator"
	"taskapi/internal/domain/entity"
	"taskapi/internal/domain/repository"
	"taskapi/internal/infra/auth"
	"taskapi/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory replacement for the Postgres persistence layer so the
// full register -> login -> task lifecycle can run through the real handlers,
// router, auth middleware, usecases, bcrypt hasher and JWT service.
type memStore struct {
	mu    sync.Mutex
	users []*entity.User
	tasks []*entity.Task
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) UserRepo() repository.UserRepository {
	return &memUserRepo{store: s}
}

func (s *memStore) TaskRepo() repository.TaskRepository {
	return &memTaskRepo{store: s}
}

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	cp := *user
	r.store.users = append(r.store.users, &cp)

	return nil
}

type memTaskRepo struct {
	store *memStore
}

func (r *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	cp := *task
	r.store.tasks = append(r.store.tasks, &cp)

	return nil
}

func (r *memTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, task := range r.store.tasks {
		if task.ID == id {
			cp := *task
			return &cp, nil
		}
	}

	return nil, repository.ErrTaskNotFound
}

func (r *memTaskRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Insertion order matches created_at order.
	tasks := make([]*entity.Task, 0)
	for _, task := range r.store.tasks {
		if task.UserID == userID {
			cp := *task
			tasks = append(tasks, &cp)
		}
	}

	return tasks, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, stored := range r.store.tasks {
		if stored.ID == task.ID {
			// created_at is immutable; only the mutable columns change.
			stored.Title = task.Title
			stored.Description = task.Description
			stored.Status = task.Status
			stored.UpdatedAt = time.Now()
			task.CreatedAt = stored.CreatedAt
			task.UpdatedAt = stored.UpdatedAt

			return nil
		}
	}

	return repository.ErrTaskNotFound
}

func (r *memTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, task := range r.store.tasks {
		if task.ID == id {
			r.store.tasks = append(r.store.tasks[:i], r.store.tasks[i+1:]...)

			return nil
		}
	}

	return repository.ErrTaskNotFound
}

func newFlowServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "flow-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &memStore{}

	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(store, hasher, tokenSvc, logger)
	taskUC := impl.NewTaskService(store, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(userUC, logger),
		TaskHandler:    handler.NewTaskHandler(taskUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	envelope := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}

	return rec, envelope
}

func dataField(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected data object in %v", envelope)

	return data
}

func errorCode(t *testing.T, envelope map[string]any) string {
	t.Helper()

	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "expected error object in %v", envelope)
	code, _ := errInfo["code"].(string)

	return code
}

func loginFor(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec, envelope := doRequest(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	token, _ := dataField(t, envelope)["accessToken"].(string)
	require.NotEmpty(t, token)

	return token
}

// Exercises the whole contract across layers: registration, duplicate rejection,
// login, task creation, ownership enforcement against a second user, status
// update by the owner, and deletion.
func TestTaskLifecycle_EndToEnd(t *testing.T) {
	t.Parallel()

	e := newFlowServer(t)

	// Register two users.
	rec, _ := doRequest(t, e, http.MethodPost, "/auth/register", "",
		`{"name":"Alice","email":"alice@example.com","password":"correct horse battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, envelope := doRequest(t, e, http.MethodPost, "/auth/register", "",
		`{"name":"Alice Again","email":"alice@example.com","password":"another passphrase"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errorCode(t, envelope))

	rec, _ = doRequest(t, e, http.MethodPost, "/auth/register", "",
		`{"name":"Bob","email":"bob@example.com","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Wrong password is rejected with the credentials error.
	rec, envelope = doRequest(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"not the password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, envelope))

	aliceToken := loginFor(t, e, "alice@example.com", "correct horse battery")
	bobToken := loginFor(t, e, "bob@example.com", "hunter2hunter2")

	// Alice creates a task; it starts as OPEN.
	rec, envelope = doRequest(t, e, http.MethodPost, "/tasks", aliceToken,
		`{"title":"Write report","description":"Quarterly numbers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := dataField(t, envelope)
	assert.Equal(t, "OPEN", created["status"])
	taskID, _ := created["id"].(string)
	require.NotEmpty(t, taskID)
	createdAt, _ := created["createdAt"].(string)
	require.NotEmpty(t, createdAt)

	// Bob sees none of Alice's tasks.
	rec, envelope = doRequest(t, e, http.MethodGet, "/tasks", bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, envelope["data"])

	// Bob may neither update nor delete Alice's task.
	rec, envelope = doRequest(t, e, http.MethodPut, "/tasks/"+taskID, bobToken, `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TASK_OWNERSHIP_VIOLATION", errorCode(t, envelope))

	rec, envelope = doRequest(t, e, http.MethodDelete, "/tasks/"+taskID, bobToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TASK_OWNERSHIP_VIOLATION", errorCode(t, envelope))

	// Without a token the task routes are unreachable.
	rec, envelope = doRequest(t, e, http.MethodPut, "/tasks/"+taskID, "", `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, envelope))

	// The owner updates the status.
	rec, envelope = doRequest(t, e, http.MethodPut, "/tasks/"+taskID, aliceToken, `{"status":"IN_PROGRESS"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "IN_PROGRESS", dataField(t, envelope)["status"])

	// The creation timestamp survives the update.
	rec, envelope = doRequest(t, e, http.MethodGet, "/tasks", aliceToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, listed, 1)
	listedTask, _ := listed[0].(map[string]any)
	assert.Equal(t, "IN_PROGRESS", listedTask["status"])
	assert.Equal(t, createdAt, listedTask["createdAt"])

	// The owner deletes the task; deletion is idempotent only in effect, a
	// second attempt reports not found.
	rec, _ = doRequest(t, e, http.MethodDelete, "/tasks/"+taskID, aliceToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, envelope = doRequest(t, e, http.MethodDelete, "/tasks/"+taskID, aliceToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TASK_NOT_FOUND", errorCode(t, envelope))

	rec, envelope = doRequest(t, e, http.MethodGet, "/tasks", aliceToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, envelope["data"])
}
