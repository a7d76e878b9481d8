package postgres

import (
	"testing"
	"time"

	"taskapi/internal/domain/entity"
	"taskapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Update persists the task through a full-row Save, so the write mapper must
// carry the row's original timestamps; dropping CreatedAt there would rewrite
// created_at to the zero time on every status change and reorder listings.
func TestFromTaskDomain_CarriesTimestamps(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updatedAt := time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)
	task := &entity.Task{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      entity.TaskStatusInProgress,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	taskM := fromTaskDomain(task)

	require.NotNil(t, taskM)
	assert.Equal(t, createdAt, taskM.CreatedAt)
	assert.False(t, taskM.CreatedAt.IsZero())
	assert.Equal(t, updatedAt, taskM.UpdatedAt)
}

func TestTaskMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	original := &entity.Task{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      entity.TaskStatusOpen,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	assert.Equal(t, original, toTaskDomain(fromTaskDomain(original)))
}

func TestTaskMapper_NilSafety(t *testing.T) {
	t.Parallel()

	assert.Nil(t, fromTaskDomain(nil))
	assert.Nil(t, toTaskDomain(nil))
}

func TestToTaskDomain_MapsStatus(t *testing.T) {
	t.Parallel()

	taskM := &model.TaskModel{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Write report",
		Status: "COMPLETED",
	}

	task := toTaskDomain(taskM)

	require.NotNil(t, task)
	assert.Equal(t, entity.TaskStatusCompleted, task.Status)
}
