package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTask_IsOwnedBy(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	task := &Task{ID: uuid.New(), UserID: ownerID}

	assert.True(t, task.IsOwnedBy(ownerID))
	assert.False(t, task.IsOwnedBy(uuid.New()))
}

func TestTaskStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, status := range []TaskStatus{TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted} {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, TaskStatus("DONE").IsValid())
	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("open").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("admin").IsValid())
}
