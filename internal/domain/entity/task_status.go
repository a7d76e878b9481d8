// Package entity contains the core business objects of the project.
package entity

// TaskStatus represents the state of a task within its lifecycle.
type TaskStatus string

const (
	// TaskStatusOpen is the initial status forced onto every new task.
	TaskStatusOpen TaskStatus = "OPEN"
	// TaskStatusInProgress indicates a task being actively worked on.
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	// TaskStatusCompleted indicates a finished task.
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}
