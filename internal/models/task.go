package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type TaskCategory string

const (
	TaskCategoryWork          TaskCategory = "Work"
	TaskCategoryPersonal      TaskCategory = "Personal"
	TaskCategoryMeeting       TaskCategory = "Meeting"
	TaskCategoryDevelopment   TaskCategory = "Development"
	TaskCategoryDocumentation TaskCategory = "Documentation"
)

// Task is a to-do item owned by a single user.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Category    TaskCategory `json:"category"`
	CreatedBy   uuid.UUID    `json:"created_by"`
}
