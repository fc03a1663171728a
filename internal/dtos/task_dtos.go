package dtos

import (
	"time"

	"github.com/parthkumar123/backend/internal/models"
)

// ----------------------
// Requests
// ----------------------

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=Pending Completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Category    string     `json:"category" validate:"omitempty,oneof=Work Personal Meeting Development Documentation"`
}

type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=Pending Completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Category    string     `json:"category" validate:"omitempty,oneof=Work Personal Meeting Development Documentation"`
}

// ----------------------
// Responses
// ----------------------

type TaskResponse struct {
	Status string       `json:"status"`
	Task   *models.Task `json:"task"`
}

type TaskListResponse struct {
	Status string         `json:"status"`
	Tasks  []*models.Task `json:"tasks"`
}

type DeleteTaskResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
