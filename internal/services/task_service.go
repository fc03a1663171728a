package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/parthkumar123/backend/internal/dtos"
	"github.com/parthkumar123/backend/internal/models"
	"github.com/parthkumar123/backend/internal/repositories"
	"github.com/parthkumar123/backend/internal/utils"
)

// TaskService implements user-scoped task CRUD. A task another user
// owns is indistinguishable from one that does not exist.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, req dtos.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, req dtos.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

type taskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, req dtos.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      statusOrDefault(req.Status),
		Priority:    priorityOrDefault(req.Priority),
		Category:    categoryOrDefault(req.Category),
		CreatedBy:   userID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, utils.ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, userID, taskID uuid.UUID, req dtos.UpdateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      statusOrDefault(req.Status),
		Priority:    priorityOrDefault(req.Priority),
		Category:    categoryOrDefault(req.Category),
		CreatedBy:   userID,
	}
	updated, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	deleted, err := s.taskRepo.Delete(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrTaskNotFound
	}
	return nil
}

func statusOrDefault(s string) models.TaskStatus {
	if s == "" {
		return models.TaskStatusPending
	}
	return models.TaskStatus(s)
}

func priorityOrDefault(p string) models.TaskPriority {
	if p == "" {
		return models.TaskPriorityLow
	}
	return models.TaskPriority(p)
}

func categoryOrDefault(c string) models.TaskCategory {
	if c == "" {
		return models.TaskCategoryWork
	}
	return models.TaskCategory(c)
}
