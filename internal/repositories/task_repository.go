package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/parthkumar123/backend/internal/models"
)

// TaskRepository persists tasks. Every read and write is scoped to
// the owning user; a task belonging to someone else behaves exactly
// like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) (bool, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type taskRepository struct {
	db DB
}

func NewTaskRepository(db DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
        INSERT INTO tasks (id, title, description, due_date, status, priority, category, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.Priority,
		task.Category,
		task.CreatedBy,
	)
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	query := `
        SELECT id, title, description, due_date, status, priority, category, created_by
        FROM tasks
        WHERE id = $1 AND created_by = $2
    `
	row := r.db.QueryRow(ctx, query, id, userID)

	task, err := scanTask(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	query := `
        SELECT id, title, description, due_date, status, priority, category, created_by
        FROM tasks
        WHERE created_by = $1
        ORDER BY due_date NULLS LAST, title
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) (bool, error) {
	query := `
        UPDATE tasks
        SET title = $1, description = $2, due_date = $3, status = $4, priority = $5, category = $6
        WHERE id = $7 AND created_by = $8
    `
	tag, err := r.db.Exec(ctx, query,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.Priority,
		task.Category,
		task.ID,
		task.CreatedBy,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *taskRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND created_by = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Status,
		&t.Priority,
		&t.Category,
		&t.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
