package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/parthkumar123/backend/internal/models"
	"github.com/parthkumar123/backend/internal/utils"
)

const uniqueViolationCode = "23505"

// UserRepository is the credential store. Email uniqueness is enforced
// by a unique index on users(email); concurrent signups race at the
// database and the loser surfaces ErrEmailExists.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns nil, nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
        INSERT INTO users (id, email, password_hash)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return utils.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, email, password_hash
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)

	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
