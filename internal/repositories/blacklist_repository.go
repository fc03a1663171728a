package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/parthkumar123/backend/internal/models"
	"github.com/parthkumar123/backend/internal/utils"
)

// BlacklistRepository is the revocation store for logged-out tokens.
//
// Tokens are stored as SHA-256 hashes. Revocation is idempotent:
// blacklisting the same token twice may leave duplicate rows, which is
// fine because IsTokenBlacklisted is an existence check. Entries past
// the retention window are invisible to lookups even before the
// nightly cleanup deletes them.
type BlacklistRepository interface {
	BlacklistToken(ctx context.Context, rawToken string) error
	IsTokenBlacklisted(ctx context.Context, rawToken string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

type blacklistRepository struct {
	db DB
}

func NewBlacklistRepository(db DB) BlacklistRepository {
	return &blacklistRepository{db: db}
}

func (r *blacklistRepository) BlacklistToken(ctx context.Context, rawToken string) error {
	query := `
        INSERT INTO blacklisted_tokens (id, token_hash, created_at)
        VALUES ($1, $2, NOW())
    `
	_, err := r.db.Exec(ctx, query, uuid.New(), utils.HashToken(rawToken))
	return err
}

func (r *blacklistRepository) IsTokenBlacklisted(ctx context.Context, rawToken string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM blacklisted_tokens
            WHERE token_hash = $1 AND created_at > NOW() - make_interval(secs => $2)
        )
    `
	row := r.db.QueryRow(ctx, query, utils.HashToken(rawToken), models.BlacklistRetention.Seconds())

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *blacklistRepository) CleanupExpired(ctx context.Context) error {
	query := `DELETE FROM blacklisted_tokens WHERE created_at <= NOW() - make_interval(secs => $1)`
	_, err := r.db.Exec(ctx, query, models.BlacklistRetention.Seconds())
	return err
}
