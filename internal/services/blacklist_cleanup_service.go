package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/parthkumar123/backend/internal/repositories"
	"github.com/parthkumar123/backend/internal/utils"
)

const cleanupRetryDelay = 3 * time.Second

// BlacklistCleanupService deletes blacklist rows past their retention
// horizon each night. Lookups already ignore expired rows, so this is
// purely about keeping the table small.
type BlacklistCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type blacklistCleanupService struct {
	blacklistRepo repositories.BlacklistRepository
}

func NewBlacklistCleanupService(blacklistRepo repositories.BlacklistRepository) BlacklistCleanupService {
	return &blacklistCleanupService{blacklistRepo: blacklistRepo}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *blacklistCleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("blacklist cleanup hit transient DB error; retrying once")
			time.Sleep(cleanupRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

func (s *blacklistCleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.runWithRetry(ctx, s.blacklistRepo.CleanupExpired); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup expired blacklisted tokens")
		return err
	}
	utils.Logger.Info("Daily blacklisted-token cleanup completed successfully.")
	return nil
}
