package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/parthkumar123/backend/internal/config"
	"github.com/parthkumar123/backend/internal/models"
	"github.com/parthkumar123/backend/internal/repositories"
	"github.com/parthkumar123/backend/internal/utils"
)

// AuthService implements the signup/login/logout workflow on top of
// the credential store, the token service and the blacklist.
type AuthService interface {
	// Signup creates a credential. Returns utils.ErrEmailExists when
	// the normalized email is already taken.
	Signup(ctx context.Context, email, password string) error

	// Login verifies a credential and issues a token. Unknown email
	// and wrong password both come back as utils.ErrInvalidCredentials
	// so the response never leaks whether an account exists.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout blacklists the presented token string. The token is not
	// verified first; revoking a string that was never a valid token
	// is a harmless no-op.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo      repositories.UserRepository
	blacklistRepo repositories.BlacklistRepository
	jwtService    JWTService
	cfg           *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	blacklistRepo repositories.BlacklistRepository,
	jwtService JWTService,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		jwtService:    jwtService,
		cfg:           cfg,
	}
}

// NormalizeEmail is the uniqueness key: lowercased and trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, email, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
	}
	return s.userRepo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", utils.ErrInvalidCredentials
	}

	return s.jwtService.GenerateToken(user.ID)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.blacklistRepo.BlacklistToken(ctx, token)
}
