package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parthkumar123/backend/internal/config"
)

const TokenIssuer = "task-service"

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

// JWTService issues and verifies signed access tokens. Verification
// is purely structural (signature + expiry); whether a token has been
// revoked is the blacklist's business, not this service's.
type JWTService interface {
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken returns the embedded user ID, or an error that
	// wraps jwt.ErrTokenExpired when the token is merely expired.
	ValidateToken(tokenString string) (uuid.UUID, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{
		secret:      cfg.JWTSecret,
		tokenExpiry: cfg.TokenExpiry,
	}
}

func (j *jwtService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(j.tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *jwtService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing subject claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed subject claim: %w", err)
	}
	return userID, nil
}
