package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/parthkumar123/backend/internal/utils"
)

type contextKey string

const ContextKeyUserID = contextKey("userID")

// TokenValidator is the structural half of the gate: signature and
// expiry. Satisfied by services.JWTService.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

// BlacklistChecker is the revocation half. Satisfied by
// repositories.BlacklistRepository.
type BlacklistChecker interface {
	IsTokenBlacklisted(ctx context.Context, rawToken string) (bool, error)
}

// AuthMiddleware guards protected endpoints. Checks run in order and
// short-circuit: bearer extraction, blacklist, then signature/expiry.
// On success the user ID is attached to the request context.
//
// The caller-visible 401 bodies stay uniform; the specific failure
// reason is only echoed in the diagnostic field outside production.
func AuthMiddleware(blacklist BlacklistChecker, tokens TokenValidator, showDiagnostics bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := ExtractBearerToken(r)
			if !ok {
				utils.RespondError(
					w, http.StatusUnauthorized,
					"Authentication failed. Token is missing.", showDiagnostics,
				)
				return
			}

			revoked, err := blacklist.IsTokenBlacklisted(r.Context(), tokenStr)
			if err != nil {
				utils.RespondError(
					w, http.StatusInternalServerError,
					"An error occurred while authenticating the request.", showDiagnostics, err,
				)
				return
			}
			if revoked {
				utils.RespondError(
					w, http.StatusUnauthorized,
					"Authentication failed. Token has been invalidated.", showDiagnostics,
				)
				return
			}

			userID, err := tokens.ValidateToken(tokenStr)
			if err != nil {
				utils.RespondError(
					w, http.StatusUnauthorized,
					"Authentication failed. Invalid token.", showDiagnostics, err,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearerToken pulls the token out of "Authorization: Bearer <t>".
func ExtractBearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(h, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// UserIDFromContext recovers the authenticated user ID set by
// AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return userID, ok
}
