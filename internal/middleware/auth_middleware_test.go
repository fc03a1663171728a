package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parthkumar123/backend/internal/utils"
)

type fakeChecker struct {
	revoked map[string]bool
	err     error
}

func (f *fakeChecker) IsTokenBlacklisted(_ context.Context, rawToken string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[rawToken], nil
}

type fakeValidator struct {
	userID uuid.UUID
	err    error
}

func (f *fakeValidator) ValidateToken(string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.userID, nil
}

func gateRequest(t *testing.T, checker BlacklistChecker, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()

	var seenUserID *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := UserIDFromContext(r.Context()); ok {
			seenUserID = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(checker, validator, true)(next)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seenUserID
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "token123"} {
		rec, seen := gateRequest(t, &fakeChecker{}, &fakeValidator{userID: uuid.New()}, header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Nil(t, seen)

		body := decodeError(t, rec)
		require.Equal(t, utils.StatusError, body.Status)
		require.Contains(t, body.Message, "Token is missing")
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	checker := &fakeChecker{revoked: map[string]bool{"revoked-token": true}}
	rec, seen := gateRequest(t, checker, &fakeValidator{userID: uuid.New()}, "Bearer revoked-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, seen)
	require.Contains(t, decodeError(t, rec).Message, "invalidated")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	validator := &fakeValidator{err: errors.New("signature is invalid")}
	rec, seen := gateRequest(t, &fakeChecker{}, validator, "Bearer bad-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, seen)

	body := decodeError(t, rec)
	require.Contains(t, body.Message, "Invalid token")
	// Diagnostics were enabled, so the sub-reason rides along.
	require.Contains(t, body.Error, "signature is invalid")
}

func TestAuthMiddleware_BlacklistCheckRunsBeforeValidation(t *testing.T) {
	// A revoked token is rejected as revoked even when it would also
	// fail structural validation.
	checker := &fakeChecker{revoked: map[string]bool{"t": true}}
	validator := &fakeValidator{err: errors.New("should not be reached")}

	rec, _ := gateRequest(t, checker, validator, "Bearer t")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, decodeError(t, rec).Message, "invalidated")
}

func TestAuthMiddleware_StoreError(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db down")}
	rec, seen := gateRequest(t, checker, &fakeValidator{userID: uuid.New()}, "Bearer t")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Nil(t, seen)
}

func TestAuthMiddleware_ValidTokenAttachesUserID(t *testing.T) {
	userID := uuid.New()
	rec, seen := gateRequest(t, &fakeChecker{}, &fakeValidator{userID: userID}, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, userID, *seen)
}

func TestExtractBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, ok := ExtractBearerToken(req)
	require.True(t, ok)
	require.Equal(t, "abc.def.ghi", token)
}
