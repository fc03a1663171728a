package models

import "github.com/google/uuid"

// User is an account keyed by its normalized (lowercased, trimmed)
// email address. PasswordHash is a bcrypt hash and must never be
// serialized into a response.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}
