package models

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistedToken represents an access token revoked by logout.
// Entries self-expire: anything older than the retention window is
// ignored by lookups and deleted by the nightly cleanup job.
type BlacklistedToken struct {
	ID        uuid.UUID `json:"id"`
	TokenHash string    `json:"token_hash"` // SHA-256 of the raw bearer token
	CreatedAt time.Time `json:"created_at"`
}

// BlacklistRetention is how long a revoked token stays on the
// blacklist. It must be at least as long as the access-token TTL, so
// a revoked token can never outlive its blacklist entry.
const BlacklistRetention = 24 * time.Hour
