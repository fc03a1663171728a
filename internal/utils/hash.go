package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken returns the base64-URL-encoded SHA-256 digest of a raw
// token string. Tokens are stored hashed so a database leak does not
// hand out usable bearer credentials.
func HashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}
