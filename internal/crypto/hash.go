package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the SHA-256 hex digest of s. It is used for one-way
// checks such as PIN verification.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
