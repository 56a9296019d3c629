package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the cache key for a rendered artifact. docHash is the
// hash of the vector document, which fully determines the output together
// with the format and scale.
func ArtifactKey(docHash, format string, scale float64) string {
	return fmt.Sprintf("artifact:%s:%s:%s", format, fmt.Sprintf("%.3f", scale), docHash)
}
