package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the cache key for an artifact rendered from source.
// The key format is: artifact:<format>:<hash(source)>
func ArtifactKey(source, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, Hash([]byte(source)))
}

// keyTypeOf returns the key's leading segment, used to label cache events.
func keyTypeOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
