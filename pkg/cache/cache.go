// Package cache provides artifact caching for rendered game pieces.
//
// Rendering a full piece tree with text fitting and rotation is the
// expensive part of the pipeline; the cache keys encoded artifacts by
// manifest content hash and render options so unchanged pieces are
// served from disk.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys with an optional
// TTL.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ArtifactKey builds the cache key for a rendered artifact from the
// manifest content hash and the options that affect the output.
func ArtifactKey(manifestHash string, opts any) string {
	return hashKey("artifact:"+manifestHash, opts)
}

// hashKey hashes the JSON encoding of parts under a prefix.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h[:]))
}
