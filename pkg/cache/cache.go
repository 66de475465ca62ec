// Package cache stores graph snapshots and rendered artifacts by content
// hash.
//
// Keys are derived from snapshot bytes with SHA-256, so identical graphs
// share entries regardless of where they were produced. Four backends are
// available:
//
//   - [FileCache]: per-user cache directory, used by the CLI
//   - [RedisCache]: shared cache with native TTL support
//   - [MongoCache]: shared cache with TTL via an expiry index
//   - [NullCache]: disables caching entirely
//
// All backends implement [Cache] and are safe for concurrent use to the
// extent their underlying store is.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is a byte store with optional expiry. A zero ttl means the entry
// never expires. Get reports a miss with a false second return rather than
// an error, so callers can fall through to recomputation without error
// inspection.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SnapshotKey builds the cache key for snapshot bytes addressed by their
// content hash.
func SnapshotKey(hash string) string {
	return "snapshot:" + hash
}

// RenderKey builds the cache key for an artifact rendered from the
// snapshot with the given content hash in the given format (e.g. "svg").
func RenderKey(hash, format string) string {
	return fmt.Sprintf("render:%s:%s", hash, format)
}
