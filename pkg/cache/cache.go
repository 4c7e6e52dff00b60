package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-side cache layer. Implementations may be
// Redis or in-memory; a cache miss must leave dest untouched.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns found=false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
