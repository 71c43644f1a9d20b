// Package cache provides pluggable byte caches for rendered artifacts.
//
// The serve command renders graphs to PNG, SVG, and HTML on demand; caching
// keyed on the graph content hash plus render parameters makes repeat
// requests cheap. Backends: a file cache for single-host setups, Redis for
// shared deployments, and a null cache that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with optional expiry.
type Cache interface {
	// Get returns the cached data and whether the key was present. A miss
	// is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
