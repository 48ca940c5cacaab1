// Package cache provides a small TTL string cache used to hold external
// API responses between refreshes. Values are JSON documents; callers
// own the encoding.
package cache

import (
	"context"
	"time"
)

// Cache is a namespaced TTL key-value store.
type Cache interface {
	// Get returns the cached value for key. The second return is false
	// on a miss or expired entry.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes key.
	Delete(ctx context.Context, key string) error
}
