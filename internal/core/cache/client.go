// Package cache defines the cache client interface.
package cache

import (
	"context"
	"time"
)

// Client is a byte-oriented cache used as a read-through layer in front of
// the session store. A nil value from Get means the key does not exist.
type Client interface {
	// Get retrieves a value from the cache.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping checks if the cache connection is alive.
	Ping(ctx context.Context) error

	// Close closes the cache client connection.
	Close() error
}
