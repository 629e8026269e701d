package core

import (
	"context"
	"time"
)

// Cache[T] is the key-value cache used for API write pinning flags and
// cached gauge counts. T is the stored value type.
type Cache[T any] interface {
	// Get returns ErrCacheMiss (from the cache package) when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (T, error)

	Set(ctx context.Context, key string, value T, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// GetWithFetch is cache-aside: on a miss fetchFunc runs and its result
	// is stored for ttl.
	GetWithFetch(
		ctx context.Context,
		key string,
		ttl time.Duration,
		fetchFunc func(ctx context.Context, key string) (T, error),
	) (T, error)

	Health(ctx context.Context) error
	Close() error
}
