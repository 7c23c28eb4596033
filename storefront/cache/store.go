package cache

import (
	"context"
	"errors"
	"time"
)

var (
	errMiss          = errors.New("cache: miss")
	errQuotaExceeded = errors.New("cache: quota exceeded")
)

// store is one storage tier. Keys passed in are already prefixed.
type store interface {
	read(ctx context.Context, key string) ([]byte, error)
	write(ctx context.Context, key string, raw []byte, ttl time.Duration) error
	remove(ctx context.Context, key string) error
	clear(ctx context.Context) error
	// sweep removes every entry for which evict returns true and reports how many went.
	sweep(ctx context.Context, evict func(raw []byte) bool) (int, error)
	close() error
}
