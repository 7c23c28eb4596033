package cache

import "context"

// Remember returns the cached value for key or calls load and caches its result.
// Load errors are returned and nothing is cached.
func Remember[T any](ctx context.Context, c *Cache, key string, opts SetOptions, load func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := GetAs[T](ctx, c, key, opts.Tier); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	c.Set(ctx, key, v, opts)
	return v, nil
}
