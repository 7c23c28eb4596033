package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// sessionStore keeps entries in Redis under a namespace owned by one process
// lifetime. Dispose clears the namespace.
type sessionStore struct {
	client    redis.UniversalClient
	namespace string
}

func newSessionStore(client redis.UniversalClient, namespace string) *sessionStore {
	return &sessionStore{client: client, namespace: namespace}
}

func (s *sessionStore) key(key string) string {
	return s.namespace + ":" + key
}

func (s *sessionStore) read(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errMiss
	}
	return raw, err
}

func (s *sessionStore) write(ctx context.Context, key string, raw []byte, ttl time.Duration) error {
	err := s.client.Set(ctx, s.key(key), raw, ttl).Err()
	if err != nil && isOutOfMemory(err) {
		return errQuotaExceeded
	}
	return err
}

func (s *sessionStore) remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *sessionStore) clear(ctx context.Context) error {
	_, err := s.sweep(ctx, func([]byte) bool { return true })
	return err
}

func (s *sessionStore) sweep(ctx context.Context, evict func(raw []byte) bool) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, s.namespace+":*", scanBatch).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		raw, err := s.client.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return removed, err
		}
		if evict(raw) {
			if err := s.client.Del(ctx, k).Err(); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, iter.Err()
}

func (s *sessionStore) close() error {
	return nil
}

// isOutOfMemory matches the OOM reply Redis sends when maxmemory is reached.
func isOutOfMemory(err error) bool {
	var rerr redis.Error
	return errors.As(err, &rerr) && strings.HasPrefix(rerr.Error(), "OOM")
}
