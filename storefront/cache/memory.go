package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	items *gocache.Cache
}

func newMemoryStore(cleanupInterval time.Duration) *memoryStore {
	return &memoryStore{items: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *memoryStore) read(_ context.Context, key string) ([]byte, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return nil, errMiss
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil, errMiss
	}
	return raw, nil
}

func (s *memoryStore) write(_ context.Context, key string, raw []byte, ttl time.Duration) error {
	s.items.Set(key, raw, ttl)
	return nil
}

func (s *memoryStore) remove(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

func (s *memoryStore) clear(_ context.Context) error {
	s.items.Flush()
	return nil
}

func (s *memoryStore) sweep(_ context.Context, evict func(raw []byte) bool) (int, error) {
	removed := 0
	for key, item := range s.items.Items() {
		raw, _ := item.Object.([]byte)
		if evict(raw) {
			s.items.Delete(key)
			removed++
		}
	}
	return removed, nil
}

func (s *memoryStore) close() error {
	return nil
}
