// Package cache is a key/value store with TTL over four interchangeable
// tiers: in-process memory, a local directory, a Redis-backed session
// namespace and an indexed SQLite database. Callers never see cache failures;
// every failure degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Tier selects where an entry lives.
type Tier string

const (
	TierMemory  Tier = "memory"
	TierLocal   Tier = "local"
	TierSession Tier = "session"
	TierIndexed Tier = "indexed"
)

// AllTiers lists every tier in the order Clear walks them.
var AllTiers = []Tier{TierMemory, TierLocal, TierSession, TierIndexed}

// Persistent reports whether the tier outlives the in-process memory tier.
func (t Tier) Persistent() bool {
	return t == TierLocal || t == TierSession || t == TierIndexed
}

const (
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

// Options configures a Cache. A tier whose backing is not configured is
// skipped: writes to it are dropped and reads miss.
type Options struct {
	// Version tags every entry; entries written by another version are absent.
	Version string
	// DefaultTTL applies when SetOptions.TTL is zero.
	DefaultTTL time.Duration
	// CleanupInterval is the period of the background sweep started by Initialize.
	CleanupInterval time.Duration
	// Dir backs the local tier.
	Dir string
	// DBPath backs the indexed tier.
	DBPath string
	// MaxBytes bounds the local and indexed tiers. Zero means unbounded.
	MaxBytes int64
	// Secret derives the encryption key.
	Secret string
	// Redis backs the session tier.
	Redis redis.UniversalClient
	// Now overrides the clock.
	Now func() time.Time
}

// SetOptions controls a single write.
type SetOptions struct {
	TTL      time.Duration
	Tier     Tier
	Compress bool
	Encrypt  bool
}

// Cache is safe for concurrent use.
type Cache struct {
	version         string
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
	codec           codec
	stores          map[Tier]store

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New opens every configured tier.
func New(ctx context.Context, opts Options) (*Cache, error) {
	c := &Cache{
		version:         opts.Version,
		defaultTTL:      opts.DefaultTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             opts.Now,
		codec:           newCodec(opts.Secret),
		stores:          make(map[Tier]store, len(AllTiers)),
	}
	if c.defaultTTL <= 0 {
		c.defaultTTL = DefaultTTL
	}
	if c.cleanupInterval <= 0 {
		c.cleanupInterval = DefaultCleanupInterval
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.stores[TierMemory] = newMemoryStore(c.cleanupInterval)

	if opts.Dir != "" {
		local, err := newLocalStore(opts.Dir, opts.MaxBytes)
		if err != nil {
			return nil, err
		}
		c.stores[TierLocal] = local
	}
	if opts.Redis != nil {
		c.stores[TierSession] = newSessionStore(opts.Redis, "naaz-session-"+uuid.NewString())
	}
	if opts.DBPath != "" {
		indexed, err := newIndexedStore(ctx, opts.DBPath, opts.MaxBytes)
		if err != nil {
			return nil, err
		}
		c.stores[TierIndexed] = indexed
	}
	return c, nil
}

func (c *Cache) tier(t Tier) (store, bool) {
	if t == "" {
		t = TierMemory
	}
	st, ok := c.stores[t]
	return st, ok
}

// Set serializes value and writes it to the selected tier. A full tier is
// swept of expired entries and retried once; any remaining failure is dropped.
func (c *Cache) Set(ctx context.Context, key string, value any, opts SetOptions) {
	if c == nil {
		return
	}
	st, ok := c.tier(opts.Tier)
	if !ok {
		rlog.Debug("cache tier unavailable", "tier", opts.Tier, "key", key)
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		rlog.Warn("cache value not serializable", "key", key, "error", err)
		return
	}
	data, compressed, encrypted, err := c.codec.encode(payload, opts.Compress, opts.Encrypt)
	if err != nil {
		rlog.Warn("cache transform failed", "key", key, "error", err)
		return
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	raw, err := json.Marshal(Entry{
		Data:       data,
		Timestamp:  c.now().UnixMilli(),
		TTL:        ttl.Milliseconds(),
		Version:    c.version,
		Compressed: compressed,
		Encrypted:  encrypted,
	})
	if err != nil {
		rlog.Warn("cache entry not serializable", "key", key, "error", err)
		return
	}

	err = st.write(ctx, storeKey(key), raw, ttl)
	if errors.Is(err, errQuotaExceeded) {
		removed, _ := st.sweep(ctx, c.stale)
		rlog.Info("cache quota exceeded, swept tier", "tier", opts.Tier, "removed", removed)
		err = st.write(ctx, storeKey(key), raw, ttl)
	}
	if err != nil {
		rlog.Warn("cache write failed", "tier", opts.Tier, "key", key, "error", err)
	}
}

// Get decodes the entry stored under key into out. It returns false for
// absent, expired, stale-version or corrupt entries, removing the latter three.
func (c *Cache) Get(ctx context.Context, key string, tier Tier, out any) bool {
	payload, ok := c.load(ctx, key, tier)
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		c.Delete(ctx, key, tier)
		return false
	}
	return true
}

// GetAs is Get with the result type as a type parameter.
func GetAs[T any](ctx context.Context, c *Cache, key string, tier Tier) (T, bool) {
	var out T
	if !c.Get(ctx, key, tier, &out) {
		var zero T
		return zero, false
	}
	return out, true
}

func (c *Cache) load(ctx context.Context, key string, tier Tier) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	st, ok := c.tier(tier)
	if !ok {
		return nil, false
	}
	k := storeKey(key)
	raw, err := st.read(ctx, k)
	if err != nil {
		if !errors.Is(err, errMiss) {
			rlog.Warn("cache read failed", "tier", tier, "key", key, "error", err)
		}
		return nil, false
	}

	entry, err := decodeEntry(raw)
	if err != nil || !entry.Live(c.now(), c.version) {
		c.evict(ctx, st, k)
		return nil, false
	}
	payload, err := c.codec.decode(entry)
	if err != nil {
		c.evict(ctx, st, k)
		return nil, false
	}
	return payload, true
}

func (c *Cache) evict(ctx context.Context, st store, key string) {
	if err := st.remove(ctx, key); err != nil {
		rlog.Warn("cache eviction failed", "key", key, "error", err)
	}
}

// Delete removes key from one tier.
func (c *Cache) Delete(ctx context.Context, key string, tier Tier) {
	if c == nil {
		return
	}
	if st, ok := c.tier(tier); ok {
		c.evict(ctx, st, storeKey(key))
	}
}

// Clear empties the given tiers, or all tiers when none are given.
func (c *Cache) Clear(ctx context.Context, tiers ...Tier) {
	if c == nil {
		return
	}
	if len(tiers) == 0 {
		tiers = AllTiers
	}
	for _, t := range tiers {
		st, ok := c.tier(t)
		if !ok {
			continue
		}
		if err := st.clear(ctx); err != nil {
			rlog.Warn("cache clear failed", "tier", t, "error", err)
		}
	}
}

// stale reports whether a raw entry should be swept.
func (c *Cache) stale(raw []byte) bool {
	entry, err := decodeEntry(raw)
	return err != nil || !entry.Live(c.now(), c.version)
}

// Cleanup sweeps every persistent tier and returns the number of entries removed.
// The memory tier expires its own items.
func (c *Cache) Cleanup(ctx context.Context) int {
	if c == nil {
		return 0
	}
	total := 0
	for _, t := range AllTiers {
		if !t.Persistent() {
			continue
		}
		st, ok := c.stores[t]
		if !ok {
			continue
		}
		removed, err := st.sweep(ctx, c.stale)
		if err != nil {
			rlog.Warn("cache sweep failed", "tier", t, "error", err)
		}
		total += removed
	}
	return total
}

// Initialize starts the periodic sweep. Calling it again is a no-op.
func (c *Cache) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.loop(c.stop, c.done)
}

func (c *Cache) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if removed := c.Cleanup(context.Background()); removed > 0 {
				rlog.Debug("cache sweep", "removed", removed)
			}
		case <-stop:
			return
		}
	}
}

// Dispose stops the sweep, drops the session namespace and closes the tiers.
func (c *Cache) Dispose(ctx context.Context) {
	c.mu.Lock()
	if c.running {
		close(c.stop)
		<-c.done
		c.running = false
	}
	c.mu.Unlock()

	c.Clear(ctx, TierSession)
	for t, st := range c.stores {
		if err := st.close(); err != nil {
			rlog.Warn("cache tier close failed", "tier", t, "error", err)
		}
	}
}
