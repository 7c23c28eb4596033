package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type product struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
	Tags  []string `json:"tags"`
}

func newTestCache(t *testing.T, version string, dir string, clk *clock) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c, err := New(context.Background(), Options{
		Version: version,
		Dir:     filepath.Join(dir, "local"),
		DBPath:  filepath.Join(dir, "naaz-cache.db"),
		Secret:  "test-secret",
		Redis:   client,
		Now:     clk.Now,
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Dispose(context.Background()) })
	return c, mr
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, _ := newTestCache(t, "1.0.0", t.TempDir(), clk)

	big := product{ID: "p-1", Name: strings.Repeat("kurta ", 400), Price: 129900, Tags: []string{"cotton", "festive"}}
	small := product{ID: "p-2", Name: "dupatta", Price: 49900}

	testCases := []struct {
		name     string
		value    product
		compress bool
		encrypt  bool
	}{
		{name: "plain", value: small},
		{name: "compress_below_threshold", value: small, compress: true},
		{name: "compress_above_threshold", value: big, compress: true},
		{name: "encrypt", value: small, encrypt: true},
		{name: "compress_and_encrypt", value: big, compress: true, encrypt: true},
	}

	for _, tier := range AllTiers {
		for _, tc := range testCases {
			t.Run(string(tier)+"_"+tc.name, func(t *testing.T) {
				key := "product:" + tc.name
				c.Set(ctx, key, tc.value, SetOptions{TTL: time.Minute, Tier: tier, Compress: tc.compress, Encrypt: tc.encrypt})

				got, ok := GetAs[product](ctx, c, key, tier)
				require.True(t, ok)
				assert.Equal(t, tc.value, got)
			})
		}
	}
}

func TestCacheCompressionFlag(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c, _ := newTestCache(t, "1.0.0", t.TempDir(), clk)

	c.Set(ctx, "big", strings.Repeat("a", 4096), SetOptions{Tier: TierIndexed, Compress: true})
	c.Set(ctx, "small", "a", SetOptions{Tier: TierIndexed, Compress: true})

	st := c.stores[TierIndexed]
	raw, err := st.read(ctx, storeKey("big"))
	require.NoError(t, err)
	entry, err := decodeEntry(raw)
	require.NoError(t, err)
	assert.True(t, entry.Compressed)
	assert.Less(t, len(entry.Data), 4096)

	raw, err = st.read(ctx, storeKey("small"))
	require.NoError(t, err)
	entry, err = decodeEntry(raw)
	require.NoError(t, err)
	assert.False(t, entry.Compressed)
}

func TestCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()

	for _, tier := range AllTiers {
		t.Run(string(tier), func(t *testing.T) {
			clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c, _ := newTestCache(t, "1.0.0", t.TempDir(), clk)

			c.Set(ctx, "cart", []int{1, 2, 3}, SetOptions{TTL: 10 * time.Second, Tier: tier})

			clk.Advance(10 * time.Second)
			_, ok := GetAs[[]int](ctx, c, "cart", tier)
			assert.True(t, ok, "entry is live at exactly ttl")

			clk.Advance(time.Millisecond)
			_, ok = GetAs[[]int](ctx, c, "cart", tier)
			assert.False(t, ok)

			_, err := c.stores[tier].read(ctx, storeKey("cart"))
			assert.ErrorIs(t, err, errMiss, "expired entry is removed on read")
		})
	}
}

func TestCacheVersionMismatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	clk := &clock{now: time.Now()}

	writer, err := New(ctx, Options{Version: "1.0.0", Dir: dir, Now: clk.Now})
	require.NoError(t, err)
	writer.Set(ctx, "banner", "diwali sale", SetOptions{Tier: TierLocal})

	reader, err := New(ctx, Options{Version: "2.0.0", Dir: dir, Now: clk.Now})
	require.NoError(t, err)

	_, ok := GetAs[string](ctx, reader, "banner", TierLocal)
	assert.False(t, ok)

	_, ok = GetAs[string](ctx, writer, "banner", TierLocal)
	assert.False(t, ok, "stale entry was deleted by the first read")
}

func TestCacheCorruptEntryIsRemoved(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := New(ctx, Options{Version: "1.0.0", Dir: dir})
	require.NoError(t, err)

	local := c.stores[TierLocal].(*localStore)
	p := local.path(storeKey("broken"))
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o644))

	_, ok := GetAs[string](ctx, c, "broken", TierLocal)
	assert.False(t, ok)
	_, statErr := os.Stat(p)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCacheEncryptedEntryWithWrongSecret(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writer, err := New(ctx, Options{Version: "1", Dir: dir, Secret: "one"})
	require.NoError(t, err)
	writer.Set(ctx, "token", "abc", SetOptions{Tier: TierLocal, Encrypt: true})

	reader, err := New(ctx, Options{Version: "1", Dir: dir, Secret: "two"})
	require.NoError(t, err)
	_, ok := GetAs[string](ctx, reader, "token", TierLocal)
	assert.False(t, ok)
}

func TestCacheDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c, _ := newTestCache(t, "1.0.0", t.TempDir(), clk)

	for _, tier := range AllTiers {
		c.Set(ctx, "a", 1, SetOptions{Tier: tier})
		c.Set(ctx, "b", 2, SetOptions{Tier: tier})
	}

	c.Delete(ctx, "a", TierMemory)
	_, ok := GetAs[int](ctx, c, "a", TierMemory)
	assert.False(t, ok)
	_, ok = GetAs[int](ctx, c, "a", TierLocal)
	assert.True(t, ok, "delete is tier scoped")

	c.Clear(ctx, TierLocal)
	_, ok = GetAs[int](ctx, c, "b", TierLocal)
	assert.False(t, ok)
	_, ok = GetAs[int](ctx, c, "b", TierIndexed)
	assert.True(t, ok)

	c.Clear(ctx)
	for _, tier := range AllTiers {
		_, ok = GetAs[int](ctx, c, "b", tier)
		assert.False(t, ok, string(tier))
	}
}

func TestCacheCleanupSweepsPersistentTiers(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c, _ := newTestCache(t, "1.0.0", t.TempDir(), clk)

	for _, tier := range []Tier{TierLocal, TierSession, TierIndexed} {
		c.Set(ctx, "short", "x", SetOptions{Tier: tier, TTL: time.Second})
		c.Set(ctx, "long", "y", SetOptions{Tier: tier, TTL: time.Hour})
	}

	clk.Advance(2 * time.Second)
	assert.Equal(t, 3, c.Cleanup(ctx))

	for _, tier := range []Tier{TierLocal, TierSession, TierIndexed} {
		_, err := c.stores[tier].read(ctx, storeKey("short"))
		assert.ErrorIs(t, err, errMiss, string(tier))
		_, ok := GetAs[string](ctx, c, "long", tier)
		assert.True(t, ok, string(tier))
	}
}

func TestCacheLocalQuotaSweepsAndRetries(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c, err := New(ctx, Options{Version: "1", Dir: t.TempDir(), MaxBytes: 800, Now: clk.Now})
	require.NoError(t, err)

	payload := strings.Repeat("z", 200)
	c.Set(ctx, "old", payload, SetOptions{Tier: TierLocal, TTL: time.Second})

	clk.Advance(2 * time.Second)
	c.Set(ctx, "new", payload, SetOptions{Tier: TierLocal, TTL: time.Hour})
	c.Set(ctx, "newer", payload, SetOptions{Tier: TierLocal, TTL: time.Hour})

	_, ok := GetAs[string](ctx, c, "newer", TierLocal)
	assert.True(t, ok, "write succeeded after the expired entry was swept")

	c.Set(ctx, "overflow", payload, SetOptions{Tier: TierLocal, TTL: time.Hour})
	_, ok = GetAs[string](ctx, c, "overflow", TierLocal)
	assert.False(t, ok, "write past quota is dropped silently")
}

func TestCacheSessionTierUsesNamespace(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Now()}
	c, mr := newTestCache(t, "1.0.0", t.TempDir(), clk)

	require.NoError(t, mr.Set("unrelated", "keep"))
	c.Set(ctx, "checkout-step", 2, SetOptions{Tier: TierSession})

	keys := mr.Keys()
	assert.Len(t, keys, 2)

	c.Clear(ctx, TierSession)
	assert.Equal(t, []string{"unrelated"}, mr.Keys())
}

func TestCacheUnavailableTierMisses(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Options{Version: "1"})
	require.NoError(t, err)

	c.Set(ctx, "k", "v", SetOptions{Tier: TierSession})
	_, ok := GetAs[string](ctx, c, "k", TierSession)
	assert.False(t, ok)

	var nilCache *Cache
	nilCache.Set(ctx, "k", "v", SetOptions{})
	_, ok = GetAs[string](ctx, nilCache, "k", TierMemory)
	assert.False(t, ok)
}

func TestCacheInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Options{Version: "1", CleanupInterval: time.Hour})
	require.NoError(t, err)

	c.Initialize()
	stop := c.stop
	c.Initialize()
	assert.Equal(t, stop, c.stop)

	c.Dispose(ctx)
	assert.False(t, c.running)
}
