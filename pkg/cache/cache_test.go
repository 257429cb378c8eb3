package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(59 * time.Second)

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(time.Minute + time.Second)

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
				assert.Equal(t, uint64(1), c.Stats().Expired)
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Set("c", []byte("3"))

				_, ok := c.Get("a")
				assert.False(t, ok, "a should be evicted")
				v, ok := c.Get("b")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, "3", string(v))
				assert.Equal(t, uint64(1), c.Stats().Evictions)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.Advance(40 * time.Second)
				c.Set("a", []byte("2"))
				clock.Advance(40 * time.Second)

				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("checkout-1", []byte("pending"))
				c.Delete("checkout-1")
				c.Delete("missing")

				_, ok := c.Get("checkout-1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "recently read key survives eviction",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok, "a should survive")
			},
		},
		{
			name:     "hits and misses are counted",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Get("a")
				c.Get("a")
				c.Get("b")

				stats := c.Stats()
				assert.Equal(t, uint64(2), stats.Hits)
				assert.Equal(t, uint64(1), stats.Misses)
			},
		},
		{
			name:     "cleanup removes only expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				clock.Advance(30 * time.Second)
				c.Set("c", []byte("3"))
				clock.Advance(45 * time.Second)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, uint64(2), c.Stats().Expired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl, WithClock(clock.Now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_JanitorRemovesExpired(t *testing.T) {
	c := NewLRUCache(2, 20*time.Millisecond, WithJanitorInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))

	c.Set("a", []byte("1"))

	assert.Eventually(t, func() bool {
		return c.Size() == 0
	}, time.Second, 10*time.Millisecond)
}
