package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Stats are cumulative since the cache was created.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
}

// LRUCache is a size bounded cache where every entry also expires after ttl.
// It backs both finalized orders and pending checkouts.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	ll       *list.List
	items    map[string]*list.Element
	stats    Stats

	janitorInterval time.Duration
	now             func() time.Time
}

type Option func(*LRUCache)

func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) {
		if d > 0 {
			c.janitorInterval = d
		}
	}
}

// WithClock replaces time.Now, used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) {
		c.now = now
	}
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		capacity:        capacity,
		ttl:             ttl,
		ll:              list.New(),
		items:           make(map[string]*list.Element),
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	ent := ele.Value.(*entry)
	if c.now().After(ent.expiresAt) {
		c.removeElement(ele)
		c.stats.Expired++
		c.stats.Misses++
		return nil, false
	}

	c.ll.MoveToFront(ele)
	c.stats.Hits++
	return ent.value, true
}

// Set stores value and restarts its ttl.
func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiresAt = expiresAt
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})

	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
		c.stats.Evictions++
	}
}

// Delete drops the key, it is a no-op for missing keys.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Start runs the janitor in the background until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiresAt) {
			c.removeElement(e)
			c.stats.Expired++
		}
		e = prev
	}
}
