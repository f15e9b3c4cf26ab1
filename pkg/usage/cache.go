package usage

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Entry is one cached usage count. The governor decides staleness from
// CapturedAt; the cache itself only stores and sweeps.
type Entry struct {
	Count      int64     `json:"count"`
	CapturedAt time.Time `json:"captured_at"`
}

// Cache is the interface for usage count caching implementations.
type Cache interface {
	// Get retrieves an entry by key.
	Get(ctx context.Context, key string) (Entry, bool)

	// Set stores an entry under key.
	Set(ctx context.Context, key string, entry Entry)

	// Delete removes an entry immediately.
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// memoryCache is the default per-process cache with a periodic sweep of
// stale entries.
type memoryCache struct {
	mu     sync.Mutex
	items  map[string]Entry
	clk    clock.Clock
	ttl    time.Duration
	stop   chan struct{}
	done   chan struct{}
	closed bool
}

// Default cache tuning.
const (
	DefaultTTL           = 60 * time.Second
	DefaultSweepInterval = 5 * time.Minute
)

// NewMemoryCache creates the default in-memory cache. The sweep runs
// every sweepInterval on the given clock until Close is called; pass a
// mock clock in tests to drive it deterministically.
func NewMemoryCache(clk clock.Clock, ttl, sweepInterval time.Duration) Cache {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	c := &memoryCache{
		items: make(map[string]Entry),
		clk:   clk,
		ttl:   ttl,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	// Create the ticker before the goroutine starts so a mock clock
	// advanced immediately after construction still fires the sweep.
	ticker := clk.Ticker(sweepInterval)
	go c.sweep(ticker)

	return c
}

func (c *memoryCache) Get(ctx context.Context, key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	return entry, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry
}

func (c *memoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// sweep periodically drops entries older than the TTL. Reads check
// staleness themselves, so the sweep only bounds memory growth.
func (c *memoryCache) sweep(ticker *clock.Ticker) {
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeStale()
		case <-c.stop:
			return
		}
	}
}

func (c *memoryCache) removeStale() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clk.Now()
	for key, entry := range c.items {
		if now.Sub(entry.CapturedAt) > c.ttl {
			delete(c.items, key)
		}
	}
}

// Close stops the sweep goroutine and waits for it to finish.
func (c *memoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}
