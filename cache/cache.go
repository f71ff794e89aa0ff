package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// NewCache creates a cache whose entries live for ttl. Expired entries are swept every
// cleanup interval until appCtx is done or Close is called.
func NewCache[T any](appCtx context.Context, ttl, cleanup time.Duration) *Cache[T] {
	c := &Cache[T]{
		done:  make(chan struct{}),
		ttl:   ttl,
		items: make(map[string]*item[T]),
	}
	go c.cleanupTask(appCtx, cleanup)
	return c
}

func (c *Cache[T]) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

type Cache[T any] struct {
	done      chan struct{}
	closeOnce sync.Once
	ttl       time.Duration
	group     singleflight.Group

	lock  sync.RWMutex
	items map[string]*item[T]
}

type item[T any] struct {
	expiration time.Time
	value      T
}

// Get returns the cached value for key if it has not expired.
func (c *Cache[T]) Get(key string) (value T, ok bool) {
	c.lock.RLock()
	cached, found := c.items[key]
	c.lock.RUnlock()
	if !found || !cached.expiration.After(time.Now()) {
		return value, false
	}
	return cached.value, true
}

// Set stores value under key for the cache ttl.
func (c *Cache[T]) Set(key string, value T) {
	c.lock.Lock()
	c.items[key] = &item[T]{expiration: time.Now().Add(c.ttl), value: value}
	c.lock.Unlock()
}

// Len returns the number of stored entries, expired ones included until the next sweep.
func (c *Cache[T]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.items)
}

// Fetch returns the cached value for key or calls fetch once, however many callers ask for
// the same key concurrently, and caches a successful result.
func (c *Cache[T]) Fetch(key string, fetch func() (T, error)) (value T, err error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	// singleflight fetch
	valueAny, err, _ := c.group.Do(key, func() (any, error) {
		// another flight may have filled the entry while we waited
		if value, ok := c.Get(key); ok {
			return value, nil
		}

		// fetch new result
		value, err := fetch()
		if err != nil {
			return value, err
		}

		// save new result
		c.Set(key, value)
		return value, nil
	})
	if err != nil {
		return value, err
	}
	return valueAny.(T), nil
}

func (c *Cache[T]) cleanupTask(appCtx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-appCtx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			c.sweep(time.Now())
		}
	}
}

func (c *Cache[T]) sweep(now time.Time) {
	c.lock.Lock()
	for key, value := range c.items {
		if value.expiration.Before(now) {
			delete(c.items, key)
		}
	}
	c.lock.Unlock()
}
