package cache

import (
	"sync"
	"time"
)

// Cache is a loading cache with per-key TTL. Concurrent Load calls
// for the same expired key run the loader once.
type Cache[T any] struct {
	mx      sync.Mutex
	entries map[string]*entry[T]
	ttl     time.Duration
	loader  func(key string) T
}

type entry[T any] struct {
	mx     sync.Mutex
	value  T
	loaded time.Time
}

func NewWithTTL[T any](ttl time.Duration, loader func(key string) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		loader:  loader,
	}
}

func (c *Cache[T]) Load(key string) T {
	c.mx.Lock()
	e, ok := c.entries[key]

	if !ok {
		e = new(entry[T])
		c.entries[key] = e
	}
	c.mx.Unlock()

	e.mx.Lock()
	defer e.mx.Unlock()

	if e.loaded.IsZero() || time.Since(e.loaded) > c.ttl {
		e.value = c.loader(key)
		e.loaded = time.Now()
	}

	return e.value
}

// Clean drops entries that have not been refreshed for ten TTLs.
func (c *Cache[T]) Clean() {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key, e := range c.entries {
		if !e.mx.TryLock() {
			continue
		}

		if time.Since(e.loaded) > c.ttl*10 {
			delete(c.entries, key)
		}

		e.mx.Unlock()
	}
}

func (c *Cache[T]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return len(c.entries)
}
