// Package cache provides a small thread-safe LRU cache with a soft limit.
//
// The font engine uses it to memoize rasterized glyph stencils, which are
// expensive to produce and reused on every text draw. Eviction removes the
// oldest quarter of the entries once the soft limit is exceeded, so a burst
// of distinct keys cannot grow the cache without bound.
package cache

import "sync"

// Cache is a generic thread-safe cache with least-recently-used eviction.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // monotonic access counter, orders entries for eviction
}

// entry holds a cached value stamped with its last access tick.
type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding at most softLimit entries before eviction
// kicks in. A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value. It returns (value, true) when present and the zero
// value and false otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores a value, evicting old entries when the soft limit is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// GetOrCreate returns the cached value for key, calling create to produce it
// on a miss. create runs under the cache lock, so concurrent callers never
// compute the same key twice; keep it short.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value
	}

	value := create()
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the soft limit, 0 meaning unlimited.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// evictOldest removes the least recently used quarter of the entries.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}

	// Selection of the oldest few; eviction batches are small, so a partial
	// selection sort beats sorting the whole slice.
	for i := 0; i < toEvict && i < len(all); i++ {
		min := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[min].atime {
				min = j
			}
		}
		all[i], all[min] = all[min], all[i]
		delete(c.entries, all[i].key)
	}
}
