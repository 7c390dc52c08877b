// Package cache provides a thread-safe generic LRU cache.
//
// The solver keeps three caches built on this package: one for token
// streams, one for parsed expressions and one for evaluation results.
// Caching avoids re-lexing and re-parsing the same expression string on
// every call, which is especially valuable when the same formula is
// solved against many different variable sets.
//
// # Example
//
//	c := cache.New[*types.Expression](1024)
//	expr, err := c.GetOrCompute("2+3*x", parse)
package cache

import (
	"container/list"
	"sync"
)

// entry is a cache entry stored in the doubly-linked list.
type entry[V any] struct {
	key   string
	value V
}

// Cache is a thread-safe LRU (Least Recently Used) cache.
// Once the capacity is reached, the least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache[V any] struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, a default of 256 is used.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cache[V]{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found and moves the entry to front (MRU).
// Returns (zero, false) if not present.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	el, ok := c.items[key]
	// If the element is already at the front, skip the write lock entirely.
	// The value is copied out while the lock is held: a concurrent Set may
	// overwrite the entry in place.
	var value V
	alreadyFront := ok && c.ll.Front() == el
	if alreadyFront {
		value = el.Value.(*entry[V]).value
	}
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	if alreadyFront {
		return value, true
	}

	// Promote to front under write lock; re-check in case of concurrent eviction.
	c.mu.Lock()
	el, ok = c.items[key]
	if ok {
		c.ll.MoveToFront(el)
		value = el.Value.(*entry[V]).value
	}
	c.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}
	return value, true
}

// Set inserts or replaces a value in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[V]).value = value
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}

	el := c.ll.PushFront(&entry[V]{key: key, value: value})
	c.items[key] = el
}

// GetOrCompute retrieves the value for key from cache, or calls compute()
// to create it, caches the result, and returns it.
// Errors are not cached: a failed compute is retried on the next call.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, value)
	return value, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	return n
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry from the cache.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.ll.Remove(el)
		delete(c.items, key)
	}
}

// Clear removes all entries from the cache.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

// evictLocked removes the least recently used entry.
// Must be called with c.mu held for writing.
func (c *Cache[V]) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry[V]).key)
}
