package lru

import "fmt"

// Cache is a fixed-capacity cache that evicts the least recently used entry.
//
// Cache is not safe for concurrent use; wrap it in a SyncCache (or guard it
// externally) when more than one goroutine touches it. Get reorders internal
// state, so even concurrent readers race.
type Cache[K comparable, V any] struct {
	items    map[K]*entry[K, V]
	order    *recency[K, V]
	capacity int
	cfg      config[K, V]
	stats    stats
}

// New creates a Cache holding at most capacity entries.
// It returns an error wrapping ErrInvalidCapacity if capacity is below one.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	var cfg config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[K, V]{
		items:    make(map[K]*entry[K, V], capacity),
		order:    newRecency[K, V](),
		capacity: capacity,
		cfg:      cfg,
	}, nil
}

// MustNew is like New but panics if capacity is below one.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value stored for key and marks it as the most recently
// used entry. A miss returns the zero value and false and leaves the order
// untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	ent, ok := c.items[key]
	if !ok {
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		var zero V
		return zero, false
	}

	c.order.moveToFront(ent)
	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, ent.value)
	}
	return ent.value, true
}

// GetOrLoad returns the cached value for key, or calls the configured loader
// and stores its result. A loader error is returned and nothing is cached.
func (c *Cache[K, V]) GetOrLoad(key K) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	var zero V
	if c.cfg.loader == nil {
		return zero, ErrNoLoader
	}

	v, err := c.cfg.loader(key)
	if err != nil {
		return zero, err
	}

	c.Set(key, v)
	return v, nil
}

// Set stores value for key and marks it as the most recently used entry.
// Adding a new key to a full cache first evicts the least recently used one.
func (c *Cache[K, V]) Set(key K, value V) {
	if ent, ok := c.items[key]; ok {
		ent.value = value
		c.order.moveToFront(ent)
		return
	}

	var ent *entry[K, V]
	if len(c.items) >= c.capacity {
		// reuse the evicted node for the incoming key
		ent = c.evictOldest()
	} else {
		ent = new(entry[K, V])
	}

	ent.key = key
	ent.value = value
	c.items[key] = ent
	c.order.pushFront(ent)
}

func (c *Cache[K, V]) evictOldest() *entry[K, V] {
	ent := c.order.back()
	c.order.remove(ent)
	delete(c.items, ent.key)
	c.stats.evict()

	if c.cfg.logger != nil {
		c.cfg.logger.Debug().Any("key", ent.key).Int("capacity", c.capacity).Msg("evicted least recently used entry")
	}

	var zero V
	ent.value = zero
	return ent
}

// Has reports whether key is cached without changing its recency.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Keys returns a snapshot of the cached keys ordered from least to most
// recently used.
func (c *Cache[K, V]) Keys() []K {
	return c.order.appendKeys(make([]K, 0, len(c.items)))
}

// Clear removes all entries. Capacity is unchanged and removed entries are
// not counted as evictions.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.order.init()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.snapshot()
}
