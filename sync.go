package lru

import "sync"

// SyncCache is a Cache guarded by a single mutex. Every method, Get included,
// takes the exclusive lock because lookups reorder entries. Loaders and the
// OnHit and OnMiss hooks run with the lock held and must not use the cache.
type SyncCache[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSync creates a SyncCache holding at most capacity entries.
func NewSync[K comparable, V any](capacity int, opts ...Option[K, V]) (*SyncCache[K, V], error) {
	c, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncCache[K, V]{cache: c}, nil
}

// MustNewSync is like NewSync but panics if capacity is below one.
func MustNewSync[K comparable, V any](capacity int, opts ...Option[K, V]) *SyncCache[K, V] {
	c, err := NewSync(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value for key and promotes it. See Cache.Get.
func (s *SyncCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Get(key)
}

// GetOrLoad holds the lock while the loader runs, so concurrent misses on
// the same key load once. The loader must not call back into the same
// SyncCache; doing so deadlocks.
func (s *SyncCache[K, V]) GetOrLoad(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.GetOrLoad(key)
}

// Set stores value for key. See Cache.Set.
func (s *SyncCache[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Set(key, value)
}

// Has reports whether key is cached without promoting it.
func (s *SyncCache[K, V]) Has(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Has(key)
}

// Keys returns cached keys from least to most recently used.
func (s *SyncCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Keys()
}

// Clear removes all entries.
func (s *SyncCache[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
}

// Len returns the number of cached entries.
func (s *SyncCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Len()
}

// Cap returns the maximum number of entries.
func (s *SyncCache[K, V]) Cap() int {
	return s.cache.Cap()
}

// Stats returns a snapshot of cache statistics.
func (s *SyncCache[K, V]) Stats() Snapshot {
	return s.cache.Stats()
}
