// Package lru provides a generic, fixed-capacity cache with least recently
// used eviction.
//
// # Overview
//
// A Cache holds at most a fixed number of entries. Both reads and writes mark
// an entry as the most recently used; when a new key is added to a full cache
// the least recently used entry is dropped. Lookups and inserts run in
// constant time using a doubly-linked recency list indexed by a map.
//
// # Basic Usage
//
//	cache, err := lru.New[string, int](10)
//	if err != nil {
//		return err
//	}
//
//	cache.Set("a", 1)
//
//	if v, ok := cache.Get("a"); ok {
//		fmt.Println(v)
//	}
//
// A capacity below one is rejected with ErrInvalidCapacity.
//
// # Keys
//
// Keys are compared by plain equality. The cache does not fold case or trim
// whitespace, so callers that want "React" and "react" to share an entry must
// normalize keys before calling Get or Set.
//
// # Memoization
//
// Configure a loader to compute values on a miss:
//
//	cache := lru.MustNew[string, []Result](10,
//		lru.WithLoader(func(term string) ([]Result, error) {
//			return filter(term), nil
//		}),
//	)
//
//	results, err := cache.GetOrLoad("react")
//
// # Observability
//
// Stats reports hits, misses and evictions. OnHit and OnMiss hooks observe
// lookups, and WithLogger emits a debug line for each eviction:
//
//	cache := lru.MustNew[string, int](100,
//		lru.WithLogger[string, int](logger),
//		lru.OnMiss[string, int](func(key string) {
//			misses.Inc()
//		}),
//	)
//
// # Thread Safety
//
// Cache is not safe for concurrent use. Get is not a read-only operation: it
// moves the entry to the front of the recency list. Use SyncCache, which
// serializes every call behind one sync.Mutex, when the cache is shared
// between goroutines.
package lru
