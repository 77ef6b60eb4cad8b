package lru_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bjaus/lru"
)

func ExampleCache() {
	cache := lru.MustNew[string, int](100)

	cache.Set("answer", 42)

	if v, ok := cache.Get("answer"); ok {
		fmt.Println(v)
	}
	// Output: 42
}

func ExampleCache_eviction() {
	cache := lru.MustNew[string, int](2)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Get("a")    // a is now most recently used
	cache.Set("c", 3) // evicts b

	fmt.Println("has b:", cache.Has("b"))
	fmt.Println(cache.Keys())

	// Output:
	// has b: false
	// [a c]
}

func ExampleNew() {
	_, err := lru.New[string, int](0)
	fmt.Println(errors.Is(err, lru.ErrInvalidCapacity))
	// Output: true
}

func ExampleWithLoader() {
	cache := lru.MustNew[string, string](10,
		lru.WithLoader(func(term string) (string, error) {
			return strings.ToUpper(term), nil
		}),
	)

	// first call loads and caches
	v1, _ := cache.GetOrLoad("react")
	fmt.Println(v1)

	// second call returns cached value
	v2, _ := cache.GetOrLoad("react")
	fmt.Println(v2)

	// Output:
	// REACT
	// REACT
}

func ExampleCache_Stats() {
	cache := lru.MustNew[string, int](1)

	cache.Set("a", 1)
	cache.Get("a")    // hit
	cache.Get("b")    // miss
	cache.Set("b", 2) // evicts a

	stats := cache.Stats()
	fmt.Printf("hits: %d, misses: %d, evictions: %d, rate: %.0f%%\n",
		stats.Hits, stats.Misses, stats.Evictions, stats.HitRate()*100)

	// Output: hits: 1, misses: 1, evictions: 1, rate: 50%
}
