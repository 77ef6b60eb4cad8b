package lru

import "github.com/phuslu/log"

type config[K comparable, V any] struct {
	loader func(K) (V, error)
	logger *log.Logger
	onHit  func(K, V)
	onMiss func(K)
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithLoader sets a function to compute values on a GetOrLoad miss.
func WithLoader[K comparable, V any](fn func(K) (V, error)) Option[K, V] {
	return func(c *config[K, V]) {
		c.loader = fn
	}
}

// WithLogger sets a logger that receives a debug line for every eviction.
func WithLogger[K comparable, V any](l *log.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		c.logger = l
	}
}

// OnHit sets a callback invoked on cache hits. Under a SyncCache the
// callback runs with the lock held and must not call back into the cache.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses. Under a SyncCache the
// callback runs with the lock held and must not call back into the cache.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}
