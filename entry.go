package lru

// entry is a node of the recency list. The cache owns every entry; the index
// only holds pointers for lookup.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}
