package lru

// recency orders entries from most recently used (front) to least recently
// used (back). It is a circular doubly-linked list around a sentinel root, so
// no operation needs a nil check.
type recency[K comparable, V any] struct {
	root entry[K, V]
	len  int
}

func newRecency[K comparable, V any]() *recency[K, V] {
	r := &recency[K, V]{}
	r.init()
	return r
}

func (r *recency[K, V]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
	r.len = 0
}

// pushFront links e as the most recently used entry.
func (r *recency[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
	r.len++
}

// moveToFront promotes an entry already in the list.
func (r *recency[K, V]) moveToFront(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
}

// back returns the least recently used entry, or nil when empty.
func (r *recency[K, V]) back() *entry[K, V] {
	if r.len == 0 {
		return nil
	}
	return r.root.prev
}

func (r *recency[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	r.len--
}

// appendKeys appends keys from least to most recently used.
func (r *recency[K, V]) appendKeys(dst []K) []K {
	for e := r.root.prev; e != &r.root; e = e.prev {
		dst = append(dst, e.key)
	}
	return dst
}
