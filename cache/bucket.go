package cache

import (
	"sync"

	"github.com/bugadani/listor"
)

type entry[V any] struct {
	key   string
	value V
}

// bucket is a single LRU shard. The listor is bounded to the bucket's
// capacity; lookup maps keys to the listor handles of their entries, so
// every handle in lookup is valid by construction.
type bucket[V any] struct {
	mu      sync.RWMutex
	lookup  map[string]int
	entries *listor.Listor[entry[V]]
}

func newBucket[V any](capacity int) *bucket[V] {
	return &bucket[V]{
		lookup:  make(map[string]int),
		entries: listor.Bounded[entry[V]](capacity),
	}
}

func (b *bucket[V]) get(key string) (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, ok := b.lookup[key]
	if !ok {
		var zero V
		return zero, false
	}

	value := b.entries.MustAt(idx).value
	b.promote(key, idx)
	return value, true
}

func (b *bucket[V]) set(key string, value V) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if idx, ok := b.lookup[key]; ok {
		b.entries.MustAt(idx).value = value
		b.promote(key, idx)
		return
	}

	idx, err := b.entries.PushFront(entry[V]{key: key, value: value})
	if err != nil {
		b.evict()
		idx, _ = b.entries.PushFront(entry[V]{key: key, value: value})
	}
	b.lookup[key] = idx
}

func (b *bucket[V]) delete(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, ok := b.lookup[key]
	if !ok {
		return false
	}

	delete(b.lookup, key)
	b.entries.Remove(idx)
	return true
}

func (b *bucket[V]) len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.entries.Len()
}

// promote moves the entry to the front of the recency order. Reinsertion
// changes the entry's handle, so lookup is updated.
func (b *bucket[V]) promote(key string, idx int) {
	e, _ := b.entries.Remove(idx)
	// A slot was freed just now, the push cannot fail.
	newIdx, _ := b.entries.PushFront(e)
	b.lookup[key] = newIdx
}

// evict drops the least recently used entry.
func (b *bucket[V]) evict() {
	if e, ok := b.entries.PopBack(); ok {
		delete(b.lookup, e.key)
	}
}
