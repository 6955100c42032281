// Package cache provides a sharded LRU cache built on bounded listors.
// Each bucket tracks recency with its own listor, most recently used entries
// at the front, and evicts from the back when full.
package cache

import (
	"github.com/cespare/xxhash"
)

const (
	maxNumOfBuckets   = 16
	minBucketCapacity = 16
)

// New creates a cache storing up to maxEntries values. Capacity is split
// across a power-of-two number of buckets, but only while every bucket keeps
// at least minBucketCapacity entries: a cache with fewer than
// 2*minBucketCapacity entries is a single bucket, so small caches retain the
// full maxEntries keys no matter how they hash. In a sharded cache eviction
// is per bucket and starts once the bucket of an incoming key is full.
func New[V any](maxEntries int) *Cache[V] {
	if maxEntries < 1 {
		maxEntries = 1
	}

	numOfBuckets := 1
	for numOfBuckets < maxNumOfBuckets && maxEntries/(numOfBuckets*2) >= minBucketCapacity {
		numOfBuckets *= 2
	}
	perBucket := (maxEntries + numOfBuckets - 1) / numOfBuckets

	c := &Cache[V]{
		buckets: make([]*bucket[V], numOfBuckets),
		mask:    uint64(numOfBuckets - 1),
	}
	for i := range c.buckets {
		c.buckets[i] = newBucket[V](perBucket)
	}
	return c
}

// Cache is an LRU cache keyed by string. It is safe for concurrent use;
// the listor under each bucket is guarded by the bucket's lock.
type Cache[V any] struct {
	buckets []*bucket[V]
	mask    uint64
}

// Get returns the value stored under key and marks it as recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.bucket(key).get(key)
}

// Set stores value under key. When the key's bucket is full, the bucket's
// least recently used entry is evicted.
func (c *Cache[V]) Set(key string, value V) {
	c.bucket(key).set(key, value)
}

// Delete removes the value stored under key.
func (c *Cache[V]) Delete(key string) bool {
	return c.bucket(key).delete(key)
}

// Len returns the number of stored values.
func (c *Cache[V]) Len() int {
	total := 0
	for _, b := range c.buckets {
		total += b.len()
	}
	return total
}

func (c *Cache[V]) bucket(key string) *bucket[V] {
	return c.buckets[xxhash.Sum64String(key)&c.mask]
}
