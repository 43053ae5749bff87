package cache

import (
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of independently locked shards.
	// Must be a power of 2.
	ShardCount = 8

	shardMask = ShardCount - 1
)

// Hasher maps a key to the hash used for shard selection.
type Hasher[K any] func(K) uint64

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	order   list[K, V]
}

// Sharded is a concurrency-safe LRU cache split into ShardCount shards.
//
// Sharded must not be copied after creation.
type Sharded[K comparable, V any] struct {
	shards        [ShardCount]shard[K, V]
	hash          Hasher[K]
	shardCapacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewSharded creates a cache holding about capacity entries in total.
// Every shard holds at least one entry.
func NewSharded[K comparable, V any](capacity int, hash Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{
		hash:          hash,
		shardCapacity: max(1, (capacity+ShardCount-1)/ShardCount),
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*node[K, V])
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hash(key)&shardMask]
}

// Get returns the cached value for key and marks it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	n, ok := s.entries[key]
	if ok {
		s.order.moveToFront(n)
	}
	s.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return n.value, true
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs with the shard locked, so concurrent callers asking for the
// same key wait for one computation instead of repeating it.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[key]; ok {
		s.order.moveToFront(n)
		c.hits.Add(1)
		return n.value
	}
	c.misses.Add(1)

	n := &node[K, V]{key: key, value: create()}
	c.insert(s, n)
	return n.value
}

// Set stores value under key, replacing any previous value.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[key]; ok {
		n.value = value
		s.order.moveToFront(n)
		return
	}
	c.insert(s, &node[K, V]{key: key, value: value})
}

// insert adds n to s, evicting from the tail first. s.mu must be held.
func (c *Sharded[K, V]) insert(s *shard[K, V], n *node[K, V]) {
	for s.order.len >= c.shardCapacity {
		old := s.order.popBack()
		if old == nil {
			break
		}
		delete(s.entries, old.key)
		c.evictions.Add(1)
	}
	s.order.pushFront(n)
	s.entries[n.key] = n
}

// Delete removes key, reporting whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.entries[key]
	if !ok {
		return false
	}
	s.order.unlink(n)
	delete(s.entries, key)
	return true
}

// Clear removes every entry. Counters are kept.
func (c *Sharded[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		clear(s.entries)
		s.order.reset()
		s.mu.Unlock()
	}
}

// Len returns the number of cached entries.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the total number of entries the cache holds.
func (c *Sharded[K, V]) Capacity() int {
	return c.shardCapacity * ShardCount
}

// Stats returns the current counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.Capacity(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
