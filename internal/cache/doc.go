// Package cache provides the sharded LRU cache behind meshcache.
//
// Keys are spread over a fixed number of shards by a caller supplied hash,
// each shard guarded by its own mutex and evicting its least recently used
// entry once it holds its share of the capacity.
package cache
