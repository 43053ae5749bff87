package cache

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

// identity puts key k in shard k%ShardCount.
func identity(k uint64) uint64 { return k }

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[uint64, string](64, identity)

	if _, ok := c.Get(1); ok {
		t.Fatal("empty cache reported a hit")
	}
	c.Set(1, "one")
	c.Set(1, "uno")
	if v, ok := c.Get(1); !ok || v != "uno" {
		t.Errorf("Get(1) = %q, %v, want \"uno\", true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats = %+v, want 1 hit and 1 miss", st)
	}
	if st.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", st.HitRate())
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[uint64, int](64, identity)
	calls := 0
	create := func() int { calls++; return 7 }

	if v := c.GetOrCreate(3, create); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if v := c.GetOrCreate(3, create); v != 7 {
		t.Errorf("GetOrCreate = %d, want 7", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestShardedEvictsLeastRecentlyUsed(t *testing.T) {
	// Capacity 2*ShardCount gives two entries per shard. Keys 0, ShardCount
	// and 2*ShardCount all land in shard 0.
	c := NewSharded[uint64, int](2*ShardCount, identity)
	a, b, d := uint64(0), uint64(ShardCount), uint64(2*ShardCount)

	c.Set(a, 1)
	c.Set(b, 2)
	c.Get(a) // b is now the oldest
	c.Set(d, 3)

	if _, ok := c.Get(b); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get(a); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(d); !ok {
		t.Error("new entry missing")
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestShardedCapacity(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, ShardCount},
		{1, ShardCount},
		{ShardCount, ShardCount},
		{ShardCount + 1, 2 * ShardCount},
	}
	for _, tt := range tests {
		if got := NewSharded[uint64, int](tt.in, identity).Capacity(); got != tt.want {
			t.Errorf("Capacity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestShardedDeleteAndClear(t *testing.T) {
	c := NewSharded[uint64, int](64, identity)
	for i := range uint64(10) {
		c.Set(i, int(i))
	}

	if !c.Delete(4) {
		t.Error("Delete(4) = false, want true")
	}
	if c.Delete(4) {
		t.Error("second Delete(4) = true, want false")
	}
	if c.Len() != 9 {
		t.Errorf("Len() = %d, want 9", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set(4, 4)
	if v, ok := c.Get(4); !ok || v != 4 {
		t.Error("cache unusable after Clear")
	}
}

func TestShardedConcurrentGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](1024, func(s string) uint64 {
		n, _ := strconv.ParseUint(s, 10, 64)
		return n
	})

	var created atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := strconv.Itoa(i)
				v := c.GetOrCreate(key, func() int {
					created.Add(1)
					return i * i
				})
				if v != i*i {
					t.Errorf("GetOrCreate(%s) = %d, want %d", key, v, i*i)
					return
				}
			}
		}()
	}
	wg.Wait()

	if n := created.Load(); n != 100 {
		t.Errorf("create ran %d times, want 100", n)
	}
}

func BenchmarkShardedHit(b *testing.B) {
	c := NewSharded[uint64, int](1024, identity)
	for i := range uint64(512) {
		c.Set(i, int(i))
	}
	var i uint64
	for b.Loop() {
		c.Get(i & 511)
		i++
	}
}
