package meshcache

import (
	"hash/fnv"

	"github.com/gogpu/fontatlas/internal/cache"
	"github.com/gogpu/fontatlas/layout"
	"github.com/gogpu/fontatlas/metrics"
)

// DefaultCapacity is the number of meshes New keeps when given capacity <= 0.
const DefaultCapacity = 256

// Key identifies a cached mesh.
type Key struct {
	Text      string
	Alignment layout.Alignment
}

// Mesh is the layout of one string.
type Mesh struct {
	Triangles layout.TriangleBuffer
	Extent    layout.Extent
}

// Stats re-exports the cache counters.
type Stats = cache.Stats

// Cache memoizes meshes for one font. Safe for concurrent use.
type Cache struct {
	metrics *metrics.FontMetrics
	meshes  *cache.Sharded[Key, *Mesh]
}

// New creates a cache of roughly capacity meshes laid out with m.
func New(m *metrics.FontMetrics, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		metrics: m,
		meshes:  cache.NewSharded[Key, *Mesh](capacity, hashKey),
	}
}

// Metrics returns the font the cache lays out with.
func (c *Cache) Metrics() *metrics.FontMetrics {
	return c.metrics
}

// Mesh returns the mesh for text, building it on a miss.
func (c *Cache) Mesh(text string, opts layout.Options) *Mesh {
	key := Key{Text: text, Alignment: opts.Alignment}
	return c.meshes.GetOrCreate(key, func() *Mesh {
		tris := layout.Triangles(c.metrics, text, opts)
		return &Mesh{
			Triangles: tris,
			Extent:    layout.TextExtent(c.metrics, text, opts),
		}
	})
}

// Lookup returns a cached mesh without building one.
func (c *Cache) Lookup(text string, opts layout.Options) (*Mesh, bool) {
	return c.meshes.Get(Key{Text: text, Alignment: opts.Alignment})
}

// Forget drops the mesh for text, reporting whether one was cached.
func (c *Cache) Forget(text string, opts layout.Options) bool {
	return c.meshes.Delete(Key{Text: text, Alignment: opts.Alignment})
}

// Clear drops all meshes.
func (c *Cache) Clear() {
	c.meshes.Clear()
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	return c.meshes.Len()
}

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() Stats {
	return c.meshes.Stats()
}

func hashKey(k Key) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.Text)) // fnv.Write never returns an error
	_, _ = h.Write([]byte{byte(k.Alignment)})
	return h.Sum64()
}
