// Package meshcache memoizes triangle buffers for hosts that redraw the
// same strings every frame.
//
// A Cache is bound to one FontMetrics. Mesh returns the triangles and extent
// for a (text, alignment) pair, computing them on first use and keeping the
// most recently used results up to a fixed capacity:
//
//	meshes := meshcache.New(m, meshcache.DefaultCapacity)
//	mesh := meshes.Mesh("Score: 120", layout.Options{Alignment: layout.AlignRight})
//	upload(mesh.Triangles.Bytes())
//
// Returned meshes are shared between callers and must not be modified.
package meshcache
