package layout

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fontatlas/metrics"
)

// Triangle list geometry.
const (
	// FloatsPerVertex is x, y, u, v.
	FloatsPerVertex = 4

	// VerticesPerGlyph is two unindexed triangles.
	VerticesPerGlyph = 6

	// FloatsPerGlyph is the buffer space one quad occupies.
	FloatsPerGlyph = FloatsPerVertex * VerticesPerGlyph

	// VertexStride is the byte size of one vertex.
	VertexStride = FloatsPerVertex * 4
)

// TriangleBuffer is a tightly packed unindexed triangle list, FloatsPerVertex
// float32 values per vertex and VerticesPerGlyph vertices per glyph.
type TriangleBuffer []float32

// VertexCount returns the number of vertices in the buffer.
func (b TriangleBuffer) VertexCount() int {
	return len(b) / FloatsPerVertex
}

// GlyphCount returns the number of quads in the buffer.
func (b TriangleBuffer) GlyphCount() int {
	return len(b) / FloatsPerGlyph
}

// Bytes serializes the buffer as little-endian float32 values, ready for a
// vertex buffer described by VertexBufferLayout.
func (b TriangleBuffer) Bytes() []byte {
	if len(b) == 0 {
		return nil
	}
	data := make([]byte, len(b)*4)
	for i, f := range b {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	return data
}

// Triangles lays out text and packs its quads into a new triangle buffer of
// exactly FloatsPerGlyph * GlyphCount(text) floats.
func Triangles(m *metrics.FontMetrics, text string, opts Options) TriangleBuffer {
	return AppendTriangles(make(TriangleBuffer, 0, FloatsPerGlyph*GlyphCount(text)), m, text, opts)
}

// AppendTriangles lays out text and appends its triangles to dst. Hosts
// that rebuild the mesh every frame pass dst[:0] to reuse the allocation.
func AppendTriangles(dst TriangleBuffer, m *metrics.FontMetrics, text string, opts Options) TriangleBuffer {
	dst = slices.Grow(dst, FloatsPerGlyph*GlyphCount(text))
	walk(m, text, opts, func(q Quad) bool {
		dst = appendQuad(dst, q)
		return true
	})
	return dst
}

// appendQuad writes the six vertices of q. The order is part of the buffer
// format: top-left, bottom-left, top-right, then top-right, bottom-left,
// bottom-right.
func appendQuad(dst TriangleBuffer, q Quad) TriangleBuffer {
	x0, x1 := float32(q.XMin), float32(q.XMax)
	y0, y1 := float32(q.YMin), float32(q.YMax)
	u0, u1 := float32(q.UMin), float32(q.UMax)
	v0, v1 := float32(q.VMin), float32(q.VMax)
	return append(dst,
		x0, y1, u0, v1,
		x0, y0, u0, v0,
		x1, y1, u1, v1,

		x1, y1, u1, v1,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
	)
}

// VertexBufferLayout describes a TriangleBuffer to a WebGPU render pipeline:
//
//	location 0: position (vec2<f32>)
//	location 1: uv       (vec2<f32>)
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
		},
	}
}

// PrimitiveState returns the primitive state a TriangleBuffer is drawn
// with: an unindexed triangle list without culling.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
