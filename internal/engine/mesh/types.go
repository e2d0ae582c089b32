// Package mesh builds the procedural ring-segment meshes used for arc tracks,
// fills and tick marks. Output stops at vertex and index buffers.
package mesh

import "github.com/Faultbox/hoverkit/pkg/math"

// Mesh holds triangle data ready for upload by a renderer.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	UVs      []math.Vec2
	Indices  []uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Clear empties the mesh, keeping allocated capacity.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the bounding box of all vertices. An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = math.Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)}
	}
	return b
}

// FloatsPerVertex is the stride of Interleaved: position(3) + normal(3) + uv(2).
const FloatsPerVertex = 8

// Interleaved packs position, normal and UV per vertex for a single VBO.
func (m *Mesh) Interleaved() []float32 {
	return m.AppendInterleaved(make([]float32, 0, len(m.Vertices)*FloatsPerVertex))
}

// AppendInterleaved is Interleaved appending to dst, so callers can reuse
// a buffer across frames.
func (m *Mesh) AppendInterleaved(dst []float32) []float32 {
	for i, v := range m.Vertices {
		n := m.Normals[i]
		uv := m.UVs[i]
		dst = append(dst, v.X, v.Y, v.Z, n.X, n.Y, n.Z, uv.X, uv.Y)
	}
	return dst
}
