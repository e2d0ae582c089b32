package mesh

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverkit/pkg/math"
)

func faceNormal(m *Mesh, tri int) math.Vec3 {
	a := m.Vertices[m.Indices[tri*3]]
	b := m.Vertices[m.Indices[tri*3+1]]
	c := m.Vertices[m.Indices[tri*3+2]]
	return b.Sub(a).Cross(c.Sub(a))
}

func TestBuildRingMeshCounts(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, gomath.Pi, 10)

	if len(m.Vertices) != 22 {
		t.Errorf("vertex count = %d, want 22", len(m.Vertices))
	}
	if len(m.Indices) != 60 {
		t.Errorf("index count = %d, want 60", len(m.Indices))
	}
	if m.TriangleCount() != 20 {
		t.Errorf("TriangleCount() = %d, want 20", m.TriangleCount())
	}
	if len(m.Normals) != 22 || len(m.UVs) != 22 {
		t.Errorf("normals/uvs = %d/%d, want 22/22", len(m.Normals), len(m.UVs))
	}
}

func TestBuildRingMeshRadii(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, gomath.Pi, 10)

	for i, v := range m.Vertices {
		r := v.Length()
		want := float32(1)
		if i%2 == 1 {
			want = 2
		}
		if math.Abs(r-want) > 0.0001 {
			t.Errorf("vertex %d radius = %v, want %v", i, r, want)
		}
		if v.Y != 0 {
			t.Errorf("vertex %d should lie in XZ plane, got y=%v", i, v.Y)
		}
	}
}

func TestBuildRingMeshEndpoints(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0.5, -0.5, 4)

	first := m.Vertices[0].XZ().PolarAngle()
	last := m.Vertices[len(m.Vertices)-2].XZ().PolarAngle()
	if math.Abs(first-0.5) > 0.0001 || math.Abs(last+0.5) > 0.0001 {
		t.Errorf("sweep endpoints = %v..%v, want 0.5..-0.5", first, last)
	}
	if m.UVs[0].X != 0 || m.UVs[len(m.UVs)-1].X != 1 {
		t.Errorf("uv x should run 0..1, got %v..%v", m.UVs[0].X, m.UVs[len(m.UVs)-1].X)
	}
}

func TestBuildRingMeshWindingFacesUp(t *testing.T) {
	tests := []struct {
		name   string
		a0, a1 float32
	}{
		{"ascending", -1, 1},
		{"descending", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Mesh
			BuildRingMesh(&m, 1, 2, tt.a0, tt.a1, 6)
			for tri := 0; tri < m.TriangleCount(); tri++ {
				if n := faceNormal(&m, tri); n.Y <= 0 {
					t.Errorf("triangle %d normal = %v, want +Y", tri, n)
				}
			}
		})
	}
}

func TestBuildRingMeshZeroSpan(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, gomath.Pi, 3)
	BuildRingMesh(&m, 1, 2, 0.7, 0.7, 3)

	if !m.IsEmpty() || len(m.Vertices) != 0 {
		t.Errorf("zero span should leave an empty mesh, got %d vertices %d indices", len(m.Vertices), len(m.Indices))
	}
}

func TestBuildRingMeshClampsSteps(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, 1, 0)
	if len(m.Vertices) != 4 || m.TriangleCount() != 2 {
		t.Errorf("steps=0 should build one step, got %d vertices %d triangles", len(m.Vertices), m.TriangleCount())
	}
}

func TestBuildRingMeshRebuildReplaces(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, 1, 8)
	BuildRingMesh(&m, 1, 2, 0, 1, 2)
	if len(m.Vertices) != 6 {
		t.Errorf("rebuild should replace vertices, got %d", len(m.Vertices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range after rebuild", idx)
		}
	}
}

func TestMeshBoundsAndInterleaved(t *testing.T) {
	var m Mesh
	BuildRingMesh(&m, 1, 2, 0, gomath.Pi/2, 4)

	b := m.Bounds()
	if math.Abs(b.Max.X-2) > 0.0001 || math.Abs(b.Max.Z-2) > 0.0001 || b.Min.X < -0.0001 {
		t.Errorf("Bounds() = %+v", b)
	}

	data := m.Interleaved()
	if len(data) != len(m.Vertices)*FloatsPerVertex {
		t.Errorf("Interleaved() length = %d, want %d", len(data), len(m.Vertices)*FloatsPerVertex)
	}
	if data[4] != 1 {
		t.Errorf("first normal Y = %v, want 1", data[4])
	}
}
