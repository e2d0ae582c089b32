package mesh

import "github.com/Faultbox/hoverkit/pkg/math"

// BuildRectMesh rebuilds target as a width x height quad centered in the
// local XY plane, facing -Z.
func BuildRectMesh(target *Mesh, width, height float32) {
	target.Clear()
	if width <= 0 || height <= 0 {
		return
	}

	hw, hh := width/2, height/2
	target.Vertices = append(target.Vertices,
		math.Vec3{X: -hw, Y: -hh},
		math.Vec3{X: hw, Y: -hh},
		math.Vec3{X: hw, Y: hh},
		math.Vec3{X: -hw, Y: hh},
	)
	for range 4 {
		target.Normals = append(target.Normals, math.Vec3Back)
	}
	target.UVs = append(target.UVs,
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 1, Y: 0},
		math.Vec2{X: 1, Y: 1},
		math.Vec2{X: 0, Y: 1},
	)
	target.Indices = append(target.Indices, 0, 2, 1, 0, 3, 2)
}
