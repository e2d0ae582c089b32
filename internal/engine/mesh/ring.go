package mesh

import "github.com/Faultbox/hoverkit/pkg/math"

// BuildRingMesh rebuilds target as a flat ring segment in the local XZ plane.
//
// Vertices alternate inner/outer at steps+1 angles interpolated directly from
// angle0 to angle1, so a descending sweep is valid. Angles are measured from
// +Z toward +X. Faces always point up (+Y). A zero sweep leaves target empty;
// steps below 1 are treated as 1.
func BuildRingMesh(target *Mesh, innerRadius, outerRadius, angle0, angle1 float32, steps int) {
	target.Clear()

	if angle0 == angle1 {
		return
	}
	if steps < 1 {
		steps = 1
	}

	vertCount := 2 * (steps + 1)
	target.Vertices = grow(target.Vertices, vertCount)
	target.Normals = grow(target.Normals, vertCount)
	target.UVs = growUV(target.UVs, vertCount)
	target.Indices = growIdx(target.Indices, steps*6)

	descending := angle1 < angle0

	for i := 0; i <= steps; i++ {
		u := float32(i) / float32(steps)
		angle := math.Lerp(angle0, angle1, u)
		in := math.PolarVec2(angle, innerRadius)
		out := math.PolarVec2(angle, outerRadius)

		target.Vertices = append(target.Vertices,
			math.Vec3{X: in.X, Y: 0, Z: in.Y},
			math.Vec3{X: out.X, Y: 0, Z: out.Y},
		)
		target.Normals = append(target.Normals, math.Vec3Up, math.Vec3Up)
		target.UVs = append(target.UVs, math.Vec2{X: u, Y: 0}, math.Vec2{X: u, Y: 1})

		if i == 0 {
			continue
		}

		vi := uint32(2 * i)
		inPrev, outPrev := vi-2, vi-1
		inCur, outCur := vi, vi+1

		if descending {
			target.Indices = append(target.Indices,
				inPrev, inCur, outPrev,
				outPrev, inCur, outCur,
			)
		} else {
			target.Indices = append(target.Indices,
				inPrev, outPrev, inCur,
				outPrev, outCur, inCur,
			)
		}
	}
}

func grow(s []math.Vec3, n int) []math.Vec3 {
	if cap(s) < n {
		return make([]math.Vec3, 0, n)
	}
	return s[:0]
}

func growUV(s []math.Vec2, n int) []math.Vec2 {
	if cap(s) < n {
		return make([]math.Vec2, 0, n)
	}
	return s[:0]
}

func growIdx(s []uint32, n int) []uint32 {
	if cap(s) < n {
		return make([]uint32, 0, n)
	}
	return s[:0]
}
