// Package shape holds the interactive geometry of items. Every shape can
// report the point on its surface nearest to a cursor, given either a world
// position or a world ray, and can turn such a point into a slider value.
package shape

import (
	"errors"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

var (
	// ErrHandleShape is returned when a slider handle's shape does not match
	// its track's shape.
	ErrHandleShape = errors.New("slider handle shape does not match track shape")

	// ErrNotSlider is returned when a slider value is requested from a shape
	// that has no slider layout.
	ErrNotSlider = errors.New("shape has no slider layout")
)

// Shape is implemented by Rect and Arc.
type Shape interface {
	CenterWorldPosition() math.Vec3
	NearestWorldPosition(from math.Vec3) math.Vec3
	NearestWorldPositionAlongRay(ray geom.Ray) (math.Vec3, geom.RaycastResult)
	SliderValue(nearest math.Vec3, container geom.Transform, handle Shape) (float32, error)
	BuildMesh(target *mesh.Mesh)
}
