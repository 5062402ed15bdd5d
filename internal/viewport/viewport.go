// Package viewport models the navigation camera of the 3D view: an orbit
// pivot, a view rotation, a zoom distance and the projection settings. The
// eye point and forward axis are derived the same way a view matrix would
// yield them, so the pilot session can treat the viewport like a camera.
package viewport

import (
	"github.com/lightpilot/lightpilot/internal/math3d"
)

// Projection is the viewport projection mode.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Viewport is the state of the interactive 3D view. The view looks along
// its local -Z axis at Pivot from Distance away.
type Viewport struct {
	Pivot       math3d.Vec3
	Rotation    math3d.Quat
	Distance    float64
	Projection  Projection
	LocalCamera bool
	Camera      string // bound camera object name, empty when unbound

	closed bool
}

// New returns a viewport with the default home view: perspective, pivoted
// on the origin, looking down at a slight angle.
func New() *Viewport {
	return &Viewport{
		Rotation: math3d.TrackQuat(math3d.Vec3{X: 1, Y: 1, Z: -0.8}),
		Distance: 12,
	}
}

// Eye returns the world-space position the view is looking from. This is
// the translation of the inverted view matrix: pivot plus the rotated
// distance offset along the local +Z axis.
func (v *Viewport) Eye() math3d.Vec3 {
	return v.Pivot.Add(v.Rotation.Rotate(math3d.Vec3{Z: v.Distance}))
}

// Forward returns the world-space direction the view is looking along,
// the rotated local -Z axis.
func (v *Viewport) Forward() math3d.Vec3 {
	return v.Rotation.Rotate(math3d.Vec3{Z: -1}).Normalized()
}

// ToView transforms a world-space point into view space, where the eye is
// at the origin and -Z points into the screen.
func (v *Viewport) ToView(p math3d.Vec3) math3d.Vec3 {
	return v.Rotation.Conjugate().Rotate(p.Sub(v.Eye()))
}

// Close marks the viewport as gone, e.g. its pane was torn down. A closed
// viewport is an invalid pilot context.
func (v *Viewport) Close() {
	v.closed = true
}

// Valid reports whether the viewport still exists as a pilot context.
func (v *Viewport) Valid() bool {
	return v != nil && !v.closed
}
