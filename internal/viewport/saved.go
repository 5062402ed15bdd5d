package viewport

import (
	"github.com/lightpilot/lightpilot/internal/math3d"
)

// SavedViewState is a snapshot of the viewport taken before entering pilot
// mode. Each field carries its own captured flag so a partial snapshot
// restores only what it holds; fields that were never captured are left
// untouched on restore.
type SavedViewState struct {
	Pivot    math3d.Vec3
	Rotation math3d.Quat
	Distance float64

	Projection  Projection
	LocalCamera bool
	Camera      string

	HasPivot       bool
	HasRotation    bool
	HasDistance    bool
	HasProjection  bool
	HasLocalCamera bool
	HasCamera      bool
}

// Snapshot captures the complete current view state.
func (v *Viewport) Snapshot() SavedViewState {
	return SavedViewState{
		Pivot:          v.Pivot,
		Rotation:       v.Rotation,
		Distance:       v.Distance,
		Projection:     v.Projection,
		LocalCamera:    v.LocalCamera,
		Camera:         v.Camera,
		HasPivot:       true,
		HasRotation:    true,
		HasDistance:    true,
		HasProjection:  true,
		HasLocalCamera: true,
		HasCamera:      true,
	}
}

// Restore writes the captured fields of s back onto the viewport,
// independently, skipping anything that was never captured.
func (v *Viewport) Restore(s SavedViewState) {
	if s.HasProjection {
		v.Projection = s.Projection
	}
	if s.HasLocalCamera {
		v.LocalCamera = s.LocalCamera
	}
	if s.HasCamera {
		v.Camera = s.Camera
	}
	if s.HasPivot {
		v.Pivot = s.Pivot
	}
	if s.HasRotation {
		v.Rotation = s.Rotation
	}
	if s.HasDistance {
		v.Distance = s.Distance
	}
}
