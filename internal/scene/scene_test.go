package scene

import (
	"math"
	"testing"

	"github.com/lightpilot/lightpilot/internal/math3d"
)

func TestLightKindDirectional(t *testing.T) {
	tests := []struct {
		kind LightKind
		want bool
	}{
		{LightPoint, false},
		{LightSun, true},
		{LightSpot, true},
		{LightArea, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Directional(); got != tt.want {
				t.Errorf("Directional() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreaShapeTwoSized(t *testing.T) {
	if ShapeSquare.TwoSized() || ShapeDisk.TwoSized() {
		t.Error("square and disk have a single size")
	}
	if !ShapeRectangle.TwoSized() || !ShapeEllipse.TwoSized() {
		t.Error("rectangle and ellipse have X and Y sizes")
	}
}

func TestIsLight(t *testing.T) {
	light := &Object{Name: "L", Kind: KindLight, Light: &Light{Kind: LightPoint}}
	mesh := &Object{Name: "M", Kind: KindMesh}
	tagged := &Object{Name: "T", Kind: KindLight} // light kind, no record

	if !light.IsLight() {
		t.Error("light object should be a light")
	}
	if mesh.IsLight() {
		t.Error("mesh should not be a light")
	}
	if tagged.IsLight() {
		t.Error("light without a parameter record should not count")
	}

	var nilObj *Object
	if nilObj.IsLight() {
		t.Error("nil object should not be a light")
	}
}

func TestOrientationDefaultsToIdentity(t *testing.T) {
	o := &Object{Name: "O"}
	q := o.Orientation()
	if q != math3d.QuatIdent() {
		t.Errorf("Orientation() = %+v, want identity", q)
	}
}

func TestSetOrientationQuaternionMode(t *testing.T) {
	o := &Object{Name: "O", Mode: ModeQuaternion}
	q := math3d.QuatFromAxisAngle(math3d.Vec3{Z: 1}, 1.1)

	o.SetOrientation(q)

	if !o.RotationQuat.NearRotation(q, 1e-9) {
		t.Errorf("RotationQuat = %+v, want %+v", o.RotationQuat, q)
	}
	if o.RotationEuler != (math3d.Euler{}) {
		t.Errorf("euler storage should stay untouched, got %+v", o.RotationEuler)
	}
}

func TestSetOrientationEulerModes(t *testing.T) {
	modes := []RotationMode{ModeXYZ, ModeXZY, ModeYXZ, ModeYZX, ModeZXY, ModeZYX}
	q := math3d.QuatFromAxisAngle(math3d.Vec3{X: 1, Y: 0.5, Z: -0.2}, 0.9)

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			o := &Object{Name: "O", Mode: mode}
			o.SetOrientation(q)

			if o.RotationQuat != (math3d.Quat{}) {
				t.Errorf("quaternion storage should stay untouched, got %+v", o.RotationQuat)
			}
			if !o.Orientation().NearRotation(q, 1e-9) {
				t.Errorf("Orientation() = %+v, want %+v", o.Orientation(), q)
			}
		})
	}
}

func TestForwardTracksOrientation(t *testing.T) {
	o := &Object{Name: "Sun", Kind: KindLight, Light: &Light{Kind: LightSun}}
	dir := math3d.Vec3{X: 0.3, Y: -1, Z: -0.5}.Normalized()
	o.SetOrientation(math3d.TrackQuat(dir))

	if !o.Forward().Near(dir, 1e-9) {
		t.Errorf("Forward() = %+v, want %+v", o.Forward(), dir)
	}
}

func TestSceneLookupAndRemove(t *testing.T) {
	s := New("test")
	s.Add(&Object{Name: "A", Kind: KindMesh})
	s.Add(&Object{Name: "B", Kind: KindLight, Light: &Light{Kind: LightPoint}})

	if s.Lookup("A") == nil || s.Lookup("B") == nil {
		t.Fatal("lookup of added objects failed")
	}
	if s.Lookup("missing") != nil {
		t.Error("lookup of missing object should be nil")
	}

	if got := len(s.Lights()); got != 1 {
		t.Errorf("Lights() = %d entries, want 1", got)
	}

	if !s.Remove("B") {
		t.Error("removing existing object should report true")
	}
	if s.Remove("B") {
		t.Error("removing it again should report false")
	}
	if s.Lookup("B") != nil {
		t.Error("removed object still resolvable")
	}
	if len(s.Objects) != 1 {
		t.Errorf("Objects length = %d, want 1", len(s.Objects))
	}
}

func TestDemoSceneHasEveryLightKind(t *testing.T) {
	s := Demo()

	kinds := make(map[LightKind]bool)
	for _, o := range s.Lights() {
		kinds[o.Light.Kind] = true
	}
	for _, k := range []LightKind{LightPoint, LightSun, LightSpot, LightArea} {
		if !kinds[k] {
			t.Errorf("demo scene is missing a %s light", k)
		}
	}

	sun := s.Lookup("Sun")
	if sun == nil || !sun.IsLight() {
		t.Fatal("demo scene has no Sun light")
	}
	if math.Abs(sun.Forward().Len()-1) > 1e-9 {
		t.Error("Sun forward is not unit length")
	}
}
