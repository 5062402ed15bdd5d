package bridge

import (
	"testing"

	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/scene"
)

func TestStateOfCapturesTransform(t *testing.T) {
	o := &scene.Object{
		Name:     "Sun",
		Kind:     scene.KindLight,
		Position: math3d.Vec3{X: 1, Y: 2, Z: 3},
		Light:    &scene.Light{Kind: scene.LightSun, Power: 4, Color: scene.RGB{R: 1, G: 0.5, B: 0.25}},
	}
	o.SetOrientation(math3d.TrackQuat(math3d.Vec3{Y: -1}))

	st := StateOf(o)

	if st.Name != "Sun" || st.Kind != "sun" {
		t.Errorf("identity = %q/%q", st.Name, st.Kind)
	}
	if st.Position != [3]float64{1, 2, 3} {
		t.Errorf("position = %v", st.Position)
	}
	if st.Power != 4 || st.Color != [3]float64{1, 0.5, 0.25} {
		t.Errorf("params = %v / %v", st.Power, st.Color)
	}

	fwd := math3d.Vec3{X: st.Forward[0], Y: st.Forward[1], Z: st.Forward[2]}
	if !fwd.Near(math3d.Vec3{Y: -1}, 1e-9) {
		t.Errorf("forward = %v, want (0,-1,0)", st.Forward)
	}
}

func TestSnapshotOfListsOnlyLights(t *testing.T) {
	sc := scene.Demo()
	p := SnapshotOf(sc)

	if p.Scene != sc.Name {
		t.Errorf("scene name = %q, want %q", p.Scene, sc.Name)
	}
	if len(p.Lights) != len(sc.Lights()) {
		t.Errorf("lights = %d, want %d", len(p.Lights), len(sc.Lights()))
	}
	for _, l := range p.Lights {
		if obj := sc.Lookup(l.Name); obj == nil || !obj.IsLight() {
			t.Errorf("%q in snapshot is not a scene light", l.Name)
		}
	}
}
