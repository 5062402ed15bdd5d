package panel

import (
	"strings"
	"testing"

	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/scene"
)

func spotLight() *scene.Object {
	return &scene.Object{
		Name:     "Key",
		Kind:     scene.KindLight,
		Position: math3d.Vec3{X: 2, Y: -1, Z: 3},
		Light: &scene.Light{
			Kind:      scene.LightSpot,
			Power:     800,
			Color:     scene.RGB{R: 1, G: 0.9, B: 0.8},
			SoftSize:  0.25,
			SpotSize:  0.785398, // ~45°
			SpotBlend: 0.15,
			Shadow:    scene.ShadowSettings{Enabled: true, ClipStart: 0.05, ClipEnd: 40},
		},
	}
}

func TestIdleWithLightSelected(t *testing.T) {
	m := New()
	m.Selected = spotLight()

	v := m.View()
	if !strings.Contains(v, "alt+l: pilot") {
		t.Error("idle panel should offer the pilot chord")
	}
	if !strings.Contains(v, "Light Settings:") {
		t.Error("idle panel should show the selected light's settings")
	}
	if !strings.Contains(v, "SPOT") {
		t.Error("settings should name the light type")
	}
	if !strings.Contains(v, "Power: 800.0 W") {
		t.Errorf("settings missing power row:\n%s", v)
	}
	if !strings.Contains(v, "Spot Size:  45.0°") {
		t.Errorf("settings missing spot cone row:\n%s", v)
	}
	if !strings.Contains(v, "Shadows: on") || !strings.Contains(v, "clip 0.05") {
		t.Errorf("settings missing shadow rows:\n%s", v)
	}
}

func TestIdleWithNothingSelected(t *testing.T) {
	m := New()

	v := m.View()
	if !strings.Contains(v, "Select a light to pilot") {
		t.Errorf("empty panel = %q", v)
	}
}

func TestPilotingShowsTargetAndCoords(t *testing.T) {
	m := New()
	m.Piloting = true
	m.Target = spotLight()
	m.ShowCoords = true

	v := m.View()
	if !strings.Contains(v, "Piloting: Key") {
		t.Error("panel should show the pilot header")
	}
	if !strings.Contains(v, "Position:") || !strings.Contains(v, "2.000") {
		t.Errorf("coords readout missing:\n%s", v)
	}
	if !strings.Contains(v, "Direction:") {
		t.Error("directional light should show a direction readout")
	}
	if !strings.Contains(v, "exit pilot") {
		t.Error("panel should show the exit hint")
	}
}

func TestCoordsReadoutFollowsRotationMode(t *testing.T) {
	m := New()
	m.Piloting = true
	m.ShowCoords = true

	quat := spotLight()
	quat.Mode = scene.ModeQuaternion
	m.Target = quat
	if v := m.View(); !strings.Contains(v, "(quat)") {
		t.Error("quaternion-mode readout should be tagged (quat)")
	}

	euler := spotLight()
	euler.Mode = scene.ModeZXY
	m.Target = euler
	if v := m.View(); !strings.Contains(v, "(ZXY)") {
		t.Error("euler-mode readout should be tagged with its order")
	}
}

func TestCoordsHiddenWhenDisabled(t *testing.T) {
	m := New()
	m.Piloting = true
	m.Target = spotLight()
	m.ShowCoords = false

	v := m.View()
	if strings.Contains(v, "Position:") {
		t.Error("coords readout should be hidden")
	}
	if !strings.Contains(v, "Show Coordinates: off") {
		t.Error("prefs row should show the toggle state")
	}
}

func TestAreaLightSizes(t *testing.T) {
	rect := &scene.Object{
		Name: "Fill",
		Kind: scene.KindLight,
		Light: &scene.Light{
			Kind:  scene.LightArea,
			Shape: scene.ShapeRectangle,
			Size:  2,
			SizeY: 0.5,
		},
	}

	m := New()
	m.Selected = rect
	v := m.View()
	if !strings.Contains(v, "Size X: 2.00") || !strings.Contains(v, "Size Y: 0.50") {
		t.Errorf("rectangle should show both sizes:\n%s", v)
	}

	rect.Light.Shape = scene.ShapeDisk
	v = m.View()
	if strings.Contains(v, "Size Y:") {
		t.Error("disk should show a single size")
	}
}
