package scene

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lightpilot/lightpilot/internal/math3d"
)

// Load reads a scene document from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	s.reindex()

	// Euler angles in the file carry no order of their own; it comes from
	// the object's rotation mode.
	for _, o := range s.Objects {
		if order, ok := o.Mode.EulerOrder(); ok {
			o.RotationEuler.Order = order
		}
	}
	return s, nil
}

// Save writes the scene document back to a YAML file, settings included.
func (s *Scene) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Demo returns the built-in example scene used when no file is given:
// one light of every kind around a few stand-in meshes.
func Demo() *Scene {
	s := New("demo")
	s.Settings.ShowCoords = true

	s.Add(&Object{
		Name: "Floor",
		Kind: KindMesh,
	})
	s.Add(&Object{
		Name:     "Cube",
		Kind:     KindMesh,
		Position: math3d.Vec3{Z: 1},
	})

	sun := s.Add(&Object{
		Name:     "Sun",
		Kind:     KindLight,
		Position: math3d.Vec3{X: 4, Y: -3, Z: 8},
		Light: &Light{
			Kind:   LightSun,
			Power:  3,
			Color:  RGB{1, 0.96, 0.9},
			Angle:  0.00918,
			Shadow: ShadowSettings{Enabled: true, ClipStart: 0.05, ClipEnd: 100},
		},
	})
	sun.SetOrientation(math3d.TrackQuat(math3d.Vec3{X: -0.4, Y: 0.3, Z: -1}))

	s.Add(&Object{
		Name:     "Lamp",
		Kind:     KindLight,
		Position: math3d.Vec3{X: -3, Y: 2, Z: 4},
		Light: &Light{
			Kind:     LightPoint,
			Power:    100,
			Color:    RGB{1, 1, 1},
			SoftSize: 0.25,
			Shadow:   ShadowSettings{Enabled: true, ClipStart: 0.05, ClipEnd: 40},
		},
	})

	key := s.Add(&Object{
		Name:     "Key",
		Kind:     KindLight,
		Position: math3d.Vec3{X: 5, Y: 5, Z: 6},
		Mode:     ModeXYZ,
		Light: &Light{
			Kind:      LightSpot,
			Power:     800,
			Color:     RGB{1, 0.9, 0.8},
			SoftSize:  0.1,
			SpotSize:  math.Pi / 4,
			SpotBlend: 0.15,
			Shadow:    ShadowSettings{Enabled: true, ClipStart: 0.05, ClipEnd: 60},
		},
	})
	key.SetOrientation(math3d.TrackQuat(math3d.Vec3{X: -5, Y: -5, Z: -5}))

	fill := s.Add(&Object{
		Name:     "Fill",
		Kind:     KindLight,
		Position: math3d.Vec3{X: -6, Y: -4, Z: 3},
		Light: &Light{
			Kind:  LightArea,
			Power: 200,
			Color: RGB{0.8, 0.85, 1},
			Shape: ShapeRectangle,
			Size:  2,
			SizeY: 1,
		},
	})
	fill.SetOrientation(math3d.TrackQuat(math3d.Vec3{X: 6, Y: 4, Z: -2.5}))

	return s
}
