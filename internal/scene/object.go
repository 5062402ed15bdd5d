// Package scene is the scene graph: named objects with transforms, light
// parameter records, and YAML persistence for the scene document.
package scene

import (
	"github.com/lightpilot/lightpilot/internal/math3d"
)

// ObjectKind tags what a scene object is.
type ObjectKind int

const (
	KindMesh ObjectKind = iota
	KindLight
	KindCamera
	KindEmpty
)

var objectKindNames = map[ObjectKind]string{
	KindMesh:   "mesh",
	KindLight:  "light",
	KindCamera: "camera",
	KindEmpty:  "empty",
}

var objectKindFromName = map[string]ObjectKind{
	"mesh":   KindMesh,
	"light":  KindLight,
	"camera": KindCamera,
	"empty":  KindEmpty,
}

func (k ObjectKind) String() string {
	if s, ok := objectKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// RotationMode selects how an object stores its orientation: as a
// quaternion or as Euler angles in one of the six orders.
type RotationMode int

const (
	ModeQuaternion RotationMode = iota
	ModeXYZ
	ModeXZY
	ModeYXZ
	ModeYZX
	ModeZXY
	ModeZYX
)

var rotationModeNames = map[RotationMode]string{
	ModeQuaternion: "quaternion",
	ModeXYZ:        "xyz",
	ModeXZY:        "xzy",
	ModeYXZ:        "yxz",
	ModeYZX:        "yzx",
	ModeZXY:        "zxy",
	ModeZYX:        "zyx",
}

var rotationModeFromName = map[string]RotationMode{
	"quaternion": ModeQuaternion,
	"xyz":        ModeXYZ,
	"xzy":        ModeXZY,
	"yxz":        ModeYXZ,
	"yzx":        ModeYZX,
	"zxy":        ModeZXY,
	"zyx":        ModeZYX,
}

func (m RotationMode) String() string {
	if s, ok := rotationModeNames[m]; ok {
		return s
	}
	return "quaternion"
}

// EulerOrder returns the math3d order for Euler modes. The second result
// is false for ModeQuaternion.
func (m RotationMode) EulerOrder() (math3d.EulerOrder, bool) {
	switch m {
	case ModeXYZ:
		return math3d.OrderXYZ, true
	case ModeXZY:
		return math3d.OrderXZY, true
	case ModeYXZ:
		return math3d.OrderYXZ, true
	case ModeYZX:
		return math3d.OrderYZX, true
	case ModeZXY:
		return math3d.OrderZXY, true
	case ModeZYX:
		return math3d.OrderZYX, true
	}
	return math3d.OrderXYZ, false
}

// Object is one node of the scene graph. Exactly one of the rotation
// representations is authoritative, chosen by RotationMode; Light is nil
// for everything but light objects.
type Object struct {
	Name     string       `yaml:"name"`
	Kind     ObjectKind   `yaml:"kind"`
	Position math3d.Vec3  `yaml:"position"`
	Mode     RotationMode `yaml:"rotation_mode"`

	RotationQuat  math3d.Quat  `yaml:"rotation_quat,omitempty"`
	RotationEuler math3d.Euler `yaml:"rotation_euler,omitempty"`

	Light *Light `yaml:"light,omitempty"`
}

// IsLight reports whether the object is a light with a parameter record.
func (o *Object) IsLight() bool {
	return o != nil && o.Kind == KindLight && o.Light != nil
}

// Orientation returns the object's world orientation as a quaternion,
// converting from Euler angles when that is the configured mode. Objects
// with no stored rotation report identity.
func (o *Object) Orientation() math3d.Quat {
	if order, ok := o.Mode.EulerOrder(); ok {
		e := o.RotationEuler
		e.Order = order
		return e.ToQuat()
	}
	if o.RotationQuat == (math3d.Quat{}) {
		return math3d.QuatIdent()
	}
	return o.RotationQuat.Normalized()
}

// SetOrientation overwrites the object's orientation, writing into the
// representation its rotation mode is configured for.
func (o *Object) SetOrientation(q math3d.Quat) {
	if order, ok := o.Mode.EulerOrder(); ok {
		o.RotationEuler = math3d.EulerFromQuat(q, order)
		return
	}
	o.RotationQuat = q.Normalized()
}

// Forward returns the direction the object faces, its rotated local -Z
// axis. Only meaningful for directional lights and cameras.
func (o *Object) Forward() math3d.Vec3 {
	return o.Orientation().Rotate(math3d.Vec3{Z: -1}).Normalized()
}
