package bridge

import (
	"github.com/lightpilot/lightpilot/internal/scene"
)

type MessageType string

const (
	MsgSnapshot MessageType = "snapshot"
	MsgDelta    MessageType = "delta"
	MsgPilot    MessageType = "pilot"
)

type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// LightState is the wire form of one light's transform and key
// parameters. Vectors are x,y,z arrays; rotations are w,x,y,z.
type LightState struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Position [3]float64 `json:"position"`
	Rotation [4]float64 `json:"rotation"`
	Forward  [3]float64 `json:"forward"`
	Power    float64    `json:"power"`
	Color    [3]float64 `json:"color"`
}

type SnapshotPayload struct {
	Scene  string       `json:"scene"`
	Lights []LightState `json:"lights"`
}

type DeltaPayload struct {
	Updates []LightState `json:"updates"`
}

type PilotPayload struct {
	Light  string `json:"light"`
	Active bool   `json:"active"`
}

// StateOf captures a light object's current wire state. Call it from the
// goroutine that owns the scene; the result is a plain value safe to hand
// to the broadcaster.
func StateOf(o *scene.Object) LightState {
	q := o.Orientation()
	f := o.Forward()
	return LightState{
		Name:     o.Name,
		Kind:     o.Light.Kind.String(),
		Position: [3]float64{o.Position.X, o.Position.Y, o.Position.Z},
		Rotation: [4]float64{q.W, q.X, q.Y, q.Z},
		Forward:  [3]float64{f.X, f.Y, f.Z},
		Power:    o.Light.Power,
		Color:    [3]float64{o.Light.Color.R, o.Light.Color.G, o.Light.Color.B},
	}
}

// SnapshotOf captures the wire state of every light in the scene.
func SnapshotOf(sc *scene.Scene) SnapshotPayload {
	p := SnapshotPayload{Scene: sc.Name}
	for _, o := range sc.Lights() {
		p.Lights = append(p.Lights, StateOf(o))
	}
	return p
}
