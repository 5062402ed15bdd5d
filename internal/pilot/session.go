// Package pilot implements light piloting: a modal session that binds
// viewport navigation to a scene light, so moving the view moves the
// light. The session saves the view state on entry, mirrors the viewport
// eye onto the light on every tick, and restores the view on exit.
package pilot

import (
	"errors"
	"fmt"

	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/viewport"
)

// PilotDistance is the view distance used while piloting. Effectively
// zero: it puts the viewport eye at the light's position while keeping
// the orbit math away from a true singularity.
const PilotDistance = 0.001

// Start errors. Precondition failures reject the start without touching
// any running session.
var (
	ErrSessionActive = errors.New("a pilot session is already active")
	ErrSnapshotHeld  = errors.New("an unconsumed view snapshot exists")
	ErrNotFound      = errors.New("could not find the specified light")
	ErrNotALight     = errors.New("object is not a light")
)

// EventKind classifies the input events fed to Tick.
type EventKind int

const (
	// EventNav is any navigation or timer tick to pass through.
	EventNav EventKind = iota
	// EventCancel is the explicit cancel input (escape).
	EventCancel
)

// Event is one navigation/input frame delivered to an active session.
type Event struct {
	Kind EventKind
}

// Status is the result of a Tick: whether the session wants to keep
// receiving events or has finished and cleaned up.
type Status int

const (
	StatusContinue Status = iota
	StatusFinished
)

// session is the single active pilot instance: the active flag, the
// target light and the owned view snapshot.
type session struct {
	active bool
	target string
	saved  *viewport.SavedViewState
}

// Controller owns the one allowed session and the collaborators it acts
// on. There are no package globals; re-entrancy guards live here.
type Controller struct {
	sc     *scene.Scene
	vp     *viewport.Viewport
	report func(string)

	cur    *session
	notice string
}

// New returns a controller for the given scene and viewport. report
// receives short user-facing notices and may be nil.
func New(sc *scene.Scene, vp *viewport.Viewport, report func(string)) *Controller {
	return &Controller{sc: sc, vp: vp, report: report}
}

// Active reports whether a pilot session is running.
func (c *Controller) Active() bool {
	return c.cur != nil && c.cur.active
}

// Target returns the name of the piloted light, or "" when idle. The
// panel uses this for its "Piloting: <name>" readout.
func (c *Controller) Target() string {
	if c.cur == nil {
		return ""
	}
	return c.cur.target
}

// CanStart reports whether the start command is available for the named
// object: it exists, it is a light, and nothing is being piloted.
func (c *Controller) CanStart(name string) bool {
	if c.cur != nil {
		return false
	}
	return c.sc.Lookup(name).IsLight()
}

// Start begins piloting the named light. It captures the current view
// state, then moves the viewport eye onto the light: perspective
// projection, pivot at the light's position, near-zero distance, and the
// view rotation aligned with the light's facing for directional kinds.
// Point lights keep their stored orientation as the view rotation.
func (c *Controller) Start(name string) error {
	if c.cur != nil {
		if c.cur.active {
			return ErrSessionActive
		}
		// A finished session always consumes its snapshot in stop; an
		// unconsumed one means cleanup never ran, refuse to clobber it.
		return ErrSnapshotHeld
	}

	light := c.sc.Lookup(name)
	if light == nil {
		c.say("Could not find the specified light")
		return ErrNotFound
	}
	if !light.IsLight() {
		return ErrNotALight
	}

	saved := c.vp.Snapshot()

	c.vp.Projection = viewport.Perspective
	c.vp.LocalCamera = false
	c.vp.Pivot = light.Position

	if light.Light.Kind.Directional() {
		c.vp.Rotation = math3d.TrackQuat(light.Forward())
	} else {
		c.vp.Rotation = light.Orientation()
	}
	c.vp.Distance = PilotDistance

	c.cur = &session{active: true, target: name, saved: &saved}
	c.say(fmt.Sprintf("Now piloting light: %s", name))
	return nil
}

// Tick drives an active session for one input frame. It writes the
// current viewport eye onto the light (and the view direction onto
// directional lights), and performs cleanup when the session has been
// deactivated, the context is gone, the light vanished, or the event is
// a cancel. Navigation events otherwise pass through untouched.
func (c *Controller) Tick(ev Event) Status {
	if c.cur == nil {
		return StatusFinished
	}
	if !c.cur.active || !c.vp.Valid() {
		c.stop()
		return StatusFinished
	}

	light := c.sc.Lookup(c.cur.target)
	if !light.IsLight() {
		c.stop()
		return StatusFinished
	}

	light.Position = c.vp.Eye()
	if light.Light.Kind.Directional() {
		light.SetOrientation(math3d.TrackQuat(c.vp.Forward()))
	}

	if ev.Kind == EventCancel {
		c.stop()
		return StatusFinished
	}
	return StatusContinue
}

// RequestExit asks a running session to end. It only flips the active
// flag; the tick loop observes it and performs the cleanup there, so
// restore always runs in the dispatch context. No-op when idle.
func (c *Controller) RequestExit() {
	if c.cur != nil {
		c.cur.active = false
	}
}

// Stop ends the session immediately, restoring the saved view state.
// Idempotent: calling it with no session is a no-op.
func (c *Controller) Stop() {
	if c.cur == nil {
		return
	}
	c.stop()
}

// stop clears the session and consumes the snapshot. Each saved field is
// restored independently by Restore.
func (c *Controller) stop() {
	s := c.cur
	c.cur = nil
	s.active = false
	s.target = ""

	if s.saved != nil && c.vp.Valid() {
		c.vp.Restore(*s.saved)
	}
	s.saved = nil

	c.say("Exited light pilot mode")
}

// Notice returns the last user-facing message, e.g. for a status-bar
// flash.
func (c *Controller) Notice() string {
	return c.notice
}

func (c *Controller) say(msg string) {
	c.notice = msg
	if c.report != nil {
		c.report(msg)
	}
}
