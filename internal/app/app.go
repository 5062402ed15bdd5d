// Package app is the root Bubble Tea model: it owns the scene, the
// viewport, the pilot controller and the sub-views, and routes input
// between navigation and an active pilot session.
package app

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/lightpilot/lightpilot/internal/bridge"
	"github.com/lightpilot/lightpilot/internal/config"
	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/pilot"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/theme"
	"github.com/lightpilot/lightpilot/internal/viewport"
	"github.com/lightpilot/lightpilot/internal/views/help"
	"github.com/lightpilot/lightpilot/internal/views/panel"
	"github.com/lightpilot/lightpilot/internal/views/preview"
	"github.com/lightpilot/lightpilot/internal/views/status"
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
)

// frameMsg is the animation tick.
type frameMsg time.Time

// resourceMsg carries the periodic process resource sample.
type resourceMsg struct {
	cpu float64
	rss uint64
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg   *config.Config
	sc    *scene.Scene
	vp    *viewport.Viewport
	pilot *pilot.Controller
	link  *bridge.Broadcaster // nil when the live link is off

	keys   KeyMap
	width  int
	height int

	overlay     Overlay
	selectedIdx int

	// Spring-smoothed navigation state. Orbit is instant; pivot and
	// distance ease toward their targets each frame.
	spring      harmonica.Spring
	distVel     float64
	distTarget  float64
	pivotVel    math3d.Vec3
	pivotTarget math3d.Vec3

	statusBar status.Model
	sidebar   panel.Model
	viewport  preview.Model
	helpView  help.Model

	proc *process.Process
}

// New creates the root model. link may be nil.
func New(cfg *config.Config, sc *scene.Scene, vp *viewport.Viewport, link *bridge.Broadcaster) Model {
	proc, _ := process.NewProcess(int32(os.Getpid()))

	m := Model{
		cfg:       cfg,
		sc:        sc,
		vp:        vp,
		pilot:     pilot.New(sc, vp, nil),
		link:      link,
		keys:      DefaultKeyMap(),
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.UI.FPS), cfg.Nav.SpringFrequency, cfg.Nav.SpringDamping),
		statusBar: status.New(),
		sidebar:   panel.New(),
		viewport:  preview.New(),
		helpView:  help.New(72),
		proc:      proc,
	}
	m.syncSprings()
	m.statusBar.SceneName = sc.Name
	m.statusBar.LinkEnabled = link != nil
	return m
}

// Scene exposes the scene so the caller can persist it on exit.
func (m Model) Scene() *scene.Scene {
	return m.sc
}

// Piloting reports whether a pilot session is active, and for which
// light.
func (m Model) Piloting() (string, bool) {
	return m.pilot.Target(), m.pilot.Active()
}

// Init starts the animation and resource timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), m.pollResources())
}

func (m Model) frameTick() tea.Cmd {
	fps := m.cfg.UI.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) pollResources() tea.Cmd {
	proc := m.proc
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		if proc == nil {
			return resourceMsg{}
		}
		cpu, _ := proc.CPUPercent()
		var rss uint64
		if mi, _ := proc.MemoryInfo(); mi != nil {
			rss = mi.RSS
		}
		return resourceMsg{cpu: cpu, rss: rss}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.viewport.Width = msg.Width - m.sidebar.Width - 2
		m.viewport.Height = msg.Height - 5
		return m, nil

	case frameMsg:
		m.stepSprings()
		// Tick while a session exists, not just while it is active: an
		// exit request leaves a deactivated session whose cleanup runs
		// on the next tick.
		if m.pilot.Target() != "" {
			m.tickPilot(pilot.Event{Kind: pilot.EventNav})
		}
		return m, m.frameTick()

	case resourceMsg:
		m.statusBar.CPUPercent = msg.cpu
		m.statusBar.RSSBytes = msg.rss
		if m.link != nil {
			m.statusBar.LinkClients = m.link.ClientCount()
		}
		return m, m.pollResources()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay == OverlayHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) {
			m.overlay = OverlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		// Restore the saved view before leaving so the scene file does
		// not keep a mid-pilot transform.
		m.pilot.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Pilot):
		m.startPilot()
		return m, nil

	case key.Matches(msg, m.keys.ExitPilot):
		// Only flips the flag; the frame tick observes it and cleans up
		// in dispatch context.
		m.pilot.RequestExit()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.pilot.Active() {
			m.tickPilot(pilot.Event{Kind: pilot.EventCancel})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleCoords):
		m.sc.Settings.ShowCoords = !m.sc.Settings.ShowCoords
		return m, nil

	case key.Matches(msg, m.keys.NextLight):
		m.cycleSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevLight):
		m.cycleSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.OrbitLeft):
		m.orbit(m.cfg.Nav.OrbitStep, 0)
	case key.Matches(msg, m.keys.OrbitRight):
		m.orbit(-m.cfg.Nav.OrbitStep, 0)
	case key.Matches(msg, m.keys.OrbitUp):
		m.orbit(0, m.cfg.Nav.OrbitStep)
	case key.Matches(msg, m.keys.OrbitDown):
		m.orbit(0, -m.cfg.Nav.OrbitStep)
	case key.Matches(msg, m.keys.PanLeft):
		m.pan(-1, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.pan(1, 0)
	case key.Matches(msg, m.keys.PanUp):
		m.pan(0, 1)
	case key.Matches(msg, m.keys.PanDown):
		m.pan(0, -1)
	case key.Matches(msg, m.keys.DollyIn):
		m.dolly(true)
	case key.Matches(msg, m.keys.DollyOut):
		m.dolly(false)

	default:
		return m, nil
	}

	// Navigation fell through: pass it to an active session so the light
	// keeps following without the key being swallowed.
	if m.pilot.Active() {
		m.tickPilot(pilot.Event{Kind: pilot.EventNav})
	}
	return m, nil
}

func (m *Model) startPilot() {
	sel := m.selected()
	if !m.pilot.CanStart(selName(sel)) {
		return
	}

	if err := m.pilot.Start(sel.Name); err == nil {
		m.syncSprings()
		if m.link != nil {
			m.link.PublishSnapshot(bridge.SnapshotOf(m.sc))
			m.link.PublishPilot(sel.Name, true)
		}
	}
	m.statusBar.Flash = m.pilot.Notice()
}

func (m *Model) tickPilot(ev pilot.Event) {
	target := m.pilot.Target()
	st := m.pilot.Tick(ev)
	m.statusBar.Flash = m.pilot.Notice()

	if st == pilot.StatusFinished {
		m.syncSprings()
		if m.link != nil {
			m.link.PublishPilot(target, false)
		}
		return
	}

	if m.link != nil {
		if o := m.sc.Lookup(target); o.IsLight() {
			m.link.QueueUpdate(bridge.StateOf(o))
		}
	}
}

// orbit rotates the view: yaw around world Z, pitch around the local
// right axis. Applied instantly, no spring.
func (m *Model) orbit(yaw, pitch float64) {
	rot := m.vp.Rotation
	if yaw != 0 {
		rot = math3d.QuatFromAxisAngle(math3d.Vec3{Z: 1}, yaw).Mul(rot)
	}
	if pitch != 0 {
		right := rot.Rotate(math3d.Vec3{X: 1})
		rot = math3d.QuatFromAxisAngle(right, pitch).Mul(rot)
	}
	m.vp.Rotation = rot.Normalized()
}

// pan moves the pivot target in the view plane, scaled by distance so a
// keypress covers a sensible amount of screen at any zoom.
func (m *Model) pan(dx, dy float64) {
	d := m.vp.Distance
	if d < 1 {
		d = 1
	}
	step := m.cfg.Nav.PanStep * d
	right := m.vp.Rotation.Rotate(math3d.Vec3{X: 1})
	up := m.vp.Rotation.Rotate(math3d.Vec3{Y: 1})
	m.pivotTarget = m.pivotTarget.Add(right.Scale(dx * step)).Add(up.Scale(dy * step))
}

func (m *Model) dolly(in bool) {
	if m.pilot.Active() {
		// Distance stays pinned at the pilot offset; zooming would pull
		// the eye off the light.
		return
	}
	if in {
		m.distTarget /= m.cfg.Nav.DollyFactor
	} else {
		m.distTarget *= m.cfg.Nav.DollyFactor
	}
	if m.distTarget < 0.05 {
		m.distTarget = 0.05
	}
}

func (m *Model) stepSprings() {
	m.vp.Distance, m.distVel = m.spring.Update(m.vp.Distance, m.distVel, m.distTarget)

	p := m.vp.Pivot
	p.X, m.pivotVel.X = m.spring.Update(p.X, m.pivotVel.X, m.pivotTarget.X)
	p.Y, m.pivotVel.Y = m.spring.Update(p.Y, m.pivotVel.Y, m.pivotTarget.Y)
	p.Z, m.pivotVel.Z = m.spring.Update(p.Z, m.pivotVel.Z, m.pivotTarget.Z)
	m.vp.Pivot = p
}

// syncSprings snaps the spring targets onto the current viewport state.
// Called after anything that teleports the view (pilot start/stop).
func (m *Model) syncSprings() {
	m.distTarget = m.vp.Distance
	m.distVel = 0
	m.pivotTarget = m.vp.Pivot
	m.pivotVel = math3d.Vec3{}
}

func (m *Model) cycleSelection(dir int) {
	lights := m.sc.Lights()
	if len(lights) == 0 {
		return
	}
	m.selectedIdx = (m.selectedIdx + dir + len(lights)) % len(lights)
}

func (m Model) selected() *scene.Object {
	lights := m.sc.Lights()
	if len(lights) == 0 {
		return nil
	}
	return lights[m.selectedIdx%len(lights)]
}

func selName(o *scene.Object) string {
	if o == nil {
		return ""
	}
	return o.Name
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	m.statusBar.Piloting = m.pilot.Target()

	if m.overlay == OverlayHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.statusBar.View(),
			m.helpView.View(),
		)
	}

	m.viewport.Scene = m.sc
	m.viewport.VP = m.vp
	m.viewport.Piloting = m.pilot.Target()
	m.viewport.Selected = selName(m.selected())

	m.sidebar.ShowCoords = m.sc.Settings.ShowCoords
	m.sidebar.Piloting = m.pilot.Active()
	m.sidebar.Target = m.sc.Lookup(m.pilot.Target())
	m.sidebar.Selected = m.selected()

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), "  ", m.sidebar.View())

	footer := theme.StyleDimmed.Render(
		"  arrows:orbit  shift:pan  +/-:dolly  tab:select  alt+l:pilot  c:coords  ?:help  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusBar.View(),
		main,
		footer,
	)
}
