package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lightpilot/lightpilot/internal/config"
	"github.com/lightpilot/lightpilot/internal/pilot"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/viewport"
)

func newTestModel() Model {
	m := New(config.Default(), scene.Demo(), viewport.New(), nil)
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(m Model, msg tea.Msg) Model {
	res, _ := m.Update(msg)
	return res.(Model)
}

func keyRunes(s string, alt bool) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

func TestPilotKeyRoundTrip(t *testing.T) {
	m := newTestModel()
	first := m.sc.Lights()[0]
	homeDistance := m.vp.Distance

	m = update(m, keyRunes("l", true))

	name, active := m.Piloting()
	if !active || name != first.Name {
		t.Fatalf("Piloting() = %q/%v, want %q active", name, active, first.Name)
	}
	if m.vp.Distance != pilot.PilotDistance {
		t.Errorf("Distance = %v, want pilot offset", m.vp.Distance)
	}

	// Exit is a request; the next frame performs the cleanup.
	m = update(m, keyRunes("L", true))
	if _, active := m.Piloting(); active {
		t.Error("session should be deactivated after the exit chord")
	}

	m = update(m, frameMsg(time.Now()))
	if name, _ := m.Piloting(); name != "" {
		t.Errorf("session target = %q after cleanup frame, want none", name)
	}
	if m.vp.Distance != homeDistance {
		t.Errorf("Distance = %v, want restored %v", m.vp.Distance, homeDistance)
	}
}

func TestEscCancelsPilot(t *testing.T) {
	m := newTestModel()
	m = update(m, keyRunes("l", true))

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})

	if name, active := m.Piloting(); active || name != "" {
		t.Errorf("Piloting() = %q/%v after esc, want idle", name, active)
	}
}

func TestDollyLockedWhilePiloting(t *testing.T) {
	m := newTestModel()

	before := m.distTarget
	m = update(m, keyRunes("+", false))
	if m.distTarget >= before {
		t.Errorf("distTarget = %v, want < %v after dolly in", m.distTarget, before)
	}

	m = update(m, keyRunes("l", true))
	pinned := m.distTarget
	m = update(m, keyRunes("+", false))
	if m.distTarget != pinned {
		t.Errorf("distTarget = %v, want pinned %v while piloting", m.distTarget, pinned)
	}
}

func TestToggleCoords(t *testing.T) {
	m := newTestModel()
	was := m.sc.Settings.ShowCoords

	m = update(m, keyRunes("c", false))
	if m.sc.Settings.ShowCoords == was {
		t.Error("coords toggle had no effect")
	}
	m = update(m, keyRunes("c", false))
	if m.sc.Settings.ShowCoords != was {
		t.Error("coords toggle did not toggle back")
	}
}

func TestTabCyclesLights(t *testing.T) {
	m := newTestModel()
	lights := m.sc.Lights()
	if len(lights) < 2 {
		t.Fatal("demo scene needs at least two lights")
	}

	first := m.selected().Name
	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	second := m.selected().Name
	if second == first {
		t.Error("tab did not change the selection")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected().Name != first {
		t.Errorf("selection = %q after shift+tab, want %q", m.selected().Name, first)
	}

	// A full cycle wraps around.
	for range lights {
		m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.selected().Name != first {
		t.Errorf("selection = %q after full cycle, want %q", m.selected().Name, first)
	}
}

func TestOrbitChangesRotation(t *testing.T) {
	m := newTestModel()
	before := m.vp.Rotation

	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})

	if m.vp.Rotation == before {
		t.Error("orbit key left the rotation unchanged")
	}
}

func TestViewShowsPilotState(t *testing.T) {
	m := newTestModel()
	first := m.sc.Lights()[0]

	v := m.View()
	if !strings.Contains(v, m.sc.Name) {
		t.Error("view should show the scene name")
	}
	if strings.Contains(v, "PILOT "+first.Name) {
		t.Error("view should not show a pilot badge while idle")
	}

	m = update(m, keyRunes("l", true))
	v = m.View()
	if !strings.Contains(v, "PILOT "+first.Name) {
		t.Error("view should show the pilot badge")
	}
	if !strings.Contains(v, "Now piloting light: "+first.Name) {
		t.Error("view should flash the pilot notice")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel()

	m = update(m, keyRunes("?", false))
	v := m.View()
	if !strings.Contains(v, "alt+l") {
		t.Error("help overlay should list the pilot chord")
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != OverlayNone {
		t.Error("esc should close the help overlay")
	}
}

func TestQuitStopsPilotFirst(t *testing.T) {
	m := newTestModel()
	homeDistance := m.vp.Distance
	m = update(m, keyRunes("l", true))

	res, cmd := m.Update(keyRunes("q", false))
	m = res.(Model)

	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should quit the program")
	}
	if _, active := m.Piloting(); active {
		t.Error("quit should stop the pilot session")
	}
	if m.vp.Distance != homeDistance {
		t.Errorf("Distance = %v, want restored %v", m.vp.Distance, homeDistance)
	}
}

func TestResourceSampleReachesStatusBar(t *testing.T) {
	m := newTestModel()

	m = update(m, resourceMsg{cpu: 12, rss: 64 << 20})

	v := m.View()
	if !strings.Contains(v, "cpu 12%") || !strings.Contains(v, "mem 64M") {
		t.Errorf("view missing resource readout:\n%s", v)
	}
}

func TestFrameKeepsLightOnEye(t *testing.T) {
	m := newTestModel()
	first := m.sc.Lights()[0]
	m = update(m, keyRunes("l", true))

	// Orbit, then let a frame run the sync.
	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(m, frameMsg(time.Now()))

	if !first.Position.Near(m.vp.Eye(), 1e-9) {
		t.Errorf("light at %+v, eye at %+v", first.Position, m.vp.Eye())
	}
}

func TestPanMovesPivotTarget(t *testing.T) {
	m := newTestModel()
	before := m.pivotTarget

	m = update(m, keyRunes("H", false))

	if m.pivotTarget == before {
		t.Error("pan key left the pivot target unchanged")
	}

	// Springs pull the pivot toward the target over frames.
	start := m.vp.Pivot
	for i := 0; i < 60; i++ {
		m = update(m, frameMsg(time.Now()))
	}
	if m.vp.Pivot == start {
		t.Error("pivot never moved toward the pan target")
	}
}

func TestWindowSizeLaysOutViews(t *testing.T) {
	m := New(config.Default(), scene.Demo(), viewport.New(), nil)

	if v := m.View(); !strings.Contains(v, "Initializing") {
		t.Errorf("unsized view = %q", v)
	}

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		t.Errorf("viewport sized %dx%d", m.viewport.Width, m.viewport.Height)
	}
	if m.statusBar.Width != 120 {
		t.Errorf("status width = %d", m.statusBar.Width)
	}

	v := m.View()
	if strings.Contains(v, "Initializing") {
		t.Error("sized view still shows the init placeholder")
	}
	for _, hint := range []string{"alt+l:pilot", "q:quit"} {
		if !strings.Contains(v, hint) {
			t.Errorf("footer missing %q", hint)
		}
	}
}

func TestSelectionSurvivesLightRemoval(t *testing.T) {
	m := newTestModel()
	lights := m.sc.Lights()
	last := lights[len(lights)-1]

	// Select the last light, then shrink the list under the index.
	for i := 0; i < len(lights)-1; i++ {
		m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.selected().Name != last.Name {
		t.Fatalf("selected %q, want %q", m.selected().Name, last.Name)
	}

	m.sc.Remove(last.Name)
	if sel := m.selected(); sel == nil {
		t.Error("selection should fall back to a remaining light")
	} else if sel.Name == last.Name {
		t.Error("selection still points at the removed light")
	}
}
