// Package preview renders the 3D viewport onto the character raster: a
// ground grid plus a marker per object, projected through the current
// view. It is a sketch, not a render — just enough spatial feedback to
// navigate and pilot by.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/theme"
	"github.com/lightpilot/lightpilot/internal/viewport"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide.
const cellAspect = 2.0

// Model renders the viewport region.
type Model struct {
	Width  int
	Height int

	Scene    *scene.Scene
	VP       *viewport.Viewport
	Piloting string // name of the piloted light, "" when idle
	Selected string
}

// New creates a preview model.
func New() Model {
	return Model{Width: 64, Height: 20}
}

func markerFor(o *scene.Object) string {
	if o.IsLight() {
		switch o.Light.Kind {
		case scene.LightSun:
			return "☀"
		case scene.LightSpot:
			return "◆"
		case scene.LightArea:
			return "▰"
		default:
			return "●"
		}
	}
	switch o.Kind {
	case scene.KindCamera:
		return "▲"
	case scene.KindEmpty:
		return "+"
	default:
		return "□"
	}
}

// View rasterizes the scene.
func (m Model) View() string {
	w, h := m.Width, m.Height
	if w < 8 || h < 4 {
		return ""
	}

	cells := make([][]string, h)
	for i := range cells {
		cells[i] = make([]string, w)
		for j := range cells[i] {
			cells[i][j] = " "
		}
	}

	gridStyle := theme.StyleDimmed
	if m.Scene != nil && m.VP != nil {
		// Ground grid on z=0.
		for x := -5.0; x <= 5; x++ {
			for y := -5.0; y <= 5; y++ {
				if col, row, ok := m.project(math3d.Vec3{X: x, Y: y}); ok {
					cells[row][col] = gridStyle.Render("·")
				}
			}
		}

		for _, o := range m.Scene.Objects {
			col, row, ok := m.project(o.Position)
			if !ok {
				continue
			}
			style := m.styleFor(o)
			cells[row][col] = style.Render(markerFor(o))

			if o.Name == m.Piloting || o.Name == m.Selected {
				m.label(cells, col+2, row, o.Name)
			}
		}
	}

	rows := make([]string, h)
	for i := range cells {
		rows[i] = strings.Join(cells[i], "")
	}
	return strings.Join(rows, "\n")
}

func (m Model) styleFor(o *scene.Object) lipgloss.Style {
	switch {
	case o.Name == m.Piloting:
		return theme.StylePilot
	case o.Name == m.Selected:
		return lipgloss.NewStyle().Foreground(theme.ColorSelected)
	case o.IsLight():
		return lipgloss.NewStyle().Foreground(theme.KindColor(o.Light.Kind.String()))
	default:
		return theme.StyleDimmed
	}
}

// project maps a world point to a raster cell. Points behind the eye (or
// essentially at it) are dropped.
func (m Model) project(p math3d.Vec3) (col, row int, ok bool) {
	v := m.VP.ToView(p)

	var sx, sy float64
	if m.VP.Projection == viewport.Orthographic {
		d := m.VP.Distance
		if d < 1e-3 {
			d = 1e-3
		}
		sx, sy = v.X/d, v.Y/d
	} else {
		if v.Z > -0.05 {
			return 0, 0, false
		}
		sx, sy = v.X/-v.Z, v.Y/-v.Z
	}

	scale := float64(m.Height) * 0.9
	col = m.Width/2 + int(sx*scale*cellAspect)
	row = m.Height/2 - int(sy*scale)
	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return 0, 0, false
	}
	return col, row, true
}

func (m Model) label(cells [][]string, col, row int, text string) {
	if row < 0 || row >= len(cells) {
		return
	}
	// One rune per cell so later markers can overdraw the label.
	for _, r := range text {
		if col >= len(cells[row]) {
			return
		}
		cells[row][col] = string(r)
		col++
	}
}
