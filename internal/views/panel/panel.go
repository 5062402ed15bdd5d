// Package panel renders the sidebar: pilot status, the optional
// coordinate readout, and the light settings for the relevant light.
package panel

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lightpilot/lightpilot/internal/math3d"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/theme"
)

// Model holds the sidebar state. The app fills the fields in before
// rendering; the panel itself is stateless between frames.
type Model struct {
	Width      int
	ShowCoords bool

	Piloting bool
	Target   *scene.Object // piloted light while piloting
	Selected *scene.Object // currently selected object otherwise
}

// New creates a sidebar model.
func New() Model {
	return Model{Width: 34}
}

// View renders the sidebar.
func (m Model) View() string {
	var sections []string

	if m.Piloting && m.Target != nil {
		sections = append(sections, m.pilotBox())
		sections = append(sections, theme.StyleDimmed.Render("alt+L / esc: exit pilot"))
		sections = append(sections, m.settingsBox(m.Target))
	} else {
		if m.Selected.IsLight() {
			sections = append(sections,
				theme.StyleHeader.Render("Light Pilot"),
				fmt.Sprintf("alt+l: pilot %s", styledName(m.Selected)),
			)
			sections = append(sections, m.settingsBox(m.Selected))
		} else {
			sections = append(sections,
				theme.StyleHeader.Render("Light Pilot"),
				theme.StyleDimmed.Render("Select a light to pilot"),
			)
		}
	}

	sections = append(sections, m.prefsBox())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Width(m.Width).Render(body)
}

func (m Model) pilotBox() string {
	var lines []string
	lines = append(lines, theme.StylePilot.Render(fmt.Sprintf("Piloting: %s", m.Target.Name)))

	if m.ShowCoords {
		lines = append(lines, "", theme.StyleHeader.Render("Position:"))
		lines = append(lines, formatVec(m.Target.Position))

		if m.Target.Light.Kind.Directional() {
			lines = append(lines, theme.StyleHeader.Render("Direction:"))
			lines = append(lines, formatRotation(m.Target)...)
		}
	}

	return theme.StyleBox.Render(strings.Join(lines, "\n"))
}

// settingsBox mirrors the light's parameter record: type, the common
// power/color rows, then the kind-specific fields and shadows.
func (m Model) settingsBox(o *scene.Object) string {
	l := o.Light
	kindStyle := lipgloss.NewStyle().Foreground(theme.KindColor(l.Kind.String()))

	var lines []string
	lines = append(lines, theme.StyleHeader.Render("Light Settings:"))
	lines = append(lines, fmt.Sprintf("Type:  %s", kindStyle.Render(strings.ToUpper(l.Kind.String()))))
	lines = append(lines, fmt.Sprintf("Power: %.1f W", l.Power))
	lines = append(lines, fmt.Sprintf("Color: %.2f %.2f %.2f", l.Color.R, l.Color.G, l.Color.B))

	switch l.Kind {
	case scene.LightPoint:
		lines = append(lines, fmt.Sprintf("Size:  %.3f", l.SoftSize))
	case scene.LightSpot:
		lines = append(lines, fmt.Sprintf("Size:  %.3f", l.SoftSize))
		lines = append(lines, fmt.Sprintf("Spot Size:  %.1f°", degrees(l.SpotSize)))
		lines = append(lines, fmt.Sprintf("Spot Blend: %.2f", l.SpotBlend))
	case scene.LightSun:
		lines = append(lines, fmt.Sprintf("Angle: %.2f°", degrees(l.Angle)))
	case scene.LightArea:
		lines = append(lines, fmt.Sprintf("Shape: %s", l.Shape))
		if l.Shape.TwoSized() {
			lines = append(lines, fmt.Sprintf("Size X: %.2f", l.Size))
			lines = append(lines, fmt.Sprintf("Size Y: %.2f", l.SizeY))
		} else {
			lines = append(lines, fmt.Sprintf("Size:   %.2f", l.Size))
		}
	}

	if l.Shadow.Enabled {
		lines = append(lines, "Shadows: on")
		lines = append(lines, theme.StyleDimmed.Render(
			fmt.Sprintf("  clip %.2f – %.2f", l.Shadow.ClipStart, l.Shadow.ClipEnd)))
	} else {
		lines = append(lines, theme.StyleDimmed.Render("Shadows: off"))
	}

	return theme.StyleBox.Render(strings.Join(lines, "\n"))
}

func (m Model) prefsBox() string {
	state := "off"
	if m.ShowCoords {
		state = "on"
	}
	return theme.StyleDimmed.Render(fmt.Sprintf("Show Coordinates: %s  (c)", state))
}

func styledName(o *scene.Object) string {
	color := theme.KindColor(o.Light.Kind.String())
	return lipgloss.NewStyle().Foreground(color).Render(o.Name)
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("%8.3f %8.3f %8.3f", v.X, v.Y, v.Z)
}

// formatRotation prints the orientation in the object's own rotation
// representation, like the original property readout.
func formatRotation(o *scene.Object) []string {
	if order, ok := o.Mode.EulerOrder(); ok {
		e := o.RotationEuler
		return []string{
			fmt.Sprintf("%8.2f° %8.2f° %8.2f° (%s)",
				degrees(e.X), degrees(e.Y), degrees(e.Z), order),
		}
	}
	q := o.Orientation()
	return []string{
		fmt.Sprintf("%7.4f %7.4f %7.4f %7.4f (quat)", q.W, q.X, q.Y, q.Z),
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
