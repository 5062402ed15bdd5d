// Package theme provides the Lip Gloss color palette and reusable styles
// for the Light Pilot TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Light kind colors.
var (
	ColorSun   = lipgloss.Color("#f59e0b")
	ColorPoint = lipgloss.Color("#fde047")
	ColorSpot  = lipgloss.Color("#38bdf8")
	ColorArea  = lipgloss.Color("#a78bfa")
)

// State colors.
var (
	ColorPiloting = lipgloss.Color("#22c55e")
	ColorSelected = lipgloss.Color("#06b6d4")
	ColorWarning  = lipgloss.Color("#d97706")
	ColorDanger   = lipgloss.Color("#dc2626")
	ColorHealthy  = lipgloss.Color("#16a34a")
	ColorDimmed   = lipgloss.Color("#4b5563")
	ColorBorder   = lipgloss.Color("#374151")
	ColorText     = lipgloss.Color("#e5e7eb")
)

// Shared styles.
var (
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	StyleDimmed = lipgloss.NewStyle().Foreground(ColorDimmed)
	StylePilot  = lipgloss.NewStyle().Bold(true).Foreground(ColorPiloting)
	StyleFlash  = lipgloss.NewStyle().Italic(true).Foreground(ColorSelected)
	StyleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// KindColor maps a light kind name to its display color.
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "sun":
		return ColorSun
	case "point":
		return ColorPoint
	case "spot":
		return ColorSpot
	case "area":
		return ColorArea
	default:
		return ColorDimmed
	}
}
