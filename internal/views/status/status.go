// Package status renders the top status bar: scene, pilot state,
// live-link clients, a resource readout and the last notice.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lightpilot/lightpilot/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	Width     int
	SceneName string

	Piloting string // piloted light name, "" when idle

	LinkEnabled bool
	LinkClients int

	CPUPercent float64
	RSSBytes   uint64

	Flash string // last notice
}

// New creates a status bar model.
func New() Model {
	return Model{}
}

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	parts := []string{theme.StyleHeader.Render(m.SceneName)}

	if m.Piloting != "" {
		parts = append(parts, theme.StylePilot.Render("PILOT "+m.Piloting))
	} else {
		parts = append(parts, theme.StyleDimmed.Render("navigate"))
	}

	if m.LinkEnabled {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorHealthy).
			Render(fmt.Sprintf("link: %d", m.LinkClients)))
	}

	if m.CPUPercent > 0 || m.RSSBytes > 0 {
		parts = append(parts, theme.StyleDimmed.Render(
			fmt.Sprintf("cpu %.0f%%  mem %dM", m.CPUPercent, m.RSSBytes/(1<<20))))
	}

	if m.Flash != "" {
		parts = append(parts, theme.StyleFlash.Render(m.Flash))
	}

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")
	content := strings.Join(parts, sep)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
