// Package help renders the keybinding overlay from markdown via glamour.
package help

import (
	"github.com/charmbracelet/glamour"
)

const text = `# Light Pilot

Navigate the viewport; pilot a light to move it like a camera.

## Piloting

| Key | Action |
|-----|--------|
| alt+l | pilot the selected light |
| alt+L | exit pilot mode |
| esc | cancel pilot mode |

While piloting, the viewport eye drives the light's position — and its
direction, for sun, spot and area lights. Exiting restores the view you
had before.

## Navigation

| Key | Action |
|-----|--------|
| arrows / hjkl | orbit |
| shift+arrows / HJKL | pan |
| + / - | dolly in / out |
| tab / shift+tab | select next / previous light |

## Other

| Key | Action |
|-----|--------|
| c | toggle coordinate readout |
| ? | toggle this help |
| q | quit |
`

// Model caches the rendered help text.
type Model struct {
	rendered string
}

// New renders the help markdown once. If glamour fails the raw markdown
// is shown instead.
func New(width int) Model {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return Model{rendered: text}
	}
	out, err := r.Render(text)
	if err != nil {
		return Model{rendered: text}
	}
	return Model{rendered: out}
}

// View returns the rendered overlay.
func (m Model) View() string {
	return m.rendered
}
