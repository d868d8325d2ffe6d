package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/ui/theme"
)

// spinnerFrames cycle while a remote request is in flight.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a minimal loading indicator driven by screen tick messages.
type Spinner struct {
	frame int
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the current frame next to a label.
func (s Spinner) View(label string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(spinnerFrames[s.frame]) +
		" " +
		theme.Hint.Render(label)
}
