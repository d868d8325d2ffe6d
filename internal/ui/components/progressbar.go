package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/ui/theme"
)

// ProgressBar renders quiz position as a filled bar with a counter.
func ProgressBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	counter := fmt.Sprintf(" %d/%d", current, total)
	barWidth := width - lipgloss.Width(counter)
	filled := barWidth * current / total
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return bar + theme.Hint.Render(counter)
}
