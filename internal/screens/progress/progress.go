package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/theme"
)

// ProgressScreen shows the student's completed lessons and quiz history.
type ProgressScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates a ProgressScreen.
func New(sess *session.Session) *ProgressScreen {
	return &ProgressScreen{sess: sess}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	record := p.sess.Progress

	var lines []string
	lines = append(lines, theme.Title.Render("Progress tracker"))
	lines = append(lines, theme.Subtitle.Render("Student: "+p.sess.StudentID))
	lines = append(lines, "")

	lines = append(lines, theme.Body.Bold(true).Render("Completed lessons:"))
	if record == nil || len(record.CompletedLessons) == 0 {
		lines = append(lines, theme.Hint.Render("  No lessons completed yet."))
	} else {
		for _, l := range record.CompletedLessons {
			lines = append(lines, theme.Body.Render(
				fmt.Sprintf("  • %s grade %d - %s", l.Subject, l.Grade, l.Topic)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, theme.Body.Bold(true).Render("Quiz history:"))
	if record == nil || len(record.CompletedTests) == 0 {
		lines = append(lines, theme.Hint.Render("  No quizzes taken yet."))
	} else {
		for _, t := range record.CompletedTests {
			lines = append(lines, theme.Body.Render(
				fmt.Sprintf("  • %s grade %d - %s (score %d/%d)",
					t.Subject, t.Grade, t.Topic, t.Score, t.Total)))
		}
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
