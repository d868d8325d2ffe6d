package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/router"
	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/screens/browse"
	"github.com/abhisek/luca/internal/screens/labyrinth"
	progressscreen "github.com/abhisek/luca/internal/screens/progress"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/components"
	"github.com/abhisek/luca/internal/ui/theme"
)

// HomeScreen is the main menu shown after sign-in.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BROWSE LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(sess)}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(sess)}
			}
		}},
		{Label: "LABYRINTH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: labyrinth.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("Welcome back, %s!", h.sess.StudentID)
	sections = append(sections, theme.Title.Render(greeting))

	if p := h.sess.Progress; p != nil {
		stats := fmt.Sprintf("%d lessons · %d quizzes",
			len(p.CompletedLessons), len(p.CompletedTests))
		sections = append(sections, theme.Subtitle.Render(stats))
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
