package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/router"
	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/components"
	"github.com/abhisek/luca/internal/ui/theme"
)

const banner = `  ██╗     ██╗   ██╗ ██████╗ █████╗
  ██║     ██║   ██║██╔════╝██╔══██╗
  ██║     ██║   ██║██║     ███████║
  ██║     ██║   ██║██║     ██╔══██║
  ███████╗╚██████╔╝╚██████╗██║  ██║
  ╚══════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝`

// WelcomeScreen asks for the student's name and signs them in.
type WelcomeScreen struct {
	sess        *session.Session
	homeFactory func() screen.Screen
	input       components.TextInput
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// homeFactory once sign-in succeeds.
func New(sess *session.Session, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		sess:        sess,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Enter student name", 32),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(w.input.Value())
		if err := w.sess.SignIn(name); err != nil {
			w.errMsg = "Could not load progress: " + err.Error()
			return w, nil
		}
		home := w.homeFactory()
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(banner))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("An AI-assisted learning companion."))
	sections = append(sections, "")
	sections = append(sections, w.input.View())
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("press Enter to start learning"))

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
