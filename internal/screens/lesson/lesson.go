package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/luca/internal/content"
	"github.com/abhisek/luca/internal/router"
	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/screens/quiz"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/components"
	"github.com/abhisek/luca/internal/ui/layout"
	"github.com/abhisek/luca/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

// LessonScreen fetches and displays a lesson for one catalog request.
type LessonScreen struct {
	sess *session.Session
	req  content.Request

	requestID string
	spinner   components.Spinner
	loading   bool
	text      string
	errMsg    string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given request.
func New(sess *session.Session, req content.Request) *LessonScreen {
	return &LessonScreen{
		sess:      sess,
		req:       req,
		requestID: uuid.New().String(),
		loading:   true,
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return tea.Batch(l.fetchLesson(), l.tick())
}

func (l *LessonScreen) Title() string {
	return fmt.Sprintf("%s - %s", l.req.Subject, l.req.Topic)
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.loading || l.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Quick quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// fetchLesson runs the tutor call off the UI loop.
func (l *LessonScreen) fetchLesson() tea.Cmd {
	id := l.requestID
	return func() tea.Msg {
		result, err := l.sess.Tutor.Lesson(context.Background(), l.req)
		return lessonReadyMsg{RequestID: id, Result: result, Err: err}
	}
}

func (l *LessonScreen) tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !l.loading {
			return l, nil
		}
		l.spinner.Advance()
		return l, l.tick()

	case lessonReadyMsg:
		if msg.RequestID != l.requestID {
			return l, nil
		}
		l.loading = false
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.text = msg.Result.Text
		l.sess.OpenLesson(l.req, l.text)
		return l, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !l.loading && l.errMsg == "" {
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(l.sess)}
			}
		}
	}

	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	if l.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			l.spinner.View("Preparing your lesson..."))
	}

	if l.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Could not load this lesson.\n"+l.errMsg))
	}

	textWidth := width - 8
	if textWidth > 72 {
		textWidth = 72
	}
	if textWidth < 20 {
		textWidth = 20
	}

	var sections []string
	sections = append(sections, theme.Title.Render(l.Title()))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Width(textWidth).Render(l.text))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("press Enter to try a quick quiz"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
