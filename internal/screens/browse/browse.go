package browse

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/luca/internal/content"
	"github.com/abhisek/luca/internal/router"
	"github.com/abhisek/luca/internal/screen"
	"github.com/abhisek/luca/internal/screens/lesson"
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/layout"
	"github.com/abhisek/luca/internal/ui/theme"
)

// stage tracks which picker is active.
type stage int

const (
	stageGrade stage = iota
	stageSubject
	stageTopic
)

// BrowseScreen walks the student through grade → subject → topic. Only
// combinations present in the catalog are ever offered, so a selected
// topic is guaranteed to resolve locally.
type BrowseScreen struct {
	sess *session.Session

	stage   stage
	cursor  int
	options []string

	grade   int
	subject string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a BrowseScreen starting at the grade picker.
func New(sess *session.Session) *BrowseScreen {
	b := &BrowseScreen{sess: sess}
	b.enterStage(stageGrade)
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if b.stage > stageGrade {
		hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

// enterStage rebuilds the option list for the given stage.
func (b *BrowseScreen) enterStage(s stage) {
	b.stage = s
	b.cursor = 0

	switch s {
	case stageGrade:
		grades := content.Grades()
		b.options = make([]string, len(grades))
		for i, g := range grades {
			b.options[i] = fmt.Sprintf("Grade %d", g)
		}
	case stageSubject:
		b.options = content.SubjectsForGrade(b.grade)
	case stageTopic:
		b.options = content.Topics(b.subject, b.grade)
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.options)-1 {
			b.cursor++
		}
	case "backspace":
		if b.stage > stageGrade {
			b.enterStage(b.stage - 1)
		}
	case "enter":
		return b.selectCurrent()
	}

	return b, nil
}

func (b *BrowseScreen) selectCurrent() (screen.Screen, tea.Cmd) {
	if b.cursor >= len(b.options) {
		return b, nil
	}
	choice := b.options[b.cursor]

	switch b.stage {
	case stageGrade:
		grade, err := strconv.Atoi(strings.TrimPrefix(choice, "Grade "))
		if err != nil {
			return b, nil
		}
		b.grade = grade
		b.enterStage(stageSubject)
	case stageSubject:
		b.subject = choice
		b.enterStage(stageTopic)
	case stageTopic:
		req := content.Request{Subject: b.subject, Grade: b.grade, Topic: choice}
		return b, func() tea.Msg {
			return router.PushScreenMsg{Screen: lesson.New(b.sess, req)}
		}
	}

	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(b.prompt()))
	sections = append(sections, theme.Subtitle.Render(b.breadcrumb()))
	sections = append(sections, "")

	for i, opt := range b.options {
		if i == b.cursor {
			sections = append(sections, theme.Selected.Render("  ▸ "+opt))
		} else {
			sections = append(sections, theme.Unselected.Render("    "+opt))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (b *BrowseScreen) prompt() string {
	switch b.stage {
	case stageGrade:
		return "Choose your grade"
	case stageSubject:
		return "Choose a subject"
	default:
		return "Choose a topic"
	}
}

func (b *BrowseScreen) breadcrumb() string {
	switch b.stage {
	case stageSubject:
		return fmt.Sprintf("Grade %d", b.grade)
	case stageTopic:
		return fmt.Sprintf("Grade %d · %s", b.grade, b.subject)
	default:
		return "What would you like to explore?"
	}
}
