package quiz

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
	"github.com/abhisek/luca/internal/session"
	"github.com/abhisek/luca/internal/ui/components"
	"github.com/abhisek/luca/internal/ui/layout"
	"github.com/abhisek/luca/internal/ui/theme"
)

const spinnerInterval = 100 * time.Millisecond

// phase tracks where the quiz is.
type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseGrading // waiting on feedback for a wrong answer
	phaseFeedback
	phaseDone
)

// QuizScreen walks the student through the exercises for the open lesson.
type QuizScreen struct {
	sess *session.Session

	requestID string
	spinner   components.Spinner
	phase     phase
	errMsg    string

	exercises []content.Exercise
	index     int
	score     int
	input     components.TextInput
	feedback  string
	wasRight  bool
	recorded  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the session's open lesson.
func New(sess *session.Session) *QuizScreen {
	return &QuizScreen{
		sess:      sess,
		requestID: uuid.New().String(),
		input:     components.NewTextInput("Type your answer here", 64),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.fetchExercises(), q.input.Init(), q.tick())
}

func (q *QuizScreen) Title() string {
	return "Quick Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back to lesson"},
		}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to lesson"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back to lesson"}}
	}
}

func (q *QuizScreen) fetchExercises() tea.Cmd {
	req, _, ok := q.sess.Current()
	id := q.requestID
	if !ok {
		return func() tea.Msg {
			return exercisesReadyMsg{RequestID: id, Err: fmt.Errorf("no lesson is open")}
		}
	}
	return func() tea.Msg {
		result, err := q.sess.Tutor.Exercises(context.Background(), req)
		return exercisesReadyMsg{RequestID: id, Result: result, Err: err}
	}
}

func (q *QuizScreen) fetchFeedback(question, studentAnswer string) tea.Cmd {
	_, lessonText, _ := q.sess.Current()
	id := q.requestID
	tut := q.sess.Tutor
	return func() tea.Msg {
		result := tut.Feedback(context.Background(), question, lessonText, studentAnswer)
		return feedbackReadyMsg{RequestID: id, Result: result}
	}
}

func (q *QuizScreen) tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if q.phase != phaseLoading && q.phase != phaseGrading {
			return q, nil
		}
		q.spinner.Advance()
		return q, q.tick()

	case exercisesReadyMsg:
		if msg.RequestID != q.requestID {
			return q, nil
		}
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			q.phase = phaseDone
			return q, nil
		}
		q.exercises = msg.Result.Exercises
		q.phase = phaseAsking
		return q, nil

	case feedbackReadyMsg:
		if msg.RequestID != q.requestID || q.phase != phaseGrading {
			return q, nil
		}
		q.feedback = msg.Result.Text
		q.phase = phaseFeedback
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.phase == phaseAsking {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseAsking:
		if msg.String() == "enter" {
			return q.submitAnswer()
		}
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd

	case phaseFeedback:
		return q.advance()

	case phaseDone:
		if msg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return q, nil
}

// submitAnswer grades the current exercise. Correct answers get instant
// praise; wrong answers go to the tutor for feedback.
func (q *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	exercise := q.exercises[q.index]
	answer := strings.TrimSpace(q.input.Value())
	expected := strings.TrimSpace(exercise.ExpectedAnswer)

	if expected != "" && strings.EqualFold(answer, expected) {
		q.score++
		q.wasRight = true
		q.input.Submit(true)
		q.feedback = "Great job! That's correct."
		q.phase = phaseFeedback
		return q, nil
	}

	q.wasRight = false
	q.input.Submit(false)
	q.phase = phaseGrading
	return q, tea.Batch(q.fetchFeedback(exercise.Question, answer), q.tick())
}

// advance moves to the next exercise or finishes the quiz.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	q.input.Reset()
	q.feedback = ""

	if q.index < len(q.exercises)-1 {
		q.index++
		q.phase = phaseAsking
		return q, nil
	}

	q.phase = phaseDone
	if !q.recorded {
		q.recorded = true
		q.sess.RecordTest(q.score, len(q.exercises))
	}
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			q.spinner.View("Writing your quiz..."))
	case phaseDone:
		return q.renderDone(width, height)
	default:
		return q.renderQuestion(width, height)
	}
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	exercise := q.exercises[q.index]

	textWidth := width - 8
	if textWidth > 72 {
		textWidth = 72
	}
	if textWidth < 20 {
		textWidth = 20
	}

	var sections []string
	sections = append(sections, components.ProgressBar(q.index+1, len(q.exercises), textWidth))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Bold(true).Width(textWidth).Render(exercise.Question))
	sections = append(sections, theme.Hint.Width(textWidth).Render("Hint: "+exercise.Hint))
	sections = append(sections, "")

	switch q.phase {
	case phaseAsking:
		sections = append(sections, q.input.View())
	case phaseGrading:
		sections = append(sections, q.input.View())
		sections = append(sections, q.spinner.View("Checking your answer..."))
	case phaseFeedback:
		sections = append(sections, q.input.View())
		style := theme.Incorrect
		if q.wasRight {
			style = theme.Correct
		}
		sections = append(sections, style.Width(textWidth).Render(q.feedback))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderDone(width, height int) string {
	var sections []string
	if q.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render("We could not load a quiz for this topic right now."))
		sections = append(sections, theme.Hint.Render(q.errMsg))
	} else {
		sections = append(sections, theme.Title.Render("Quiz complete!"))
		sections = append(sections, "")
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("You scored %d out of %d.", q.score, len(q.exercises))))
	}
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("press Enter to go back"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
