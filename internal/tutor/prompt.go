package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/luca/internal/content"
)

const lessonSystemPrompt = `You are a friendly elementary school teacher.`

func buildLessonPrompt(req content.Request) string {
	return fmt.Sprintf(
		"Create a concise lesson for grade %d %s learners about %s. "+
			"Use inviting language, short paragraphs, and include one practical activity suggestion.",
		req.Grade, req.Subject, req.Topic,
	)
}

const exercisesSystemPrompt = `You create short practice questions for elementary school students. Respond with JSON only, no prose.`

func buildExercisesPrompt(req content.Request) string {
	return fmt.Sprintf(
		"Create three short practice questions for grade %d students in %s about %s. "+
			"Respond with a JSON list where each item has keys 'question', 'expected_answer', and 'hint'.",
		req.Grade, req.Subject, req.Topic,
	)
}

const feedbackSystemPrompt = `You are an encouraging tutor. A student answered a question incorrectly. Provide gentle feedback using the lesson summary and student response.`

func buildFeedbackPrompt(question, lessonContext, studentAnswer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lesson summary: %s\n", lessonContext)
	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Student answer: %s\n", studentAnswer)
	b.WriteString("Respond with two short sentences offering guidance.")
	return b.String()
}
