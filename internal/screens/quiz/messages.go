package quiz

import (
	"time"

	"github.com/abhisek/luca/internal/tutor"
)

// exercisesReadyMsg is sent when exercise generation finishes.
type exercisesReadyMsg struct {
	RequestID string
	Result    *tutor.ExercisesResult
	Err       error
}

// feedbackReadyMsg is sent when feedback for a wrong answer arrives.
type feedbackReadyMsg struct {
	RequestID string
	Result    *tutor.FeedbackResult
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
