package lesson

import (
	"time"

	"github.com/abhisek/luca/internal/tutor"
)

// lessonReadyMsg is sent when lesson generation finishes. RequestID ties
// the result to the request that started it so a stale response from an
// abandoned screen is ignored.
type lessonReadyMsg struct {
	RequestID string
	Result    *tutor.LessonResult
	Err       error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
