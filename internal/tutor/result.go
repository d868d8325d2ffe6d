package tutor

import "github.com/abhisek/luca/internal/content"

// Origin reports which path produced a result. Every operation attempts
// the remote provider exactly once; anything that goes wrong routes to the
// deterministic local generator.
type Origin string

const (
	// OriginRemote means the text came from the LLM provider.
	OriginRemote Origin = "remote"

	// OriginLocal means the local catalog produced the result after the
	// remote attempt failed or no provider was configured.
	OriginLocal Origin = "local"
)

// LessonResult is the outcome of a lesson request.
type LessonResult struct {
	Text   string
	Origin Origin

	// Reason holds the remote failure that forced the local path.
	// Nil when Origin is OriginRemote.
	Reason error
}

// ExercisesResult is the outcome of an exercises request.
type ExercisesResult struct {
	Exercises []content.Exercise
	Origin    Origin
	Reason    error
}

// FeedbackResult is the outcome of a feedback request.
type FeedbackResult struct {
	Text   string
	Origin Origin
	Reason error
}
