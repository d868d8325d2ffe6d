package progress

// LessonRef identifies a completed lesson. Field order here and below
// matches the sorted-key layout of the persisted JSON document at every
// nesting level.
type LessonRef struct {
	Grade   int    `json:"grade"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// TestRecord is one quiz attempt with its score.
type TestRecord struct {
	Grade   int    `json:"grade"`
	Score   int    `json:"score"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Total   int    `json:"total"`
}

// Progress is one student's record.
type Progress struct {
	CompletedLessons []LessonRef  `json:"completed_lessons"`
	CompletedTests   []TestRecord `json:"completed_tests"`
	StudentID        string       `json:"student_id"`
}

// New returns an empty record for the student.
func New(studentID string) *Progress {
	return &Progress{
		CompletedLessons: []LessonRef{},
		CompletedTests:   []TestRecord{},
		StudentID:        studentID,
	}
}

// AddLesson records a lesson if it is not already present. A lesson is
// recorded at most once per (subject, grade, topic); repeats are no-ops.
// Reports whether the record changed.
func (p *Progress) AddLesson(ref LessonRef) bool {
	for _, existing := range p.CompletedLessons {
		if existing == ref {
			return false
		}
	}
	p.CompletedLessons = append(p.CompletedLessons, ref)
	return true
}

// AddTest appends a quiz attempt. Every attempt is kept, including repeats
// of the same topic.
func (p *Progress) AddTest(rec TestRecord) {
	p.CompletedTests = append(p.CompletedTests, rec)
}
