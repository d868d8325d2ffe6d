package content

import (
	"fmt"
	"sort"
)

// Request identifies a unit of catalog content.
type Request struct {
	Subject string
	Grade   int
	Topic   string
}

func (r Request) String() string {
	return fmt.Sprintf("%s grade %d: %s", r.Subject, r.Grade, r.Topic)
}

// Entry is a single catalog unit: the lesson body plus a one-line
// concept summary used to seed exercises and hints.
type Entry struct {
	Lesson  string
	Concept string
}

// ErrUnknownTopic is returned when a (subject, grade, topic) triple is not
// in the catalog. This signals a caller bug, not transient unavailability:
// the UI must only offer combinations the catalog actually has.
type ErrUnknownTopic struct {
	Req Request
}

func (e *ErrUnknownTopic) Error() string {
	return fmt.Sprintf("no local content for %s", e.Req)
}

// catalog is the embedded subject → grade → topic table. It is the ground
// truth for what the browse screen offers and for every local fallback.
var catalog = map[string]map[int]map[string]Entry{
	"Mathematics": {
		3: {
			"Fractions": {
				Lesson: "Fractions represent equal parts of a whole. When we write " +
					"a fraction like 1/2, the number on top (the numerator) " +
					"tells us how many parts we have and the number on the bottom " +
					"(the denominator) tells us how many equal parts the whole is " +
					"divided into.",
				Concept: "Understanding halves, thirds, and quarters of shapes and groups.",
			},
			"Multiplication": {
				Lesson: "Multiplication is repeated addition. To find 3 x 4, add 4 " +
					"three times (4 + 4 + 4 = 12). Arrays and equal groups help " +
					"us visualise multiplication problems.",
				Concept: "Building fluency with times tables up to 5.",
			},
		},
		4: {
			"Decimals": {
				Lesson: "Decimals are another way to write fractions. 0.5 is the same " +
					"as 1/2 because it represents 5 tenths. Each place to the " +
					"right of the decimal point is worth ten times less than the " +
					"place before it.",
				Concept: "Linking tenths and hundredths to place value charts.",
			},
		},
	},
	"Science": {
		3: {
			"Life Cycles": {
				Lesson: "Plants and animals go through life cycles. A butterfly starts " +
					"as an egg, becomes a caterpillar, forms a chrysalis, and " +
					"emerges as an adult butterfly. Each stage has a special job.",
				Concept: "Recognising patterns in living things.",
			},
		},
		4: {
			"Energy": {
				Lesson: "Energy is the ability to do work. It can take many forms " +
					"such as light, heat, and movement. Energy can change from " +
					"one form to another, like when electricity powers a lamp.",
				Concept: "Observing energy transfers in everyday situations.",
			},
		},
	},
}

// Grades returns every grade that has at least one topic, sorted ascending.
func Grades() []int {
	seen := make(map[int]bool)
	for _, grades := range catalog {
		for g := range grades {
			seen[g] = true
		}
	}
	out := make([]int, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// SubjectsForGrade returns the subjects offering content at the given
// grade, sorted alphabetically.
func SubjectsForGrade(grade int) []string {
	var out []string
	for subject, grades := range catalog {
		if _, ok := grades[grade]; ok {
			out = append(out, subject)
		}
	}
	sort.Strings(out)
	return out
}

// Topics returns the topics for a subject at a grade, sorted alphabetically.
func Topics(subject string, grade int) []string {
	var out []string
	for topic := range catalog[subject][grade] {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// lookup resolves a request against the catalog.
func lookup(req Request) (Entry, error) {
	entry, ok := catalog[req.Subject][req.Grade][req.Topic]
	if !ok {
		return Entry{}, &ErrUnknownTopic{Req: req}
	}
	return entry, nil
}
