package tutor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/luca/internal/content"
)

// exerciseListSchema validates the overall shape of a remote exercises
// payload: a JSON array of objects. Entry-level problems (missing question,
// missing hint) are tolerated and handled by parseExercises so one bad
// entry cannot sink an otherwise usable response.
var exerciseListSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "object"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledExerciseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://exercise-list.json", exerciseListSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://exercise-list.json")
	})
	return compiledSchema, compileErr
}

// parseExercises interprets a remote response as an exercise list.
// Entries without a usable question are dropped; missing hints get
// content.DefaultHint. Zero surviving entries is an error so the caller
// falls back.
func parseExercises(text string) ([]content.Exercise, error) {
	raw := strings.TrimSpace(text)

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("exercises response is not valid JSON: %w", err)
	}

	schema, err := compiledExerciseSchema()
	if err != nil {
		return nil, fmt.Errorf("compile exercise schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("exercises response must be a list of objects: %w", err)
	}

	entries := parsed.([]any)
	out := make([]content.Exercise, 0, len(entries))
	for _, e := range entries {
		entry := e.(map[string]any)

		question := strings.TrimSpace(stringValue(entry["question"]))
		if question == "" {
			continue
		}

		hint := stringValue(entry["hint"])
		if hint == "" {
			hint = content.DefaultHint
		}

		out = append(out, content.Exercise{
			Question:       question,
			ExpectedAnswer: strings.TrimSpace(stringValue(entry["expected_answer"])),
			Hint:           hint,
		})
	}

	if len(out) == 0 {
		return nil, errors.New("no valid exercises returned")
	}
	return out, nil
}

// stringValue renders a JSON scalar as a string. Models occasionally emit
// numeric answers without quotes.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
