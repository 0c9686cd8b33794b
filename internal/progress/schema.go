package progress

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://undergrad/progress.json"

// documentSchema describes the persisted progress document. Both fields are
// optional; a missing field loads as empty. Scores only need to be numbers;
// decode brings them into 0..100.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"completedLessons": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"quizScores": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{"type": "number"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go
		// literal through encoding/json.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// decode parses and validates a stored document.
func decode(raw []byte) (UserProgress, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return UserProgress{}, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return UserProgress{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return UserProgress{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc struct {
		CompletedLessons []string           `json:"completedLessons"`
		QuizScores       map[string]float64 `json:"quizScores"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return UserProgress{}, fmt.Errorf("decode document: %w", err)
	}

	p := UserProgress{CompletedLessons: doc.CompletedLessons, QuizScores: make(map[string]int, len(doc.QuizScores))}
	for id, score := range doc.QuizScores {
		p.QuizScores[id] = int(math.Max(0, math.Min(100, math.Round(score))))
	}
	return p.normalized(), nil
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
