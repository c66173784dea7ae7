package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/innovatides/atomquiz/internal/store"
)

//go:embed seed.json
var seedJSON []byte

// bankFile is the on-disk shape of a question bank.
type bankFile struct {
	Categories []Category `json:"categories"`
}

// fileSchema checks the shape of a bank file. Semantic checks such as
// option counts and index ranges are left to validateCategories so they
// surface as ErrEmptyCategory or ErrMalformedQuestion.
var fileSchema = &store.Schema{
	Name: "question-bank",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"categories"},
		"properties": map[string]any{
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"key", "displayName", "questions"},
					"properties": map[string]any{
						"key":         map[string]any{"type": "string"},
						"displayName": map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"difficulty":  map[string]any{"type": "string"},
						"questions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"id", "prompt", "options", "correctOptionIndex"},
								"properties": map[string]any{
									"id":                 map[string]any{"type": "integer"},
									"prompt":             map[string]any{"type": "string", "minLength": 1},
									"options":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									"correctOptionIndex": map[string]any{"type": "integer"},
									"explanation":        map[string]any{"type": "string"},
								},
							},
						},
						"notes": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"title", "body"},
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"body":  map[string]any{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
	},
}

// Parse decodes and validates a JSON question bank.
func Parse(raw []byte) (*Bank, error) {
	if err := store.Validate(fileSchema, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCategory, err)
	}
	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	return New(f.Categories)
}

// Load reads and validates the question bank file at path.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

var defaultBank = sync.OnceValues(func() (*Bank, error) {
	return Parse(seedJSON)
})

// Default returns the built-in question bank.
func Default() (*Bank, error) {
	return defaultBank()
}

// Open returns the bank at path, or the built-in bank when path is empty.
func Open(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
