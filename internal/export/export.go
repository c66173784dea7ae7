// Package export builds and parses the learner's data export document.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/history"
	"github.com/innovatides/atomquiz/internal/stats"
)

// ErrInvalidDocument is returned by Read for unusable export documents.
var ErrInvalidDocument = errors.New("invalid export document")

// Document is a complete snapshot of one learner's data.
type Document struct {
	ExportDate   string                  `json:"exportDate"`
	User         account.Profile         `json:"user"`
	QuizResults  history.History         `json:"quizResults"`
	Settings     account.Settings        `json:"settings"`
	Summary      stats.Summary           `json:"summary"`
	Achievements achievements.Evaluation `json:"achievements"`
}

// Build assembles a document stamped with now.
func Build(now time.Time, user account.Profile, h history.History, settings account.Settings, summary stats.Summary, eval achievements.Evaluation) Document {
	if h == nil {
		h = history.History{}
	}
	return Document{
		ExportDate:   now.UTC().Format(time.RFC3339),
		User:         user,
		QuizResults:  h,
		Settings:     settings,
		Summary:      summary,
		Achievements: eval,
	}
}

// Write encodes doc to w as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Read parses an export document. Results are checked with the same rules
// applied to stored history.
func Read(r io.Reader) (Document, error) {
	var raw struct {
		ExportDate  string          `json:"exportDate"`
		QuizResults json.RawMessage `json:"quizResults"`
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read export: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if _, err := time.Parse(time.RFC3339, raw.ExportDate); err != nil {
		return Document{}, fmt.Errorf("%w: exportDate: %v", ErrInvalidDocument, err)
	}
	if len(raw.QuizResults) == 0 {
		return Document{}, fmt.Errorf("%w: missing quizResults", ErrInvalidDocument)
	}
	h, err := history.Decode(raw.QuizResults)
	if err != nil {
		return Document{}, fmt.Errorf("%w: quizResults: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc.QuizResults = h
	return doc, nil
}
