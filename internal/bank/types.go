package bank

import "slices"

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID                 int      `json:"id"`
	Prompt             string   `json:"prompt"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation,omitempty"`
}

// IsCorrect reports whether option is the correct choice.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectOptionIndex
}

// CorrectOption returns the text of the correct choice.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectOptionIndex]
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// Note is a short study note attached to a category.
type Note struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Category is a named, ordered battery of questions.
type Category struct {
	Key         string     `json:"key"`
	DisplayName string     `json:"displayName"`
	Description string     `json:"description,omitempty"`
	Difficulty  string     `json:"difficulty,omitempty"`
	Questions   []Question `json:"questions"`
	Notes       []Note     `json:"notes,omitempty"`
}

// Len returns the number of questions in the category.
func (c Category) Len() int {
	return len(c.Questions)
}

func (c Category) clone() Category {
	qs := make([]Question, len(c.Questions))
	for i, q := range c.Questions {
		qs[i] = q.clone()
	}
	c.Questions = qs
	c.Notes = slices.Clone(c.Notes)
	return c
}
