package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCategory indicates a category with no questions.
	ErrEmptyCategory = errors.New("empty category")

	// ErrMalformedQuestion indicates a question with too few options,
	// an out-of-range correct index, or a duplicate id.
	ErrMalformedQuestion = errors.New("malformed question")

	// ErrMalformedCategory indicates a missing or duplicate category key or
	// display name.
	ErrMalformedCategory = errors.New("malformed category")
)

// MinOptions is the smallest number of options a question may offer.
const MinOptions = 2

// validateCategories performs all structural checks on the given categories.
// Returns a combined error describing every problem found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []error

	if len(categories) == 0 {
		errs = append(errs, fmt.Errorf("%w: bank has no categories", ErrMalformedCategory))
	}

	keys := make(map[string]bool, len(categories))
	names := make(map[string]bool, len(categories))
	for i, c := range categories {
		switch {
		case c.Key == "":
			errs = append(errs, fmt.Errorf("%w: category %d has no key", ErrMalformedCategory, i))
		case keys[c.Key]:
			errs = append(errs, fmt.Errorf("%w: duplicate category key %q", ErrMalformedCategory, c.Key))
		}
		keys[c.Key] = true

		// Results are recorded under the display name, so it must be unique too.
		switch {
		case c.DisplayName == "":
			errs = append(errs, fmt.Errorf("%w: category %q has no display name", ErrMalformedCategory, c.Key))
		case names[c.DisplayName]:
			errs = append(errs, fmt.Errorf("%w: duplicate display name %q", ErrMalformedCategory, c.DisplayName))
		}
		names[c.DisplayName] = true

		if len(c.Questions) == 0 {
			errs = append(errs, fmt.Errorf("%w: category %q has no questions", ErrEmptyCategory, c.Key))
			continue
		}

		ids := make(map[int]bool, len(c.Questions))
		for pos, q := range c.Questions {
			prefix := fmt.Sprintf("category %q question %d (id %d)", c.Key, pos, q.ID)
			if ids[q.ID] {
				errs = append(errs, fmt.Errorf("%w: %s: duplicate id", ErrMalformedQuestion, prefix))
			}
			ids[q.ID] = true

			if len(q.Options) < MinOptions {
				errs = append(errs, fmt.Errorf("%w: %s: need at least %d options, got %d",
					ErrMalformedQuestion, prefix, MinOptions, len(q.Options)))
				continue
			}
			if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
				errs = append(errs, fmt.Errorf("%w: %s: correct index %d out of range [0, %d)",
					ErrMalformedQuestion, prefix, q.CorrectOptionIndex, len(q.Options)))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed: %w", errors.Join(errs...))
	}
	return nil
}
