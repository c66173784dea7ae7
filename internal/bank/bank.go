package bank

// Bank is the read-only catalog of quiz categories, in display order.
// It is validated on construction and never mutated afterwards.
type Bank struct {
	categories []Category
	byKey      map[string]int
}

// New validates categories and builds a Bank from a private copy of them.
func New(categories []Category) (*Bank, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	b := &Bank{
		categories: make([]Category, len(categories)),
		byKey:      make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		b.categories[i] = c.clone()
		b.byKey[c.Key] = i
	}
	return b, nil
}

// Category returns the category with the given key.
func (b *Bank) Category(key string) (Category, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return Category{}, false
	}
	return b.categories[i].clone(), true
}

// Categories returns all categories in display order.
func (b *Bank) Categories() []Category {
	out := make([]Category, len(b.categories))
	for i, c := range b.categories {
		out[i] = c.clone()
	}
	return out
}

// Keys returns all category keys in display order.
func (b *Bank) Keys() []string {
	keys := make([]string, len(b.categories))
	for i, c := range b.categories {
		keys[i] = c.Key
	}
	return keys
}

// DisplayNames returns all category display names in display order.
// Results record the display name, so statistics are keyed by it.
func (b *Bank) DisplayNames() []string {
	names := make([]string, len(b.categories))
	for i, c := range b.categories {
		names[i] = c.DisplayName
	}
	return names
}

// Len returns the number of categories.
func (b *Bank) Len() int {
	return len(b.categories)
}

// TotalQuestions returns the number of questions across all categories.
func (b *Bank) TotalQuestions() int {
	n := 0
	for _, c := range b.categories {
		n += len(c.Questions)
	}
	return n
}
