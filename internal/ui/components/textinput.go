package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with AtomQuiz styling and an optional
// validator.
type TextInput struct {
	Model    textinput.Model
	Label    string
	Validate func(string) error
	err      error
}

// NewTextInput creates a new styled text input holding value.
func NewTextInput(label, placeholder, value string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update forwards messages to the wrapped model and clears any stale error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		t.err = nil
	}
	return t, cmd
}

// View renders the label, the input and any validation error.
func (t TextInput) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(8)
	if t.Focused() {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}
	view := labelStyle.Render(t.Label) + " " + t.Model.View()
	if t.err != nil {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  ✗ "+t.err.Error())
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Check runs the validator, records its error for display and returns it.
func (t *TextInput) Check() error {
	t.err = nil
	if t.Validate != nil {
		t.err = t.Validate(t.Model.Value())
	}
	return t.err
}
