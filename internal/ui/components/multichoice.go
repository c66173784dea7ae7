package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Cursor is the highlighted
// option; Chosen is the recorded answer (-1 for none). Once Reveal is set
// the correct option and the chosen one are colored.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int
	Reveal       bool
}

// NewMultiChoice creates a multiple-choice component. chosen is the
// previously recorded answer, or -1; the cursor starts on it.
func NewMultiChoice(question string, options []string, correctIndex, chosen int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       max(chosen, 0),
		Chosen:       chosen,
	}
}

// Update moves the cursor. Selection is left to the caller, which records
// the answer and then sets Chosen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Reveal {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// OptionLabel returns the label shown for option i. It is also the digit
// key that selects the option.
func OptionLabel(i int) string {
	return strconv.Itoa(i + 1)
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Reveal {
			prefix = "▸ "
		}
		mark := " "
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Reveal && i == m.CorrectIndex:
			style = theme.Correct
		case m.Reveal && i == m.Chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		case i == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.ArcadeCyan)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// IsCorrect reports whether the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen >= 0 && m.Chosen == m.CorrectIndex
}
