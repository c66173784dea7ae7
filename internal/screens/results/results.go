package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/attempt"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// ResultsScreen shows the outcome of a submitted attempt and a
// per-question review.
type ResultsScreen struct {
	result   scoring.Result
	review   []scoring.ReviewItem
	saveErr  error
	retry    func() screen.Screen
	selected int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a submitted attempt. saveErr is shown if
// the result could not be stored. retry, if non-nil, builds a fresh quiz
// on the same category.
func New(a *attempt.Attempt, saveErr error, retry func() screen.Screen) *ResultsScreen {
	r, _ := a.Result()
	review, _ := a.Review()
	return &ResultsScreen{
		result:  r,
		review:  review,
		saveErr: saveErr,
		retry:   retry,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "Done"},
	}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "H", Description: "Home"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.review)-1 {
			s.selected++
		}
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "h", "H":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "r", "R":
		if s.retry == nil {
			return s, nil
		}
		next := s.retry()
		if next == nil {
			return s, nil
		}
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	pct := s.result.Percentage()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ScoreColor(pct)).
		Bold(true).
		Render(scoring.Verdict(pct)))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%s  ·  %d / %d correct  ·  %d%%",
		s.result.Category, s.result.Score, s.result.TotalQuestions, pct)
	b.WriteString(center(width, theme.Value.Render(score)))
	b.WriteString("\n")
	b.WriteString(center(width, components.NewProgressBar("", pct, false, cw).View()))
	b.WriteString("\n")

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Error).
			Render("Result could not be saved: "+s.saveErr.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, components.SectionTitle("Review", cw)))
	b.WriteString("\n")

	// Reserve room for the header block above; show a window of questions
	// around the selection.
	rows := max(height-12, 3)
	start := max(0, min(s.selected-rows/2, len(s.review)-rows))
	end := min(len(s.review), start+rows)
	for i := start; i < end; i++ {
		b.WriteString(center(width, s.renderItem(i, cw)))
		b.WriteString("\n")
	}

	if len(s.review) > 0 {
		b.WriteString("\n")
		b.WriteString(center(width, s.renderDetail(s.review[s.selected], cw)))
	}

	return b.String()
}

func (s *ResultsScreen) renderItem(i, cw int) string {
	item := s.review[i]
	mark := theme.Correct.Render("✓")
	if !item.Correct {
		mark = theme.Incorrect.Render("✗")
	}
	prompt := truncate(item.Question.Prompt, cw-8)
	line := fmt.Sprintf("%s %2d. %s", mark, i+1, prompt)
	style := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}

func (s *ResultsScreen) renderDetail(item scoring.ReviewItem, cw int) string {
	q := item.Question
	var b strings.Builder
	b.WriteString(theme.Value.Render(q.Prompt))
	b.WriteString("\n\n")

	yours := "(no answer)"
	if item.Chosen >= 0 && item.Chosen < len(q.Options) {
		yours = q.Options[item.Chosen]
	}
	yourStyle := theme.Correct
	if !item.Correct {
		yourStyle = theme.Incorrect
	}
	b.WriteString(theme.Label.Render("Your answer:    ") + yourStyle.Render(yours))
	if !item.Correct {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Correct answer: ") + theme.Correct.Render(q.CorrectOption()))
	}
	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(q.Explanation))
	}
	return components.LeftCard(b.String(), cw)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
