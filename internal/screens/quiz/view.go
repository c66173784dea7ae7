package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmingQuit {
		return renderQuitConfirm(width)
	}
	if s.saving {
		return components.Status(width, "Saving your result...", theme.TextDim)
	}

	a := s.attempt
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	info := fmt.Sprintf("Question %d of %d", a.Position()+1, a.Len())
	answered := fmt.Sprintf("%d answered", a.Answered())
	gap := max(cw-lipgloss.Width(info)-lipgloss.Width(answered), 1)
	b.WriteString(center(width,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info)+
			strings.Repeat(" ", gap)+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(answered)))
	b.WriteString("\n")
	b.WriteString(center(width, components.NewProgressBar("", a.Progress(), true, cw).View()))
	b.WriteString("\n")
	b.WriteString(center(width, s.renderDots()))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(1, 2).
		Render(s.choice.View())
	b.WriteString(center(width, card))
	b.WriteString("\n\n")

	buttons := []string{
		components.NewButton("Prev", "←", a.CanRetreat()).View(),
		components.NewButton("Next", "→", a.CanAdvance()).View(),
		components.NewButton("Submit", "S", a.CanSubmit()).View(),
	}
	b.WriteString(center(width, lipgloss.JoinHorizontal(lipgloss.Center,
		buttons[0], "  ", buttons[1], "  ", buttons[2])))

	if s.flash != "" {
		b.WriteString("\n\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.flash)))
	}

	return b.String()
}

// renderDots shows one marker per question: filled when answered, and
// highlighted at the current position.
func (s *QuizScreen) renderDots() string {
	a := s.attempt
	var parts []string
	for i := range a.Len() {
		mark := "○"
		if _, ok := a.Answer(i); ok {
			mark = "●"
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == a.Position() {
			style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
		}
		parts = append(parts, style.Render(mark))
	}
	return strings.Join(parts, " ")
}

func renderQuitConfirm(width int) string {
	body := theme.Title.Render("Abandon this quiz?") + "\n" +
		theme.Subtitle.Render("Your answers will not be saved.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes, abandon") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going")
	return "\n\n" + center(width, components.ArcadeCard(body, components.ContentWidth(width)))
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
