package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` █████╗ ████████╗ ██████╗ ███╗   ███╗
██╔══██╗╚══██╔══╝██╔═══██╗████╗ ████║
███████║   ██║   ██║   ██║██╔████╔██║
██╔══██║   ██║   ██║   ██║██║╚██╔╝██║
██║  ██║   ██║   ╚██████╔╝██║ ╚═╝ ██║
╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝     ╚═╝
          Q  U  I  Z`

const arcadeTitleCompact = "A · T · O · M · Q · U · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders attempts, average and tier in a bordered box
// matching content width.
func renderStatsBar(d learner.Dashboard, loaded bool, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	avgStyle := lipgloss.NewStyle().Foreground(theme.ScoreColor(d.Summary.AveragePercentage)).Bold(true)
	tierStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case !loaded:
		stats = dimStyle.Render("· · ·")
	case d.Summary.TotalAttempts == 0:
		stats = dimStyle.Render("NO QUIZZES YET. PRESS ENTER TO BEGIN")
	case compact:
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("#%d", d.Summary.TotalAttempts)),
			avgStyle.Render(fmt.Sprintf("%d%%", d.Summary.AveragePercentage)),
			tierStyle.Render(string(d.Achievements.Tier)),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("◉ %d QUIZZES", d.Summary.TotalAttempts)),
			avgStyle.Render(fmt.Sprintf("◎ %d%% AVG", d.Summary.AveragePercentage)),
			tierStyle.Render("★ "+strings.ToUpper(string(d.Achievements.Tier))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
