package dashboard

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

type dashboardLoadedMsg struct {
	Dashboard learner.Dashboard
	Err       error
}

// DashboardScreen shows progress statistics for the learner.
type DashboardScreen struct {
	svc    *learner.Service
	data   learner.Dashboard
	loaded bool
	err    error
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(svc *learner.Service) *DashboardScreen {
	return &DashboardScreen{svc: svc}
}

func (s *DashboardScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		d, err := svc.Dashboard(context.Background())
		return dashboardLoadedMsg{Dashboard: d, Err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		s.data, s.err = msg.Dashboard, msg.Err
		s.loaded = true
	case screen.ResumedMsg:
		return s, s.Init()
	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.err != nil {
		return components.ErrorText(width, s.err)
	}
	if !s.loaded {
		return components.Loading(width)
	}

	cw := components.ContentWidth(width)
	inner := cw - 6
	sum := s.data.Summary

	var sections []string

	tiles := []string{
		statTile("QUIZZES", fmt.Sprintf("%d", sum.TotalAttempts), theme.ArcadeCyan),
		statTile("AVERAGE", fmt.Sprintf("%d%%", sum.AveragePercentage), theme.ScoreColor(sum.AveragePercentage)),
		statTile("BEST", fmt.Sprintf("%d%%", sum.BestPercentage), theme.ScoreColor(sum.BestPercentage)),
		statTile("TIER", string(s.data.Achievements.Tier), theme.ArcadeYellow),
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))

	goal := components.NewProgressBar(
		fmt.Sprintf("Goal %d/%d", min(sum.TotalAttempts, s.data.Goal), s.data.Goal),
		s.data.GoalProgress, true, inner).View()
	sections = append(sections, components.LeftCard(goal, cw))

	var cats strings.Builder
	cats.WriteString(components.SectionTitle("QUIZZES BY CATEGORY", inner))
	for _, name := range s.svc.Bank().DisplayNames() {
		fmt.Fprintf(&cats, "\n%s %s",
			theme.Label.Width(inner-6).Render(name),
			theme.Value.Render(fmt.Sprintf("%4d", sum.PerCategoryCounts[name])))
	}
	sections = append(sections, components.LeftCard(cats.String(), cw))

	var recent strings.Builder
	recent.WriteString(components.SectionTitle(fmt.Sprintf("RECENT (%d)", s.svc.RecentN()), inner))
	if len(sum.RecentResults) == 0 {
		recent.WriteString("\n" + theme.Hint.Render("No quizzes taken yet."))
	}
	for _, r := range sum.RecentResults {
		pct := r.Percentage()
		fmt.Fprintf(&recent, "\n%s  %s %s",
			theme.Hint.Render(r.Date),
			lipgloss.NewStyle().Foreground(theme.Text).Width(inner-18).Render(r.Category),
			lipgloss.NewStyle().Foreground(theme.ScoreColor(pct)).Bold(true).Render(fmt.Sprintf("%3d%%", pct)))
	}
	sections = append(sections, components.LeftCard(recent.String(), cw))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+content)
}

func statTile(label, value string, fg color.Color) string {
	body := lipgloss.NewStyle().Foreground(fg).Bold(true).Render(value) + "\n" +
		theme.Hint.Render(label)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(14).
		Align(lipgloss.Center).
		Render(body)
}
