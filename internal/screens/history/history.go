package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/stats"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []scoring.Result
	Err     error
}

// HistoryScreen lists every stored result, most recent first.
type HistoryScreen struct {
	svc      *learner.Service
	results  []scoring.Result
	selected int
	expanded map[string]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *learner.Service) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[string]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		h, err := svc.History(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: stats.Recent(h, len(h))}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.results) {
				id := s.results[s.selected].ID
				s.expanded[id] = !s.expanded[id]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Status(width, "Error: "+s.errMsg, theme.Error)
	}
	if !s.loaded {
		return components.Status(width, "Loading history...", theme.TextDim)
	}
	if len(s.results) == 0 {
		return components.Status(width, "No quizzes taken yet. Pick a category to get started!", theme.TextDim)
	}

	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d quizzes taken", len(s.results)))))
	b.WriteString("\n\n")

	// Keep the selection visible on short terminals.
	rows := max(height-6, 3)
	start := max(0, s.selected-rows+1)

	for i := start; i < len(s.results) && i < start+rows; i++ {
		r := s.results[i]
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		pct := r.Percentage()
		line := fmt.Sprintf("%s%s  %-12s %2d/%-2d  ", prefix, r.Date, r.Category, r.Score, r.TotalQuestions)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		pctStr := lipgloss.NewStyle().Foreground(theme.ScoreColor(pct)).Bold(true).
			Render(fmt.Sprintf("%3d%%", pct))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Render(style.Render(line)+pctStr)))
		b.WriteString("\n")

		if s.expanded[r.ID] {
			detail := fmt.Sprintf("    %s  ·  id %s", scoring.Verdict(pct), r.ID)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
