package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/screens/notes"
	"github.com/innovatides/atomquiz/internal/screens/quiz"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

type countsLoadedMsg struct {
	Counts map[string]int
	Err    error
}

// CatalogScreen lists the quiz categories.
type CatalogScreen struct {
	svc        *learner.Service
	categories []bank.Category
	counts     map[string]int
	selected   int
	errMsg     string
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen.
func New(svc *learner.Service) *CatalogScreen {
	return &CatalogScreen{
		svc:        svc,
		categories: svc.Bank().Categories(),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	return s.loadCounts()
}

func (s *CatalogScreen) loadCounts() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		sum, err := svc.Summary(context.Background())
		return countsLoadedMsg{Counts: sum.PerCategoryCounts, Err: err}
	}
}

func (s *CatalogScreen) Title() string {
	return "Choose a Category"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "N", Description: "Study notes"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.counts = msg.Counts
		return s, nil

	case screen.ResumedMsg:
		return s, s.loadCounts()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.categories)-1 {
				s.selected++
			}
		case "enter":
			return s, s.start()
		case "n", "N":
			if len(s.categories) == 0 {
				return s, nil
			}
			next := notes.New(s.svc.Bank(), s.categories[s.selected].Key)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *CatalogScreen) start() tea.Cmd {
	if len(s.categories) == 0 {
		return nil
	}
	q, err := quiz.Start(s.svc, s.categories[s.selected].Key)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: q} }
}

func (s *CatalogScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a field where nuclear science is put to work."))
	b.WriteString("\n\n")

	for i, c := range s.categories {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderCard(c, i == s.selected, cw)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Error: " + s.errMsg))
	}

	return b.String()
}

func (s *CatalogScreen) renderCard(c bank.Category, selected bool, cw int) string {
	title := c.DisplayName
	if selected {
		title = "▸ " + title
	}
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	border := theme.Border
	if selected {
		titleStyle = titleStyle.Foreground(theme.ArcadeYellow)
		border = theme.ArcadeYellow
	}

	meta := fmt.Sprintf("%d questions", c.Len())
	if c.Difficulty != "" {
		meta += "  ·  " + c.Difficulty
	}
	if n, ok := s.counts[c.DisplayName]; ok {
		meta += fmt.Sprintf("  ·  taken %d×", n)
	}

	body := titleStyle.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(meta)
	if c.Description != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw).
		Padding(0, 2).
		Render(body)
}
