package notes

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// NotesScreen shows the study notes of each category, one tab per category.
type NotesScreen struct {
	categories []bank.Category
	tab        int
	scroll     int
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)

// New creates a NotesScreen opened on the category with key initial, or on
// the first category if initial is empty or unknown.
func New(b *bank.Bank, initial string) *NotesScreen {
	s := &NotesScreen{categories: b.Categories()}
	for i, c := range s.categories {
		if c.Key == initial {
			s.tab = i
		}
	}
	return s
}

func (s *NotesScreen) Init() tea.Cmd {
	return nil
}

func (s *NotesScreen) Title() string {
	return "Study Notes"
}

func (s *NotesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if s.tab > 0 {
			s.tab--
			s.scroll = 0
		}
	case "right", "l", "tab":
		if s.tab < len(s.categories)-1 {
			s.tab++
			s.scroll = 0
		}
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.tab < len(s.categories) && s.scroll < len(s.categories[s.tab].Notes)-1 {
			s.scroll++
		}
	}
	return s, nil
}

// Tab returns the key of the category being shown.
func (s *NotesScreen) Tab() string {
	if s.tab >= len(s.categories) {
		return ""
	}
	return s.categories[s.tab].Key
}

func (s *NotesScreen) View(width, height int) string {
	if len(s.categories) == 0 {
		return components.Status(width, "No categories.", theme.TextDim)
	}
	cw := components.ContentWidth(width)

	var tabs []string
	for i, c := range s.categories {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.TextDim)
		if i == s.tab {
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeCyan).Bold(true)
		}
		tabs = append(tabs, style.Render(c.DisplayName))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n\n")

	c := s.categories[s.tab]
	if len(c.Notes) == 0 {
		b.WriteString(components.Status(width, "No notes for this category yet.", theme.TextDim))
		return b.String()
	}

	for _, n := range c.Notes[s.scroll:] {
		body := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(n.Title) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(n.Body)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.LeftCard(body, cw)))
		b.WriteString("\n")
	}
	return b.String()
}
