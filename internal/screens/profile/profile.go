package profile

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile   account.Profile
	Dashboard learner.Dashboard
	Err       error
}

type profileSavedMsg struct {
	Profile account.Profile
	Err     error
}

// ProfileScreen shows who the learner is and what they have earned, and
// lets them edit their name and email.
type ProfileScreen struct {
	svc     *learner.Service
	profile account.Profile
	data    learner.Dashboard
	loaded  bool
	err     error

	editing bool
	inputs  []components.TextInput
	focus   int
	flash   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.BackInterceptor = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(svc *learner.Service) *ProfileScreen {
	return &ProfileScreen{svc: svc}
}

func (s *ProfileScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		p, err := svc.Profile(ctx)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		d, err := svc.Dashboard(ctx)
		return profileLoadedMsg{Profile: p, Dashboard: d, Err: err}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

// InterceptsBack keeps Esc inside the screen while a field is being edited.
func (s *ProfileScreen) InterceptsBack() bool {
	return s.editing
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Edit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.profile, s.data, s.err = msg.Profile, msg.Dashboard, msg.Err
		s.loaded = true
		return s, nil

	case profileSavedMsg:
		if msg.Err != nil {
			s.flash = "Could not save: " + msg.Err.Error()
			return s, nil
		}
		s.profile = msg.Profile
		s.flash = "Profile saved."
		return s, nil

	case screen.ResumedMsg:
		return s, s.Init()

	case tea.KeyMsg:
		if s.editing {
			return s, s.handleEditKey(msg)
		}
		s.flash = ""
		if msg.String() == "e" && s.loaded {
			return s, s.startEditing()
		}
		return s, nil
	}

	if s.editing {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) startEditing() tea.Cmd {
	name := components.NewTextInput("Name", "Your name", s.profile.Name, 40)
	name.Validate = validateName
	email := components.NewTextInput("Email", "you@example.com", s.profile.Email, 80)
	email.Validate = validateEmail

	s.inputs = []components.TextInput{name, email}
	s.focus = 0
	s.editing = true
	return s.inputs[0].Focus()
}

func (s *ProfileScreen) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.editing = false
		s.inputs = nil
		return nil
	case "tab", "down", "shift+tab", "up":
		s.inputs[s.focus].Blur()
		if msg.String() == "tab" || msg.String() == "down" {
			s.focus = (s.focus + 1) % len(s.inputs)
		} else {
			s.focus = (s.focus + len(s.inputs) - 1) % len(s.inputs)
		}
		return s.inputs[s.focus].Focus()
	case "enter":
		return s.save()
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *ProfileScreen) save() tea.Cmd {
	var failed bool
	for i := range s.inputs {
		if s.inputs[i].Check() != nil {
			failed = true
		}
	}
	if failed {
		return nil
	}

	p := s.profile
	p.Name = strings.TrimSpace(s.inputs[0].Value())
	p.Email = strings.TrimSpace(s.inputs[1].Value())
	s.editing = false
	s.inputs = nil

	svc := s.svc
	return func() tea.Msg {
		saved, err := svc.SaveProfile(context.Background(), p)
		return profileSavedMsg{Profile: saved, Err: err}
	}
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validateEmail(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if _, err := mail.ParseAddress(v); err != nil {
		return errors.New("not a valid email address")
	}
	return nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.err != nil {
		return components.ErrorText(width, s.err)
	}
	if !s.loaded {
		return components.Loading(width)
	}

	cw := components.ContentWidth(width)
	inner := cw - 6

	var sections []string
	sections = append(sections, components.LeftCard(s.renderIdentity(inner), cw))
	sections = append(sections, components.LeftCard(s.renderBadges(inner), cw))
	sections = append(sections, components.LeftCard(s.renderRecent(inner), cw))

	if s.flash != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.flash))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"\n"+lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (s *ProfileScreen) renderIdentity(inner int) string {
	var b strings.Builder
	b.WriteString(components.SectionTitle("LEARNER", inner))
	b.WriteString("\n")

	if s.editing {
		for _, in := range s.inputs {
			b.WriteString(in.View() + "\n")
		}
	} else {
		email := s.profile.Email
		if email == "" {
			email = "not set"
		}
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Width(8).Render("Name"), theme.Value.Render(s.profile.Name))
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Width(8).Render("Email"), theme.Value.Render(email))
		if s.profile.JoinedAt != "" {
			fmt.Fprintf(&b, "%s %s\n", theme.Label.Width(8).Render("Joined"), theme.Value.Render(s.profile.JoinedAt))
		}
	}

	fmt.Fprintf(&b, "%s %s", theme.Label.Width(8).Render("Tier"),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(string(s.data.Achievements.Tier)))
	return b.String()
}

func (s *ProfileScreen) renderBadges(inner int) string {
	var b strings.Builder
	b.WriteString(components.SectionTitle(
		fmt.Sprintf("ACHIEVEMENTS %d/%d", len(s.data.Achievements.Badges), len(achievements.AllBadges())), inner))
	for _, badge := range achievements.AllBadges() {
		earned := s.data.Achievements.Has(badge)
		name := badge.Icon() + " " + badge.DisplayName()
		nameStyle := theme.Disabled
		if earned {
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		}
		fmt.Fprintf(&b, "\n%s\n  %s", nameStyle.Render(name), theme.Hint.Render(badge.Description()))
	}
	return b.String()
}

func (s *ProfileScreen) renderRecent(inner int) string {
	var b strings.Builder
	b.WriteString(components.SectionTitle("RECENT ACTIVITY", inner))
	recent := s.data.Summary.RecentResults
	if len(recent) == 0 {
		b.WriteString("\n" + theme.Hint.Render("Nothing yet. Take your first quiz!"))
	}
	for _, r := range recent {
		pct := r.Percentage()
		fmt.Fprintf(&b, "\n%s  %s  %s",
			theme.Hint.Render(r.Date),
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%s %d/%d", r.Category, r.Score, r.TotalQuestions)),
			lipgloss.NewStyle().Foreground(theme.ScoreColor(pct)).Render(scoring.Verdict(pct)))
	}
	return b.String()
}
