package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/screens/catalog"
	"github.com/innovatides/atomquiz/internal/screens/dashboard"
	"github.com/innovatides/atomquiz/internal/screens/history"
	"github.com/innovatides/atomquiz/internal/screens/notes"
	"github.com/innovatides/atomquiz/internal/screens/profile"
	"github.com/innovatides/atomquiz/internal/screens/settings"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
)

type homeLoadedMsg struct {
	Dashboard learner.Dashboard
	Err       error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc           *learner.Service
	menu          components.Menu
	menuLabels    []string
	data          learner.Dashboard
	loaded        bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. exportDir is handed to the settings screen.
func New(svc *learner.Service, exportDir string) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	menuLabels := []string{"TAKE A QUIZ", "DASHBOARD", "HISTORY", "PROFILE", "STUDY NOTES", "SETTINGS", "EXIT"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return catalog.New(svc) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return dashboard.New(svc) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen { return history.New(svc) })},
		{Label: menuLabels[3], Action: push(func() screen.Screen { return profile.New(svc) })},
		{Label: menuLabels[4], Action: push(func() screen.Screen { return notes.New(svc.Bank(), "") })},
		{Label: menuLabels[5], Action: push(func() screen.Screen { return settings.New(svc, exportDir) })},
		{Label: menuLabels[6], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		d, err := svc.Dashboard(context.Background())
		return homeLoadedMsg{Dashboard: d, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.Err == nil {
			h.data = msg.Dashboard
			h.loaded = true
			h.mascotVariant = variantFor(h.data)
		}
		return h, nil
	case screen.ResumedMsg:
		return h, h.Init()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func variantFor(d learner.Dashboard) MascotVariant {
	switch {
	case d.Summary.TotalAttempts == 0:
		return MascotAlert
	case d.Achievements.Tier == achievements.TierExpert || d.Achievements.Tier == achievements.TierAdvanced:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

// Selected returns the label of the highlighted menu item.
func (h *HomeScreen) Selected() string {
	return h.menuLabels[h.menu.Selected]
}

func (h *HomeScreen) View(width, height int) string {
	narrow := layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, narrow || height < 40))
	if !narrow && height >= 46 {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.data, h.loaded, cw, narrow))

	if layout.IsCompactHeight(height) {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
