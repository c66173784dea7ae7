package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/router"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/screens/home"
	"github.com/innovatides/atomquiz/internal/screens/quiz"
	"github.com/innovatides/atomquiz/internal/screens/welcome"
	"github.com/innovatides/atomquiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Service *learner.Service
	// ExportDir is where the settings screen writes exports.
	ExportDir string
	// StartCategory, if set, skips the splash and opens a quiz on that
	// category above the home screen.
	StartCategory string
}

type headerStatsMsg layout.HeaderStats

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *learner.Service
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates the root model. Without a start category the
// welcome splash is shown first and replaces itself with the home screen.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Service == nil {
		return AppModel{}, fmt.Errorf("app: no service")
	}
	homeScreen := home.New(opts.Service, opts.ExportDir)
	m := AppModel{svc: opts.Service}

	if opts.StartCategory == "" {
		m.router = router.New(welcome.New(func() screen.Screen { return homeScreen }))
		return m, nil
	}

	q, err := quiz.Start(opts.Service, opts.StartCategory)
	if err != nil {
		return AppModel{}, err
	}
	m.router = router.New(homeScreen)
	m.router.Push(q)
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	// A home screen below a pre-pushed quiz loads when it is resumed.
	return tea.Batch(m.refreshStats(), m.router.Active().Init())
}

// refreshStats loads the header numbers through the learner service.
func (m AppModel) refreshStats() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		d, err := svc.Dashboard(context.Background())
		if err != nil {
			return nil
		}
		return headerStatsMsg{
			Attempts: d.Summary.TotalAttempts,
			Average:  d.Summary.AveragePercentage,
			Tier:     string(d.Achievements.Tier),
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.stats = layout.HeaderStats(msg)
		return m, nil

	case screen.ResumedMsg, router.ReplaceScreenMsg:
		return m, tea.Batch(m.router.Update(msg), m.refreshStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, quit}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quit,
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
