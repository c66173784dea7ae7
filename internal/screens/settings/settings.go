package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/account"
	"github.com/innovatides/atomquiz/internal/export"
	"github.com/innovatides/atomquiz/internal/learner"
	"github.com/innovatides/atomquiz/internal/screen"
	"github.com/innovatides/atomquiz/internal/ui/components"
	"github.com/innovatides/atomquiz/internal/ui/layout"
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// Languages are the interface languages the settings screen cycles through.
var Languages = []string{"en", "fr", "es", "de"}

type settingsLoadedMsg struct {
	Settings account.Settings
	Err      error
}

type actionDoneMsg struct {
	Flash  string
	Err    error
	Reload bool
	// Restore holds the settings shown before a change whose save failed.
	Restore *account.Settings
}

type row int

const (
	rowNotifications row = iota
	rowDarkMode
	rowLanguage
	rowAutoSave
	rowEmailUpdates
	rowExport
	rowDelete
	rowCount
)

// SettingsScreen edits preferences and manages the learner's data.
type SettingsScreen struct {
	svc        *learner.Service
	exportDir  string
	settings   account.Settings
	loaded     bool
	selected   row
	confirming bool
	flash      string
	flashErr   bool
	now        func() time.Time
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.BackInterceptor = (*SettingsScreen)(nil)

// New creates a SettingsScreen. Exports are written into exportDir, or the
// working directory if it is empty.
func New(svc *learner.Service, exportDir string) *SettingsScreen {
	return &SettingsScreen{svc: svc, exportDir: exportDir, now: time.Now}
}

func (s *SettingsScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		st, err := svc.Settings(context.Background())
		return settingsLoadedMsg{Settings: st, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// InterceptsBack keeps Esc inside the screen while the delete
// confirmation is open.
func (s *SettingsScreen) InterceptsBack() bool {
	return s.confirming
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		s.settings = msg.Settings
		s.loaded = true
		if msg.Err != nil {
			s.setFlash(msg.Err.Error(), true)
		}
		return s, nil

	case actionDoneMsg:
		if msg.Err != nil {
			if msg.Restore != nil {
				s.settings = *msg.Restore
			}
			s.setFlash(msg.Err.Error(), true)
			return s, nil
		}
		s.setFlash(msg.Flash, false)
		if msg.Reload {
			return s, s.Init()
		}
		return s, nil

	case tea.KeyMsg:
		if s.confirming {
			return s, s.handleConfirmKey(msg)
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SettingsScreen) setFlash(text string, isErr bool) {
	s.flash, s.flashErr = text, isErr
}

func (s *SettingsScreen) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		s.confirming = false
		svc := s.svc
		return func() tea.Msg {
			if err := svc.DeleteAccount(context.Background()); err != nil {
				return actionDoneMsg{Err: err}
			}
			return actionDoneMsg{Flash: "All learner data deleted.", Reload: true}
		}
	case "n", "N", "esc":
		s.confirming = false
	}
	return nil
}

func (s *SettingsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !s.loaded {
		return nil
	}
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return nil
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
		return nil
	case "enter", "space":
		s.flash = ""
		return s.activate()
	}
	return nil
}

func (s *SettingsScreen) activate() tea.Cmd {
	prev := s.settings
	switch s.selected {
	case rowNotifications:
		s.settings.Notifications = !s.settings.Notifications
	case rowDarkMode:
		s.settings.DarkMode = !s.settings.DarkMode
	case rowLanguage:
		s.settings.Language = nextLanguage(s.settings.Language)
	case rowAutoSave:
		s.settings.AutoSave = !s.settings.AutoSave
	case rowEmailUpdates:
		s.settings.EmailUpdates = !s.settings.EmailUpdates
	case rowExport:
		return s.export()
	case rowDelete:
		s.confirming = true
		return nil
	}

	svc, st := s.svc, s.settings
	return func() tea.Msg {
		if err := svc.SaveSettings(context.Background(), st); err != nil {
			return actionDoneMsg{Err: fmt.Errorf("settings not saved: %w", err), Restore: &prev}
		}
		return actionDoneMsg{Flash: "Settings saved."}
	}
}

func nextLanguage(cur string) string {
	i := slices.Index(Languages, cur)
	return Languages[(i+1)%len(Languages)]
}

func (s *SettingsScreen) export() tea.Cmd {
	svc := s.svc
	path := filepath.Join(s.exportDir, "atomquiz-export-"+s.now().Format("20060102-150405")+".json")
	return func() tea.Msg {
		doc, err := svc.Export(context.Background())
		if err != nil {
			return actionDoneMsg{Err: err}
		}
		if err := writeExport(path, doc); err != nil {
			return actionDoneMsg{Err: err}
		}
		return actionDoneMsg{Flash: "Exported to " + path}
	}
}

func writeExport(path string, doc export.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *SettingsScreen) View(width, height int) string {
	if !s.loaded {
		return components.Loading(width)
	}

	cw := components.ContentWidth(width)
	inner := cw - 6

	var pref strings.Builder
	pref.WriteString(components.SectionTitle("PREFERENCES", inner))
	pref.WriteString(s.renderRow(rowNotifications, "Notifications", onOff(s.settings.Notifications), inner))
	pref.WriteString(s.renderRow(rowDarkMode, "Dark mode", onOff(s.settings.DarkMode), inner))
	pref.WriteString(s.renderRow(rowLanguage, "Language", s.settings.Language, inner))
	pref.WriteString(s.renderRow(rowAutoSave, "Auto-save", onOff(s.settings.AutoSave), inner))
	pref.WriteString(s.renderRow(rowEmailUpdates, "Email updates", onOff(s.settings.EmailUpdates), inner))

	var data strings.Builder
	data.WriteString(components.SectionTitle("YOUR DATA", inner))
	data.WriteString(s.renderRow(rowExport, "Export data", "JSON", inner))
	data.WriteString(s.renderRow(rowDelete, "Delete account", "", inner))

	sections := []string{
		components.LeftCard(pref.String(), cw),
		components.LeftCard(data.String(), cw),
	}

	if s.confirming {
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Error).
			Width(cw-2).
			Align(lipgloss.Center).
			Padding(0, 2).
			Render(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("Delete profile, settings and all quiz results?")+"\n"+
				theme.Hint.Render("This cannot be undone.  [Y]es  [N]o")))
	}

	if s.flash != "" {
		fg := theme.Success
		if s.flashErr {
			fg = theme.Error
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(fg).Render(s.flash))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"\n"+lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (s *SettingsScreen) renderRow(r row, label, value string, inner int) string {
	prefix := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if r == s.selected {
		prefix = "▸ "
		labelStyle = labelStyle.Foreground(theme.ArcadeYellow).Bold(true)
	}
	if r == rowDelete {
		labelStyle = labelStyle.Foreground(theme.Error)
	}
	return "\n" + labelStyle.Width(inner-8).Render(prefix+label) + theme.Value.Render(value)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
