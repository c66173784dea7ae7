package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/innovatides/atomquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ResumedMsg is delivered to a screen when it becomes active again after
// the screen above it was popped.
type ResumedMsg struct{}

// BackInterceptor is an optional interface for screens that handle Esc
// themselves while InterceptsBack reports true, e.g. to close a dialog.
type BackInterceptor interface {
	InterceptsBack() bool
}
