package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// Status renders a centered one-off message such as a loading or empty
// state, a few lines below the top of the content area.
func Status(width int, text string, fg color.Color) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render("\n\n\n" + text)
}

// Loading renders the standard loading message.
func Loading(width int) string {
	return Status(width, "Loading...", theme.TextDim)
}

// ErrorText renders an error message.
func ErrorText(width int, err error) string {
	return Status(width, "Error: "+err.Error(), theme.Error)
}

// Divider renders a horizontal rule of the given width.
func Divider(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
}

// SectionTitle renders a dim heading followed by a divider.
func SectionTitle(title string, width int) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(title) + "\n" + Divider(width)
}
