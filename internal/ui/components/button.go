package components

import (
	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// Button is a styled action label. Inactive buttons render dimmed.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{Label: label, Key: key, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
