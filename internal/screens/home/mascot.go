package home

import (
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default sky blue
	MascotCelebrating                      // Gold, star nucleus: high tier
	MascotAlert                            // Amber, exclamation: no quizzes yet
)

const mascotIdle = `  .-~~~-.
 /  ·-·  \
(  ( ◉ )  )
 \  ·-·  /
  '-~~~-'`

const mascotCelebrating = `  .-~~~-.  ★
 /  ·-·  \
(  ( ★ )  )
 \  ·-·  /
  '-~~~-'`

const mascotAlert = `  .-~~~-.
 /  ·-·  \  !
(  ( ◉ )  )
 \  ·-·  /
  '-~~~-'`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
