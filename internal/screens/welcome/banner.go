package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/innovatides/atomquiz/internal/ui/theme"
)

const bannerArt = `
 █████╗ ████████╗ ██████╗ ███╗   ███╗ ██████╗ ██╗   ██╗██╗███████╗
██╔══██╗╚══██╔══╝██╔═══██╗████╗ ████║██╔═══██╗██║   ██║██║╚══███╔╝
███████║   ██║   ██║   ██║██╔████╔██║██║   ██║██║   ██║██║  ███╔╝
██╔══██║   ██║   ██║   ██║██║╚██╔╝██║██║▄▄ ██║██║   ██║██║ ███╔╝
██║  ██║   ██║   ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝╚██████╔╝██║███████╗
╚═╝  ╚═╝   ╚═╝    ╚═════╝ ╚═╝     ╚═╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "A T O M Q U I Z"

// bannerMinWidth is the narrowest terminal that fits the full banner.
const bannerMinWidth = 70

// RenderBanner returns the ATOMQUIZ banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
