package welcome

import (
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗███████╗████████╗███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
 ██║     ██╔════╝██╔════╝╚══██╔══╝██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
 ██║     █████╗  █████╗     ██║   ███████╗██████╔╝██████╔╝██║██╔██╗ ██║   ██║
 ██║     ██╔══╝  ██╔══╝     ██║   ╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
 ███████╗███████╗███████╗   ██║   ███████║██║     ██║  ██║██║██║ ╚████║   ██║
 ╚══════╝╚══════╝╚══════╝   ╚═╝   ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝`

const bannerCompact = "L E E T S P R I N T"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 82

// RenderBanner returns the banner styled in the palette's primary colour.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(p theme.Palette, width int) string {
	style := p.Title()
	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
