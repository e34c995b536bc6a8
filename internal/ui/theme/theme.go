package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects between the dark and light palettes.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette is the colour set for one mode.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Palettes
var (
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#3B82F6"), // Blue
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F3F4F6"), // Gray 100
		TextDim:   lipgloss.Color("#9CA3AF"), // Gray 400
		Bg:        lipgloss.Color("#111827"), // Gray 900
		BgCard:    lipgloss.Color("#1F2937"), // Gray 800
		Border:    lipgloss.Color("#374151"), // Gray 700
	}

	LightPalette = Palette{
		Primary:   lipgloss.Color("#2563EB"), // Blue 600
		Secondary: lipgloss.Color("#0D9488"), // Teal 600
		Accent:    lipgloss.Color("#EA580C"), // Orange 600
		Success:   lipgloss.Color("#16A34A"), // Green 600
		Error:     lipgloss.Color("#E11D48"), // Rose 600
		Text:      lipgloss.Color("#111827"), // Gray 900
		TextDim:   lipgloss.Color("#6B7280"), // Gray 500
		Bg:        lipgloss.Color("#F3F4F6"), // Gray 100
		BgCard:    lipgloss.Color("#FFFFFF"),
		Border:    lipgloss.Color("#D1D5DB"), // Gray 300
	}
)

// For returns the palette for mode.
func For(m Mode) Palette {
	if m == Light {
		return LightPalette
	}
	return DarkPalette
}

// Typography

func (p Palette) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)
}

func (p Palette) Body() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Text)
}

func (p Palette) Dim() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim)
}

func (p Palette) Hint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)
}

// Layout

// Bar is the header and footer background.
func (p Palette) Bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary)
}

func (p Palette) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
}

// States

func (p Palette) Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
}

func (p Palette) Done() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Strikethrough(true)
}

func (p Palette) Good() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
}

func (p Palette) Bad() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
}

// Components

func (p Palette) ButtonActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)
}

func (p Palette) ButtonInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)
}
