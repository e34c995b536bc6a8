package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards so
// they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(p theme.Palette, content string, cw int) string {
	return p.Card().
		Width(cw - 2).
		Render(content)
}

// Modal renders content in a double-border box centred within width x
// height. It replaces whatever was behind it.
func Modal(p theme.Palette, content string, accent color.Color, width, height int) string {
	if accent == nil {
		accent = p.Primary
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Foreground(p.Text).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
