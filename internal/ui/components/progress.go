package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// Fill overrides the palette's fill colour when set.
	Fill color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (b ProgressBar) View(p theme.Palette) string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(p.Text).Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if b.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := b.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := b.Fill
	if fill == nil {
		fill = p.Secondary
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(p.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if b.ShowPercent {
		pct := int(b.Percent * 100)
		pct = max(0, min(100, pct))
		result += lipgloss.NewStyle().
			Foreground(p.TextDim).
			Render(fmt.Sprintf("  %d%%", pct))
	}

	return result
}
