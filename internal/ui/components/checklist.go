package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// ChecklistItem is one row of a Checklist.
type ChecklistItem struct {
	Label string
	Tag   string // short right-hand annotation, e.g. the difficulty
	Link  string
	Done  bool
}

// Checklist renders numbered rows with a checkbox. Done rows are struck
// through. The row at Cursor is marked; a negative Cursor marks none.
type Checklist struct {
	Items    []ChecklistItem
	Cursor   int
	Disabled bool
}

// View renders the list at the given width.
func (c Checklist) View(p theme.Palette, width int) string {
	rows := make([]string, 0, len(c.Items)*2)
	for i, item := range c.Items {
		box := "[ ]"
		labelStyle := p.Body()
		if item.Done {
			box = "[x]"
			labelStyle = p.Done()
		}
		if c.Disabled {
			labelStyle = labelStyle.Foreground(p.TextDim)
		}

		num := p.Dim().Render(fmt.Sprintf("%d.", i+1))
		check := lipgloss.NewStyle().Foreground(p.Secondary).Render(box)
		tag := ""
		if item.Tag != "" {
			tag = "  " + p.Hint().Render(item.Tag)
		}

		prefix := "  "
		if i == c.Cursor && !c.Disabled {
			prefix = p.Selected().Render("▸ ")
		}

		rows = append(rows, fmt.Sprintf("%s%s %s %s%s", prefix, num, check, labelStyle.Render(item.Label), tag))
		if item.Link != "" {
			rows = append(rows, "         "+p.Dim().Width(max(width-9, 10)).Render(item.Link))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
