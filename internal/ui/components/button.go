package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Key     string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button bound to key.
func NewButton(label, key string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events. Inactive buttons ignore input.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == b.Key && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button with its key in brackets.
func (b Button) View(p theme.Palette) string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return p.ButtonActive().Render(label)
	}
	return p.ButtonInactive().Render(label)
}
