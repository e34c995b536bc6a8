package welcome

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/router"
	"github.com/abhisek/leetsprint/internal/screen"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// WelcomeScreen is a static splash. The first key press swaps in the
// screen built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	palette theme.Palette
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen, p theme.Palette) *WelcomeScreen {
	return &WelcomeScreen{next: next, palette: p}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nil }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.PaletteMsg:
		w.palette = msg.Palette
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		next := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	p := w.palette
	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderBanner(p, width),
		"",
		p.Body().Bold(true).Render("Five problems. One hour. Go."),
		"",
		p.Hint().Render("press any key to start"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
