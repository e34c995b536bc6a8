package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/catalog"
	"github.com/abhisek/leetsprint/internal/levels"
	"github.com/abhisek/leetsprint/internal/router"
	"github.com/abhisek/leetsprint/internal/screen"
	"github.com/abhisek/leetsprint/internal/screens/practice"
	"github.com/abhisek/leetsprint/internal/screens/welcome"
	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/shell"
	"github.com/abhisek/leetsprint/internal/ui/components"
	"github.com/abhisek/leetsprint/internal/ui/layout"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// Options holds dependencies for the app.
type Options struct {
	Catalog *catalog.Catalog // nil uses the built-in catalog
	Config  session.Config
	Logger  *slog.Logger
	Rand    *rand.Rand // nil seeds from the runtime
	Light   bool

	// SkipWelcome starts directly on the practice screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model. It owns the shell state (theme,
// level, progress modal) and routes everything else to the screens.
type AppModel struct {
	router *router.Router
	shell  *shell.Shell
	sess   *session.Session
	log    *slog.Logger
	width  int
	height int
}

// newAppModel builds the session, the practice screen and the shell.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}

	sh := shell.New(levels.MaxLevel)
	if opts.Light {
		sh.SetTheme(theme.Light)
	}

	var sessOpts []session.Option
	if opts.Rand != nil {
		sessOpts = append(sessOpts, session.WithRand(opts.Rand))
	}
	sess := session.New(cat, opts.Config, sessOpts...)
	practiceScreen := practice.New(sess, log, sh.Palette())

	var initial screen.Screen = practiceScreen
	if !opts.SkipWelcome {
		initial = welcome.New(func() screen.Screen { return practiceScreen }, sh.Palette())
	}

	return AppModel{
		router: router.New(initial),
		shell:  sh,
		sess:   sess,
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case practice.SolvedChangedMsg:
		m.shell.OnSolvedCountChanged(msg.Solved)
		return m, nil

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		// Screens built earlier may hold a stale palette.
		cmd := m.router.Update(msg)
		sync := m.router.Update(screen.PaletteMsg{Palette: m.shell.Palette()})
		return m, tea.Batch(cmd, sync)

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleGlobalKey processes shell-level keys. While the progress modal is
// open every key is consumed here.
func (m AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit, true
	}

	if m.shell.ModalOpen() {
		switch key {
		case "p", "P", "esc", "enter":
			m.shell.CloseProgressModal()
		}
		return nil, true
	}

	switch key {
	case "p", "P":
		m.shell.OpenProgressModal()
		return nil, true
	case "t", "T":
		mode := m.shell.ToggleTheme()
		m.log.Info("theme toggled", "mode", mode.String())
		return m.router.Broadcast(screen.PaletteMsg{Palette: m.shell.Palette()}), true
	}
	return nil, false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	p := m.shell.Palette()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(p, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(p, title, m.solvedBadge(), m.width)

	var footerHints []layout.KeyHint
	if m.shell.ModalOpen() {
		footerHints = []layout.KeyHint{
			{Key: "P/Esc", Description: "Close"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "T", Description: "Theme"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(p, footerHints, m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)

	var content string
	if m.shell.ModalOpen() {
		content = m.renderModal(p, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) solvedBadge() string {
	lvl := levels.At(m.shell.Level())
	return lvl.BadgeStyle().Render(fmt.Sprintf("Solved: %d/%d", m.shell.Solved(), m.totalProblems()))
}

// totalProblems is the number actually drawn once selection has run, and
// the configured sample size before that.
func (m AppModel) totalProblems() int {
	if m.sess.SelectionLocked() {
		return len(m.sess.Selected())
	}
	return m.sess.Config().TotalProblems()
}

func (m AppModel) renderModal(p theme.Palette, height int) string {
	lvl := m.shell.ModalContent()
	width := min(m.width-8, 64)

	heading := lvl.BadgeStyle().Render(fmt.Sprintf("Level %d: %s", lvl.Index, lvl.Title))
	achieved := p.Body().Width(width).Render(lvl.Achieved)
	quote := p.Hint().Width(width).Render("\"" + lvl.Quote + "\"")
	hint := p.Dim().Render("press p or esc to close")

	body := lipgloss.JoinVertical(lipgloss.Center, heading, "", achieved, "", quote, "", hint)
	return components.Modal(p, body, lvl.Badge.Border, m.width, height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
