package app

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetsprint/internal/catalog"
	"github.com/abhisek/leetsprint/internal/screens/practice"
	"github.com/abhisek/leetsprint/internal/screens/welcome"
	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

func testOptions() Options {
	cfg := session.DefaultConfig()
	cfg.SelectionDelay = 0
	cfg.Budget = time.Minute
	return Options{
		Config:      cfg,
		Rand:        rand.New(rand.NewPCG(3, 4)),
		SkipWelcome: true,
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// flatten runs cmd and expands batches. Only use it where no tick is armed.
func flatten(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, flatten(c)...)
	}
	return out
}

func practiceScreen(t *testing.T, m AppModel) *practice.PracticeScreen {
	t.Helper()
	ps, ok := m.router.Active().(*practice.PracticeScreen)
	require.True(t, ok, "active screen is %T", m.router.Active())
	return ps
}

func TestStartsOnWelcome(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = false
	m := newAppModel(opts)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
}

func TestThemeToggledOnWelcomeCarriesOver(t *testing.T) {
	opts := testOptions()
	opts.SkipWelcome = false
	m := newAppModel(opts)

	m, _ = update(t, m, key('t'))
	require.Equal(t, theme.Light, m.shell.Theme())

	_, cmd := update(t, m, key(' '))
	msgs := flatten(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])

	assert.Equal(t, theme.LightPalette, practiceScreen(t, m).Palette())
}

func TestBadgeTotalFollowsDrawnProblems(t *testing.T) {
	opts := testOptions()
	cat, err := catalog.New([]catalog.Problem{
		{Number: 1, Title: "Two Sum", Link: "https://leetcode.com/problems/two-sum/", Difficulty: catalog.Easy},
		{Number: 2, Title: "Add Two Numbers", Link: "https://leetcode.com/problems/add-two-numbers/", Difficulty: catalog.Medium},
		{Number: 4, Title: "Median of Two Sorted Arrays", Link: "https://leetcode.com/problems/median-of-two-sorted-arrays/", Difficulty: catalog.Hard},
	})
	require.NoError(t, err)
	opts.Catalog = cat
	m := newAppModel(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Contains(t, m.render(), "Solved: 0/5")

	_, cmd := update(t, m, key('s'))
	msgs := flatten(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])

	assert.Contains(t, m.render(), "Solved: 0/3")
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModalSwallowsKeys(t *testing.T) {
	m := newAppModel(testOptions())

	m, _ = update(t, m, key('p'))
	require.True(t, m.shell.ModalOpen())

	// The session must not see this key.
	m, _ = update(t, m, key('s'))
	assert.Equal(t, session.StateIdle, practiceScreen(t, m).Session().State())

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, m.shell.ModalOpen())

	m, _ = update(t, m, key('p'))
	m, _ = update(t, m, key('p'))
	assert.False(t, m.shell.ModalOpen())
}

func TestThemeToggleBroadcasts(t *testing.T) {
	m := newAppModel(testOptions())
	require.Equal(t, theme.Dark, m.shell.Theme())

	m, _ = update(t, m, key('t'))
	assert.Equal(t, theme.Light, m.shell.Theme())

	m, _ = update(t, m, key('t'))
	assert.Equal(t, theme.Dark, m.shell.Theme())
}

func TestLightOption(t *testing.T) {
	opts := testOptions()
	opts.Light = true
	m := newAppModel(opts)
	assert.Equal(t, theme.Light, m.shell.Theme())
}

func TestSolvedChangedUpdatesLevel(t *testing.T) {
	m := newAppModel(testOptions())

	m, _ = update(t, m, practice.SolvedChangedMsg{Solved: 3})
	assert.Equal(t, 3, m.shell.Solved())
	assert.Equal(t, 3, m.shell.Level())

	m, _ = update(t, m, practice.SolvedChangedMsg{Solved: 42})
	assert.Equal(t, 6, m.shell.Level())
}

func TestSelectionFlowsToShell(t *testing.T) {
	m := newAppModel(testOptions())

	// Delay is zero, so the command yields the ready signal at once.
	m, cmd := update(t, m, key('s'))
	msgs := flatten(cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	ps := practiceScreen(t, m)
	require.Equal(t, session.StateActive, ps.Session().State())

	_, cmd = update(t, m, key('1'))
	msgs = flatten(cmd)
	require.Len(t, msgs, 1)
	changed, ok := msgs[0].(practice.SolvedChangedMsg)
	require.True(t, ok, "got %T", msgs[0])
	m, _ = update(t, m, changed)
	assert.Equal(t, 1, m.shell.Solved())
}

func TestRenderHeaderAndModal(t *testing.T) {
	m := newAppModel(testOptions())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	frame := m.render()
	assert.Contains(t, frame, "Solved: 0/5")
	assert.Contains(t, frame, "Practice")

	m, _ = update(t, m, key('p'))
	frame = m.render()
	assert.Contains(t, frame, "Base")
	assert.Contains(t, frame, "press p or esc to close")
}

func TestRenderTooSmall(t *testing.T) {
	m := newAppModel(testOptions())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.True(t, strings.Contains(m.render(), "Terminal too small"))
}
