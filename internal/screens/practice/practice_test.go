package practice

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetsprint/internal/catalog"
	"github.com/abhisek/leetsprint/internal/router"
	"github.com/abhisek/leetsprint/internal/screen"
	"github.com/abhisek/leetsprint/internal/screens/summary"
	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

func newTestScreen(t *testing.T, budget, delay time.Duration) *PracticeScreen {
	t.Helper()
	return newSizedScreen(t, budget, delay, 1, 1, 1)
}

func newSizedScreen(t *testing.T, budget, delay time.Duration, easy, medium, hard int) *PracticeScreen {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.SampleSizes = map[catalog.Difficulty]int{catalog.Easy: easy, catalog.Medium: medium, catalog.Hard: hard}
	cfg.Budget = budget
	cfg.SelectionDelay = delay
	sess := session.New(catalog.Builtin(), cfg, session.WithRand(rand.New(rand.NewPCG(7, 7))))
	return New(sess, nil, theme.DarkPalette)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// collect runs cmd and flattens any batch into its messages. Tick commands
// block until they fire, so only call it where no tick is armed.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// selectNow presses s and delivers the matching ready message.
func selectNow(t *testing.T, s *PracticeScreen) {
	t.Helper()
	s.Update(key('s'))
	require.True(t, s.selecting)
	s.Update(selectionReadyMsg{SessionID: s.sess.ID(), Token: s.selectToken})
	require.Equal(t, session.StateActive, s.sess.State())
}

func TestSelectWithoutDelayEmitsReady(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)

	_, cmd := s.Update(key('s'))
	msgs := collect(t, cmd)
	ready, ok := findMsg[selectionReadyMsg](msgs)
	require.True(t, ok, "expected selectionReadyMsg, got %v", msgs)
	assert.Equal(t, s.sess.ID(), ready.SessionID)

	_, cmd = s.Update(ready)
	assert.NotNil(t, cmd, "selection should arm the timer")
	assert.Len(t, s.sess.Selected(), 3)
	assert.True(t, s.timer.running)
}

func TestSelectionDelayShowsSpinner(t *testing.T) {
	s := newTestScreen(t, time.Minute, time.Second)

	_, cmd := s.Update(key('s'))
	require.NotNil(t, cmd)
	assert.True(t, s.selecting)
	assert.Equal(t, session.StateIdle, s.sess.State())
	assert.Contains(t, s.View(100, 30), "Picking your problems")

	// Pressing s again while waiting does nothing.
	s.Update(key('s'))
	assert.Equal(t, 1, s.selectToken)
}

func TestSecondSelectionUnavailable(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)
	before := s.sess.Selected()

	s.Update(key('s'))

	assert.Equal(t, before, s.sess.Selected())
	assert.False(t, s.selecting)
	assert.Contains(t, s.notice, "Selection unavailable")
}

func TestStaleSelectionIgnoredAfterRestart(t *testing.T) {
	s := newTestScreen(t, time.Minute, time.Second)
	s.Update(key('s'))
	oldID := s.sess.ID()
	token := s.selectToken

	s.Update(key('r'))
	s.Update(selectionReadyMsg{SessionID: oldID, Token: token})

	assert.Equal(t, session.StateIdle, s.sess.State())
	assert.False(t, s.sess.SelectionLocked())
}

func TestTimerTickCountsDown(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	_, cmd := s.Update(timerTickMsg{SessionID: s.sess.ID(), Gen: s.timer.gen})
	assert.Equal(t, 59, s.sess.TimeRemaining())
	assert.NotNil(t, cmd, "tick should re-arm")
}

func TestStaleTicksDropped(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	s.Update(timerTickMsg{SessionID: s.sess.ID(), Gen: s.timer.gen - 1})
	s.Update(timerTickMsg{SessionID: "other", Gen: s.timer.gen})
	assert.Equal(t, 60, s.sess.TimeRemaining())
}

func TestTicksIgnoredWhileIdle(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	s.Update(timerTickMsg{SessionID: s.sess.ID(), Gen: s.timer.gen})
	assert.Equal(t, 60, s.sess.TimeRemaining())
}

func TestTimeExpiryPushesSummary(t *testing.T) {
	s := newTestScreen(t, 2*time.Second, 0)
	selectNow(t, s)

	s.Update(timerTickMsg{SessionID: s.sess.ID(), Gen: s.timer.gen})
	_, cmd := s.Update(timerTickMsg{SessionID: s.sess.ID(), Gen: s.timer.gen})

	require.True(t, s.sess.Completed())
	assert.Equal(t, session.OutcomeTimeExpired, s.sess.Outcome())
	assert.Equal(t, 0, s.sess.TimeRemaining())
	assert.False(t, s.timer.running)

	push, ok := findMsg[router.PushScreenMsg](collect(t, cmd))
	require.True(t, ok)
	assert.IsType(t, &summary.SummaryScreen{}, push.Screen)
}

func TestToggleEmitsSolvedChanged(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	_, cmd := s.Update(key('2'))
	changed, ok := findMsg[SolvedChangedMsg](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, 1, changed.Solved)

	_, cmd = s.Update(key('2'))
	changed, ok = findMsg[SolvedChangedMsg](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, 0, changed.Solved)
}

func TestOutOfRangeToggleIgnored(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	_, cmd := s.Update(key('9'))
	_, ok := findMsg[SolvedChangedMsg](collect(t, cmd))
	assert.False(t, ok)
	assert.Equal(t, 0, s.sess.SolvedCount())
}

func TestCursorReachesEveryProblem(t *testing.T) {
	s := newSizedScreen(t, time.Minute, 0, 5, 5, 2)
	selectNow(t, s)
	require.Len(t, s.sess.Selected(), 12)

	// Up at the top stays put.
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.cursor)

	for i := 0; i < 12; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
		if i < 11 {
			s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
	}
	assert.Equal(t, 11, s.cursor)
	assert.Equal(t, 12, s.sess.SolvedCount())
	require.True(t, s.sess.AwaitingConfirmation())

	// Down at the bottom stays put.
	s.sess.ConfirmFinish(false)
	s.Update(key('j'))
	assert.Equal(t, 11, s.cursor)

	// Untick the last row, then tick it again to bring the prompt back.
	s.Update(key('x'))
	assert.False(t, s.sess.AwaitingConfirmation())
	s.Update(key('x'))
	require.True(t, s.sess.AwaitingConfirmation())

	_, cmd := s.Update(key('y'))
	assert.Equal(t, session.OutcomeConfirmed, s.sess.Outcome())
	_, ok := findMsg[router.PushScreenMsg](collect(t, cmd))
	assert.True(t, ok)
}

func TestDigitMovesCursor(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	s.Update(key('3'))
	assert.Equal(t, 2, s.cursor)
	s.Update(key('k'))
	assert.Equal(t, 1, s.cursor)

	s.Update(key('r'))
	assert.Equal(t, 0, s.cursor)
}

func TestConfirmationFlow(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)

	for _, r := range "123" {
		s.Update(key(r))
	}
	require.True(t, s.sess.AwaitingConfirmation())
	assert.Contains(t, s.View(100, 30), "Finish the test now?")

	// Number keys do nothing while the prompt is up.
	s.Update(key('1'))
	assert.Equal(t, 3, s.sess.SolvedCount())

	s.Update(key('n'))
	assert.False(t, s.sess.AwaitingConfirmation())
	assert.False(t, s.sess.Completed())
	assert.True(t, s.timer.running)

	s.Update(key('3'))
	s.Update(key('3'))
	require.True(t, s.sess.AwaitingConfirmation())

	_, cmd := s.Update(key('y'))
	assert.True(t, s.sess.Completed())
	assert.Equal(t, session.OutcomeConfirmed, s.sess.Outcome())
	_, ok := findMsg[router.PushScreenMsg](collect(t, cmd))
	assert.True(t, ok)
}

func TestFinishEarly(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)

	_, cmd := s.Update(key('f'))
	assert.Nil(t, collect(t, cmd), "finish while idle is a no-op")

	selectNow(t, s)
	_, cmd = s.Update(key('f'))
	assert.Equal(t, session.OutcomeFinished, s.sess.Outcome())
	_, ok := findMsg[router.PushScreenMsg](collect(t, cmd))
	assert.True(t, ok)
}

func TestRestartMsgResetsSession(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	selectNow(t, s)
	s.Update(key('1'))
	oldID := s.sess.ID()
	gen := s.timer.gen

	_, cmd := s.Update(summary.RestartMsg{})

	assert.NotEqual(t, oldID, s.sess.ID())
	assert.Equal(t, session.StateIdle, s.sess.State())
	assert.False(t, s.timer.running)
	assert.Greater(t, s.timer.gen, gen)
	changed, ok := findMsg[SolvedChangedMsg](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, 0, changed.Solved)

	// Selection is available again.
	selectNow(t, s)
}

func TestPaletteMsg(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	s.Update(screen.PaletteMsg{Palette: theme.LightPalette})
	assert.Equal(t, theme.LightPalette, s.palette)
}

func TestViewShowsProblems(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	assert.Contains(t, s.View(100, 30), "Select problems")

	selectNow(t, s)
	view := s.View(100, 30)
	for _, sp := range s.sess.Selected() {
		assert.Contains(t, view, sp.Title)
	}
	assert.Contains(t, view, "01:00")
	assert.Contains(t, view, "https://leetcode.com/problems/")

	narrow := s.View(70, 30)
	assert.NotContains(t, narrow, "https://leetcode.com/problems/")
}

func TestKeyHintsFollowState(t *testing.T) {
	s := newTestScreen(t, time.Minute, 0)
	hasKey := func(k string) bool {
		for _, h := range s.KeyHints() {
			if strings.EqualFold(h.Key, k) {
				return true
			}
		}
		return false
	}

	assert.True(t, hasKey("S"))
	selectNow(t, s)
	assert.True(t, hasKey("F"))
	for _, r := range "123" {
		s.Update(key(r))
	}
	assert.True(t, hasKey("Y"))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{3600, "60:00"},
		{59, "00:59"},
		{61, "01:01"},
		{0, "00:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
