package practice

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// timer drives the one-second countdown. Every start or stop bumps the
// generation, so at most one tick chain is live at a time.
type timer struct {
	gen     int
	running bool
}

func (t *timer) start(sessionID string) tea.Cmd {
	t.gen++
	t.running = true
	return t.next(sessionID)
}

func (t *timer) stop() {
	t.gen++
	t.running = false
}

// next arms the following tick for the current generation.
func (t *timer) next(sessionID string) tea.Cmd {
	gen := t.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: sessionID, Gen: gen}
	})
}

// live reports whether msg belongs to the running tick chain of sessionID.
func (t *timer) live(msg timerTickMsg, sessionID string) bool {
	return t.running && msg.Gen == t.gen && msg.SessionID == sessionID
}

// FormatClock renders seconds as MM:SS. Negative input shows 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
