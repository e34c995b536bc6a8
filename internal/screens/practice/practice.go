package practice

import (
	"log/slog"
	"strconv"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/leetsprint/internal/router"
	"github.com/abhisek/leetsprint/internal/screen"
	"github.com/abhisek/leetsprint/internal/screens/summary"
	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/ui/components"
	"github.com/abhisek/leetsprint/internal/ui/layout"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// PracticeScreen drives one session: selection, the countdown, checking
// problems off and the finish prompt.
type PracticeScreen struct {
	sess    *session.Session
	log     *slog.Logger
	palette theme.Palette

	timer timer

	selecting   bool
	selectToken int
	spinner     spinner.Model
	selectBtn   components.Button

	// cursor is the highlighted problem row.
	cursor int

	notice string

	solved      int
	solvedDirty bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen for sess. A nil logger discards.
func New(sess *session.Session, log *slog.Logger, p theme.Palette) *PracticeScreen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &PracticeScreen{
		sess:    sess,
		log:     log,
		palette: p,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		solved:  sess.SolvedCount(),
	}
	s.selectBtn = components.NewButton("Select problems", "s", true, s.requestSelection)
	sess.Subscribe(func(n int) {
		s.solved = n
		s.solvedDirty = true
	})
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// Session exposes the underlying session, mainly for tests and the app.
func (s *PracticeScreen) Session() *session.Session {
	return s.sess
}

// Palette returns the colours the screen renders with.
func (s *PracticeScreen) Palette() theme.Palette {
	return s.palette
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.sess.State() {
	case session.StateIdle:
		if s.selecting {
			return []layout.KeyHint{
				{Key: "R", Description: "Restart"},
				{Key: "T", Description: "Theme"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "S", Description: "Select problems"},
			{Key: "T", Description: "Theme"},
			{Key: "P", Description: "Level"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StateAwaitingConfirmation:
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish test"},
			{Key: "N", Description: "Keep going"},
		}
	case session.StateCompleted:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "T", Description: "Theme"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-9", Description: "Toggle solved"},
		{Key: "F", Description: "Finish"},
		{Key: "R", Description: "Restart"},
		{Key: "P", Description: "Level"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case screen.PaletteMsg:
		s.palette = msg.Palette
		return s, nil

	case timerTickMsg:
		cmd = s.handleTimerTick(msg)

	case selectionReadyMsg:
		cmd = s.handleSelectionReady(msg)

	case spinner.TickMsg:
		if !s.selecting {
			return s, nil
		}
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case summary.RestartMsg:
		cmd = s.restart()

	case tea.KeyMsg:
		cmd = s.handleKey(msg)
	}

	return s, tea.Batch(cmd, s.flushSolved())
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if s.sess.AwaitingConfirmation() {
		switch key {
		case "y", "Y", "enter":
			s.sess.ConfirmFinish(true)
			return s.onCompleted()
		case "n", "N", "esc":
			s.sess.ConfirmFinish(false)
			s.notice = "Keep going. The clock is still running."
		}
		return nil
	}

	switch key {
	case "s":
		_, cmd := s.selectBtn.Update(msg)
		return cmd
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return nil
	case "down", "j":
		if s.cursor < len(s.sess.Selected())-1 {
			s.cursor++
		}
		return nil
	case "space", "x":
		s.toggle(s.cursor)
		return nil
	case "f", "F":
		if s.sess.Finish() {
			return s.onCompleted()
		}
		return nil
	case "r", "R":
		return s.restart()
	}

	// Digits are shortcuts for the first nine rows.
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		s.toggle(n - 1)
	}
	return nil
}

func (s *PracticeScreen) toggle(index int) {
	if s.sess.ToggleCompletion(index) {
		s.cursor = index
		s.notice = ""
	}
}

// requestSelection starts the simulated delay before drawing the sample.
func (s *PracticeScreen) requestSelection() tea.Cmd {
	if s.selecting {
		return nil
	}
	if s.sess.SelectionLocked() {
		s.notice = "Selection unavailable: problems already selected for this session."
		s.log.Debug("selection rejected", "session_id", s.sess.ID())
		return nil
	}

	s.selecting = true
	s.selectToken++
	s.notice = ""

	ready := selectionReadyMsg{SessionID: s.sess.ID(), Token: s.selectToken}
	delay := s.sess.Config().SelectionDelay
	if delay <= 0 {
		return func() tea.Msg { return ready }
	}
	return tea.Batch(
		s.spinner.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return ready }),
	)
}

func (s *PracticeScreen) handleSelectionReady(msg selectionReadyMsg) tea.Cmd {
	if !s.selecting || msg.Token != s.selectToken || msg.SessionID != s.sess.ID() {
		return nil
	}
	s.selecting = false

	if !s.sess.StartSelection() {
		s.notice = "Selection unavailable: problems already selected for this session."
		return nil
	}

	selected := s.sess.Selected()
	s.log.Info("session started",
		"session_id", s.sess.ID(),
		"problems", len(selected),
		"budget", s.sess.Config().Budget.String())

	if len(selected) == 0 {
		s.notice = "The catalog has no problems to draw."
		return nil
	}
	return s.timer.start(s.sess.ID())
}

func (s *PracticeScreen) handleTimerTick(msg timerTickMsg) tea.Cmd {
	if !s.timer.live(msg, s.sess.ID()) {
		return nil
	}
	s.sess.Tick()
	if s.sess.Completed() {
		return s.onCompleted()
	}
	if !s.sess.State().Running() {
		s.timer.stop()
		return nil
	}
	return s.timer.next(s.sess.ID())
}

// onCompleted stops the clock, logs the result and shows the summary.
func (s *PracticeScreen) onCompleted() tea.Cmd {
	s.timer.stop()
	s.notice = ""

	snap := s.sess.Snapshot()
	score := s.sess.Score()
	s.log.Info("session finished",
		"session_id", snap.ID,
		"outcome", snap.Outcome.String(),
		"solved", s.sess.SolvedCount(),
		"score", score.Earned,
		"possible", score.Possible,
		"time_remaining", snap.TimeRemaining)

	next := summary.New(snap, score, s.palette)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *PracticeScreen) restart() tea.Cmd {
	prev := s.sess.ID()
	s.timer.stop()
	s.selecting = false
	s.notice = ""
	s.cursor = 0
	s.sess.Restart()
	s.log.Info("session restarted", "previous_id", prev, "session_id", s.sess.ID())
	return nil
}

// flushSolved turns a pending solved-count notification into a message
// for the app shell.
func (s *PracticeScreen) flushSolved() tea.Cmd {
	if !s.solvedDirty {
		return nil
	}
	s.solvedDirty = false
	n := s.solved
	return func() tea.Msg { return SolvedChangedMsg{Solved: n} }
}
