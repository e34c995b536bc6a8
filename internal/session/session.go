package session

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/leetsprint/internal/catalog"
)

// Session is the test-session state machine:
// Idle -> Active <-> AwaitingConfirmation -> Completed -> (Restart) Idle.
//
// A Session is single-owner and not safe for concurrent use; callers drive
// it from one event loop.
type Session struct {
	catalog *catalog.Catalog
	cfg     Config
	rng     *rand.Rand
	d       data

	listeners    map[int]func(solved int)
	nextListener int
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// New creates an idle session drawing from cat.
func New(cat *catalog.Catalog, cfg Config, opts ...Option) *Session {
	s := &Session{
		catalog:   cat,
		cfg:       cfg,
		listeners: make(map[int]func(int)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.d = s.fresh()
	return s
}

func (s *Session) fresh() data {
	return data{
		id:            uuid.NewString(),
		timeRemaining: s.cfg.BudgetSeconds(),
	}
}

// Config returns the constants the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Subscribe registers fn to be called with the solved count whenever it
// changes. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(solved int)) (unsubscribe func()) {
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Session) notify(before int) {
	after := s.d.solved()
	if after == before {
		return
	}
	for _, fn := range s.listeners {
		fn(after)
	}
}

// StartSelection draws the problem set and locks selection for the rest of
// the session. It returns false, changing nothing, when selection is
// unavailable.
func (s *Session) StartSelection() bool {
	if s.d.selectionLocked {
		return false
	}

	problems := Sample(s.catalog, s.cfg.SampleSizes, s.rng)
	selected := make([]SelectedProblem, len(problems))
	for i, p := range problems {
		selected[i] = SelectedProblem{Problem: p}
	}

	s.d.selected = selected
	s.d.selectionLocked = true
	s.d.awaiting = false
	return true
}

// ToggleCompletion flips the completed flag of the problem at index.
// Out-of-range indexes and completed sessions are ignored and return false.
func (s *Session) ToggleCompletion(index int) bool {
	if s.d.completed || index < 0 || index >= len(s.d.selected) {
		return false
	}

	before := s.d.solved()
	s.d.selected[index].Completed = !s.d.selected[index].Completed
	s.d.awaiting = s.d.allCompleted()
	s.notify(before)
	return true
}

// Tick advances the countdown by one second. It only has an effect while
// the session is running. Reaching zero completes the session even if some
// problems are still open.
func (s *Session) Tick() bool {
	if !s.d.state().Running() {
		return false
	}

	if s.d.timeRemaining > 0 {
		s.d.timeRemaining--
	}
	if s.d.timeRemaining <= 0 {
		s.d.timeRemaining = 0
		s.complete(OutcomeTimeExpired)
	}
	return true
}

// Finish ends a running session immediately.
func (s *Session) Finish() bool {
	if !s.d.state().Running() {
		return false
	}
	s.complete(OutcomeFinished)
	return true
}

// ConfirmFinish resolves the all-completed prompt. Accepting completes the
// session; declining dismisses the prompt and keeps the timer running.
func (s *Session) ConfirmFinish(accept bool) bool {
	if s.d.state() != StateAwaitingConfirmation {
		return false
	}
	if accept {
		s.complete(OutcomeConfirmed)
	} else {
		s.d.awaiting = false
	}
	return true
}

func (s *Session) complete(o Outcome) {
	s.d.completed = true
	s.d.awaiting = false
	s.d.outcome = o
}

// Restart discards the current session and returns to Idle with a new ID.
func (s *Session) Restart() {
	before := s.d.solved()
	s.d = s.fresh()
	s.notify(before)
}

// Score returns the points earned for the current selection.
func (s *Session) Score() Score {
	return ComputeScore(s.d.selected, s.cfg.PointsByNumber)
}

// State returns the current phase.
func (s *Session) State() State {
	return s.d.state()
}

// ID identifies the current session instance. It changes on Restart.
func (s *Session) ID() string {
	return s.d.id
}

// Selected returns a copy of the selected problems in display order.
func (s *Session) Selected() []SelectedProblem {
	out := make([]SelectedProblem, len(s.d.selected))
	copy(out, s.d.selected)
	return out
}

// TimeRemaining returns the seconds left on the countdown.
func (s *Session) TimeRemaining() int {
	return s.d.timeRemaining
}

// SelectionLocked reports whether StartSelection has already run.
func (s *Session) SelectionLocked() bool {
	return s.d.selectionLocked
}

// Completed reports whether the session has ended.
func (s *Session) Completed() bool {
	return s.d.completed
}

// AwaitingConfirmation reports whether the finish prompt is showing.
func (s *Session) AwaitingConfirmation() bool {
	return s.d.awaiting && !s.d.completed
}

// Outcome reports how the session ended, or OutcomeNone.
func (s *Session) Outcome() Outcome {
	return s.d.outcome
}

// SolvedCount returns the number of selected problems marked completed.
func (s *Session) SolvedCount() int {
	return s.d.solved()
}

// Snapshot returns a copy of the whole aggregate.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:                   s.d.id,
		Selected:             s.Selected(),
		TimeRemaining:        s.d.timeRemaining,
		SelectionLocked:      s.d.selectionLocked,
		Completed:            s.d.completed,
		AwaitingConfirmation: s.AwaitingConfirmation(),
		Outcome:              s.d.outcome,
	}
}
