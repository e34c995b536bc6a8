package session

import "github.com/abhisek/leetsprint/internal/catalog"

// State is the phase of a session.
type State int

const (
	StateIdle                 State = iota // No selection yet
	StateActive                            // Selection made, timer running
	StateAwaitingConfirmation              // All problems done, finish prompt showing, timer running
	StateCompleted                         // Terminal until Restart
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Running reports whether the countdown should be ticking in this state.
func (s State) Running() bool {
	return s == StateActive || s == StateAwaitingConfirmation
}

// Outcome records how a session reached StateCompleted.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeTimeExpired         // Countdown hit zero
	OutcomeFinished            // User ended the session early
	OutcomeConfirmed           // User accepted the all-done prompt
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTimeExpired:
		return "time-expired"
	case OutcomeFinished:
		return "finished"
	case OutcomeConfirmed:
		return "confirmed"
	}
	return "none"
}

// SelectedProblem is a catalog problem drawn into a session.
type SelectedProblem struct {
	catalog.Problem
	Completed bool
}

// Snapshot is a value copy of the session aggregate, safe to hold onto
// for rendering.
type Snapshot struct {
	ID                   string
	Selected             []SelectedProblem
	TimeRemaining        int // seconds
	SelectionLocked      bool
	Completed            bool
	AwaitingConfirmation bool
	Outcome              Outcome
}

// data is the mutable aggregate. Restart replaces it in one assignment.
type data struct {
	id              string
	selected        []SelectedProblem
	timeRemaining   int
	selectionLocked bool
	completed       bool
	awaiting        bool
	outcome         Outcome
}

func (d *data) state() State {
	switch {
	case d.completed:
		return StateCompleted
	case len(d.selected) == 0:
		return StateIdle
	case d.awaiting:
		return StateAwaitingConfirmation
	default:
		return StateActive
	}
}

func (d *data) solved() int {
	n := 0
	for _, p := range d.selected {
		if p.Completed {
			n++
		}
	}
	return n
}

func (d *data) allCompleted() bool {
	if len(d.selected) == 0 {
		return false
	}
	for _, p := range d.selected {
		if !p.Completed {
			return false
		}
	}
	return true
}
