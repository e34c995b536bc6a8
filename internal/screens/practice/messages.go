package practice

// timerTickMsg is sent every second while the countdown runs. Ticks from
// a stopped timer or a previous session are dropped.
type timerTickMsg struct {
	SessionID string
	Gen       int
}

// selectionReadyMsg is sent when the simulated selection delay elapses.
type selectionReadyMsg struct {
	SessionID string
	Token     int
}

// SolvedChangedMsg reports a new solved count to the app shell.
type SolvedChangedMsg struct {
	Solved int
}
