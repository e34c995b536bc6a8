// Package shell holds the cross-cutting display state that sits around a
// practice session: theme, level and the progress modal. Nothing here
// feeds back into session logic.
package shell

import (
	"github.com/abhisek/leetsprint/internal/levels"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// Shell is the presentation state owned by the root model.
type Shell struct {
	mode      theme.Mode
	solved    int
	maxLevel  int
	modalOpen bool
}

// New creates a Shell in dark mode. maxLevel is clamped to the level table.
func New(maxLevel int) *Shell {
	return &Shell{
		mode:     theme.Dark,
		maxLevel: levels.Clamp(maxLevel, levels.MaxLevel),
	}
}

// ToggleTheme flips between dark and light and returns the new mode.
func (s *Shell) ToggleTheme() theme.Mode {
	s.mode = s.mode.Toggle()
	return s.mode
}

// SetTheme forces a mode.
func (s *Shell) SetTheme(m theme.Mode) {
	s.mode = m
}

// Theme returns the current mode.
func (s *Shell) Theme() theme.Mode {
	return s.mode
}

// Palette returns the colours for the current mode.
func (s *Shell) Palette() theme.Palette {
	return theme.For(s.mode)
}

// OnSolvedCountChanged records the number of completed problems reported
// by the session.
func (s *Shell) OnSolvedCountChanged(count int) {
	if count < 0 {
		count = 0
	}
	s.solved = count
}

// Solved returns the last reported solved count.
func (s *Shell) Solved() int {
	return s.solved
}

// Level is the solved count bounded by the max level.
func (s *Shell) Level() int {
	return levels.Clamp(s.solved, s.maxLevel)
}

// MaxLevel returns the highest reachable level.
func (s *Shell) MaxLevel() int {
	return s.maxLevel
}

func (s *Shell) OpenProgressModal() {
	s.modalOpen = true
}

func (s *Shell) CloseProgressModal() {
	s.modalOpen = false
}

// ModalOpen reports whether the progress modal is visible.
func (s *Shell) ModalOpen() bool {
	return s.modalOpen
}

// ModalContent returns the level row shown in the progress modal.
func (s *Shell) ModalContent() levels.Level {
	return levels.At(s.Level())
}
