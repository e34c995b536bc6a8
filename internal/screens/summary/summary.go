package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/router"
	"github.com/abhisek/leetsprint/internal/screen"
	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/ui/layout"
	"github.com/abhisek/leetsprint/internal/ui/theme"
)

// RestartMsg asks the practice screen underneath to start a new session.
type RestartMsg struct{}

// SummaryScreen displays a completed session.
type SummaryScreen struct {
	snap    session.Snapshot
	score   session.Score
	palette theme.Palette
	done    bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session.
func New(snap session.Snapshot, score session.Score, p theme.Palette) *SummaryScreen {
	return &SummaryScreen{snap: snap, score: score, palette: p}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Test Completed"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Restart"},
		{Key: "Esc", Description: "Review"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.PaletteMsg:
		s.palette = msg.Palette
		return s, nil

	case tea.KeyMsg:
		if s.done {
			return s, nil
		}
		switch msg.String() {
		case "enter", "r":
			s.done = true
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return RestartMsg{} },
			)
		case "esc":
			s.done = true
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Headline describes how the session ended.
func Headline(o session.Outcome) string {
	switch o {
	case session.OutcomeTimeExpired:
		return "Time's up!"
	case session.OutcomeConfirmed:
		return "All problems solved!"
	case session.OutcomeFinished:
		return "Finished early."
	}
	return ""
}

func (s *SummaryScreen) View(width, height int) string {
	p := s.palette
	var b strings.Builder

	center := func(st lipgloss.Style, text string) {
		b.WriteString(st.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	center(p.Title(), "Your test is completed!")
	center(p.Dim(), Headline(s.snap.Outcome))
	b.WriteString("\n")

	solved := 0
	for _, sp := range s.snap.Selected {
		if sp.Completed {
			solved++
		}
	}
	stats := fmt.Sprintf("Solved: %d/%d        Score: %d/%d (%d%%)        Time left: %02d:%02d",
		solved, len(s.snap.Selected),
		s.score.Earned, s.score.Possible, s.score.Percent,
		s.snap.TimeRemaining/60, s.snap.TimeRemaining%60)
	center(p.Body(), stats)
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(p.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, sp := range s.snap.Selected {
		mark := "✗"
		var c color.Color = p.Error
		if sp.Completed {
			mark = "✓"
			c = p.Success
		}
		line := fmt.Sprintf("%s  %s  (%s)", mark, sp.Label(), sp.Difficulty)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(c).Render(line)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
