package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/leetsprint/internal/session"
	"github.com/abhisek/leetsprint/internal/ui/components"
	"github.com/abhisek/leetsprint/internal/ui/layout"
)

func (s *PracticeScreen) View(width, height int) string {
	p := s.palette
	cw := components.ContentWidth(width)

	sections := []string{s.renderStatus(cw)}

	switch {
	case s.sess.State() == session.StateIdle && s.selecting:
		sections = append(sections, components.Card(p,
			s.spinner.View()+" "+p.Body().Render("Picking your problems..."), cw))

	case s.sess.State() == session.StateIdle:
		intro := p.Body().Render(fmt.Sprintf(
			"%d problems, %s on the clock. One selection per session.",
			s.sess.Config().TotalProblems(),
			FormatClock(s.sess.Config().BudgetSeconds())))
		btn := s.selectBtn
		btn.Active = !s.sess.SelectionLocked()
		sections = append(sections, components.Card(p, intro+"\n\n"+btn.View(p), cw))

	default:
		sections = append(sections, components.Card(p, s.renderProblems(cw, !layout.IsCompactWidth(width)), cw))
	}

	if s.sess.AwaitingConfirmation() {
		prompt := p.Good().Render("All problems checked off!") + "\n" +
			p.Body().Render("Finish the test now?  [y] yes   [n] keep going")
		sections = append(sections, components.Card(p, prompt, cw))
	}

	if s.sess.Completed() {
		sections = append(sections, p.Title().Render("Your test is completed!")+"  "+
			p.Hint().Render("press r to start again"))
	}

	if s.notice != "" {
		sections = append(sections, p.Hint().Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

// renderStatus shows the countdown, a time bar and the running score.
func (s *PracticeScreen) renderStatus(cw int) string {
	p := s.palette
	remaining := s.sess.TimeRemaining()
	total := s.sess.Config().BudgetSeconds()

	clockStyle := p.Title()
	if remaining <= 5*60 && s.sess.State().Running() {
		clockStyle = p.Bad()
	}
	clock := clockStyle.Render("⏱ " + FormatClock(remaining))

	score := s.sess.Score()
	scoreStr := p.Dim().Render(fmt.Sprintf("Score %d/%d", score.Earned, score.Possible))

	gap := cw - lipgloss.Width(clock) - lipgloss.Width(scoreStr)
	if gap < 1 {
		gap = 1
	}
	line := clock + strings.Repeat(" ", gap) + scoreStr

	frac := 0.0
	if total > 0 {
		frac = float64(remaining) / float64(total)
	}
	bar := components.NewProgressBar("", frac, false, cw)
	if frac < 0.1 {
		bar.Fill = p.Error
	}

	return line + "\n" + bar.View(p)
}

// renderProblems lists the selection. Links are left out on narrow
// terminals.
func (s *PracticeScreen) renderProblems(cw int, withLinks bool) string {
	selected := s.sess.Selected()
	if len(selected) == 0 {
		return s.palette.Dim().Render("No problems were drawn.")
	}

	items := make([]components.ChecklistItem, len(selected))
	for i, sp := range selected {
		items[i] = components.ChecklistItem{
			Label: sp.Label(),
			Tag:   sp.Difficulty.String(),
			Done:  sp.Completed,
		}
		if withLinks {
			items[i].Link = sp.Link
		}
	}
	list := components.Checklist{Items: items, Cursor: s.cursor, Disabled: s.sess.Completed()}
	return list.View(s.palette, cw-6)
}
