package session

import "math"

// Score is the points summary for a selection.
type Score struct {
	Earned   int
	Possible int
	Percent  int // Earned/Possible rounded to the nearest integer, 0 when Possible is 0
}

// ComputeScore totals the points of selected using points, which is keyed
// by catalog number.
func ComputeScore(selected []SelectedProblem, points map[int]int) Score {
	var s Score
	for _, p := range selected {
		v := points[p.Number]
		s.Possible += v
		if p.Completed {
			s.Earned += v
		}
	}
	if s.Possible > 0 {
		s.Percent = int(math.Round(float64(s.Earned) * 100 / float64(s.Possible)))
	}
	return s
}
