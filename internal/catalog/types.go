package catalog

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of problem difficulty tags.
// The numeric value doubles as the display rank.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in rank order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Rank orders difficulties for display: Easy < Medium < Hard.
func (d Difficulty) Rank() int {
	return int(d)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty parses a case-insensitive difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("invalid difficulty %q: must be easy, medium or hard", s)
}

// Problem is a read-only catalog entry.
type Problem struct {
	Number     int
	Title      string
	Link       string
	Difficulty Difficulty
}

// Label returns the "number. title" form shown in lists.
func (p Problem) Label() string {
	return fmt.Sprintf("%d. %s", p.Number, p.Title)
}
