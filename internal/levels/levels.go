// Package levels holds the display-only progression table unlocked by
// solving problems.
package levels

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// MaxLevel is the highest level in the table.
const MaxLevel = 6

// Badge is the colour scheme of the "Solved" badge at a level.
type Badge struct {
	Foreground color.Color
	Background color.Color
	Border     color.Color // nil for no border
}

// Level is one row of the progression table.
type Level struct {
	Index    int
	Title    string
	Achieved string
	Quote    string
	Badge    Badge
}

var (
	white = lipgloss.Color("#FFFFFF")
	black = lipgloss.Color("#000000")
)

var table = [MaxLevel + 1]Level{
	{
		Index:    0,
		Title:    "Base",
		Achieved: "Goku's natural state, where all his potential quietly resides.",
		Quote:    "The greatest battles of life are fought in the silent chambers of your soul. Before you can transform your body, you must first transform your mind.",
		Badge:    Badge{Foreground: white, Background: lipgloss.Color("#6B7280")},
	},
	{
		Index:    1,
		Title:    "Super Saiyan",
		Achieved: "Goku first transformed after witnessing tragedy and feeling intense emotion.",
		Quote:    "Your pain today will be your strength tomorrow. What breaks you now is forging the warrior you're destined to become.",
		Badge:    Badge{Foreground: black, Background: lipgloss.Color("#FACC15")},
	},
	{
		Index:    2,
		Title:    "Super Saiyan 2",
		Achieved: "Through relentless training and battles, Goku pushed beyond his limits.",
		Quote:    "When you think you've reached your limit, you've only reached the threshold of your previous thinking. The real journey begins at the edge of your comfort zone.",
		Badge:    Badge{Foreground: black, Background: lipgloss.Color("#EAB308")},
	},
	{
		Index:    3,
		Title:    "Super Saiyan 3",
		Achieved: "In moments of desperation and overwhelming power, Goku unlocked a higher form.",
		Quote:    "It's in your darkest hour, when every fiber of your being screams to surrender, that your true transformation awaits. Push one second longer than you think possible.",
		Badge:    Badge{Foreground: white, Background: lipgloss.Color("#F97316")},
	},
	{
		Index:    4,
		Title:    "Super Saiyan God",
		Achieved: "By gathering the energy of pure-hearted Saiyans, Goku reached divine power.",
		Quote:    "You were born with greatness encoded in your DNA. Your ancestors survived everything life threw at them so you could be here. Their strength flows through your veins. Honor their sacrifice.",
		Badge:    Badge{Foreground: white, Background: lipgloss.Color("#EF4444")},
	},
	{
		Index:    5,
		Title:    "Super Saiyan Blue",
		Achieved: "Merging the power of a god with his own, Goku attained a calm yet formidable force.",
		Quote:    "Discipline is choosing between what you want now and what you want most. Your future self is watching you right now through memories. Make those memories worth reliving.",
		Badge:    Badge{Foreground: white, Background: lipgloss.Color("#3B82F6")},
	},
	{
		Index:    6,
		Title:    "Ultra Instinct",
		Achieved: "After endless trials and transcending mortal limits, Goku tapped into instinctual mastery.",
		Quote:    "At the end of your life, your regrets won't come from the things you tried and failed. They'll come from the dreams you left to wither while you made excuses. Stop thinking. Start becoming.",
		Badge:    Badge{Foreground: black, Background: white, Border: lipgloss.Color("#3B82F6")},
	},
}

// At returns the level at i, clamped to [0, MaxLevel].
func At(i int) Level {
	return table[Clamp(i, MaxLevel)]
}

// All returns the whole table.
func All() []Level {
	out := make([]Level, len(table))
	copy(out, table[:])
	return out
}

// Clamp bounds n to [0, hi].
func Clamp(n, hi int) int {
	if n < 0 {
		return 0
	}
	if n > hi {
		return hi
	}
	return n
}

// BadgeStyle renders the badge scheme as a lipgloss style.
func (l Level) BadgeStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(l.Badge.Foreground).
		Background(l.Badge.Background).
		Bold(true).
		Padding(0, 1)
	if l.Badge.Border != nil {
		s = s.Border(lipgloss.NormalBorder()).BorderForeground(l.Badge.Border)
	}
	return s
}
