package session

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abhisek/leetsprint/internal/catalog"
)

// Config holds the session constants. DefaultConfig matches the classic
// widget; every field may be overridden.
type Config struct {
	// SampleSizes is the number of problems drawn per difficulty.
	SampleSizes map[catalog.Difficulty]int

	// Budget is the countdown length. Must be a whole number of seconds.
	Budget time.Duration

	// PointsByNumber maps a problem's catalog number to its points.
	// Numbers not in the map are worth nothing.
	PointsByNumber map[int]int

	// SelectionDelay is the pause between requesting a selection and
	// the sample being drawn.
	SelectionDelay time.Duration
}

// Default session constants.
const (
	DefaultEasyCount      = 2
	DefaultMediumCount    = 2
	DefaultHardCount      = 1
	DefaultBudget         = 60 * time.Minute
	DefaultSelectionDelay = 600 * time.Millisecond
)

// DefaultPointsByNumber keys points on the catalog number, not on
// difficulty or position. Only problems 1, 2 and 3 score anything.
// Suspect, but kept as-is for compatibility with the classic widget.
func DefaultPointsByNumber() map[int]int {
	return map[int]int{1: 1, 2: 3, 3: 5}
}

// DefaultConfig returns a Config with the default constants.
func DefaultConfig() Config {
	return Config{
		SampleSizes: map[catalog.Difficulty]int{
			catalog.Easy:   DefaultEasyCount,
			catalog.Medium: DefaultMediumCount,
			catalog.Hard:   DefaultHardCount,
		},
		Budget:         DefaultBudget,
		PointsByNumber: DefaultPointsByNumber(),
		SelectionDelay: DefaultSelectionDelay,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	counts := []struct {
		env string
		d   catalog.Difficulty
	}{
		{"LEETSPRINT_EASY", catalog.Easy},
		{"LEETSPRINT_MEDIUM", catalog.Medium},
		{"LEETSPRINT_HARD", catalog.Hard},
	}
	for _, c := range counts {
		v := os.Getenv(c.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", c.env, v, err)
		}
		cfg.SampleSizes[c.d] = n
	}

	if v := os.Getenv("LEETSPRINT_BUDGET"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("LEETSPRINT_BUDGET=%q: %w", v, err)
		}
		cfg.Budget = d
	}

	if v := os.Getenv("LEETSPRINT_SELECTION_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("LEETSPRINT_SELECTION_DELAY=%q: %w", v, err)
		}
		cfg.SelectionDelay = d
	}

	return cfg, nil
}

// Validate checks that the constants describe a usable session.
func (c Config) Validate() error {
	for d, n := range c.SampleSizes {
		if !d.Valid() {
			return fmt.Errorf("sample size for unknown difficulty %d", int(d))
		}
		if n < 0 {
			return fmt.Errorf("sample size for %s is negative: %d", d, n)
		}
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %s", c.Budget)
	}
	if c.Budget%time.Second != 0 {
		return fmt.Errorf("budget must be a whole number of seconds, got %s", c.Budget)
	}
	if c.SelectionDelay < 0 {
		return fmt.Errorf("selection delay must not be negative, got %s", c.SelectionDelay)
	}
	return nil
}

// BudgetSeconds returns the countdown length in seconds.
func (c Config) BudgetSeconds() int {
	return int(c.Budget / time.Second)
}

// TotalProblems is the configured sample size across all difficulties.
func (c Config) TotalProblems() int {
	total := 0
	for _, n := range c.SampleSizes {
		if n > 0 {
			total += n
		}
	}
	return total
}
