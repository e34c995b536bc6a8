package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateNumber is returned when two entries share a problem number.
var ErrDuplicateNumber = errors.New("duplicate problem number")

// Catalog is an immutable collection of problems grouped by difficulty.
type Catalog struct {
	buckets map[Difficulty][]Problem
}

// New builds a Catalog from problems. Input order is preserved within
// each difficulty bucket.
func New(problems []Problem) (*Catalog, error) {
	seen := make(map[int]bool, len(problems))
	buckets := make(map[Difficulty][]Problem, len(Difficulties))

	for _, p := range problems {
		if !p.Difficulty.Valid() {
			return nil, fmt.Errorf("problem %d: unknown difficulty %d", p.Number, int(p.Difficulty))
		}
		if seen[p.Number] {
			return nil, fmt.Errorf("problem %d: %w", p.Number, ErrDuplicateNumber)
		}
		seen[p.Number] = true
		buckets[p.Difficulty] = append(buckets[p.Difficulty], p)
	}

	return &Catalog{buckets: buckets}, nil
}

// Bucket returns a copy of the problems tagged with d.
func (c *Catalog) Bucket(d Difficulty) []Problem {
	src := c.buckets[d]
	out := make([]Problem, len(src))
	copy(out, src)
	return out
}

// Count returns the number of problems tagged with d.
func (c *Catalog) Count(d Difficulty) int {
	return len(c.buckets[d])
}

// Len returns the total number of problems.
func (c *Catalog) Len() int {
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// All returns every problem ordered by difficulty rank.
func (c *Catalog) All() []Problem {
	out := make([]Problem, 0, c.Len())
	for _, d := range Difficulties {
		out = append(out, c.buckets[d]...)
	}
	return out
}
