package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed builtin.json
var builtinJSON []byte

// entry is one problem as stored in a catalog file. The difficulty comes
// from the bucket it sits in.
type entry struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Number int    `json:"number"`
}

type document struct {
	Easy   []entry `json:"easy"`
	Medium []entry `json:"medium"`
	Hard   []entry `json:"hard"`
}

// Parse validates and decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var problems []Problem
	add := func(d Difficulty, entries []entry) {
		for _, e := range entries {
			problems = append(problems, Problem{
				Number:     e.Number,
				Title:      e.Title,
				Link:       e.Link,
				Difficulty: d,
			})
		}
	}
	add(Easy, doc.Easy)
	add(Medium, doc.Medium)
	add(Hard, doc.Hard)

	return New(problems)
}

// LoadFile reads and parses the catalog file at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	cat, err := Parse(builtinJSON)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return cat
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}
