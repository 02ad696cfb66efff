// Package pattern provides a global registry of seed patterns for the
// Life grid. Patterns register themselves in init() functions, allowing
// the CLI and TUI to discover them without hardcoded lists.
package pattern

import (
	"fmt"
	"sort"
	"sync"
)

// Cell is a pattern coordinate relative to the pattern's top-left corner.
type Cell struct {
	X, Y int
}

// Pattern describes a named arrangement of live cells.
type Pattern struct {
	ID    string // Stable identifier (e.g. "glider"), used on the CLI
	Name  string // Human-readable name for display
	Cells []Cell // Live cells, relative coordinates
}

// Width returns the bounding-box width of the pattern.
func (p Pattern) Width() int {
	w := 0
	for _, c := range p.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
	}
	return w
}

// Height returns the bounding-box height of the pattern.
func (p Pattern) Height() int {
	h := 0
	for _, c := range p.Cells {
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return h
}

// CellSetter is the write surface a pattern can be stamped onto.
// The Life engine satisfies it; out-of-bounds writes are its concern.
type CellSetter interface {
	Set(x, y int, alive bool)
}

// Stamp writes the pattern onto dst with its top-left corner at (x, y).
// Cells that land outside dst's grid follow dst's out-of-bounds policy
// (the engine silently ignores them).
func Stamp(dst CellSetter, p Pattern, x, y int) {
	for _, c := range p.Cells {
		dst.Set(x+c.X, y+c.Y, true)
	}
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Register adds a pattern to the registry.
// Panics if a pattern with the same ID is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[p.ID]; exists {
		panic(fmt.Sprintf("pattern: %q already registered", p.ID))
	}
	patterns[p.ID] = p
}

// List returns all registered patterns, sorted by ID.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the pattern with the given ID.
func Get(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[id]
	if !ok {
		return Pattern{}, fmt.Errorf("pattern: unknown pattern %q", id)
	}
	return p, nil
}

// Exists checks whether a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}
