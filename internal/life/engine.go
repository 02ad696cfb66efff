// Package life implements Conway's Game of Life on a fixed-size,
// non-wrapping grid. It contains pure simulation logic with no external
// dependencies (especially no Bubble Tea) so it stays testable in isolation.
package life

import (
	"errors"
	"math/rand"
)

// ErrInvalidDimension is returned by New when either grid dimension is
// not a positive integer.
var ErrInvalidDimension = errors.New("life: grid dimensions must be positive")

// Engine owns the grid state and advances it one generation at a time.
//
// The grid is stored as two flat row-major buffers (index = y*width + x).
// Step reads exclusively from the current buffer and writes exclusively to
// the scratch buffer, then swaps them, so no cell's update can observe
// another cell's already-updated state within the same generation.
//
// Engine is not safe for concurrent use; a single owner must serialize
// calls. None of the operations block or spawn goroutines.
type Engine struct {
	width  int
	height int
	cur    []bool
	next   []bool

	generation uint64
}

// New creates an engine with the given dimensions and an all-dead grid.
func New(width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Engine{
		width:  width,
		height: height,
		cur:    make([]bool, width*height),
		next:   make([]bool, width*height),
	}, nil
}

// Width returns the grid width. Dimensions never change after construction.
func (e *Engine) Width() int { return e.width }

// Height returns the grid height.
func (e *Engine) Height() int { return e.height }

// Generation returns the number of generations advanced since construction
// or the last Clear.
func (e *Engine) Generation() uint64 { return e.generation }

// inBounds reports whether (x, y) addresses a cell on the grid.
func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// Alive returns the state of the cell at (x, y).
// Out-of-bounds coordinates read as dead.
func (e *Engine) Alive(x, y int) bool {
	if !e.inBounds(x, y) {
		return false
	}
	return e.cur[y*e.width+x]
}

// Toggle flips the cell at (x, y) between alive and dead.
// Out-of-bounds coordinates are silently ignored: toggle requests arrive
// from pointer input, and clicks just past the grid edge are harmless.
func (e *Engine) Toggle(x, y int) {
	if !e.inBounds(x, y) {
		return
	}
	e.cur[y*e.width+x] = !e.cur[y*e.width+x]
}

// Set writes the cell at (x, y). Out-of-bounds coordinates are silently
// ignored, matching Toggle.
func (e *Engine) Set(x, y int, alive bool) {
	if !e.inBounds(x, y) {
		return
	}
	e.cur[y*e.width+x] = alive
}

// Neighbors counts the live cells in the Moore neighborhood of (x, y).
// Neighbors beyond the grid boundary are permanently dead; edge cells
// therefore see fewer effective neighbors than interior cells. The result
// is always in [0, 8]. (x, y) itself must be in bounds.
func (e *Engine) Neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if e.inBounds(nx, ny) && e.cur[ny*e.width+nx] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation under Conway's rules:
// a live cell survives with 2 or 3 live neighbors, a dead cell comes
// alive with exactly 3, everything else dies or stays dead.
//
// Every cell is evaluated against the previous generation before any
// result becomes visible; the buffers are swapped only after the full pass.
func (e *Engine) Step() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			n := e.Neighbors(x, y)
			idx := y*e.width + x
			if e.cur[idx] {
				e.next[idx] = n == 2 || n == 3
			} else {
				e.next[idx] = n == 3
			}
		}
	}
	e.cur, e.next = e.next, e.cur
	e.generation++
}

// Clear kills every cell and resets the generation counter.
// Dimensions are unchanged.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = false
	}
	e.generation = 0
}

// Randomize seeds the grid with a random soup, each cell alive with the
// given probability. Density is clamped to [0, 1].
func (e *Engine) Randomize(rng *rand.Rand, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range e.cur {
		e.cur[i] = rng.Float64() < density
	}
	e.generation = 0
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	count := 0
	for _, alive := range e.cur {
		if alive {
			count++
		}
	}
	return count
}

// Snapshot returns a row-major copy of the current grid. Callers get no
// reference capable of mutating engine state.
func (e *Engine) Snapshot() []bool {
	out := make([]bool, len(e.cur))
	copy(out, e.cur)
	return out
}
