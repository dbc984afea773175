package core

import "fmt"

// Grid stores a dense 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions, filling every cell with f(x, y).
func NewGrid[T any](w, h int, f func(x, y int) T) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid[T]{W: w, H: h, data: make([]T, w*h)}
	if f == nil {
		return g
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.data[g.Index(x, y)] = f(x, y)
		}
	}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at (x, y). It panics when out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	return g.data[g.Index(x, y)]
}

// Lookup returns the value at (x, y) and whether it exists.
func (g *Grid[T]) Lookup(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[g.Index(x, y)], true
}

// Set stores v at (x, y). It panics when out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	g.data[g.Index(x, y)] = v
}

// Each visits every cell in row-major order.
func (g *Grid[T]) Each(fn func(c Coord, v T)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fn(Coord{X: x, Y: y}, g.data[g.Index(x, y)])
		}
	}
}

// GridBuilder accumulates values in row-major order and checks the final
// count against the declared dimensions.
type GridBuilder[T any] struct {
	data []T
}

// NewGridBuilder returns a builder with room for capacity values.
func NewGridBuilder[T any](capacity int) *GridBuilder[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &GridBuilder[T]{data: make([]T, 0, capacity)}
}

// Append adds the next value in row-major order.
func (b *GridBuilder[T]) Append(v T) {
	b.data = append(b.data, v)
}

// Len reports how many values have been appended.
func (b *GridBuilder[T]) Len() int { return len(b.data) }

// Finalize hands the accumulated values over to a w x h grid.
func (b *GridBuilder[T]) Finalize(w, h int) (*Grid[T], error) {
	if w < 0 || h < 0 || w*h != len(b.data) {
		return nil, fmt.Errorf("grid: builder holds %d values, %dx%d requires %d", len(b.data), w, h, w*h)
	}
	g := &Grid[T]{W: w, H: h, data: b.data}
	b.data = nil
	return g, nil
}
