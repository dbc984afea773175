package world

import (
	"math"

	"planetgen/internal/core"
)

// WiderDist measures distance with the x component doubled; the projection
// squeezes horizontal distances relative to vertical ones.
func WiderDist(a, b core.Point) float64 {
	x := (a.X - b.X) * 2
	y := a.Y - b.Y
	return math.Sqrt(x*x + y*y)
}

// RoughlyBetween reports whether b lies on the segment from a to c under the
// wider metric. The tolerance widens near the endpoints.
func RoughlyBetween(a, b, c core.Point) bool {
	ab := WiderDist(a, b)
	bc := WiderDist(b, c)
	near := math.Max(math.Min(ab, bc), 1e-7)
	return ab+bc <= WiderDist(a, c)+1e-6/(near*near)
}
