package core

// Point is a continuous position in normalized map space, x and y in [0, 1].
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Scale multiplies both components by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Point3 is a position in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Coord is a discrete cell address inside a grid.
type Coord struct {
	X, Y int
}
