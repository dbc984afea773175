package noise

import (
	"errors"
	"fmt"
	"math"

	"planetgen/internal/core"
)

// ZoomOvershoot stretches the range of a unit's second zoom beyond the upper
// bound so finer detail gets mixed in.
const ZoomOvershoot = 2.4

// ErrNoUnits is returned when a field is requested with no units.
var ErrNoUnits = errors.New("noise: field needs at least one unit")

// Unit multiplies two independent lookups at two zoom levels.
type Unit struct {
	A, B         Generator
	ZoomA, ZoomB float64
	Weight       float64
}

// Field is an immutable weighted sum of units. Unit weights sum to 1.
type Field struct {
	units []Unit
}

// Generate builds a field of n units whose first zooms are spread evenly
// across [zoom[0], zoom[1]].
func Generate(rng *core.RNG, pool *Pool, zoom [2]float64, n int) (*Field, error) {
	lo, hi := zoom[0], zoom[1]
	if lo > hi {
		return nil, fmt.Errorf("noise: zoom bounds [%g, %g] are inverted", lo, hi)
	}
	if n <= 0 {
		return nil, ErrNoUnits
	}
	units := make([]Unit, n)
	for i := range units {
		spread := 0.0
		if n > 1 {
			spread = float64(i) / float64(n-1)
		}
		units[i] = Unit{
			A:      pool.Pick(rng),
			B:      pool.Pick(rng),
			ZoomA:  lo + (hi-lo)*spread,
			ZoomB:  lo + rng.Float64()*(hi-lo)*ZoomOvershoot,
			Weight: 0.01 + rng.Float64(),
		}
	}
	normalize(units, 1)
	return &Field{units: units}, nil
}

// Agglomerate merges two fields, keeping each unit's relative weight.
func (f *Field) Agglomerate(other *Field) *Field {
	units := make([]Unit, 0, len(f.units)+len(other.units))
	units = append(units, f.units...)
	units = append(units, other.units...)
	normalize(units, 1)
	return &Field{units: units}
}

// AgglomerateScaled merges two fields after rescaling the weights of f to sum
// to a and those of other to sum to b, so other contributes b/(a+b) of the
// signal regardless of how many units it carries.
func (f *Field) AgglomerateScaled(other *Field, a, b float64) *Field {
	units := make([]Unit, 0, len(f.units)+len(other.units))
	units = append(units, f.units...)
	normalize(units, a)
	tail := append([]Unit(nil), other.units...)
	normalize(tail, b)
	units = append(units, tail...)
	normalize(units, 1)
	return &Field{units: units}
}

// Len reports the number of units.
func (f *Field) Len() int { return len(f.units) }

// Units returns a copy of the units.
func (f *Field) Units() []Unit { return append([]Unit(nil), f.units...) }

// Weights returns the unit weights in order.
func (f *Field) Weights() []float64 {
	out := make([]float64, len(f.units))
	for i, u := range f.units {
		out[i] = u.Weight
	}
	return out
}

// Sample evaluates the field at a 2D point. The result lies in (-1, 1).
func (f *Field) Sample(x, y float64) float64 {
	sum := 0.0
	for _, u := range f.units {
		a := u.A.Eval2(x*u.ZoomA, y*u.ZoomA)
		b := u.B.Eval2(x*u.ZoomB, y*u.ZoomB)
		sum += a * b * u.Weight
	}
	return f.squash(sum)
}

// Sample3D evaluates the field at a 3D point. The result lies in (-1, 1).
func (f *Field) Sample3D(p core.Point3) float64 {
	sum := 0.0
	for _, u := range f.units {
		a := u.A.Eval3(p.X*u.ZoomA, p.Y*u.ZoomA, p.Z*u.ZoomA)
		b := u.B.Eval3(p.X*u.ZoomB, p.Y*u.ZoomB, p.Z*u.ZoomB)
		sum += a * b * u.Weight
	}
	return f.squash(sum)
}

// squash keeps the sum inside (-1, 1) however many units were agglomerated.
func (f *Field) squash(sum float64) float64 {
	v := core.Sigmoid(sum, float64(len(f.units)))
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	if v <= -1 {
		return math.Nextafter(-1, 0)
	}
	return v
}

func normalize(units []Unit, target float64) {
	total := 0.0
	for _, u := range units {
		total += u.Weight
	}
	if total <= 0 {
		return
	}
	k := target / total
	for i := range units {
		units[i].Weight *= k
	}
}
