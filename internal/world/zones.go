package world

import (
	"fmt"

	"planetgen/internal/core"
)

const (
	// ZoneBudget is the starting value of the rejection-sampling budget.
	ZoneBudget = 500

	zoneMargin      = 0.05
	zoneMinSamples  = 3
	zoneSampleRange = 3
	zoneStepPerSize = 0.12
	zoneMinWalkable = 5

	zoneInnerShrink = 0.05

	penaltyOutOfBounds = 1
	penaltyOverlap     = 7
	penaltyUnwalkable  = 2
)

// ZoneSample is one cell of a zone's sample grid.
type ZoneSample struct {
	Point    core.Point
	Data     SampleData
	Material Material
}

// Zone is an axis-aligned rectangle of the map with a dense grid of samples.
type Zone struct {
	tl, br  core.Point
	samples *core.Grid[ZoneSample]
}

// NewZone wraps a finished sample grid.
func NewZone(tl, br core.Point, samples *core.Grid[ZoneSample]) *Zone {
	return &Zone{tl: tl, br: br, samples: samples}
}

// TopLeft returns the top-left corner.
func (z *Zone) TopLeft() core.Point { return z.tl }

// BottomRight returns the bottom-right corner.
func (z *Zone) BottomRight() core.Point { return z.br }

// SamplesPerRow is the number of samples across the zone.
func (z *Zone) SamplesPerRow() int { return z.samples.W }

// SamplesPerCol is the number of samples down the zone.
func (z *Zone) SamplesPerCol() int { return z.samples.H }

// Sample returns the sample at zone-local coordinate c.
func (z *Zone) Sample(c core.Coord) ZoneSample { return z.samples.At(c.X, c.Y) }

// Samples exposes the sample grid.
func (z *Zone) Samples() *core.Grid[ZoneSample] { return z.samples }

// Within reports whether pt lies inside the zone, edges included.
func (z *Zone) Within(pt core.Point) bool {
	return z.tl.X <= pt.X && pt.X <= z.br.X &&
		z.tl.Y <= pt.Y && pt.Y <= z.br.Y
}

// BarelyWithin reports whether pt lies on the zone's boundary ring: inside the
// zone but outside the rectangle shrunk to 90%.
func (z *Zone) BarelyWithin(pt core.Point) bool {
	innerTL := z.tl.Scale(1 - zoneInnerShrink).Add(z.br.Scale(zoneInnerShrink))
	innerBR := z.tl.Scale(zoneInnerShrink).Add(z.br.Scale(1 - zoneInnerShrink))
	inner := innerTL.X <= pt.X && pt.X <= innerBR.X &&
		innerTL.Y <= pt.Y && pt.Y <= innerBR.Y
	return z.Within(pt) && !inner
}

// Overlaps reports whether the rectangle tl..br touches or intersects the zone.
func (z *Zone) Overlaps(tl, br core.Point) bool {
	return !(z.tl.X > br.X ||
		z.br.X < tl.X ||
		z.tl.Y > br.Y ||
		z.br.Y < tl.Y)
}

func (z *Zone) isLeft(c core.Coord) bool   { return c.X == 0 }
func (z *Zone) isRight(c core.Coord) bool  { return c.X == z.samples.W-1 }
func (z *Zone) isTop(c core.Coord) bool    { return c.Y == 0 }
func (z *Zone) isBottom(c core.Coord) bool { return c.Y == z.samples.H-1 }

// IsEdge reports whether c is on the outer ring of the sample grid.
func (z *Zone) IsEdge(c core.Coord) bool {
	return z.isLeft(c) || z.isRight(c) || z.isTop(c) || z.isBottom(c)
}

// IsCorner reports whether c is one of the four grid corners.
func (z *Zone) IsCorner(c core.Coord) bool {
	return (z.isLeft(c) || z.isRight(c)) && (z.isTop(c) || z.isBottom(c))
}

type boundarySample struct {
	coord  core.Coord
	sample ZoneSample
}

// boundary lists edge samples in row-major order.
func (z *Zone) boundary() []boundarySample {
	var out []boundarySample
	z.samples.Each(func(c core.Coord, s ZoneSample) {
		if z.IsEdge(c) {
			out = append(out, boundarySample{coord: c, sample: s})
		}
	})
	return out
}

func (z *Zone) String() string {
	return fmt.Sprintf("zone{tl:(%.3f,%.3f) br:(%.3f,%.3f) %dx%d}",
		z.tl.X, z.tl.Y, z.br.X, z.br.Y, z.samples.W, z.samples.H)
}

// generateZones scatters non-overlapping zones by rejection sampling. Every
// attempt spends budget, and accepted zones spend more the fuller the map
// gets, so the count limits itself.
func generateZones(w *World, rng *core.RNG) []*Zone {
	stepX := w.size * zoneStepPerSize
	stepY := stepX * 2

	budget := ZoneBudget
	var zones []*Zone
	for budget > 0 {
		tl := core.Point{
			X: rng.Float64()*(1-2*zoneMargin) + zoneMargin,
			Y: rng.Float64()*(1-2*zoneMargin) + zoneMargin,
		}
		cols := rng.IntN(zoneSampleRange) + zoneMinSamples
		rows := rng.IntN(zoneSampleRange) + zoneMinSamples
		// The last samples sit exactly on the right and bottom edges.
		br := core.Point{
			X: tl.X + float64(cols-1)*stepX,
			Y: tl.Y + float64(rows-1)*stepY,
		}
		if br.X > 1-zoneMargin || br.Y > 1-zoneMargin {
			budget -= penaltyOutOfBounds
			continue
		}
		if overlapsAny(zones, tl, br) {
			budget -= penaltyOverlap
			continue
		}

		b := core.NewGridBuilder[ZoneSample](cols * rows)
		walkable := 0
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				pt := tl.Add(core.Point{X: float64(x) * stepX, Y: float64(y) * stepY})
				data, mat := w.Classify(pt)
				if mat.Walkable() {
					walkable++
				}
				b.Append(ZoneSample{Point: pt, Data: data, Material: mat})
			}
		}

		if walkable >= zoneMinWalkable {
			samples, err := b.Finalize(cols, rows)
			if err != nil {
				panic(err)
			}
			zones = append(zones, NewZone(tl, br, samples))
			budget -= len(zones) + 1
		} else {
			budget -= penaltyUnwalkable
		}
		if len(zones) >= 3 {
			budget -= 2
		}
		if len(zones) >= 5 {
			budget -= 4
		}
		if len(zones) >= 7 {
			budget -= 10
		}
	}
	return zones
}

func overlapsAny(zones []*Zone, tl, br core.Point) bool {
	for _, z := range zones {
		if z.Overlaps(tl, br) {
			return true
		}
	}
	return false
}
