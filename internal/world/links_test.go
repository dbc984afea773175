package world

import (
	"testing"

	"planetgen/internal/core"
)

// zoneFromPoints builds a zone whose samples sit at the given points, all of
// material mat.
func zoneFromPoints(cols, rows int, at func(x, y int) core.Point, mat Material) *Zone {
	grid := core.NewGrid(cols, rows, func(x, y int) ZoneSample {
		return ZoneSample{Point: at(x, y), Material: mat}
	})
	return NewZone(at(0, 0), at(cols-1, rows-1), grid)
}

func TestShortestSampleLinkLaterCandidateWinsTie(t *testing.T) {
	const step = 1.0 / 64
	// The only open sample of a sits level with the gap between b's first
	// two left-edge samples, so both are exactly the same distance away.
	aAt := func(x, y int) core.Point {
		if x == 2 && y == 1 {
			return core.Pt(0.53125, 0.5234375)
		}
		return core.Pt(0.5+float64(x)*step, 0.5+float64(y)*step)
	}
	bAt := func(x, y int) core.Point {
		return core.Pt(0.5625+float64(x)*step, 0.5+float64(y)*step)
	}
	taken := []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}}
	near, far := core.Coord{X: 0, Y: 1}, core.Coord{X: 0, Y: 2}
	if WiderDist(aAt(2, 1), bAt(near.X, near.Y)) != WiderDist(aAt(2, 1), bAt(far.X, far.Y)) {
		t.Fatal("fixture candidates must tie exactly")
	}

	for seed := uint64(0); seed < 20; seed++ {
		w := New(Primitive{Seed: seed, DistanceToStar: 0.5, StarEnergy: 0.5})
		midNear := aAt(2, 1).Scale(0.5).Add(bAt(near.X, near.Y).Scale(0.5))
		midFar := aAt(2, 1).Scale(0.5).Add(bAt(far.X, far.Y).Scale(0.5))
		_, matNear := w.Classify(midNear)
		_, matFar := w.Classify(midFar)
		if matNear.IsLand() != matFar.IsLand() {
			continue
		}
		mat := Water
		if matNear.IsLand() {
			mat = Rock
		}
		w.zones = []*Zone{zoneFromPoints(3, 3, aAt, mat), zoneFromPoints(3, 4, bAt, mat)}

		link, ok := w.shortestSampleLink(0, taken, 1, nil)
		if !ok {
			t.Fatalf("seed %d: no link found between adjacent zones", seed)
		}
		if link.CoordA != (core.Coord{X: 2, Y: 1}) {
			t.Fatalf("seed %d: link starts at %+v", seed, link.CoordA)
		}
		if link.CoordB != far {
			t.Fatalf("seed %d: tie resolved to %+v, expected the later candidate %+v", seed, link.CoordB, far)
		}
		return
	}
	t.Fatal("no seed classified both tie midpoints alike")
}
