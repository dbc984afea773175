package world

import (
	"slices"

	"planetgen/internal/core"
)

const (
	// MaxLinkLen is the longest link allowed, under WiderDist.
	MaxLinkLen = 0.17
	// LinkChecksPerUnit is how many path checks are made per unit of distance.
	LinkChecksPerUnit = 30
	// LinkDropOneIn discards the best link of a zone pair with probability 1/LinkDropOneIn.
	LinkDropOneIn = 6
)

// Link joins a boundary sample of one zone to a boundary sample of another.
type Link struct {
	CoordA, CoordB core.Coord
	A, B           core.Point
	MatA, MatB     Material
	Land           bool
}

// Length is the WiderDist between the endpoints.
func (l Link) Length() float64 { return WiderDist(l.A, l.B) }

// NearerMaterial returns the material of the endpoint closer to pt.
func (l Link) NearerMaterial(pt core.Point) Material {
	if WiderDist(l.A, pt) < WiderDist(l.B, pt) {
		return l.MatA
	}
	return l.MatB
}

// generateLinks finds at most one link per zone pair. A sample hosts at most
// one link.
func generateLinks(w *World, rng *core.RNG) []Link {
	zones := w.zones
	taken := make([][]core.Coord, len(zones))
	var links []Link
	for i := range zones {
		for j := i + 1; j < len(zones); j++ {
			link, ok := w.shortestSampleLink(i, taken[i], j, taken[j])
			if !ok {
				continue
			}
			if rng.OneIn(LinkDropOneIn) {
				continue
			}
			if link.Length() <= MaxLinkLen {
				taken[i] = append(taken[i], link.CoordA)
				taken[j] = append(taken[j], link.CoordB)
				links = append(links, link)
			}
		}
	}
	return links
}

// shortestSampleLink scans untaken, non-corner boundary samples of zones i
// and j. A later candidate replaces the current one unless the current one
// is strictly shorter, so on an exact tie the later candidate wins. Keeping
// the first one instead would change the links generated for existing seeds.
func (w *World) shortestSampleLink(i int, takenI []core.Coord, j int, takenJ []core.Coord) (Link, bool) {
	zi, zj := w.zones[i], w.zones[j]
	theirs := zj.boundary()

	var best Link
	found := false
	for _, mine := range zi.boundary() {
		if slices.Contains(takenI, mine.coord) || zi.IsCorner(mine.coord) {
			continue
		}
		for _, their := range theirs {
			if slices.Contains(takenJ, their.coord) || zj.IsCorner(their.coord) {
				continue
			}
			land := mine.sample.Material.IsLand()
			if land != their.sample.Material.IsLand() {
				continue
			}
			dist := WiderDist(mine.sample.Point, their.sample.Point)
			if dist > MaxLinkLen {
				continue
			}
			if found && best.Length() < dist {
				continue
			}
			if !w.traversable(mine.sample.Point, their.sample.Point, land) {
				continue
			}
			best = Link{
				CoordA: mine.coord,
				CoordB: their.coord,
				A:      mine.sample.Point,
				B:      their.sample.Point,
				MatA:   mine.sample.Material,
				MatB:   their.sample.Material,
				Land:   their.sample.Material.IsLand(),
			}
			found = true
		}
	}
	return best, found
}

// traversable walks the straight path between a and b. Every interior check
// must match the land/water kind of the link and stay clear of all zones.
func (w *World) traversable(a, b core.Point, byLand bool) bool {
	checks := int(WiderDist(a, b) * LinkChecksPerUnit)
	for c := 0; c < checks; c++ {
		ratio := float64(c+1) / float64(checks+1)
		pt := a.Scale(ratio).Add(b.Scale(1 - ratio))
		if _, mat := w.Classify(pt); mat.IsLand() != byLand {
			return false
		}
		for _, z := range w.zones {
			if z.Within(pt) {
				return false
			}
		}
	}
	return true
}
