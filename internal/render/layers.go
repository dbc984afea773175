package render

import (
	"image/color"
	"sort"

	"planetgen/internal/core"
	"planetgen/internal/world"
)

// DefaultLayer is the layer rendered when none is named.
const DefaultLayer = "terrain"

// Scene is the read-only view of a world that layers paint from. Links and
// zones are captured once so per-pixel lookups do not copy them.
type Scene struct {
	World *world.World
	Links []world.Link
	Zones []*world.Zone
}

// NewScene captures the topology of w.
func NewScene(w *world.World) *Scene {
	return &Scene{World: w, Links: w.Links(), Zones: w.Zones()}
}

// Layer colours a single normalized map point of a scene.
type Layer func(s *Scene, pt core.Point) color.RGBA

var layers = map[string]Layer{}

// Register adds a layer under the provided name.
func Register(name string, l Layer) {
	if name == "" || l == nil {
		return
	}
	layers[name] = l
}

// Lookup returns the layer registered under name.
func Lookup(name string) (Layer, bool) {
	l, ok := layers[name]
	return l, ok
}

// Layers lists the registered layer names in sorted order.
func Layers() []string {
	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("terrain", terrainPixel)
	Register("material", materialPixel)
	Register("height", heightPixel)
	Register("temperature", temperaturePixel)
	Register("slope", slopePixel)
}

// terrainPixel paints links over zone rings over shaded terrain.
func terrainPixel(s *Scene, pt core.Point) color.RGBA {
	for _, l := range s.Links {
		if world.RoughlyBetween(l.A, pt, l.B) {
			return finalize(bleach(l.NearerMaterial(pt).Color(), linkBleach))
		}
	}
	for k, z := range s.Zones {
		if z.BarelyWithin(pt) {
			return zoneRingColor(k)
		}
	}
	data, mat := s.World.Classify(pt)
	if mat == world.Water || mat == world.Ice {
		return finalize(shade(mat.Color(), shadeBase+(1-data.Height)*shadeVariance))
	}
	return finalize(shade(mat.Color(), shadeBase+(data.XSlope*0.5+0.5)*shadeVariance))
}

func materialPixel(s *Scene, pt core.Point) color.RGBA {
	_, mat := s.World.Classify(pt)
	return finalize(mat.Color())
}

func heightPixel(s *Scene, pt core.Point) color.RGBA {
	return grey(s.World.HeightAt(pt))
}

// temperaturePixel ramps from blue (cold) to red (hot).
func temperaturePixel(s *Scene, pt core.Point) color.RGBA {
	t := core.Clamp01(s.World.SampleAt(pt).Temp)
	return finalize(world.FloatPixel{t, 0.2, 1 - t})
}

const slopeGain = 4

func slopePixel(s *Scene, pt core.Point) color.RGBA {
	return grey(s.World.SampleAt(pt).Slope * slopeGain)
}
