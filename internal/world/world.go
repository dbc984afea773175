// Package world derives a planet surface, its zones and the links between
// them from a Primitive.
package world

import (
	"fmt"

	"planetgen/internal/core"
	"planetgen/internal/noise"
)

// WeightingKind selects how GenBetween skews its draw.
type WeightingKind uint8

const (
	WeightEqual WeightingKind = iota
	WeightLower
	WeightHigher
)

// Weighting skews a GenBetween draw toward one of its bounds. Larger
// amplifiers cluster harder.
type Weighting struct {
	Kind WeightingKind
	Amp  float64
}

// Equal draws uniformly between the bounds.
func Equal() Weighting { return Weighting{Kind: WeightEqual} }

// Lower skews draws toward the lower bound.
func Lower(amp float64) Weighting { return Weighting{Kind: WeightLower, Amp: amp} }

// Higher skews draws toward the upper bound.
func Higher(amp float64) Weighting { return Weighting{Kind: WeightHigher, Amp: amp} }

// GenBetween draws a value in [lower, upper] skewed by w.
func GenBetween(lower, upper float64, w Weighting, rng *core.RNG) float64 {
	u := rng.Float64()
	t := u
	switch w.Kind {
	case WeightLower:
		t = 1 - core.Sigmoid(u, w.Amp)
	case WeightHigher:
		t = core.Sigmoid(u, w.Amp)
	}
	return lower + (upper-lower)*t
}

// World is an immutable planet surface. Zones and links are populated once
// during construction.
type World struct {
	prim Primitive

	baseHeight    *noise.Field
	complexHeight *noise.Field
	temp          *noise.Field

	waterLevel    float64
	snowBelowTemp float64
	size          float64
	grassWithin   [2]float64
	treesWithin   [2]float64

	zones []*Zone
	links []Link
}

// New returns the world described by p.
func New(p Primitive) *World {
	cfg := DefaultConfig()
	cfg.Primitive = p
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world. All randomness comes from a single stream
// seeded with cfg.Primitive.Seed, so equal configs give equal worlds.
func NewWithConfig(cfg Config) *World {
	p := cfg.Primitive
	log := cfg.logger()
	rng := core.NewRNG(p.Seed)

	perlins := noise.NewPool(noise.KindPerlin, noise.DefaultPoolSize, 0)
	simplexes := noise.NewPool(noise.KindSimplex, noise.DefaultPoolSize, 0)

	size := 0.2 + rng.Float64()*0.25*p.DistanceToStar
	radiated := p.StarEnergy * (1 - p.DistanceToStar)
	waterLevel := core.Logistic(rng.Float64()-0.5+size*(1-radiated), 2.02)

	baseBounds := [2]float64{
		GenBetween(0.05, 0.15, Lower(3), rng),
		GenBetween(0.15, 1.4, Lower(2), rng),
	}
	baseHeight := mustField(rng, perlins, baseBounds, 4).
		AgglomerateScaled(mustField(rng, perlins, [2]float64{30.2, 50.4}, 2), 1, 0.013).
		AgglomerateScaled(mustField(rng, perlins, [2]float64{2.2, 9.4}, 3), 1, 0.1)

	complexBounds := [2]float64{
		GenBetween(0.06, 0.4, Lower(2), rng),
		GenBetween(2.5, 5.0, Lower(1.2), rng),
	}
	complexHeight := mustField(rng, perlins, complexBounds, 4).
		AgglomerateScaled(mustField(rng, perlins, [2]float64{15.2, 32.4}, 3), 1, 0.12)

	temp := mustField(rng, simplexes, [2]float64{30, 100}, 3).
		AgglomerateScaled(mustField(rng, simplexes, [2]float64{0.8, 6}, 2), 1, 0.25)

	w := &World{
		prim:          p,
		baseHeight:    baseHeight,
		complexHeight: complexHeight,
		temp:          temp,
		waterLevel:    waterLevel,
		snowBelowTemp: GenBetween(-0.05, 0.3, Lower(0.5+4.13*radiated), rng),
		size:          size,
		grassWithin:   [2]float64{0.1, 0.2},
		treesWithin:   [2]float64{0.1, 0.3},
	}

	w.zones = generateZones(w, rng)
	log.Debug("generated zones", "seed", p.Seed, "count", len(w.zones))
	w.links = generateLinks(w, rng)
	log.Debug("generated links", "seed", p.Seed, "count", len(w.links))
	return w
}

func mustField(rng *core.RNG, pool *noise.Pool, zoom [2]float64, n int) *noise.Field {
	f, err := noise.Generate(rng, pool, zoom, n)
	if err != nil {
		panic(fmt.Sprintf("world: noise field %v x%d: %v", zoom, n, err))
	}
	return f
}

// Primitive returns the values the world was built from.
func (w *World) Primitive() Primitive { return w.prim }

// Size is the planet size; it scales zone spacing and polar cooling.
func (w *World) Size() float64 { return w.size }

// WaterLevel is the height below which the surface is submerged.
func (w *World) WaterLevel() float64 { return w.waterLevel }

// SnowBelowTemp is the temperature below which land is snow covered.
func (w *World) SnowBelowTemp() float64 { return w.snowBelowTemp }

// Zones returns the zones of the world. Callers must not modify them.
func (w *World) Zones() []*Zone { return w.zones }

// Links returns a copy of the links between zones.
func (w *World) Links() []Link { return append([]Link(nil), w.links...) }
