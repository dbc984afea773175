// Package noise builds smooth seeded scalar fields out of weighted pairs of
// base noise generators.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"planetgen/internal/core"
)

// Generator is a single base noise function.
type Generator interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// Kind selects the base generator implementation of a Pool.
type Kind uint8

const (
	// KindPerlin uses single-octave classic Perlin noise.
	KindPerlin Kind = iota
	// KindSimplex uses OpenSimplex noise.
	KindSimplex
)

func (k Kind) String() string {
	switch k {
	case KindPerlin:
		return "perlin"
	case KindSimplex:
		return "simplex"
	default:
		return "unknown"
	}
}

// DefaultPoolSize matches the number of distinct base generators a world
// draws its units from.
const DefaultPoolSize = 50

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1

	// PerlinAmplitude stretches single-octave Perlin output, which peaks
	// near ±0.63, onto roughly [-1, 1] like the simplex generators.
	PerlinAmplitude = 1.6
)

// perlinGenerator rescales Perlin noise by PerlinAmplitude and clamps the
// result to [-1, 1].
type perlinGenerator struct {
	p *perlin.Perlin
}

func (g perlinGenerator) Eval2(x, y float64) float64 {
	return stretch(g.p.Noise2D(x, y))
}

func (g perlinGenerator) Eval3(x, y, z float64) float64 {
	return stretch(g.p.Noise3D(x, y, z))
}

func stretch(v float64) float64 {
	return math.Max(-1, math.Min(1, v*PerlinAmplitude))
}

// Pool is an explicit table of seeded base generators. Fields pick their
// generators out of a pool instead of a process-wide table.
type Pool struct {
	gens []Generator
}

// NewPool builds size generators seeded seed, seed+1, ...
func NewPool(kind Kind, size int, seed int64) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{gens: make([]Generator, size)}
	for i := range p.gens {
		s := seed + int64(i)
		switch kind {
		case KindSimplex:
			p.gens[i] = opensimplex.New(s)
		default:
			p.gens[i] = perlinGenerator{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, s)}
		}
	}
	return p
}

// Len reports the number of generators in the pool.
func (p *Pool) Len() int { return len(p.gens) }

// At returns generator i.
func (p *Pool) At(i int) Generator { return p.gens[i] }

// Pick returns a uniformly chosen generator.
func (p *Pool) Pick(rng *core.RNG) Generator {
	return p.gens[rng.IntN(len(p.gens))]
}
