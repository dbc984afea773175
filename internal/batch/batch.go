// Package batch renders a contiguous range of seeds with one goroutine per
// sub-range.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"planetgen/internal/core"
	"planetgen/internal/render"
	"planetgen/internal/world"
)

// ErrNoSeeds is returned when Count is not positive.
var ErrNoSeeds = errors.New("batch: count must be positive")

// Config describes a batch run.
type Config struct {
	Start   uint64
	Count   int
	Workers int

	Height int
	Dir    string
	Ext    string
	Layer  string

	DistanceToStar float64
	StarEnergy     float64
	// RandomizeStar draws the star parameters per seed from the worker's RNG.
	RandomizeStar bool

	Logger *slog.Logger
}

// DefaultConfig returns a Config rendering eight 256px PNGs into the working
// directory.
func DefaultConfig() Config {
	return Config{
		Count:          8,
		Workers:        runtime.NumCPU(),
		Height:         256,
		Dir:            ".",
		Ext:            ".png",
		Layer:          render.DefaultLayer,
		DistanceToStar: 0.5,
		StarEnergy:     0.5,
	}
}

// Result reports the outcome for a single seed.
type Result struct {
	Seed      uint64
	Primitive world.Primitive
	Path      string
	Zones     int
	Links     int
	Elapsed   time.Duration
	Err       error
}

// Range is a contiguous span of seeds [Start, Start+Count).
type Range struct {
	Start uint64
	Count int
}

// Split divides count seeds from start into at most workers contiguous
// ranges of near-equal size.
func Split(start uint64, count, workers int) []Range {
	if count <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > count {
		workers = count
	}
	per, extra := count/workers, count%workers
	ranges := make([]Range, 0, workers)
	next := start
	for i := 0; i < workers; i++ {
		n := per
		if i < extra {
			n++
		}
		ranges = append(ranges, Range{Start: next, Count: n})
		next += uint64(n)
	}
	return ranges
}

// FileName is the output name for a seed.
func FileName(seed uint64, ext string) string {
	return fmt.Sprintf("world_%d%s", seed, ext)
}

// Run renders every seed of cfg. Results are in seed order; a failed seed is
// recorded on its Result and never stops the others. The returned error is
// only non-nil for an invalid Config.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Count <= 0 {
		return nil, ErrNoSeeds
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %d", render.ErrBadHeight, cfg.Height)
	}
	if cfg.Ext == "" {
		cfg.Ext = ".png"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result, cfg.Count)
	var wg sync.WaitGroup
	for _, r := range Split(cfg.Start, cfg.Count, cfg.Workers) {
		wg.Add(1)
		go func(r Range) {
			defer wg.Done()
			rng := core.NewRNG(r.Start)
			for i := 0; i < r.Count; i++ {
				seed := r.Start + uint64(i)
				prim := world.Primitive{Seed: seed, DistanceToStar: cfg.DistanceToStar, StarEnergy: cfg.StarEnergy}
				if cfg.RandomizeStar {
					prim.DistanceToStar = rng.Float64()
					prim.StarEnergy = rng.Float64()
				}
				res := renderOne(ctx, cfg, prim, logger)
				results[seed-cfg.Start] = res
				if res.Err != nil {
					logger.Warn("seed failed", "seed", seed, "err", res.Err)
					continue
				}
				logger.Info("seed rendered", "seed", seed, "path", res.Path, "zones", res.Zones, "links", res.Links, "elapsed", res.Elapsed)
			}
		}(r)
	}
	wg.Wait()
	return results, nil
}

func renderOne(ctx context.Context, cfg Config, prim world.Primitive, logger *slog.Logger) Result {
	start := time.Now()
	res := Result{Seed: prim.Seed, Primitive: prim, Path: filepath.Join(cfg.Dir, FileName(prim.Seed, cfg.Ext))}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	w := world.NewWithConfig(world.Config{Primitive: prim, Logger: logger})
	res.Zones = len(w.Zones())
	res.Links = len(w.Links())
	// Each range already owns a goroutine; rows render on a single worker.
	img, err := render.Rasterize(ctx, w, cfg.Height, render.Options{Layer: cfg.Layer, Workers: 1})
	if err != nil {
		res.Err = err
		return res
	}
	if err := render.Save(res.Path, img); err != nil {
		res.Err = err
		return res
	}
	res.Elapsed = time.Since(start)
	return res
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
