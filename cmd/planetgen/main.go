package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"planetgen/internal/app"
	"planetgen/internal/batch"
	"planetgen/internal/core"
	"planetgen/internal/render"
	"planetgen/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 1, "number of consecutive seeds to render (batch mode when > 1)")
	randomizeStar := flag.Bool("randomize-star", false, "draw distance and energy per seed in batch mode")
	randomSeed := flag.Bool("random-seed", false, "ignore -seed and pick one from the clock")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *randomSeed {
		cfg.Seed = core.NewRNG(uint64(time.Now().UnixNano())).Uint64()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *count > 1 {
		runBatch(ctx, cfg, *count, *randomizeStar, logger)
		return
	}
	runSingle(ctx, cfg, logger)
}

func runSingle(ctx context.Context, cfg *app.Config, logger *slog.Logger) {
	wc := cfg.WorldConfig()
	wc.Logger = logger

	sw := core.NewStopwatch()
	w := world.NewWithConfig(wc)
	sw.Lap("generate")
	img, err := render.Rasterize(ctx, w, cfg.Height, render.Options{Layer: cfg.Layer, Workers: cfg.Workers})
	if err != nil {
		log.Fatal(err)
	}
	sw.Lap("rasterize")
	if err := render.Save(cfg.Out, img); err != nil {
		log.Fatal(err)
	}
	sw.Lap("encode")

	printParameters(w.Parameters())
	for _, lap := range sw.Laps() {
		logger.Info("phase", "name", lap.Name, "elapsed", lap.Duration.Round(time.Millisecond))
	}
	logger.Info("wrote world", "path", cfg.Out, "seed", wc.Primitive.Seed, "zones", len(w.Zones()), "links", len(w.Links()), "total", sw.Total().Round(time.Millisecond))
}

func runBatch(ctx context.Context, cfg *app.Config, count int, randomizeStar bool, logger *slog.Logger) {
	wc := cfg.WorldConfig()
	bc := batch.DefaultConfig()
	bc.Start = wc.Primitive.Seed
	bc.Count = count
	bc.Workers = cfg.Workers
	bc.Height = cfg.Height
	bc.Dir = filepath.Dir(cfg.Out)
	bc.Ext = filepath.Ext(cfg.Out)
	bc.Layer = cfg.Layer
	bc.DistanceToStar = wc.Primitive.DistanceToStar
	bc.StarEnergy = wc.Primitive.StarEnergy
	bc.RandomizeStar = randomizeStar
	bc.Logger = logger

	sw := core.NewStopwatch()
	results, err := batch.Run(ctx, bc)
	if err != nil {
		log.Fatal(err)
	}
	sw.Lap("batch")

	failed := batch.Failed(results)
	logger.Info("batch done", "seeds", len(results), "failed", failed, "elapsed", sw.Total().Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func printParameters(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Printf("%s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("  %-20s %s\n", p.Label, p.Value)
		}
	}
}
