//go:build ebiten

package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"planetgen/internal/core"
	"planetgen/internal/render"
	"planetgen/internal/ui"
	"planetgen/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 260
	starStep = 0.05
)

var helpLines = []string{
	"R regen  S new seed  P save",
	"<- -> layer  [ ] distance",
	"- = energy  Q quit",
}

// Game displays a rendered world and regenerates it on key presses.
type Game struct {
	cfg    *Config
	logger *slog.Logger

	prim    world.Primitive
	world   *world.World
	layers  []string
	layer   int
	painter *render.Painter
	hud     *ui.HUD
	seeds   *core.RNG
	status  string
}

// New constructs a Game and renders the initial world.
func New(cfg *Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	wc := cfg.WorldConfig()
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		prim:    wc.Primitive,
		layers:  render.Layers(),
		painter: render.NewPainter(cfg.Height*2, cfg.Height),
		hud:     ui.NewHUD(hudWidth),
		seeds:   core.NewRNG(uint64(time.Now().UnixNano())),
	}
	g.layer = max(slices.Index(g.layers, cfg.Layer), 0)
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset regenerates the world from prim.
func (g *Game) Reset(prim world.Primitive) error {
	g.prim = prim
	return g.regenerate()
}

func (g *Game) regenerate() error {
	sw := core.NewStopwatch()
	g.world = world.NewWithConfig(world.Config{Primitive: g.prim, Logger: g.logger})
	sw.Lap("generate")
	return g.rerender(sw)
}

func (g *Game) rerender(sw *core.Stopwatch) error {
	img, err := render.Rasterize(context.Background(), g.world, g.cfg.Height, render.Options{
		Layer:   g.layers[g.layer],
		Workers: g.cfg.Workers,
	})
	if err != nil {
		return err
	}
	sw.Lap("rasterize")
	g.painter.Upload(img)
	g.status = fmt.Sprintf("%s in %s", g.layers[g.layer], sw.Total().Round(time.Millisecond))
	g.logger.Debug("rendered", "seed", g.prim.Seed, "layer", g.layers[g.layer], "elapsed", sw.Total())
	return nil
}

func (g *Game) save() {
	img, err := render.Rasterize(context.Background(), g.world, g.cfg.Height, render.Options{
		Layer:   g.layers[g.layer],
		Workers: g.cfg.Workers,
	})
	if err == nil {
		err = render.Save(g.cfg.Out, img)
	}
	if err != nil {
		g.status = "save failed"
		g.logger.Error("save failed", "path", g.cfg.Out, "err", err)
		return
	}
	g.status = "saved " + g.cfg.Out
	g.logger.Info("saved", "path", g.cfg.Out, "seed", g.prim.Seed)
}

// Update handles key presses. Every change regenerates the whole raster.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	prim := g.prim
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		prim.Seed = g.seeds.Uint64()
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket):
		prim.DistanceToStar = math.Max(prim.DistanceToStar-starStep, 0)
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyRightBracket):
		prim.DistanceToStar = math.Min(prim.DistanceToStar+starStep, 1)
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		prim.StarEnergy = math.Max(prim.StarEnergy-starStep, 0)
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		prim.StarEnergy += starStep
		return g.Reset(prim)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.layer = (g.layer + len(g.layers) - 1) % len(g.layers)
		return g.rerender(core.NewStopwatch())
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.layer = (g.layer + 1) % len(g.layers)
		return g.rerender(core.NewStopwatch())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.save()
	}
	return nil
}

// Draw renders the map and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, 1)
	g.hud.Update(g.world.Parameters(), fmt.Sprintf("Seed %d", g.prim.Seed), g.status, helpLines)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
