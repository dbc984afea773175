package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"planetgen/internal/core"
	"planetgen/internal/world"
)

var (
	// ErrUnknownLayer is returned when a layer name is not registered.
	ErrUnknownLayer = errors.New("render: unknown layer")
	// ErrBadHeight is returned for non-positive raster heights.
	ErrBadHeight = errors.New("render: height must be positive")
)

// Options tunes Rasterize. The zero value renders the terrain layer with one
// worker per CPU.
type Options struct {
	Layer   string
	Workers int
}

func (o Options) layer() (Layer, error) {
	name := o.Layer
	if name == "" {
		name = DefaultLayer
	}
	l, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLayer, name)
	}
	return l, nil
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Rasterize renders w into a 2h x h image. Rows are painted concurrently;
// every pixel depends only on the world, so the output is identical for any
// worker count.
func Rasterize(ctx context.Context, w *world.World, height int, opts Options) (*image.RGBA, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadHeight, height)
	}
	layer, err := opts.layer()
	if err != nil {
		return nil, err
	}

	width := height * 2
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scene := NewScene(w)
	fw, fh := float64(width), float64(height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := img.Pix[y*img.Stride : y*img.Stride+width*4]
			for x := 0; x < width; x++ {
				putRGBA(row, x, layer(scene, core.Pt(float64(x)/fw, float64(y)/fh)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation may stop scheduling without any row failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
