package render

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"path/filepath"
	"slices"
	"testing"

	"planetgen/internal/core"
	"planetgen/internal/world"
)

func testWorld() *world.World {
	return world.New(world.Primitive{Seed: 0, DistanceToStar: 0.5, StarEnergy: 0.5})
}

func TestRasterizeParallelMatchesSequential(t *testing.T) {
	w := testWorld()
	seq, err := Rasterize(context.Background(), w, 24, Options{Workers: 1})
	if err != nil {
		t.Fatalf("sequential rasterize: %v", err)
	}
	par, err := Rasterize(context.Background(), w, 24, Options{Workers: 8})
	if err != nil {
		t.Fatalf("parallel rasterize: %v", err)
	}
	if b := seq.Bounds(); b.Dx() != 48 || b.Dy() != 24 {
		t.Fatalf("expected 48x24 raster, got %v", b)
	}
	if !bytes.Equal(seq.Pix, par.Pix) {
		t.Fatal("parallel output differs from sequential output")
	}
	for i := 3; i < len(seq.Pix); i += 4 {
		if seq.Pix[i] != 255 {
			t.Fatalf("pixel %d is not opaque", i/4)
		}
	}
}

func TestRasterizeEveryLayer(t *testing.T) {
	w := testWorld()
	names := Layers()
	if !slices.Contains(names, DefaultLayer) {
		t.Fatalf("default layer %q not registered: %v", DefaultLayer, names)
	}
	for _, name := range names {
		img, err := Rasterize(context.Background(), w, 8, Options{Layer: name, Workers: 2})
		if err != nil {
			t.Fatalf("layer %s: %v", name, err)
		}
		if img.Bounds().Dx() != 16 {
			t.Fatalf("layer %s: unexpected width %d", name, img.Bounds().Dx())
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	w := testWorld()
	if _, err := Rasterize(context.Background(), w, 8, Options{Layer: "nope"}); !errors.Is(err, ErrUnknownLayer) {
		t.Fatalf("expected ErrUnknownLayer, got %v", err)
	}
	if _, err := Rasterize(context.Background(), w, 0, Options{}); !errors.Is(err, ErrBadHeight) {
		t.Fatalf("expected ErrBadHeight, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Rasterize(ctx, w, 8, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTerrainPaintsZoneRingsAndLinks(t *testing.T) {
	var scene *Scene
	for seed := uint64(0); seed < 20; seed++ {
		s := NewScene(world.New(world.Primitive{Seed: seed, DistanceToStar: 0.5, StarEnergy: 0.5}))
		if len(s.Links) > 0 {
			scene = s
			break
		}
	}
	if scene == nil {
		t.Skip("no linked world in the first 20 seeds")
	}
	l := scene.Links[0]
	mid := l.A.Scale(0.5).Add(l.B.Scale(0.5))
	if got, want := terrainPixel(scene, mid), finalize(bleach(l.NearerMaterial(mid).Color(), linkBleach)); got != want {
		t.Fatalf("link midpoint painted %v, expected %v", got, want)
	}

	for k, z := range scene.Zones {
		// The left edge midpoint lies on the ring unless a link passes over it.
		pt := core.Pt(z.TopLeft().X, (z.TopLeft().Y+z.BottomRight().Y)/2)
		onLink := false
		for _, l := range scene.Links {
			if world.RoughlyBetween(l.A, pt, l.B) {
				onLink = true
			}
		}
		if onLink {
			continue
		}
		if got := terrainPixel(scene, pt); got != zoneRingColor(k) {
			t.Fatalf("zone %d ring painted %v, expected %v", k, got, zoneRingColor(k))
		}
	}
}

func TestPixelOps(t *testing.T) {
	if got := finalize(world.FloatPixel{1.5, -0.2, 0.5}); got != (color.RGBA{R: 254, G: 0, B: 127, A: 255}) {
		t.Fatalf("finalize = %v", got)
	}
	if got := bleach(world.FloatPixel{0, 0.5, 1}, 0.5); got != (world.FloatPixel{0.5, 0.75, 1}) {
		t.Fatalf("bleach = %v", got)
	}
	if got := shade(world.FloatPixel{1, 0.5, 0}, 0.5); got != (world.FloatPixel{0.5, 0.25, 0}) {
		t.Fatalf("shade = %v", got)
	}
	// 12*21+200 wraps past 255.
	if got := zoneRingColor(12); got.G != uint8(12*21+200-256) || got.B != uint8(12*31-256) {
		t.Fatalf("zoneRingColor(12) = %v", got)
	}
}

func TestExportRoundTrip(t *testing.T) {
	red := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		255, 0, 0, 255, 255, 0, 0, 255,
	}
	dir := t.TempDir()
	for _, ext := range Formats() {
		path := filepath.Join(dir, "red"+ext)
		if err := EncodeRGBA(path, 2, 2, slices.Clone(red)); err != nil {
			t.Fatalf("%s: encode: %v", ext, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", ext, err)
		}
		if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
			t.Fatalf("%s: decoded bounds %v", ext, b)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				if got != (color.RGBA{R: 255, A: 255}) {
					t.Fatalf("%s: pixel (%d,%d) = %v", ext, x, y, got)
				}
			}
		}
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	if err := EncodeRGBA(filepath.Join(dir, "x.jpg"), 1, 1, make([]byte, 4)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if err := EncodeRGBA(filepath.Join(dir, "x.png"), 2, 2, make([]byte, 4)); !errors.Is(err, ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
	if err := EncodeRGBA(filepath.Join(dir, "missing", "x.png"), 1, 1, make([]byte, 4)); err == nil {
		t.Fatal("expected an error writing into a missing directory")
	}
}
