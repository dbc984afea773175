//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter keeps a single ebiten image in sync with a rendered raster.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for rasters of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with src. Rasters of another size
// reallocate the image.
func (p *Painter) Upload(src *image.RGBA) {
	b := src.Bounds()
	if b.Dx() != p.w || b.Dy() != p.h {
		p.img.Dispose()
		p.w, p.h = b.Dx(), b.Dy()
		p.img = ebiten.NewImage(p.w, p.h)
	}
	p.img.WritePixels(src.Pix)
}

// Blit draws the painter image scaled onto dst.
func (p *Painter) Blit(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
