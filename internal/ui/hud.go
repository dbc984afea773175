//go:build ebiten

package ui

import (
	"image/color"

	"planetgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the map view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	title    string
	status   string
	help     []string
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, title: "World"}
}

// Update replaces the displayed snapshot and status line.
func (h *HUD) Update(snapshot core.ParameterSnapshot, title, status string, help []string) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
	if title != "" {
		h.title = title
	}
	h.status = status
	h.help = help
}

// Width reports the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += groupSpacing

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}

	bottom := h.lastHeight - panelPadding
	lines := append([]string(nil), h.help...)
	if h.status != "" {
		lines = append(lines, h.status)
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if bottom < y {
			break
		}
		text.Draw(h.panel, lines[i], face, panelPadding, bottom, infoColor)
		bottom -= lineHeight
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 240, G: 200, B: 120, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	infoColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 24
	indent         = 8
	headerBaseline = 18
)
