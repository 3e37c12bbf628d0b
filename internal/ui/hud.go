//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"exobio/internal/core"
)

const (
	panelPadding = 8
	lineHeight   = 15
)

// HUD renders the specimen details and generator parameters to the right of
// the bitmap view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	title    string
	summary  string
	snapshot core.ParameterSnapshot
	status   string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update replaces the displayed text.
func (h *HUD) Update(title, summary, status string, snapshot core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.title = title
	h.summary = summary
	h.status = status
	h.snapshot = snapshot
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 230, G: 220, B: 200, A: 255})
	y += lineHeight
	text.Draw(h.panel, h.summary, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 255, G: 170, B: 90, A: 255})
	}
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 150, G: 190, B: 255, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 180, G: 180, B: 190, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.White)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
