//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"exobio/internal/bodyplan"
	"exobio/internal/raster"
)

// Overlay draws the plan skeleton on top of the bitmap: appendage segments,
// their endpoints and the body center. Toggle with O.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.visible = !o.visible
	}
}

// Draw paints the skeleton of p at the given cell scale.
func (o *Overlay) Draw(screen *ebiten.Image, p bodyplan.Plan, scale int) {
	if o == nil || !o.visible {
		return
	}
	s := float32(scale)
	half := s / 2
	limb := color.RGBA{R: 255, G: 80, B: 60, A: 200}
	for _, a := range p.Appendages {
		vector.StrokeLine(screen,
			float32(a.From.Col)*s+half, float32(a.From.Row)*s+half,
			float32(a.To.Col)*s+half, float32(a.To.Row)*s+half,
			1, limb, false)
		vector.DrawFilledRect(screen, float32(a.To.Col)*s, float32(a.To.Row)*s, s, s, limb, false)
	}
	body := color.RGBA{R: 80, G: 200, B: 255, A: 200}
	for _, shape := range []raster.Shape{p.Central, p.Secondary} {
		switch sh := shape.(type) {
		case raster.Disk:
			vector.StrokeCircle(screen, float32(sh.Center.Col)*s+half, float32(sh.Center.Row)*s+half,
				float32(sh.Radius)*s+half, 1, body, false)
		case raster.Segment:
			vector.StrokeLine(screen,
				float32(sh.From.Col)*s+half, float32(sh.From.Row)*s+half,
				float32(sh.To.Col)*s+half, float32(sh.To.Row)*s+half,
				1, body, false)
		}
	}
	vector.DrawFilledRect(screen, float32(p.Center.Col)*s, float32(p.Center.Row)*s, s, s, color.RGBA{R: 255, G: 255, B: 0, A: 220}, false)
}
