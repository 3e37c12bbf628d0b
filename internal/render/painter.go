//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"exobio/internal/core"
)

// GridPainter uploads a bitmap into a single RGBA image and draws it scaled.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size×size bitmap.
func NewGridPainter(size int) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size*size)}
	gp.img = ebiten.NewImage(size, size)
	return gp
}

// Blit uploads bm into the painter image and draws it at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, bm *core.Bitmap, p Palette, scale int) {
	if bm == nil || bm.Size() != gp.size {
		return
	}
	FillRGBA(gp.buf, bm.Cells(), p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the edge length of the underlying image.
func (gp *GridPainter) Size() int { return gp.size }
