// Package termview previews bitmaps in a terminal with tcell.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"exobio/internal/core"
)

// halfBlock paints the upper half of a cell in the foreground color and the
// lower half in the background color.
const halfBlock = '▀'

// Screen is the subset of tcell.Screen the drawing helpers need.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Palette maps binary cells to terminal colors.
type Palette struct {
	On  tcell.Color
	Off tcell.Color
}

// Fossil is white bone on a black background.
var Fossil = Palette{On: tcell.ColorWhite, Off: tcell.ColorBlack}

// Ink is black strokes on white paper.
var Ink = Palette{On: tcell.ColorBlack, Off: tcell.ColorWhite}

func (p Palette) color(v uint8) tcell.Color {
	if v != 0 {
		return p.On
	}
	return p.Off
}

// Draw paints bm at (x0, y0), two bitmap rows per terminal row, and returns
// the size of the painted area in terminal cells.
func Draw(s Screen, bm *core.Bitmap, x0, y0 int, p Palette) (w, h int) {
	size := bm.Size()
	h = (size + 1) / 2
	for ty := 0; ty < h; ty++ {
		for col := 0; col < size; col++ {
			top := bm.At(2*ty, col)
			bottom := bm.At(2*ty+1, col)
			style := tcell.StyleDefault.Foreground(p.color(top)).Background(p.color(bottom))
			s.SetContent(x0+col, y0+ty, halfBlock, nil, style)
		}
	}
	return size, h
}

// DrawText writes str starting at (x, y) and returns the column after it.
func DrawText(s Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
