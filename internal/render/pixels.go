package render

import (
	"image"
	"image/color"

	"exobio/internal/core"
)

// Palette maps binary cells to colors.
type Palette struct {
	On  color.Color
	Off color.Color
}

// Fossil is white bone on a black background.
var Fossil = Palette{On: color.White, Off: color.Black}

// Ink is black strokes on white paper.
var Ink = Palette{On: color.Black, Off: color.White}

// FillRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func FillRGBA(buf []byte, cells []uint8, p Palette) {
	rOn, gOn, bOn, aOn := p.On.RGBA()
	rOff, gOff, bOff, aOff := p.Off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Image renders the bitmap as a two-color paletted image, each cell becoming
// a scale×scale block. Index 0 is background and index 1 foreground.
func Image(bm *core.Bitmap, scale int, p Palette) *image.Paletted {
	if scale <= 0 {
		scale = 1
	}
	n := bm.Size() * scale
	img := image.NewPaletted(image.Rect(0, 0, n, n), color.Palette{p.Off, p.On})
	for r := 0; r < bm.Size(); r++ {
		for c := 0; c < bm.Size(); c++ {
			if bm.At(r, c) == 0 {
				continue
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				row := img.Pix[y*img.Stride:]
				for x := c * scale; x < (c+1)*scale; x++ {
					row[x] = 1
				}
			}
		}
	}
	return img
}
