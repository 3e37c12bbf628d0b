package export

import (
	"bufio"
	"fmt"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/bmp"

	"exobio/internal/core"
	"exobio/internal/render"
)

func init() {
	Register("png", encodePNG)
	Register("bmp", encodeBMP)
	Register("svg", encodeSVG)
	Register("txt", encodeText)
}

func encodePNG(w io.Writer, bm *core.Bitmap, opts Options) error {
	return png.Encode(w, render.Image(bm, opts.Scale, opts.Palette))
}

func encodeBMP(w io.Writer, bm *core.Bitmap, opts Options) error {
	return bmp.Encode(w, render.Image(bm, opts.Scale, opts.Palette))
}

// encodeSVG emits one rect per horizontal run of foreground cells.
func encodeSVG(w io.Writer, bm *core.Bitmap, opts Options) error {
	bw := bufio.NewWriter(w)
	s := opts.Scale
	n := bm.Size() * s
	canvas := svg.New(bw)
	canvas.Start(n, n)
	canvas.Rect(0, 0, n, n, "fill:"+hexColor(opts.Palette.Off))
	canvas.Gstyle("fill:" + hexColor(opts.Palette.On))
	for r := 0; r < bm.Size(); r++ {
		for c := 0; c < bm.Size(); {
			if bm.At(r, c) == 0 {
				c++
				continue
			}
			start := c
			for c < bm.Size() && bm.At(r, c) != 0 {
				c++
			}
			canvas.Rect(start*s, r*s, (c-start)*s, s)
		}
	}
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

// encodeText writes '#' for foreground and '.' for background, one line per row.
func encodeText(w io.Writer, bm *core.Bitmap, _ Options) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, bm.Size()+1)
	line[bm.Size()] = '\n'
	for r := 0; r < bm.Size(); r++ {
		for c := 0; c < bm.Size(); c++ {
			line[c] = '.'
			if bm.At(r, c) != 0 {
				line[c] = '#'
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
