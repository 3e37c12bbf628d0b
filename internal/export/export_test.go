package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"exobio/internal/core"
	"exobio/internal/render"
)

func sample(t *testing.T) *core.Bitmap {
	t.Helper()
	c, err := core.NewCanvas(4)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(0, 0)
	c.Set(1, 1)
	c.Set(1, 2)
	c.Set(3, 3)
	return c.Freeze()
}

func checkDecoded(t *testing.T, img image.Image, bm *core.Bitmap, scale int) {
	t.Helper()
	if got := img.Bounds().Dx(); got != bm.Size()*scale {
		t.Fatalf("width = %d, want %d", got, bm.Size()*scale)
	}
	for r := 0; r < bm.Size(); r++ {
		for c := 0; c < bm.Size(); c++ {
			red, _, _, _ := img.At(c*scale, r*scale).RGBA()
			on := red > 0x8000
			if on != (bm.At(r, c) == 1) {
				t.Fatalf("cell (%d,%d): decoded on=%v, bitmap %d", r, c, on, bm.At(r, c))
			}
		}
	}
}

func TestFormatsRegistered(t *testing.T) {
	if got := Formats(); !slices.Equal(got, []string{"bmp", "png", "svg", "txt"}) {
		t.Fatalf("Formats() = %v", got)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	bm := sample(t)
	var buf bytes.Buffer
	if err := Encode(&buf, "png", bm, Options{Scale: 3, Palette: render.Fossil}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	checkDecoded(t, img, bm, 3)
}

func TestEncodeBMPRoundTrip(t *testing.T) {
	bm := sample(t)
	var buf bytes.Buffer
	if err := Encode(&buf, "bmp", bm, Options{Scale: 2, Palette: render.Fossil}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	checkDecoded(t, img, bm, 2)
}

func TestEncodeSVGMergesRuns(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "svg", sample(t), Options{Scale: 5, Palette: render.Fossil}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// background plus three runs: (0,0), (1,1)-(1,2), (3,3)
	if n := strings.Count(out, "<rect"); n != 4 {
		t.Fatalf("got %d rects, want 4:\n%s", n, out)
	}
	if !strings.Contains(out, `width="10"`) {
		t.Fatalf("two-cell run should be 10 wide:\n%s", out)
	}
	if !strings.Contains(out, "fill:#ffffff") || !strings.Contains(out, "fill:#000000") {
		t.Fatalf("palette colors missing:\n%s", out)
	}
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "txt", sample(t), DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	want := "#...\n.##.\n....\n...#\n"
	if buf.String() != want {
		t.Fatalf("text = %q, want %q", buf.String(), want)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, "gif", sample(t), DefaultOptions())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]string{
		"out/creature.PNG": "png",
		"a.b.svg":          "svg",
		"noext":            "",
	} {
		if got := FormatFromPath(path); got != want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
