package raster

import (
	"errors"
	"slices"
	"testing"

	"exobio/internal/core"
)

func newCanvas(t *testing.T, size int) *core.Canvas {
	t.Helper()
	c, err := core.NewCanvas(size)
	if err != nil {
		t.Fatalf("NewCanvas(%d): %v", size, err)
	}
	return c
}

func foreground(c *core.Canvas) []core.Point {
	var pts []core.Point
	for r := 0; r < c.Size(); r++ {
		for col := 0; col < c.Size(); col++ {
			if c.Get(r, col) == 1 {
				pts = append(pts, core.Pt(r, col))
			}
		}
	}
	return pts
}

func TestDrawCircleRadiusZero(t *testing.T) {
	c := newCanvas(t, 9)
	if err := DrawCircle(c, core.Pt(4, 5), 0, PolicyStrict); err != nil {
		t.Fatalf("DrawCircle: %v", err)
	}
	got := foreground(c)
	if !slices.Equal(got, []core.Point{core.Pt(4, 5)}) {
		t.Fatalf("radius 0 marked %v, want only (4,5)", got)
	}
}

func TestDrawCircleMatchesDiskInequality(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 7} {
		c := newCanvas(t, 32)
		center := core.Pt(16, 16)
		if err := DrawCircle(c, center, r, PolicyStrict); err != nil {
			t.Fatalf("r=%d: %v", r, err)
		}
		for dr := -r - 1; dr <= r+1; dr++ {
			for dc := -r - 1; dc <= r+1; dc++ {
				want := uint8(0)
				if dr*dr+dc*dc <= r*r {
					want = 1
				}
				if got := c.Get(center.Row+dr, center.Col+dc); got != want {
					t.Fatalf("r=%d offset (%d,%d): got %d want %d", r, dr, dc, got, want)
				}
			}
		}
	}
}

func TestDrawCircleBoundaryCells(t *testing.T) {
	c := newCanvas(t, 16)
	if err := DrawCircle(c, core.Pt(8, 8), 5, PolicyClip); err != nil {
		t.Fatal(err)
	}
	// 3²+4² = 25 lies on the rim, 4²+4² = 32 lies outside.
	if c.Get(11, 12) != 1 {
		t.Fatal("rim cell (3,4) offset not filled")
	}
	if c.Get(12, 12) != 0 {
		t.Fatal("cell at offset (4,4) should lie outside radius 5")
	}
	if c.Get(8, 13) != 1 || c.Get(8, 14) != 0 {
		t.Fatal("axis extent of radius 5 disk is wrong")
	}
}

func TestDrawCircleNegativeRadius(t *testing.T) {
	c := newCanvas(t, 4)
	if err := DrawCircle(c, core.Pt(1, 1), -1, PolicyClip); !errors.Is(err, ErrNegativeRadius) {
		t.Fatalf("err = %v, want ErrNegativeRadius", err)
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	c := newCanvas(t, 8)
	p := core.Pt(3, 6)
	if err := DrawLine(c, p, p, PolicyStrict); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	if got := foreground(c); !slices.Equal(got, []core.Point{p}) {
		t.Fatalf("degenerate line marked %v, want [%v]", got, p)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := newCanvas(t, 8)
	if err := DrawLine(c, core.Pt(0, 0), core.Pt(0, 5), PolicyStrict); err != nil {
		t.Fatal(err)
	}
	want := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}}
	if got := foreground(c); !slices.Equal(got, want) {
		t.Fatalf("line marked %v, want %v", got, want)
	}
}

func TestSegmentCellsTruncate(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want []core.Point
	}{
		{
			name: "shallow",
			seg:  Segment{From: core.Pt(0, 0), To: core.Pt(2, 4)},
			want: []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 4}},
		},
		{
			name: "negative deltas truncate toward zero",
			seg:  Segment{From: core.Pt(5, 5), To: core.Pt(3, 2)},
			want: []core.Point{{Row: 5, Col: 5}, {Row: 5, Col: 4}, {Row: 4, Col: 3}, {Row: 3, Col: 2}},
		},
		{
			name: "diagonal",
			seg:  Segment{From: core.Pt(4, 4), To: core.Pt(1, 7)},
			want: []core.Point{{Row: 4, Col: 4}, {Row: 3, Col: 5}, {Row: 2, Col: 6}, {Row: 1, Col: 7}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(tc.seg.Cells())
			if !slices.Equal(got, tc.want) {
				t.Fatalf("cells = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDrawClipSkipsOutside(t *testing.T) {
	c := newCanvas(t, 4)
	clipped, err := Draw(c, Disk{Center: core.Pt(0, 0), Radius: 1}, PolicyClip)
	if err != nil {
		t.Fatal(err)
	}
	if clipped != 2 {
		t.Fatalf("clipped = %d, want 2", clipped)
	}
	want := []core.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if got := foreground(c); !slices.Equal(got, want) {
		t.Fatalf("marked %v, want %v", got, want)
	}
}

func TestDrawStrictLeavesCanvasUntouched(t *testing.T) {
	c := newCanvas(t, 4)
	_, err := Draw(c, Segment{From: core.Pt(1, 1), To: core.Pt(1, 6)}, PolicyStrict)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if got := foreground(c); len(got) != 0 {
		t.Fatalf("strict failure still marked %v", got)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyClip, PolicyStrict} {
		got, ok := ParsePolicy(p.String())
		if !ok || got != p {
			t.Fatalf("ParsePolicy(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParsePolicy("wrap"); ok {
		t.Fatal("ParsePolicy accepted an unknown policy")
	}
}
