package raster

import (
	"fmt"
	"iter"

	"exobio/internal/core"
)

// Disk is a filled circle: every cell whose offset (dr, dc) from Center
// satisfies dr²+dc² <= Radius².
type Disk struct {
	Center core.Point
	Radius int
}

// Validate rejects negative radii.
func (d Disk) Validate() error {
	if d.Radius < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeRadius, d.Radius)
	}
	return nil
}

// Cells yields the disk row by row.
func (d Disk) Cells() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		r := d.Radius
		r2 := r * r
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if dr*dr+dc*dc > r2 {
					continue
				}
				if !yield(core.Pt(d.Center.Row+dr, d.Center.Col+dc)) {
					return
				}
			}
		}
	}
}

func (d Disk) String() string { return fmt.Sprintf("disk%v r=%d", d.Center, d.Radius) }

// Segment is a straight line between two cells.
type Segment struct {
	From, To core.Point
}

// Validate accepts every segment; a zero-length segment covers one cell.
func (s Segment) Validate() error { return nil }

// Len returns the number of steps along the major axis.
func (s Segment) Len() int {
	return max(abs(s.To.Row-s.From.Row), abs(s.To.Col-s.From.Col))
}

// Cells steps along the major axis, placing each cell at
// From + i·Δ/length with truncating integer division.
func (s Segment) Cells() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		n := s.Len()
		if n == 0 {
			yield(s.From)
			return
		}
		dr := s.To.Row - s.From.Row
		dc := s.To.Col - s.From.Col
		for i := 0; i <= n; i++ {
			if !yield(core.Pt(s.From.Row+i*dr/n, s.From.Col+i*dc/n)) {
				return
			}
		}
	}
}

func (s Segment) String() string { return fmt.Sprintf("segment%v-%v", s.From, s.To) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
