// Package raster converts circle and line primitives into canvas cells.
//
// Every primitive implements Shape, so new primitives can be drawn through
// Draw without changes to callers that compose them.
package raster

import (
	"errors"
	"fmt"
	"iter"

	"exobio/internal/core"
)

var (
	// ErrOutOfBounds is returned under PolicyStrict when a shape covers a
	// cell outside the canvas.
	ErrOutOfBounds = errors.New("shape exceeds canvas bounds")
	// ErrNegativeRadius is returned when a disk has a negative radius.
	ErrNegativeRadius = errors.New("radius must be non-negative")
)

// Policy decides what happens to cells that fall outside the canvas.
type Policy uint8

const (
	// PolicyClip skips out-of-range cells and draws the rest.
	PolicyClip Policy = iota
	// PolicyStrict rejects the whole shape, leaving the canvas untouched.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyClip:
		return "clip"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy maps "clip" or "strict" to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "clip":
		return PolicyClip, true
	case "strict":
		return PolicyStrict, true
	}
	return PolicyClip, false
}

// Shape is a primitive that can be rasterized onto a canvas.
type Shape interface {
	// Cells yields every cell covered by the shape, including cells that
	// may lie outside any particular canvas.
	Cells() iter.Seq[core.Point]
	// Validate reports malformed geometry.
	Validate() error
}

// Draw marks every cell of s on c according to policy and returns the number
// of cells that were clipped.
func Draw(c *core.Canvas, s Shape, policy Policy) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if policy == PolicyStrict {
		for p := range s.Cells() {
			if !c.InBounds(p.Row, p.Col) {
				return 0, fmt.Errorf("%w: %v covers %v on a %dx%d canvas", ErrOutOfBounds, s, p, c.Size(), c.Size())
			}
		}
	}
	clipped := 0
	for p := range s.Cells() {
		if !c.Set(p.Row, p.Col) {
			clipped++
		}
	}
	return clipped, nil
}

// DrawCircle fills the disk of the given radius around center.
func DrawCircle(c *core.Canvas, center core.Point, radius int, policy Policy) error {
	_, err := Draw(c, Disk{Center: center, Radius: radius}, policy)
	return err
}

// DrawLine draws the segment from start to end, both endpoints included.
func DrawLine(c *core.Canvas, start, end core.Point, policy Policy) error {
	_, err := Draw(c, Segment{From: start, To: end}, policy)
	return err
}
