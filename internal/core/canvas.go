package core

import (
	"errors"
	"fmt"
)

const (
	// DefaultSize is the edge length of a canvas when none is configured.
	DefaultSize = 64
	// MaxSize bounds the edge length so size*size cannot overflow.
	MaxSize = 4096
)

// ErrInvalidSize is returned when a canvas is requested with a non-positive size.
var ErrInvalidSize = errors.New("canvas size must be in [1, MaxSize]")

// Point addresses a cell by row and column. The origin is the top-left cell.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point { return Point{Row: row, Col: col} }

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{Row: p.Row + q.Row, Col: p.Col + q.Col} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Canvas stores a square grid of binary cells in row-major order.
type Canvas struct {
	size int
	data []uint8
}

// NewCanvas allocates a zero-filled size×size canvas.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Canvas{size: size, data: make([]uint8, size*size)}, nil
}

// Size returns the edge length of the canvas.
func (c *Canvas) Size() int { return c.size }

// InBounds reports whether (row, col) addresses a cell of the canvas.
func (c *Canvas) InBounds(row, col int) bool {
	return row >= 0 && row < c.size && col >= 0 && col < c.size
}

// Index returns the linear slice index for (row, col).
func (c *Canvas) Index(row, col int) int { return row*c.size + col }

// Set marks (row, col) as foreground. Cells outside the canvas are left
// untouched and Set reports false.
func (c *Canvas) Set(row, col int) bool {
	if !c.InBounds(row, col) {
		return false
	}
	c.data[c.Index(row, col)] = 1
	return true
}

// Get returns the value at (row, col), or 0 outside the canvas.
func (c *Canvas) Get(row, col int) uint8 {
	if !c.InBounds(row, col) {
		return 0
	}
	return c.data[c.Index(row, col)]
}

// Clear fills the canvas with background.
func (c *Canvas) Clear() {
	for i := range c.data {
		c.data[i] = 0
	}
}

// Freeze returns an immutable copy of the current pixels.
func (c *Canvas) Freeze() *Bitmap {
	return &Bitmap{size: c.size, data: append([]uint8(nil), c.data...)}
}

// Bitmap is a finished, read-only canvas handed to output consumers.
type Bitmap struct {
	size int
	data []uint8
}

// Size returns the edge length of the bitmap.
func (b *Bitmap) Size() int { return b.size }

// At returns the value at (row, col), or 0 outside the bitmap.
func (b *Bitmap) At(row, col int) uint8 {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0
	}
	return b.data[row*b.size+col]
}

// Cells returns a copy of the row-major cell values.
func (b *Bitmap) Cells() []uint8 { return append([]uint8(nil), b.data...) }

// Rows returns the bitmap as a fresh 2D slice indexed [row][col].
func (b *Bitmap) Rows() [][]uint8 {
	rows := make([][]uint8, b.size)
	for r := range rows {
		rows[r] = append([]uint8(nil), b.data[r*b.size:(r+1)*b.size]...)
	}
	return rows
}

// Count returns the number of foreground cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.data {
		n += int(v)
	}
	return n
}

// Equal reports whether two bitmaps hold identical pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.size != o.size {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
