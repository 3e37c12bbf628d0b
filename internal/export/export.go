// Package export encodes finished bitmaps into image and text formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"exobio/internal/core"
	"exobio/internal/render"
)

// ErrUnknownFormat is returned for format names with no registered encoder.
var ErrUnknownFormat = errors.New("unknown export format")

// Options controls how a bitmap is encoded.
type Options struct {
	// Scale is the edge length, in output pixels, of one cell.
	Scale   int
	Palette render.Palette
}

// DefaultOptions renders 8×8 pixels per cell, white on black.
func DefaultOptions() Options {
	return Options{Scale: 8, Palette: render.Fossil}
}

// Encoder writes bm to w.
type Encoder func(w io.Writer, bm *core.Bitmap, opts Options) error

var encoders = map[string]Encoder{}

// Register adds an encoder under the provided format name.
func Register(name string, e Encoder) {
	if name == "" || e == nil {
		return
	}
	encoders[name] = e
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Encode writes bm to w using the named format.
func Encode(w io.Writer, format string, bm *core.Bitmap, opts Options) error {
	e, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return e(w, bm, opts)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
