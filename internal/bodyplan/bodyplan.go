// Package bodyplan composes creature body plans from circles and lines.
//
// A generation run consumes draws from a Random source in a fixed order:
//
//  1. symmetry (Bool: true = Radial)
//  2. central kind (Bool: true = circle), then its radius if a circle
//  3. secondary kind (Bool: true = circle), then its radius if a circle
//  4. appendage length
//  5. appendage count
//
// so a scripted source reproduces a plan exactly.
package bodyplan

import (
	"fmt"
	"math"

	"exobio/internal/core"
	"exobio/internal/raster"
)

// Random supplies the draws a generation run consumes.
type Random interface {
	// Bool is a fair choice between two options.
	Bool() bool
	// IntRange returns a uniform integer in [lo, hi).
	IntRange(lo, hi int) int
}

// Symmetry is the rule used to place appendages.
type Symmetry uint8

const (
	Bilateral Symmetry = iota
	Radial
)

func (s Symmetry) String() string {
	switch s {
	case Bilateral:
		return "bilateral"
	case Radial:
		return "radial"
	default:
		return fmt.Sprintf("Symmetry(%d)", uint8(s))
	}
}

// Plan records every choice made during one generation run.
type Plan struct {
	Size     int
	Center   core.Point
	Symmetry Symmetry

	Central   raster.Shape
	Secondary raster.Shape

	AppendageLength int
	// AppendageCount is always drawn. Bilateral plans ignore it and place two
	// appendages.
	AppendageCount int
	Appendages     []raster.Segment
}

// Shapes lists the plan's primitives in drawing order.
func (p Plan) Shapes() []raster.Shape {
	shapes := make([]raster.Shape, 0, 2+len(p.Appendages))
	shapes = append(shapes, p.Central, p.Secondary)
	for _, a := range p.Appendages {
		shapes = append(shapes, a)
	}
	return shapes
}

// Draw rasterizes the plan onto c and returns the number of clipped cells.
func (p Plan) Draw(c *core.Canvas, policy raster.Policy) (int, error) {
	total := 0
	for _, s := range p.Shapes() {
		n, err := raster.Draw(c, s, policy)
		if err != nil {
			return total, fmt.Errorf("draw %v: %w", s, err)
		}
		total += n
	}
	return total, nil
}

// Compose makes all random choices for one body plan without drawing it.
func Compose(rng Random, cfg Config) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	center := core.Pt(cfg.Size/2, cfg.Size/2)
	l := cfg.Layout
	p := Plan{Size: cfg.Size, Center: center, Symmetry: Bilateral}

	if rng.Bool() {
		p.Symmetry = Radial
	}

	if rng.Bool() {
		p.Central = raster.Disk{Center: center, Radius: draw(rng, cfg.CentralRadius)}
	} else {
		p.Central = raster.Segment{
			From: center.Add(core.Pt(0, -l.CentralLineHalf)),
			To:   center.Add(core.Pt(0, l.CentralLineHalf)),
		}
	}

	if rng.Bool() {
		p.Secondary = raster.Disk{
			Center: center.Add(core.Pt(0, -l.SecondaryCircleOffset)),
			Radius: draw(rng, cfg.SecondaryRadius),
		}
	} else {
		p.Secondary = raster.Segment{
			From: center.Add(core.Pt(-l.SecondaryLineHalf, -l.SecondaryLineOffset)),
			To:   center.Add(core.Pt(l.SecondaryLineHalf, -l.SecondaryLineOffset)),
		}
	}

	p.AppendageLength = draw(rng, cfg.AppendageLength)
	p.AppendageCount = draw(rng, cfg.AppendageCount)

	switch p.Symmetry {
	case Bilateral:
		p.Appendages = bilateralAppendages(center, p.AppendageLength)
	case Radial:
		p.Appendages = radialAppendages(center, p.AppendageLength, p.AppendageCount)
	}
	return p, nil
}

func draw(rng Random, r Range) int { return rng.IntRange(r.Lo, r.Hi) }

func bilateralAppendages(center core.Point, length int) []raster.Segment {
	return []raster.Segment{
		{From: center, To: center.Add(core.Pt(-length, -length))},
		{From: center, To: center.Add(core.Pt(length, -length))},
	}
}

// radialAppendages spaces count limbs by 360/count whole degrees. When count
// does not divide 360 the spacing leaves a wider gap before the first limb.
func radialAppendages(center core.Point, length, count int) []raster.Segment {
	step := 360 / count
	segs := make([]raster.Segment, 0, count)
	for i := 0; i < count; i++ {
		theta := float64(i*step) * math.Pi / 180
		end := core.Pt(
			int(float64(center.Row)+float64(length)*math.Cos(theta)),
			int(float64(center.Col)+float64(length)*math.Sin(theta)),
		)
		segs = append(segs, raster.Segment{From: center, To: end})
	}
	return segs
}

// Specimen is a finished generation run.
type Specimen struct {
	Plan    Plan
	Bitmap  *core.Bitmap
	Clipped int
}

// Run validates cfg, composes a plan from rng and draws it onto a fresh canvas.
func Run(rng Random, cfg Config) (Specimen, error) {
	plan, err := Compose(rng, cfg)
	if err != nil {
		return Specimen{}, err
	}
	canvas, err := core.NewCanvas(cfg.Size)
	if err != nil {
		return Specimen{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	clipped, err := plan.Draw(canvas, cfg.Policy)
	if err != nil {
		return Specimen{}, err
	}
	return Specimen{Plan: plan, Bitmap: canvas.Freeze(), Clipped: clipped}, nil
}

// Generate returns the finished bitmap for one body plan.
func Generate(rng Random, cfg Config) (*core.Bitmap, error) {
	s, err := Run(rng, cfg)
	if err != nil {
		return nil, err
	}
	return s.Bitmap, nil
}
