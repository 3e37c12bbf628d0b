package bodyplan

import (
	"errors"
	"fmt"
	"strconv"

	"exobio/internal/core"
	"exobio/internal/raster"
)

// ErrInvalidConfig is returned when a configuration cannot produce a body plan.
var ErrInvalidConfig = errors.New("invalid body plan config")

// MaxAppendages caps radial appendages; beyond 360 the whole-degree spacing
// collapses to zero.
const MaxAppendages = 360

// Range is a half-open integer interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool { return r.Lo >= r.Hi }

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Lo, r.Hi) }

// Layout holds the fixed offsets used to place body parts around the center.
type Layout struct {
	CentralLineHalf       int
	SecondaryCircleOffset int
	SecondaryLineOffset   int
	SecondaryLineHalf     int
}

// Config controls body plan generation.
type Config struct {
	Size int

	CentralRadius   Range
	SecondaryRadius Range
	AppendageLength Range
	AppendageCount  Range

	Layout Layout
	Policy raster.Policy
}

// DefaultConfig returns the standard 64×64 configuration.
func DefaultConfig() Config {
	return Config{
		Size:            core.DefaultSize,
		CentralRadius:   Range{Lo: 4, Hi: 8},
		SecondaryRadius: Range{Lo: 2, Hi: 5},
		AppendageLength: Range{Lo: 6, Hi: 10},
		AppendageCount:  Range{Lo: 2, Hi: 5},
		Layout: Layout{
			CentralLineHalf:       8,
			SecondaryCircleOffset: 12,
			SecondaryLineOffset:   8,
			SecondaryLineHalf:     4,
		},
		Policy: raster.PolicyClip,
	}
}

// Validate checks the configuration before any drawing happens.
func (c Config) Validate() error {
	if c.Size <= 0 || c.Size > core.MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d], got %d", ErrInvalidConfig, core.MaxSize, c.Size)
	}
	ranges := []struct {
		name  string
		r     Range
		minLo int
		maxHi int
	}{
		{"central_radius", c.CentralRadius, 0, core.MaxSize + 1},
		{"secondary_radius", c.SecondaryRadius, 0, core.MaxSize + 1},
		{"appendage_length", c.AppendageLength, 0, core.MaxSize + 1},
		{"appendage_count", c.AppendageCount, 1, MaxAppendages + 1},
	}
	for _, rc := range ranges {
		if rc.r.Empty() {
			return fmt.Errorf("%w: %s range %v is empty", ErrInvalidConfig, rc.name, rc.r)
		}
		if rc.r.Lo < rc.minLo {
			return fmt.Errorf("%w: %s lower bound must be at least %d, got %d", ErrInvalidConfig, rc.name, rc.minLo, rc.r.Lo)
		}
		if rc.r.Hi > rc.maxHi {
			return fmt.Errorf("%w: %s upper bound must be at most %d, got %d", ErrInvalidConfig, rc.name, rc.maxHi, rc.r.Hi)
		}
	}
	l := c.Layout
	for _, off := range []int{l.CentralLineHalf, l.SecondaryCircleOffset, l.SecondaryLineOffset, l.SecondaryLineHalf} {
		if off < 0 || off > core.MaxSize {
			return fmt.Errorf("%w: layout offsets must be in [0, %d], got %d", ErrInvalidConfig, core.MaxSize, off)
		}
	}
	if c.Policy != raster.PolicyClip && c.Policy != raster.PolicyStrict {
		return fmt.Errorf("%w: unknown bounds policy %v", ErrInvalidConfig, c.Policy)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys are ignored; values that fail to parse are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"size", &c.Size},
		{"central_radius_min", &c.CentralRadius.Lo},
		{"central_radius_max", &c.CentralRadius.Hi},
		{"secondary_radius_min", &c.SecondaryRadius.Lo},
		{"secondary_radius_max", &c.SecondaryRadius.Hi},
		{"appendage_length_min", &c.AppendageLength.Lo},
		{"appendage_length_max", &c.AppendageLength.Hi},
		{"appendage_count_min", &c.AppendageCount.Lo},
		{"appendage_count_max", &c.AppendageCount.Hi},
		{"central_line_half", &c.Layout.CentralLineHalf},
		{"secondary_circle_offset", &c.Layout.SecondaryCircleOffset},
		{"secondary_line_offset", &c.Layout.SecondaryLineOffset},
		{"secondary_line_half", &c.Layout.SecondaryLineHalf},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["policy"]; ok {
		p, ok := raster.ParsePolicy(v)
		if !ok {
			return c, fmt.Errorf("%w: policy=%q (want clip or strict)", ErrInvalidConfig, v)
		}
		c.Policy = p
	}
	return c, nil
}
