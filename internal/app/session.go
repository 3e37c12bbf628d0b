package app

import (
	"fmt"

	"exobio/internal/bodyplan"
	prng "exobio/pkg/core"
)

// Session tracks the specimen currently shown by a viewer.
type Session struct {
	cfg    bodyplan.Config
	seed   int64
	phrase string

	specimen bodyplan.Specimen
}

// NewSession validates cfg and generates the first specimen.
func NewSession(cfg bodyplan.Config, seed int64, phrase string) (*Session, error) {
	s := &Session{cfg: cfg, seed: seed, phrase: phrase}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate redraws the specimen for the current seed.
func (s *Session) Regenerate() error {
	spec, err := bodyplan.Run(prng.NewRNG(s.seed), s.cfg)
	if err != nil {
		return err
	}
	s.specimen = spec
	return nil
}

// Next advances to the following seed. The phrase no longer describes the
// specimen after this and is dropped from the title.
func (s *Session) Next() error {
	s.seed++
	s.phrase = ""
	return s.Regenerate()
}

// Reseed jumps to an arbitrary seed.
func (s *Session) Reseed(seed int64) error {
	s.seed = seed
	s.phrase = ""
	return s.Regenerate()
}

// Seed returns the seed of the current specimen.
func (s *Session) Seed() int64 { return s.seed }

// Config returns the generator configuration.
func (s *Session) Config() bodyplan.Config { return s.cfg }

// Specimen returns the current specimen.
func (s *Session) Specimen() bodyplan.Specimen { return s.specimen }

// Title names the current specimen.
func (s *Session) Title() string {
	return bodyplan.Name(s.phrase, s.specimen.Plan)
}

// Summary describes the current plan on one line.
func (s *Session) Summary() string {
	p := s.specimen.Plan
	return fmt.Sprintf("seed %d  %s  limbs %d  reach %d", s.seed, p.Symmetry, len(p.Appendages), p.AppendageLength)
}

// statusLine is the HUD status: the last error if any, else "auto" while
// automatic regeneration is on.
func statusLine(status string, auto bool) string {
	if status == "" && auto {
		return "auto"
	}
	return status
}
