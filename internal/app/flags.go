package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"exobio/internal/bodyplan"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map folds the list into a map; later entries win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Seed     int64
	Phrase   string
	Scale    int
	Interval time.Duration
	Auto     bool
	Sets     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, Scale: 8, Interval: 2 * time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first specimen")
	fs.StringVar(&c.Phrase, "phrase", c.Phrase, "derive the seed from a phrase instead of -seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between specimens in auto mode")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start with automatic regeneration enabled")
	fs.Var(&c.Sets, "set", "generator override in key=value form (repeatable)")
}

// Generator builds the body plan configuration from the -set overrides.
func (c *Config) Generator() (bodyplan.Config, error) {
	return bodyplan.FromMap(c.Sets.Map())
}

// StartSeed resolves the first seed, preferring the phrase when one is given.
func (c *Config) StartSeed() int64 {
	if strings.TrimSpace(c.Phrase) != "" {
		return bodyplan.SeedFromPhrase(c.Phrase)
	}
	return c.Seed
}
