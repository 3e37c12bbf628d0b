// Package batch generates many independent body plans in parallel.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"exobio/internal/bodyplan"
	prng "exobio/pkg/core"
)

// Result pairs a seed with the specimen it produced.
type Result struct {
	Seed     int64
	Specimen bodyplan.Specimen
}

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	if n < 0 {
		n = 0
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i)
	}
	return out
}

// Generate runs one generation per seed on at most workers goroutines. Each
// run owns its canvas and RNG. Results are returned in seed order; the first
// failure cancels outstanding work.
func Generate(ctx context.Context, cfg bodyplan.Config, seeds []int64, workers int) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			spec, err := bodyplan.Run(prng.NewRNG(seed), cfg)
			if err != nil {
				return err
			}
			results[i] = Result{Seed: seed, Specimen: spec}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
