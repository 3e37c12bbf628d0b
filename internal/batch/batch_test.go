package batch

import (
	"context"
	"errors"
	"slices"
	"testing"

	"exobio/internal/bodyplan"
	prng "exobio/pkg/core"
)

func TestGenerateMatchesSequentialRuns(t *testing.T) {
	cfg := bodyplan.DefaultConfig()
	seeds := Seeds(100, 24)
	results, err := Generate(context.Background(), cfg, seeds, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(results), len(seeds))
	}
	for i, res := range results {
		if res.Seed != seeds[i] {
			t.Fatalf("result %d has seed %d, want %d", i, res.Seed, seeds[i])
		}
		want, err := bodyplan.Generate(prng.NewRNG(res.Seed), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Specimen.Bitmap.Equal(want) {
			t.Fatalf("seed %d: parallel result differs from sequential run", res.Seed)
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := bodyplan.DefaultConfig()
	cfg.Size = 0
	if _, err := Generate(context.Background(), cfg, Seeds(0, 3), 2); !errors.Is(err, bodyplan.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Generate(ctx, bodyplan.DefaultConfig(), Seeds(0, 8), 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSeeds(t *testing.T) {
	if got := Seeds(5, 3); !slices.Equal(got, []int64{5, 6, 7}) {
		t.Fatalf("Seeds(5, 3) = %v", got)
	}
	if got := Seeds(5, -1); len(got) != 0 {
		t.Fatalf("Seeds with negative count = %v", got)
	}
}
