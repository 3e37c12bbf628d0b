package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"exobio/internal/app"
	"exobio/internal/batch"
	"exobio/internal/bodyplan"
	"exobio/internal/export"
	"exobio/internal/render"
)

func main() {
	log.SetPrefix("bodyplan: ")
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 1, "number of specimens to generate from consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generations when -count > 1")
	out := flag.String("o", "-", "output file ('-' for stdout); %d is replaced by the seed")
	format := flag.String("format", "", "output format ("+strings.Join(export.Formats(), ", ")+"); default from -o extension, else txt")
	invert := flag.Bool("invert", false, "draw black on white")
	params := flag.Bool("params", false, "print generator parameters and exit")
	flag.Parse()

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatal(err)
	}
	if *params {
		if _, err := gen.Parameters().WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	opts := export.Options{Scale: cfg.Scale, Palette: render.Fossil}
	if *invert {
		opts.Palette = render.Ink
	}
	f := *format
	if f == "" {
		f = export.FormatFromPath(*out)
	}
	if f == "" {
		f = "txt"
	}

	if err := checkStdout(*out, f, *count); err != nil {
		log.Fatal(err)
	}

	results, err := batch.Generate(context.Background(), gen, batch.Seeds(cfg.StartSeed(), *count), *workers)
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		phrase := ""
		if res.Seed == cfg.StartSeed() {
			phrase = cfg.Phrase
		}
		path := outputPath(*out, res.Seed, len(results) > 1)
		if err := write(path, f, res.Specimen, opts); err != nil {
			log.Fatal(err)
		}
		if path != "-" {
			log.Printf("%s: %s (seed %d, %s, %d limbs, %d cells clipped)", path,
				bodyplan.Name(phrase, res.Specimen.Plan), res.Seed,
				res.Specimen.Plan.Symmetry, len(res.Specimen.Plan.Appendages), res.Specimen.Clipped)
		}
	}
}

func write(path, format string, spec bodyplan.Specimen, opts export.Options) error {
	if path == "-" {
		return export.Encode(os.Stdout, format, spec.Bitmap, opts)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Encode(f, format, spec.Bitmap, opts); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// checkStdout rejects writing several images to stdout, where they would be
// concatenated into one unusable stream. Text output can be stacked.
func checkStdout(out, format string, count int) error {
	if out == "-" && count > 1 && format != "txt" {
		return fmt.Errorf("-count %d with -o - would concatenate %s images; pass a file pattern such as -o fossil-%%d.%s", count, format, format)
	}
	return nil
}

// outputPath expands %d to the seed. Batches without %d get "-<seed>" before
// the extension so files do not overwrite each other.
func outputPath(pattern string, seed int64, many bool) string {
	if pattern == "-" {
		return pattern
	}
	if strings.Contains(pattern, "%d") {
		return fmt.Sprintf(pattern, seed)
	}
	if !many {
		return pattern
	}
	ext := filepath.Ext(pattern)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(pattern, ext), seed, ext)
}
