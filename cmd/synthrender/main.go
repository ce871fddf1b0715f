// Command synthrender renders a short note on each instrument to a WAV file
// and prints the level and strongest partials of the result.
//
// Usage:
//
//	synthrender [flags] [instrument ...]
//
// Without arguments it renders every instrument.
//
// Examples:
//
//	synthrender
//	synthrender -out /tmp/voices -note 110 additive
//	synthrender -rate 48000 -seconds 2 -gate 1.5 trio analog
//	synthrender -window flattop -peaks 8 additive
//	synthrender -list
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/render"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/cwbudde/algo-synth/dsp/window"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(log.Lshortfile)

	out := flag.String("out", "out", "output directory for WAV files")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	block := flag.Int("block", 256, "render block size in samples")
	seconds := flag.Float64("seconds", 1.5, "rendered length in seconds")
	gate := flag.Float64("gate", 1, "gate length in seconds")
	note := flag.Float64("note", 220, "base frequency in Hz")
	peaks := flag.Int("peaks", 4, "number of partials to print per instrument")
	win := flag.String("window", "hann", "analysis window: rectangular, hann, hamming, blackman or flattop")
	list := flag.Bool("list", false, "list available instruments")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synthrender [flags] [instrument ...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders one note per instrument to <out>/<instrument>.wav.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, renders every instrument.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  synthrender -out /tmp/voices additive\n")
		fmt.Fprintf(os.Stderr, "  synthrender -rate 48000 -seconds 2 trio analog\n")
		fmt.Fprintf(os.Stderr, "  synthrender -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries, err := resolveInstruments(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *seconds <= 0 || *note <= 0 || *gate <= 0 {
		fmt.Fprintf(os.Stderr, "error: -seconds, -gate and -note must be > 0\n")
		os.Exit(1)
	}

	wt, err := window.Parse(strings.ToLower(*win))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(*rate), core.WithBlockSize(*block))
	p := patch{
		baseHz:  *note,
		gateOff: *gate,
		env:     envelope.Params{Attack: 0.01, Decay: 0.25, Sustain: 0.6, Release: 0.3},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := renderAll(ctx, entries, p, cfg, cfg.Clock().Samples(*seconds), *out, analysis{peaks: *peaks, window: wt})
	if err != nil {
		log.Fatal(err)
	}

	printResults(results)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveInstruments(names []string) ([]instrument, error) {
	if len(names) == 0 {
		return registry, nil
	}

	byName := make(map[string]instrument, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []instrument
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown instrument %q (use -list to see available)", name)
		}
		result = append(result, e)
	}

	return result, nil
}

// renderAll renders every instrument on its own goroutine. Each goroutine
// owns its voice exclusively.
func renderAll(ctx context.Context, entries []instrument, p patch, cfg core.ProcessorConfig, n int, dir string, a analysis) ([]result, error) {
	results := make([]result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			r, err := renderOne(ctx, e, p, cfg, n, dir, a)
			if err != nil {
				return fmt.Errorf("%s: %w", e.name, err)
			}

			results[i] = r
			log.Printf("rendered %s: %d samples -> %s", e.name, n, r.path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func renderOne(ctx context.Context, e instrument, p patch, cfg core.ProcessorConfig, n int, dir string, a analysis) (result, error) {
	src, err := e.build(p)
	if err != nil {
		return result{}, err
	}

	samples := make([]float64, 0, n)
	err = render.Blocks(src, cfg, n, func(block []float64) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		samples = append(samples, block...)

		return nil
	})
	if err != nil {
		return result{}, err
	}

	path := filepath.Join(dir, e.name+".wav")
	if err := writeFile(path, samples, cfg.Clock(), 1/e.fullScale); err != nil {
		return result{}, err
	}

	r, err := analyze(e.name, samples, cfg.SampleRate, a)
	if err != nil {
		return result{}, err
	}

	r.path = path

	return r, nil
}

func writeFile(path string, samples []float64, clk core.Clock, gain float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	i := 0
	replay := voice.SamplerFunc(func(core.Clock) float64 {
		v := samples[i]
		i++
		return v
	})

	if err := render.WriteWAV(f, replay, clk, gain, len(samples)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
