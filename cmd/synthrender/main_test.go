package main

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/window"
)

var testPatch = patch{
	baseHz:  220,
	gateOff: 0.1,
	env:     envelope.Params{Attack: 0.005, Decay: 0.05, Sustain: 0.6, Release: 0.05},
}

func TestResolveInstruments(t *testing.T) {
	all, err := resolveInstruments(nil)
	if err != nil || len(all) != len(registry) {
		t.Fatalf("resolveInstruments(nil) = %d entries, %v", len(all), err)
	}

	got, err := resolveInstruments([]string{" Trio ", "analog"})
	if err != nil {
		t.Fatalf("resolveInstruments() error = %v", err)
	}
	if len(got) != 2 || got[0].name != "trio" || got[1].name != "analog" {
		t.Fatalf("resolveInstruments() = %+v", got)
	}

	if _, err := resolveInstruments([]string{"theremin"}); err == nil {
		t.Fatal("expected error for unknown instrument")
	}
}

func TestRenderAllWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(22050), core.WithBlockSize(128))
	n := cfg.Clock().Samples(0.2)

	results, err := renderAll(context.Background(), registry, testPatch, cfg, n, dir, analysis{peaks: 3, window: window.TypeHann})
	if err != nil {
		t.Fatalf("renderAll() error = %v", err)
	}

	if len(results) != len(registry) {
		t.Fatalf("got %d results, want %d", len(results), len(registry))
	}

	for i, r := range results {
		if r.name != registry[i].name {
			t.Fatalf("result %d is %q, want %q", i, r.name, registry[i].name)
		}
		if want := filepath.Join(dir, r.name+".wav"); r.path != want {
			t.Fatalf("%s: path = %q, want %q", r.name, r.path, want)
		}
		if info, err := os.Stat(r.path); err != nil || info.Size() <= 44 {
			t.Fatalf("%s: WAV missing or empty: %v", r.name, err)
		}
		if !(r.peak > 0) || r.peak > registry[i].fullScale {
			t.Fatalf("%s: peak %v outside (0, %v]", r.name, r.peak, registry[i].fullScale)
		}
		if math.IsNaN(r.rms) || r.rms > r.peak {
			t.Fatalf("%s: rms %v, peak %v", r.name, r.rms, r.peak)
		}
		if len(r.partials) == 0 {
			t.Fatalf("%s: no partials found", r.name)
		}
	}
}

func TestRenderAllHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := core.DefaultProcessorConfig()
	_, err := renderAll(ctx, registry, testPatch, cfg, cfg.Clock().Samples(1), t.TempDir(), analysis{peaks: 3, window: window.TypeHann})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("renderAll() error = %v, want context.Canceled", err)
	}
}

func TestFormatPartials(t *testing.T) {
	// 500 Hz is bin-centred for 4096 points at 8 kHz.
	r, err := analyze("sine", sine(500, 8000, 4096), 8000, analysis{peaks: 1, window: window.TypeHann})
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}

	if got, want := formatPartials(r.partials), "500:0.50"; got != want {
		t.Fatalf("formatPartials() = %q, want %q", got, want)
	}
}

func TestAnalyzeFlatTopWindow(t *testing.T) {
	// 505 Hz falls between bins; the flat-top window still reads 0.5 V.
	r, err := analyze("sine", sine(505, 8000, 4096), 8000, analysis{peaks: 1, window: window.TypeFlatTop})
	if err != nil {
		t.Fatalf("analyze() error = %v", err)
	}

	if len(r.partials) != 1 || math.Abs(r.partials[0].Amplitude-0.5) > 0.005 {
		t.Fatalf("partials = %+v, want one at 0.5 V", r.partials)
	}
}

func sine(freq, sr float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/sr)
	}

	return out
}
