package osc

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestOscillatorSineMatchesReference(t *testing.T) {
	const (
		sampleRate = 44100.0
		freq       = 440.0
		n          = 1024
	)

	gens := map[string]Generator{
		"analytic": AnalyticGenerator{},
		"table":    NewTableGenerator(nil),
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			o, err := NewOscillator(ShapeSine, gen)
			if err != nil {
				t.Fatalf("NewOscillator() error = %v", err)
			}

			got := make([]float64, n)
			for i := range got {
				got[i] = o.Next(freq, 1/sampleRate, 0.5)
			}

			// The phase advances before the sample is read.
			want := testutil.DeterministicSine(freq, sampleRate, 1, 1, n)
			testutil.RequireSliceNearlyEqual(t, got, want, 2e-3)
		})
	}
}

func TestOscillatorClampsFrequency(t *testing.T) {
	o, err := NewOscillator(ShapeSaw, nil)
	if err != nil {
		t.Fatalf("NewOscillator() error = %v", err)
	}

	o.Next(0, 0.001, 0.5)
	if math.Abs(o.Phase()-0.01) > 1e-12 {
		t.Fatalf("phase = %v, want 0.01 (10 Hz floor)", o.Phase())
	}

	o.Reset()
	o.Next(math.NaN(), 0.001, 0.5)
	if math.Abs(o.Phase()-0.01) > 1e-12 {
		t.Fatalf("phase = %v, want 0.01 for NaN frequency", o.Phase())
	}
}

func TestOscillatorAboveNyquist(t *testing.T) {
	tests := []struct {
		name       string
		freqHz     float64
		sampleRate float64
	}{
		{name: "20k at 8k", freqHz: 20000, sampleRate: 8000},
		{name: "16k at 8k", freqHz: 16000, sampleRate: 8000},
		{name: "20k at 32k", freqHz: 20000, sampleRate: 32000},
		{name: "4k at 8k", freqHz: 4000, sampleRate: 8000},
	}

	for _, tt := range tests {
		for _, shape := range []Shape{ShapeSine, ShapeTriangle, ShapeSaw, ShapeSquare} {
			t.Run(tt.name+"/"+shape.String(), func(t *testing.T) {
				o, err := NewOscillator(shape, nil)
				if err != nil {
					t.Fatalf("NewOscillator() error = %v", err)
				}

				dt := 1 / tt.sampleRate
				for i := 0; i < 1000; i++ {
					v := o.Next(tt.freqHz, dt, 0.5)
					if v != 0 {
						t.Fatalf("step %d: Next() = %v, want silence above Nyquist", i, v)
					}
					if p := o.Phase(); p < 0 || p >= 1 {
						t.Fatalf("step %d: phase = %v, want [0, 1)", i, p)
					}
				}

				// Dropping back into range resumes a bounded waveform.
				for i := 0; i < 1000; i++ {
					v := o.Next(440, dt, 0.5)
					if v < -1 || v > 1 {
						t.Fatalf("step %d: Next() = %v, want [-1, 1]", i, v)
					}
				}
			})
		}
	}
}

func TestOscillatorInvalidShape(t *testing.T) {
	if _, err := NewOscillator(Shape(42), nil); err == nil {
		t.Fatal("expected error for invalid shape")
	}

	o, err := NewOscillator(ShapeSquare, nil)
	if err != nil {
		t.Fatalf("NewOscillator() error = %v", err)
	}
	o.SetShape(Shape(-1))
	if o.Shape() != ShapeSquare {
		t.Fatalf("Shape() = %v, want square", o.Shape())
	}
}

func TestTableGeneratorNormalizesAmplitude(t *testing.T) {
	tbl, err := NewSineTable(256, 5)
	if err != nil {
		t.Fatalf("NewSineTable() error = %v", err)
	}

	g := NewTableGenerator(tbl)
	if got := g.Generate(ShapeSine, 0.25, 0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Generate(sine, 0.25) = %v, want 1", got)
	}
	if got := g.Generate(ShapeSaw, 0.75, 0); got != 0.5 {
		t.Fatalf("Generate(saw, 0.75) = %v, want 0.5", got)
	}
}
