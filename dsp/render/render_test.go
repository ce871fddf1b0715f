package render

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

// counter returns 1, 2, 3, ... on successive calls.
func counter() voice.Sampler {
	var n float64
	return voice.SamplerFunc(func(core.Clock) float64 {
		n++
		return n
	})
}

func TestRender(t *testing.T) {
	dst := make([]float64, 5)
	if err := Render(dst, counter(), core.ClockAt(48000)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 2, 3, 4, 5}, 0)
}

func TestRenderNormalizesClock(t *testing.T) {
	var got core.Clock
	s := voice.SamplerFunc(func(clk core.Clock) float64 {
		got = clk
		return 0
	})

	if err := Render(make([]float64, 1), s, core.Clock{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !(got.SampleTime > 0) || !(got.SampleRate > 0) {
		t.Fatalf("sampler saw clock %+v", got)
	}
}

func TestRenderNoSource(t *testing.T) {
	if err := Render(make([]float64, 4), nil, core.ClockAt(48000)); !errors.Is(err, ErrNoSource) {
		t.Fatalf("Render(nil) error = %v, want ErrNoSource", err)
	}

	cfg := core.DefaultProcessorConfig()
	if err := Blocks(nil, cfg, 10, func([]float64) error { return nil }); !errors.Is(err, ErrNoSource) {
		t.Fatalf("Blocks(nil) error = %v, want ErrNoSource", err)
	}

	if _, err := NewStreamer(nil, core.ClockAt(48000), 1, 10); !errors.Is(err, ErrNoSource) {
		t.Fatalf("NewStreamer(nil) error = %v, want ErrNoSource", err)
	}
}

func TestBlocks(t *testing.T) {
	cfg := core.ApplyProcessorOptions(core.WithBlockSize(256))

	var sizes []int
	var got []float64
	err := Blocks(counter(), cfg, 1000, func(block []float64) error {
		sizes = append(sizes, len(block))
		got = append(got, block...)
		return nil
	})
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}

	wantSizes := []int{256, 256, 256, 232}
	if len(sizes) != len(wantSizes) {
		t.Fatalf("block sizes = %v, want %v", sizes, wantSizes)
	}
	for i := range sizes {
		if sizes[i] != wantSizes[i] {
			t.Fatalf("block sizes = %v, want %v", sizes, wantSizes)
		}
	}

	want := make([]float64, 1000)
	if err := Render(want, counter(), cfg.Clock()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestBlocksPropagatesError(t *testing.T) {
	sentinel := errors.New("sink full")
	calls := 0

	err := Blocks(counter(), core.DefaultProcessorConfig(), 2000, func([]float64) error {
		calls++
		if calls == 2 {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("Blocks() error = %v, want wrapped sentinel", err)
	}
	if calls != 2 {
		t.Fatalf("fn called %d times, want 2", calls)
	}
}

func TestBlocksRejectsNegativeCount(t *testing.T) {
	if err := Blocks(counter(), core.DefaultProcessorConfig(), -1, func([]float64) error { return nil }); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestNormalize(t *testing.T) {
	buf := []float64{1, -2, 0.5}
	Normalize(buf, 0.2)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.2, -0.4, 0.1}, 1e-15)
}

func TestPeakNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       []float64
		target   float64
		want     []float64
		wantGain float64
	}{
		{name: "scale up", in: []float64{0.1, -0.25, 0.2}, target: 1, want: []float64{0.4, -1, 0.8}, wantGain: 4},
		{name: "scale down", in: []float64{10, -5}, target: 0.5, want: []float64{0.5, -0.25}, wantGain: 0.05},
		{name: "silent", in: []float64{0, 0}, target: 1, want: []float64{0, 0}, wantGain: 1},
		{name: "non-finite", in: []float64{math.Inf(1), 1}, target: 1, want: []float64{math.Inf(1), 1}, wantGain: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]float64(nil), tt.in...)
			gain := PeakNormalize(buf, tt.target)

			if !core.NearlyEqual(gain, tt.wantGain, 1e-12) {
				t.Fatalf("PeakNormalize() gain = %v, want %v", gain, tt.wantGain)
			}
			for i := range buf {
				if buf[i] != tt.want[i] && !core.NearlyEqual(buf[i], tt.want[i], 1e-12) {
					t.Fatalf("buf[%d] = %v, want %v", i, buf[i], tt.want[i])
				}
			}
		})
	}
}

func TestMix(t *testing.T) {
	dst := []float64{1, 1, 1}
	if err := Mix(dst, []float64{1, 2, 3}, []float64{-1, 0, 0.5}); err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{1, 3, 4.5}, 0)

	before := append([]float64(nil), dst...)
	if err := Mix(dst, []float64{1, 1, 1}, []float64{1}); err == nil {
		t.Fatal("Mix() expected length error")
	}
	testutil.RequireSliceNearlyEqual(t, dst, before, 0)
}
