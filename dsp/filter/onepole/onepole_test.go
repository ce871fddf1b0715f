package onepole

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

func newTestFilter(t *testing.T, opts ...Option) *Filter {
	t.Helper()

	f, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return f
}

func samplesToSettle(f *Filter, input, cutoff, dt, eps float64, limit int) int {
	for i := 1; i <= limit; i++ {
		if math.Abs(f.Process(input, cutoff, dt)-input) < eps {
			return i
		}
	}

	return -1
}

func TestConstantInputConverges(t *testing.T) {
	const eps = 1e-3
	dt := 1.0 / 44100

	var counts []int
	for _, fc := range []float64{100, 1000, 10000} {
		f := newTestFilter(t)
		alpha := f.Alpha(fc, dt)
		limit := int(math.Ceil(math.Log(eps)/math.Log(1-alpha))) + 1

		n := samplesToSettle(f, 1, fc, dt, eps, 10*limit)
		if n < 0 || n > limit {
			t.Fatalf("fc=%v: settled after %d samples, want <= %d", fc, n, limit)
		}
		counts = append(counts, n)
	}

	// Settling time scales with 1/cutoff while the pole is slow.
	ratio := float64(counts[0]) / float64(counts[1])
	if ratio < 9 || ratio > 11 {
		t.Fatalf("settle ratio 100 Hz / 1 kHz = %v, want ~10", ratio)
	}
}

func TestNoOvershoot(t *testing.T) {
	for _, mode := range []Mode{ModeRC, ModeSwept} {
		t.Run(mode.String(), func(t *testing.T) {
			f := newTestFilter(t, WithMode(mode))
			rng := rand.New(rand.NewSource(7))

			lo, hi := 0.0, 0.0
			for i := 0; i < 20000; i++ {
				x := rng.Float64()*2 - 1
				fc := 20 + rng.Float64()*20000
				lo = math.Min(lo, x)
				hi = math.Max(hi, x)

				y := f.Process(x, fc, 1.0/44100)
				if y < lo-1e-12 || y > hi+1e-12 {
					t.Fatalf("step %d: output %v outside historical range [%v, %v]", i, y, lo, hi)
				}
			}
		})
	}
}

func TestAlphaRange(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		cutoff float64
		dt     float64
	}{
		{name: "rc low", mode: ModeRC, cutoff: 0, dt: 1.0 / 44100},
		{name: "rc high", mode: ModeRC, cutoff: 1e9, dt: 1.0 / 8000},
		{name: "rc nan", mode: ModeRC, cutoff: math.NaN(), dt: 1.0 / 44100},
		{name: "swept high", mode: ModeSwept, cutoff: 20000, dt: 1.0 / 8000},
		{name: "swept negative", mode: ModeSwept, cutoff: -5, dt: 1.0 / 44100},
		{name: "huge dt", mode: ModeRC, cutoff: 1000, dt: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFilter(t, WithMode(tt.mode))
			a := f.Alpha(tt.cutoff, tt.dt)
			if !(a >= 0 && a <= 1) {
				t.Fatalf("Alpha() = %v, want [0, 1]", a)
			}
		})
	}
}

func TestAlphaRCFormula(t *testing.T) {
	f := newTestFilter(t)
	dt := 1.0 / 48000
	fc := 1000.0
	want := dt / (dt + 1/(2*math.Pi*fc))

	if got := f.Alpha(fc, dt); math.Abs(got-want) > 1e-15 {
		t.Fatalf("Alpha() = %v, want %v", got, want)
	}
}

func TestAlphaSweptFormula(t *testing.T) {
	f := newTestFilter(t, WithMode(ModeSwept), WithSweepCoefficient(2e-4))
	dt := 1.0 / 48000

	if got, want := f.Alpha(1000, dt), dt*2e-4*1e6; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Alpha() = %v, want %v", got, want)
	}
	if got := f.Alpha(20000, 1); got != 1 {
		t.Fatalf("Alpha() = %v, want clamp to 1", got)
	}
}

func TestZeroDtHolds(t *testing.T) {
	f := newTestFilter(t)
	f.SetState(0.5)

	for _, dt := range []float64{0, -1, math.NaN()} {
		if got := f.Process(1, 1000, dt); got != 0.5 {
			t.Fatalf("Process(dt=%v) = %v, want 0.5", dt, got)
		}
	}
}

func TestNonFiniteInputDoesNotPoison(t *testing.T) {
	f := newTestFilter(t)
	f.Process(math.NaN(), 1000, 1.0/44100)
	f.Process(math.Inf(1), 1000, 1.0/44100)

	out := make([]float64, 64)
	for i := range out {
		out[i] = f.Process(0.25, 1000, 1.0/44100)
	}
	testutil.RequireFinite(t, out)
}

func TestProcessInPlaceMatchesProcess(t *testing.T) {
	a := newTestFilter(t)
	b := newTestFilter(t)

	in := testutil.Step(1, 10, 256)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = a.Process(x, 500, 1.0/48000)
	}

	got := append([]float64(nil), in...)
	b.ProcessInPlace(got, 500, 1.0/48000)

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
	if a.Output() != b.Output() {
		t.Fatalf("Output() mismatch: %v vs %v", a.Output(), b.Output())
	}
}

func TestModulateCutoff(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		cv    float64
		curve CutoffCurve
		want  float64
	}{
		{name: "linear none", base: 1000, cv: 0, curve: CurveLinear, want: 1000},
		{name: "linear half", base: 1000, cv: 5, curve: CurveLinear, want: 11000},
		{name: "linear clamp high", base: 1000, cv: 10, curve: CurveLinear, want: core.MaxCutoffHz},
		{name: "linear clamp low", base: 1000, cv: -10, curve: CurveLinear, want: core.MinCutoffHz},
		{name: "exp octave", base: 1000, cv: 1, curve: CurveExponential, want: 2000},
		{name: "exp down", base: 1000, cv: -2, curve: CurveExponential, want: 250},
		{name: "exp clamp", base: 1000, cv: 1e9, curve: CurveExponential, want: core.MaxCutoffHz},
		{name: "nan cv", base: 800, cv: math.NaN(), curve: CurveExponential, want: 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModulateCutoff(tt.base, tt.cv, tt.curve)
			if !core.NearlyEqual(got, tt.want, 1e-9) {
				t.Fatalf("ModulateCutoff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := New(WithMode(Mode(9))); err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if _, err := New(WithSweepCoefficient(0)); err == nil {
		t.Fatal("expected error for zero sweep coefficient")
	}
}

func TestReset(t *testing.T) {
	f := newTestFilter(t)
	f.Process(1, 20000, 1.0/44100)
	f.Reset()
	if f.Output() != 0 || f.State() != 0 {
		t.Fatalf("Reset() left output %v", f.Output())
	}
}
