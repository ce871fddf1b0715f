package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// DefaultSweepCoefficient is k in the ModeSwept law. alpha reaches about
// 0.9 at 20 kHz for a 44.1 kHz sample rate.
const DefaultSweepCoefficient = 1e-4

// Mode selects the coefficient law.
type Mode int

const (
	ModeRC Mode = iota
	ModeSwept
)

func (m Mode) String() string {
	switch m {
	case ModeRC:
		return "rc"
	case ModeSwept:
		return "swept"
	default:
		return "unknown"
	}
}

// CutoffCurve selects how a cutoff CV combines with the base cutoff.
type CutoffCurve int

const (
	// CurveLinear adds cv/10 of the full cutoff range to the base.
	CurveLinear CutoffCurve = iota
	// CurveExponential multiplies the base by 2^(cv/10*10), one octave
	// per volt.
	CurveExponential
)

func (c CutoffCurve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// ModulateCutoff combines a base cutoff in Hz with a CV in volts and
// clamps the result to the safe cutoff range.
func ModulateCutoff(baseHz, cvVolts float64, curve CutoffCurve) float64 {
	if !core.IsFinite(cvVolts) {
		cvVolts = 0
	}

	cv := cvVolts / core.VoltsPerUnit

	switch curve {
	case CurveExponential:
		// Bound the exponent so 2^x stays finite for absurd CV.
		x := core.Clamp(cv*10, -20, 20)
		return core.ClampCutoff(baseHz * core.Exp2(x))
	default:
		return core.ClampCutoff(baseHz + cv*core.MaxCutoffHz)
	}
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	mode   Mode
	sweepK float64
}

func defaultConfig() config {
	return config{mode: ModeRC, sweepK: DefaultSweepCoefficient}
}

// WithMode selects the coefficient law.
func WithMode(mode Mode) Option {
	return func(cfg *config) error {
		if mode != ModeRC && mode != ModeSwept {
			return fmt.Errorf("onepole: invalid mode: %d", mode)
		}

		cfg.mode = mode

		return nil
	}
}

// WithSweepCoefficient sets k for ModeSwept. Must be finite and > 0.
func WithSweepCoefficient(k float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(k) || k <= 0 {
			return fmt.Errorf("onepole: sweep coefficient must be > 0 and finite: %f", k)
		}

		cfg.sweepK = k

		return nil
	}
}

// Filter is a one-pole low-pass. The zero state is output 0.
type Filter struct {
	mode   Mode
	sweepK float64
	output float64
}

// New constructs a Filter.
func New(opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Filter{mode: cfg.mode, sweepK: cfg.sweepK}, nil
}

// Alpha returns the smoothing coefficient for cutoffHz (clamped) and a
// sample period dt. A non-positive dt yields 0, which holds the output.
func (f *Filter) Alpha(cutoffHz, dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0
	}

	fc := core.ClampCutoff(cutoffHz)

	if f.mode == ModeSwept {
		return core.Clamp01(dt * f.sweepK * fc * fc)
	}

	rc := 1 / (2 * math.Pi * fc)

	return dt / (dt + rc)
}

// Process filters one sample.
func (f *Filter) Process(input, cutoffHz, dt float64) float64 {
	alpha := f.Alpha(cutoffHz, dt)
	f.output += alpha * (core.Sanitize(input) - f.output)
	f.output = core.FlushDenormals(f.output)

	return f.output
}

// ProcessInPlace filters buf in place at a fixed cutoff.
func (f *Filter) ProcessInPlace(buf []float64, cutoffHz, dt float64) {
	alpha := f.Alpha(cutoffHz, dt)
	y := f.output
	for i, x := range buf {
		y += alpha * (core.Sanitize(x) - y)
		y = core.FlushDenormals(y)
		buf[i] = y
	}
	f.output = y
}

// Mode returns the coefficient law.
func (f *Filter) Mode() Mode { return f.mode }

// SweepCoefficient returns k for ModeSwept.
func (f *Filter) SweepCoefficient() float64 { return f.sweepK }

// Output returns the last computed value.
func (f *Filter) Output() float64 { return f.output }

// State returns the filter memory.
func (f *Filter) State() float64 { return f.output }

// SetState restores filter memory. Non-finite values reset to 0.
func (f *Filter) SetState(y float64) { f.output = core.Sanitize(y) }

// Reset clears the filter memory.
func (f *Filter) Reset() { f.output = 0 }
