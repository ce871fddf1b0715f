package voice

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/harmonic"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

// Option mutates instrument construction. Options that do not apply to an
// instrument are accepted and ignored.
type Option func(*config) error

type config struct {
	gen        osc.Generator
	bankOpts   []harmonic.Option
	decayCurve envelope.Curve
	sweepK     float64
}

func defaultConfig() config {
	return config{
		decayCurve: envelope.CurveLinear,
		sweepK:     onepole.DefaultSweepCoefficient,
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// WithGenerator selects the waveform strategy. Additive defaults to the
// shared sine table; Trio and Analog default to analytic waveforms.
func WithGenerator(gen osc.Generator) Option {
	return func(cfg *config) error {
		if gen == nil {
			return fmt.Errorf("voice: generator must not be nil")
		}

		cfg.gen = gen

		return nil
	}
}

// WithBankOptions forwards options to the Additive harmonic bank.
func WithBankOptions(opts ...harmonic.Option) Option {
	return func(cfg *config) error {
		cfg.bankOpts = append(cfg.bankOpts, opts...)
		return nil
	}
}

// WithDecayCurve selects the default decay curve of every envelope.
func WithDecayCurve(curve envelope.Curve) Option {
	return func(cfg *config) error {
		if !curve.Valid() {
			return fmt.Errorf("voice: invalid decay curve: %d", curve)
		}

		cfg.decayCurve = curve

		return nil
	}
}

// WithSweepCoefficient sets k of the Trio swept filters.
func WithSweepCoefficient(k float64) Option {
	return func(cfg *config) error {
		if _, err := onepole.New(onepole.WithSweepCoefficient(k)); err != nil {
			return fmt.Errorf("voice: %w", err)
		}

		cfg.sweepK = k

		return nil
	}
}
