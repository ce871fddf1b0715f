package voice

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/harmonic"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

// AdditiveInput holds the Additive controls for one sample.
type AdditiveInput struct {
	BaseHz   float64
	PitchCV  float64
	Levels   harmonic.Levels
	CutoffHz float64
	CutoffCV float64
	Gate     float64
	Envelope envelope.Params
	Amp      AmpCV
}

// Additive is the eight-partial instrument. Output is ±5 V.
type Additive struct {
	bank   *harmonic.Bank
	filter *onepole.Filter
	env    *envelope.ADSR
}

// NewAdditive constructs an Additive voice.
func NewAdditive(opts ...Option) (*Additive, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	gen := cfg.gen
	if gen == nil {
		gen = osc.NewTableGenerator(nil)
	}

	bankOpts := append([]harmonic.Option{harmonic.WithGenerator(gen)}, cfg.bankOpts...)

	bank, err := harmonic.New(bankOpts...)
	if err != nil {
		return nil, fmt.Errorf("voice: additive bank: %w", err)
	}

	filter, err := onepole.New(onepole.WithMode(onepole.ModeRC))
	if err != nil {
		return nil, fmt.Errorf("voice: additive filter: %w", err)
	}

	env, err := envelope.New(envelope.WithDecayCurve(cfg.decayCurve))
	if err != nil {
		return nil, fmt.Errorf("voice: additive envelope: %w", err)
	}

	return &Additive{bank: bank, filter: filter, env: env}, nil
}

// Process renders one sample.
func (a *Additive) Process(in *AdditiveInput, clk core.Clock) float64 {
	dt := clk.Normalize().SampleTime

	raw := a.bank.Process(pitchHz(in.BaseHz, in.PitchCV), dt, &in.Levels)
	cutoff := onepole.ModulateCutoff(in.CutoffHz, in.CutoffCV, onepole.CurveExponential)
	filtered := a.filter.Process(raw, cutoff, dt)
	level := a.env.ProcessVoltage(in.Gate, in.Envelope, dt)

	return filtered * level * in.Amp.Factor()
}

// Bank exposes the harmonic bank, e.g. to flip its mode switch.
func (a *Additive) Bank() *harmonic.Bank { return a.bank }

// Envelope exposes the envelope for inspection.
func (a *Additive) Envelope() *envelope.ADSR { return a.env }

// Reset clears phases, filter memory and the envelope.
func (a *Additive) Reset() {
	a.bank.Reset()
	a.filter.Reset()
	a.env.Reset()
}
