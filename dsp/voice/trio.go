package voice

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

// NumChains is the number of oscillator chains in a Trio.
const NumChains = 3

const trioOutputGain = 5.0

// ChainInput holds the controls of one Trio chain for one sample.
// TriLevel, SawLevel and SqrLevel mix three waveforms from the chain's
// single phase. When all three are zero the chain renders Shape alone.
type ChainInput struct {
	Shape      osc.Shape
	TriLevel   float64
	SawLevel   float64
	SqrLevel   float64
	BaseHz     float64
	PitchCV    float64
	PulseWidth float64
	CutoffHz   float64
	CutoffCV   float64
	Gate       float64
	Envelope   envelope.Params
}

// TrioInput holds the Trio controls for one sample.
type TrioInput struct {
	Chains [NumChains]ChainInput
	Amp    AmpCV
}

// Chain is one oscillator -> swept low-pass -> envelope path.
type Chain struct {
	osc    *osc.Oscillator
	filter *onepole.Filter
	env    *envelope.ADSR
}

func newChain(cfg config) (Chain, error) {
	o, err := osc.NewOscillator(osc.ShapeSine, cfg.gen)
	if err != nil {
		return Chain{}, err
	}

	filter, err := onepole.New(onepole.WithMode(onepole.ModeSwept), onepole.WithSweepCoefficient(cfg.sweepK))
	if err != nil {
		return Chain{}, err
	}

	env, err := envelope.New(envelope.WithDecayCurve(cfg.decayCurve))
	if err != nil {
		return Chain{}, err
	}

	return Chain{osc: o, filter: filter, env: env}, nil
}

// Process renders one chain sample in [-1, 1].
func (c *Chain) Process(in *ChainInput, dt float64) float64 {
	freq := pitchHz(in.BaseHz, in.PitchCV)

	var raw float64
	if mix := in.mix(); mix.Empty() {
		c.osc.SetShape(in.Shape)
		raw = c.osc.Next(freq, dt, in.PulseWidth)
	} else {
		raw = c.osc.NextMix(freq, dt, in.PulseWidth, mix)
	}

	cutoff := onepole.ModulateCutoff(in.CutoffHz, in.CutoffCV, onepole.CurveLinear)
	filtered := c.filter.Process(raw, cutoff, dt)

	return filtered * c.env.ProcessVoltage(in.Gate, in.Envelope, dt)
}

func (in *ChainInput) mix() osc.Mix {
	return osc.Mix{Triangle: in.TriLevel, Saw: in.SawLevel, Square: in.SqrLevel}
}

// Oscillator returns the chain oscillator.
func (c *Chain) Oscillator() *osc.Oscillator { return c.osc }

// Envelope returns the chain envelope.
func (c *Chain) Envelope() *envelope.ADSR { return c.env }

// Reset clears the chain state.
func (c *Chain) Reset() {
	c.osc.Reset()
	c.filter.Reset()
	c.env.Reset()
}

// Trio mixes three independent chains. Output is ±5 V.
type Trio struct {
	chains [NumChains]Chain
}

// NewTrio constructs a Trio voice.
func NewTrio(opts ...Option) (*Trio, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	t := &Trio{}
	for i := range t.chains {
		c, err := newChain(cfg)
		if err != nil {
			return nil, fmt.Errorf("voice: trio chain %d: %w", i, err)
		}

		t.chains[i] = c
	}

	return t, nil
}

// Process renders one sample.
func (t *Trio) Process(in *TrioInput, clk core.Clock) float64 {
	dt := clk.Normalize().SampleTime

	var sum float64
	for i := range t.chains {
		sum += t.chains[i].Process(&in.Chains[i], dt)
	}

	return trioOutputGain * sum / NumChains * in.Amp.Factor()
}

// Chain returns chain i. It panics if i is out of range.
func (t *Trio) Chain(i int) *Chain { return &t.chains[i] }

// Reset clears every chain.
func (t *Trio) Reset() {
	for i := range t.chains {
		t.chains[i].Reset()
	}
}
