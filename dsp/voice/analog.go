package voice

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/filter/onepole"
	"github.com/cwbudde/algo-synth/dsp/osc"
)

const analogOutputGain = 10.0

// AnalogInput holds the Analog controls for one sample.
type AnalogInput struct {
	Shape      osc.Shape
	BaseHz     float64
	PitchCV    float64
	PulseWidth float64
	// PWMAmount scales the PWM voltage, PWMCV plus the internal LFO; the
	// width offset is PWMAmount*volts/10.
	PWMAmount float64
	PWMCV     float64
	// LFORateHz, LFOPitchCV and LFOLevel drive the internal triangle LFO.
	// A zero LFOLevel leaves it silent.
	LFORateHz  float64
	LFOPitchCV float64
	LFOLevel   float64
	CutoffHz   float64
	CutoffCV   float64
	Gate       float64
	Envelope   envelope.Params
	Amp        AmpCV
}

// Analog is the single-oscillator instrument. Output is ±10 V.
type Analog struct {
	osc    *osc.Oscillator
	lfo    *osc.LFO
	filter *onepole.Filter
	env    *envelope.ADSR
}

// NewAnalog constructs an Analog voice.
func NewAnalog(opts ...Option) (*Analog, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	o, err := osc.NewOscillator(osc.ShapeSaw, cfg.gen)
	if err != nil {
		return nil, fmt.Errorf("voice: analog oscillator: %w", err)
	}

	lfo, err := osc.NewLFO(osc.ShapeTriangle, nil)
	if err != nil {
		return nil, fmt.Errorf("voice: analog lfo: %w", err)
	}

	filter, err := onepole.New(onepole.WithMode(onepole.ModeRC))
	if err != nil {
		return nil, fmt.Errorf("voice: analog filter: %w", err)
	}

	env, err := envelope.New(envelope.WithDecayCurve(cfg.decayCurve))
	if err != nil {
		return nil, fmt.Errorf("voice: analog envelope: %w", err)
	}

	return &Analog{osc: o, lfo: lfo, filter: filter, env: env}, nil
}

// Process renders one sample.
func (a *Analog) Process(in *AnalogInput, clk core.Clock) float64 {
	dt := clk.Normalize().SampleTime

	a.osc.SetShape(in.Shape)

	lfo := a.lfo.Process(in.LFORateHz, in.LFOPitchCV, in.LFOLevel, dt)
	raw := a.osc.Next(pitchHz(in.BaseHz, in.PitchCV), dt, pulseWidth(in, lfo))
	cutoff := onepole.ModulateCutoff(in.CutoffHz, in.CutoffCV, onepole.CurveExponential)
	filtered := a.filter.Process(raw, cutoff, dt)
	level := a.env.ProcessVoltage(in.Gate, in.Envelope, dt)

	return analogOutputGain * filtered * level * in.Amp.Factor()
}

// pulseWidth applies PWM from the input CV plus lfoVolts.
func pulseWidth(in *AnalogInput, lfoVolts float64) float64 {
	mod := in.PWMAmount * (in.PWMCV + lfoVolts) / core.VoltsPerUnit
	if !core.IsFinite(mod) {
		mod = 0
	}

	return core.Clamp(in.PulseWidth+mod, osc.MinPulseWidth, osc.MaxPulseWidth)
}

// Oscillator exposes the oscillator, e.g. for hard sync.
func (a *Analog) Oscillator() *osc.Oscillator { return a.osc }

// LFO exposes the PWM LFO.
func (a *Analog) LFO() *osc.LFO { return a.lfo }

// Envelope exposes the envelope for inspection.
func (a *Analog) Envelope() *envelope.ADSR { return a.env }

// Reset clears the oscillator and LFO phases, filter memory and envelope.
func (a *Analog) Reset() {
	a.osc.Reset()
	a.lfo.Reset()
	a.filter.Reset()
	a.env.Reset()
}
