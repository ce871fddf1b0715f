package main

import (
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/harmonic"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/voice"
)

// patch holds the note shared by every instrument.
type patch struct {
	baseHz  float64
	gateOff float64
	env     envelope.Params
}

type instrument struct {
	name string
	// fullScale is the output voltage that maps to 0 dBFS.
	fullScale float64
	build     func(p patch) (voice.Sampler, error)
}

var registry = []instrument{
	{"additive", 5, buildAdditive},
	{"trio", 5, buildTrio},
	{"analog", 10, buildAnalog},
}

func buildAdditive(p patch) (voice.Sampler, error) {
	v, err := voice.NewAdditive()
	if err != nil {
		return nil, err
	}

	in := &voice.AdditiveInput{
		BaseHz:   p.baseHz,
		Levels:   harmonic.ManualLevels(1, 0.5, 0.33, 0.25, 0.2, 0.17, 0.14, 0.125),
		CutoffHz: 2500,
		Envelope: p.env,
	}

	return voice.Bind(v, in, func(t float64, in *voice.AdditiveInput) {
		in.Gate = voice.GateVolts(t, 0, p.gateOff)
		// One octave of cutoff sweep over the gate.
		in.CutoffCV = min(t/p.gateOff, 1)
	}), nil
}

func buildTrio(p patch) (voice.Sampler, error) {
	v, err := voice.NewTrio()
	if err != nil {
		return nil, err
	}

	shapes := [voice.NumChains]osc.Shape{osc.ShapeSaw, osc.ShapeSquare, osc.ShapeTriangle}
	ratios := [voice.NumChains]float64{1, 1.5, 2}

	in := &voice.TrioInput{}
	for i := range in.Chains {
		in.Chains[i] = voice.ChainInput{
			Shape:      shapes[i],
			BaseHz:     p.baseHz * ratios[i],
			PulseWidth: 0.3,
			CutoffHz:   1200 * float64(i+1),
			Envelope:   p.env,
		}
	}

	// The root chain blends all three waveforms instead of a single shape.
	root := &in.Chains[0]
	root.TriLevel, root.SawLevel, root.SqrLevel = 0.3, 0.5, 0.2

	return voice.Bind(v, in, func(t float64, in *voice.TrioInput) {
		// Stagger the chain gates.
		for i := range in.Chains {
			in.Chains[i].Gate = voice.GateVolts(t, 0.1*float64(i), p.gateOff)
		}
	}), nil
}

func buildAnalog(p patch) (voice.Sampler, error) {
	v, err := voice.NewAnalog(voice.WithDecayCurve(envelope.CurveExponential))
	if err != nil {
		return nil, err
	}

	in := &voice.AnalogInput{
		Shape:      osc.ShapeSquare,
		BaseHz:     p.baseHz / 2,
		PulseWidth: 0.5,
		PWMAmount:  0.4,
		LFORateHz:  2,
		LFOLevel:   1,
		CutoffHz:   800,
		Envelope:   p.env,
	}

	return voice.Bind(v, in, func(t float64, in *voice.AnalogInput) {
		in.Gate = voice.GateVolts(t, 0, p.gateOff)
	}), nil
}
