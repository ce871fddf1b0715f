package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	decayCurve Curve
}

func defaultConfig() config {
	return config{decayCurve: CurveLinear}
}

// WithDecayCurve selects the decay shape used when Params.DecayCurve is
// CurveDefault.
func WithDecayCurve(curve Curve) Option {
	return func(cfg *config) error {
		if !curve.Valid() {
			return fmt.Errorf("envelope: invalid decay curve: %d", curve)
		}

		cfg.decayCurve = curve

		return nil
	}
}

// ADSR is a gate-driven envelope. It is owned by a single voice and must
// not be shared between goroutines.
type ADSR struct {
	state      State
	gate       bool
	pending    Edge
	decayCurve Curve
}

// New constructs an idle envelope.
func New(opts ...Option) (*ADSR, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &ADSR{decayCurve: cfg.decayCurve}, nil
}

// Process samples the gate, advances one step of dt seconds and returns
// the envelope output.
func (e *ADSR) Process(gate bool, p Params, dt float64) float64 {
	switch {
	case gate && !e.gate:
		e.Trigger()
	case !gate && e.gate:
		e.Release()
	}

	return e.Next(p, dt)
}

// ProcessVoltage is Process with the gate read from a voltage against
// core.GateThreshold.
func (e *ADSR) ProcessVoltage(gateVolts float64, p Params, dt float64) float64 {
	return e.Process(core.GateHigh(gateVolts), p, dt)
}

// Trigger raises the gate and queues a rising edge for the next step.
// Calling Trigger while the gate is already high re-triggers Attack.
func (e *ADSR) Trigger() {
	e.gate = true
	e.pending = EdgeRising
}

// Release lowers the gate and queues a falling edge for the next step.
func (e *ADSR) Release() {
	if e.gate {
		e.pending = EdgeFalling
	}

	e.gate = false
}

// Next advances one step using the gate set by Trigger/Release. An explicit
// p.DecayCurve overrides the constructor default.
func (e *ADSR) Next(p Params, dt float64) float64 {
	if p.DecayCurve == CurveDefault {
		p.DecayCurve = e.decayCurve
	}

	edge := e.pending
	e.pending = EdgeNone
	e.state = Step(e.state, p, edge, dt)

	return e.state.Output
}

// Output returns the last envelope value.
func (e *ADSR) Output() float64 { return e.state.Output }

// Stage returns the current stage.
func (e *ADSR) Stage() Stage { return e.state.Stage }

// State returns a snapshot of the envelope memory.
func (e *ADSR) State() State { return e.state }

// SetState restores a snapshot taken with State.
func (e *ADSR) SetState(s State) {
	s.Output = core.Clamp01(s.Output)
	e.state = s
}

// Gate reports the last sampled gate.
func (e *ADSR) Gate() bool { return e.gate }

// Active reports whether the envelope is outside Idle.
func (e *ADSR) Active() bool { return e.state.Stage != StageIdle }

// Reset returns to Idle with output 0 and the gate low.
func (e *ADSR) Reset() {
	e.state = State{}
	e.gate = false
	e.pending = EdgeNone
}
