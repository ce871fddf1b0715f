package envelope

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const (
	// releaseFloor is the level below which Release snaps to Idle.
	releaseFloor = 0.001

	// completionSlack absorbs accumulated rounding in ramp completion
	// tests so a ramp finishes on its nominal sample.
	completionSlack = 1e-9

	// expCurveRate makes an exponential decay cover all but 1/1000 of its
	// span in the nominal decay time (ln 1000).
	expCurveRate = 6.907755278982137
)

// Stage is one of the five envelope stages.
type Stage int

const (
	StageIdle Stage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Curve selects the decay shape.
type Curve int

const (
	// CurveDefault defers to the curve an ADSR was constructed with.
	// Step treats it as CurveLinear.
	CurveDefault Curve = iota
	// CurveLinear ramps at a constant rate.
	CurveLinear
	// CurveExponential approaches the sustain level with a fixed time
	// constant and snaps when the decay time has elapsed.
	CurveExponential
)

// Valid reports whether c names a concrete decay shape.
func (c Curve) Valid() bool {
	return c == CurveLinear || c == CurveExponential
}

func (c Curve) String() string {
	switch c {
	case CurveDefault:
		return "default"
	case CurveLinear:
		return "linear"
	case CurveExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Edge is a gate transition observed on one sample.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
)

// DetectEdge compares the previous and current gate.
func DetectEdge(prev, now bool) Edge {
	switch {
	case now && !prev:
		return EdgeRising
	case !now && prev:
		return EdgeFalling
	default:
		return EdgeNone
	}
}

// Params are the per-sample envelope controls. Times are in seconds,
// Sustain is a level in [0, 1].
type Params struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64

	// DecayCurve overrides the ADSR's constructor curve unless it is
	// CurveDefault.
	DecayCurve Curve
}

// State is the complete envelope memory.
type State struct {
	Stage Stage
	// Output is the envelope value in [0, 1].
	Output float64
	// Progress is the time in seconds spent in Stage.
	Progress float64
	// From is Output at the moment Stage was entered.
	From float64
}

func (s State) enter(stage Stage) State {
	s.Stage = stage
	s.Progress = 0
	s.From = s.Output

	return s
}

// Step advances s by one sample of length dt.
//
// Edges are applied first: EdgeRising enters Attack from any stage,
// EdgeFalling enters Release from any stage except Idle. The stage
// then runs for dt seconds and may complete into the next stage.
func Step(s State, p Params, edge Edge, dt float64) State {
	if !(dt > 0) || !core.IsFinite(dt) {
		dt = 0
	}

	switch edge {
	case EdgeRising:
		s = s.enter(StageAttack)
	case EdgeFalling:
		if s.Stage != StageIdle {
			s = s.enter(StageRelease)
		}
	}

	sustain := core.Clamp01(p.Sustain)

	switch s.Stage {
	case StageAttack:
		s.Progress += dt
		if !(p.Attack > 0) {
			s.Output = 1
		} else {
			s.Output += dt / p.Attack
		}

		if s.Output >= 1-completionSlack {
			s.Output = 1
			s = s.enter(StageDecay)
		}

	case StageDecay:
		s.Progress += dt
		decay := core.SafeDivisor(p.Decay)

		if p.DecayCurve == CurveExponential {
			s.Output = sustain + (s.Output-sustain)*expDecay(dt, decay)
		} else {
			s.Output -= dt * (s.From - sustain) / decay
		}

		if s.Output <= sustain+completionSlack || s.Progress >= decay-completionSlack {
			s.Output = sustain
			s = s.enter(StageSustain)
		}

	case StageSustain:
		s.Progress += dt
		s.Output = sustain

	case StageRelease:
		s.Progress += dt
		release := core.SafeDivisor(p.Release)
		s.Output -= dt * s.From / release

		if s.Output <= releaseFloor || s.Progress >= release-completionSlack {
			s.Output = 0
			s = s.enter(StageIdle)
		}

	default:
		s.Stage = StageIdle
		s.Output = 0
		s.Progress += dt
	}

	s.Output = core.Clamp01(s.Output)

	return s
}

func expDecay(dt, decay float64) float64 {
	return math.Exp(-expCurveRate * dt / decay)
}
