// Package envelope provides a gated attack/decay/sustain/release generator.
//
// The state machine is exposed as a pure transition function, Step, that
// maps (State, Params, Edge, dt) to the next State. ADSR wraps Step with
// gate edge detection for per-sample use:
//
//	env, _ := envelope.New()
//	p := envelope.Params{Attack: 0.01, Decay: 0.2, Sustain: 0.6, Release: 0.5}
//	for i := range out {
//	    out[i] *= env.Process(gateHigh, p, dt)
//	}
//
// A rising gate edge always enters Attack from the current level, so a
// re-trigger during Release ramps up from where the tail was instead of
// dropping to silence. A falling edge enters Release from any active stage.
package envelope
