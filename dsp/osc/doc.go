// Package osc provides the periodic building blocks shared by every
// instrument: a normalized phase accumulator, a precomputed sine table and
// stateless waveform functions.
//
// Components:
//   - Phase: advances a phase in [0, 1) by frequency*dt and wraps it back.
//   - Table: an immutable one-cycle sine table with truncating lookup.
//   - Sine, Triangle, Saw, Square: pure functions of phase (and width).
//   - Generator: selects how a Shape is rendered. AnalyticGenerator computes
//     sine directly; TableGenerator reads it from a Table.
//   - Oscillator: a Phase bound to a Shape and a Generator. NextMix renders
//     a level-weighted Mix of shapes from the same phase.
//   - LFO: a slow Phase with a V/oct rate input and a ±5 V output.
//
// None of the waveforms are band-limited. Table lookup does not interpolate,
// which aliases audibly for high partials.
package osc
