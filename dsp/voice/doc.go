// Package voice composes oscillators, the harmonic bank, envelopes and the
// one-pole filter into the three monophonic instruments:
//
//   - Additive: harmonic bank -> RC low-pass -> ADSR -> amplitude CV, ±5 V.
//   - Trio: three oscillator -> swept low-pass -> ADSR chains, averaged,
//     then amplitude CV, ±5 V. Each chain plays one shape or a
//     triangle/saw/square level mix.
//   - Analog: one pulse-width-modulated oscillator -> RC low-pass -> ADSR
//     -> amplitude CV, ±10 V. PWM comes from a CV plus a built-in LFO.
//
// Every instrument reads a plain input struct and a core.Clock once per
// sample and returns one sample. Instruments are single-owner: a voice
// must not be processed from more than one goroutine.
//
// Bind pairs an instrument with its input and an optional Automation so the
// result satisfies Sampler and can be rendered by package render.
package voice
