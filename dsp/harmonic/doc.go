// Package harmonic implements an eight-slot additive oscillator bank.
//
// Each Slot owns its own phase, frequency and amplitude. Frequencies are
// either integer multiples of a base frequency (ModeRatio) or read from
// one of three fixed tables selected by a tri-state switch (ModeFixed with
// SpacingStandard, SpacingLog or SpacingSqrt). Amplitudes come from a
// manual level or, when connected, a control voltage scaled by 1/10.
//
// The summed output is divided by NumSlots, so the bank never exceeds its
// output gain no matter how many slots are active.
package harmonic
