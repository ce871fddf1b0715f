// Package onepole provides a single-pole exponential low-pass filter with a
// per-sample cutoff.
//
// Two coefficient laws are available:
//   - ModeRC: alpha = dt / (dt + 1/(2*pi*fc)), the analog RC response.
//   - ModeSwept: alpha = clamp(dt*k*fc^2, 0, 1), a faster-opening law used
//     for snappy cutoff modulation.
//
// Both keep alpha in [0, 1], so the update y += alpha*(x-y) is a convex
// combination and never overshoots its inputs. Cutoff is clamped to
// [20 Hz, 20 kHz] before the coefficient is computed.
//
// ModulateCutoff implements the two cutoff CV curves found across the
// instruments: a linear sum and an exponential 1V/oct sweep.
package onepole
