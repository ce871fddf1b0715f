// Package render drives voice.Sampler values outside the per-sample call:
// filling buffers, block rendering at the host block size, mixing and gain,
// and exporting audio through github.com/gopxl/beep (a beep.Streamer
// adapter and WAV encoding).
package render
