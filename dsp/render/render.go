package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNoSource is returned when a nil Sampler is rendered.
var ErrNoSource = errors.New("render: no source")

// Render fills dst with consecutive samples from s.
func Render(dst []float64, s voice.Sampler, clk core.Clock) error {
	if s == nil {
		return ErrNoSource
	}

	clk = clk.Normalize()
	for i := range dst {
		dst[i] = s.Sample(clk)
	}

	return nil
}

// Blocks renders n samples from s in blocks of cfg.BlockSize and hands each
// block to fn. The block slice is reused between calls; fn must copy what
// it keeps. The last block may be shorter.
func Blocks(s voice.Sampler, cfg core.ProcessorConfig, n int, fn func(block []float64) error) error {
	if s == nil {
		return ErrNoSource
	}

	if n < 0 {
		return fmt.Errorf("render: sample count must be >= 0: %d", n)
	}

	size := cfg.BlockSize
	if size <= 0 {
		size = core.DefaultProcessorConfig().BlockSize
	}

	clk := cfg.Clock()
	buf := make([]float64, size)

	for done := 0; done < n; {
		block := buf[:min(size, n-done)]
		if err := Render(block, s, clk); err != nil {
			return err
		}

		if err := fn(block); err != nil {
			return fmt.Errorf("render: block at %d: %w", done, err)
		}

		done += len(block)
	}

	return nil
}

// Normalize multiplies dst by gain in place.
func Normalize(dst []float64, gain float64) {
	vecmath.ScaleBlock(dst, dst, gain)
}

// PeakNormalize scales dst so its largest magnitude equals target and
// returns the gain applied. Silent or non-finite buffers are left
// untouched and report a gain of 1.
func PeakNormalize(dst []float64, target float64) float64 {
	var peak float64
	for _, v := range dst {
		peak = math.Max(peak, math.Abs(v))
	}

	if peak == 0 || !core.IsFinite(peak) {
		return 1
	}

	gain := target / peak
	Normalize(dst, gain)

	return gain
}

// Mix adds every source into dst. Each source must have len(dst) samples.
func Mix(dst []float64, srcs ...[]float64) error {
	for i, src := range srcs {
		if len(src) != len(dst) {
			return fmt.Errorf("render: mix source %d has %d samples, want %d", i, len(src), len(dst))
		}
	}

	for _, src := range srcs {
		vecmath.AddBlockInPlace(dst, src)
	}

	return nil
}
