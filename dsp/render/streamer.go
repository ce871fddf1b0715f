package render

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/voice"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Streamer adapts a voice.Sampler to beep.Streamer. Samples are multiplied
// by gain, clamped to [-1, 1] and written to both channels.
type Streamer struct {
	src       voice.Sampler
	clk       core.Clock
	gain      float64
	remaining int
}

var _ beep.Streamer = (*Streamer)(nil)

// NewStreamer returns a Streamer that emits n frames from s. gain maps the
// voltage convention of s to [-1, 1], e.g. 0.2 for a ±5 V voice.
func NewStreamer(s voice.Sampler, clk core.Clock, gain float64, n int) (*Streamer, error) {
	if s == nil {
		return nil, ErrNoSource
	}

	if n < 0 {
		return nil, fmt.Errorf("render: frame count must be >= 0: %d", n)
	}

	if !core.IsFinite(gain) {
		return nil, fmt.Errorf("render: gain must be finite: %f", gain)
	}

	return &Streamer{src: s, clk: clk.Normalize(), gain: gain, remaining: n}, nil
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.remaining <= 0 {
		return 0, false
	}

	n := min(len(samples), s.remaining)
	for i := range samples[:n] {
		v := core.Clamp(s.gain*s.src.Sample(s.clk), -1, 1)
		samples[i][0] = v
		samples[i][1] = v
	}

	s.remaining -= n

	return n, true
}

// Err implements beep.Streamer. Rendering cannot fail once started.
func (s *Streamer) Err() error { return nil }

// Remaining returns the number of frames left.
func (s *Streamer) Remaining() int { return s.remaining }

// Format returns the 16-bit stereo beep.Format for clk.
func Format(clk core.Clock) beep.Format {
	clk = clk.Normalize()

	return beep.Format{
		SampleRate:  beep.SampleRate(int(math.Round(clk.SampleRate))),
		NumChannels: 2,
		Precision:   2,
	}
}

// WriteWAV renders n frames of s into w as a 16-bit stereo WAV file.
func WriteWAV(w io.WriteSeeker, s voice.Sampler, clk core.Clock, gain float64, n int) error {
	st, err := NewStreamer(s, clk, gain, n)
	if err != nil {
		return err
	}

	if err := wav.Encode(w, st, Format(clk)); err != nil {
		return fmt.Errorf("render: wav: %w", err)
	}

	return nil
}
