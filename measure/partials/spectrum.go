package partials

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-synth/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// ErrTooShort is returned when a signal has fewer than two samples.
var ErrTooShort = errors.New("partials: signal must have at least 2 samples")

// Spectrum is a single-sided amplitude spectrum.
type Spectrum struct {
	sampleRate float64
	fftSize    int
	amplitude  []float64
}

// Partial is one spectral peak.
type Partial struct {
	FrequencyHz float64
	Amplitude   float64
}

// Analyze windows signal with a Hann window, zero-pads it to the next power
// of two and returns its amplitude spectrum over bins [0, fftSize/2].
func Analyze(signal []float64, sampleRate float64) (*Spectrum, error) {
	return AnalyzeWindow(signal, sampleRate, window.TypeHann)
}

// AnalyzeWindow is Analyze with a caller-selected window. window.TypeFlatTop
// reads off-bin partial amplitudes accurately at the cost of resolution.
func AnalyzeWindow(signal []float64, sampleRate float64, w window.Type) (*Spectrum, error) {
	if len(signal) < 2 {
		return nil, ErrTooShort
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("partials: sample rate must be > 0 and finite: %f", sampleRate)
	}

	fftSize := nextPowerOfTwo(len(signal))

	coeffs := window.Generate(w, len(signal))
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("partials: %v window of %d samples: %w", w, len(signal), err)
	}

	windowed, err := window.ApplyCoefficients(signal, coeffs)
	if err != nil {
		return nil, fmt.Errorf("partials: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("partials: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("partials: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	amp := make([]float64, bins)
	vecmath.Magnitude(amp, re, im)

	// A sinusoid of amplitude A peaks at A*N*gain/2.
	vecmath.ScaleBlockInPlace(amp, 2/(gain*float64(len(signal))))
	amp[0] *= 0.5

	return &Spectrum{sampleRate: sampleRate, fftSize: fftSize, amplitude: amp}, nil
}

// SampleRate returns the analysis sample rate.
func (s *Spectrum) SampleRate() float64 { return s.sampleRate }

// FFTSize returns the transform length.
func (s *Spectrum) FFTSize() int { return s.fftSize }

// BinHz returns the frequency spacing of adjacent bins.
func (s *Spectrum) BinHz() float64 { return s.sampleRate / float64(s.fftSize) }

// Amplitudes returns the per-bin amplitude. The slice must not be modified.
func (s *Spectrum) Amplitudes() []float64 { return s.amplitude }

// AmplitudeAt returns the largest amplitude within one bin of freqHz.
func (s *Spectrum) AmplitudeAt(freqHz float64) float64 {
	k := int(math.Round(freqHz / s.BinHz()))
	peak := 0.0
	for i := k - 1; i <= k+1; i++ {
		if i < 0 || i >= len(s.amplitude) {
			continue
		}

		if s.amplitude[i] > peak {
			peak = s.amplitude[i]
		}
	}

	return peak
}

// Fundamental returns the frequency of the strongest non-DC bin.
func (s *Spectrum) Fundamental() float64 {
	best := 1
	for i := 2; i < len(s.amplitude); i++ {
		if s.amplitude[i] > s.amplitude[best] {
			best = i
		}
	}

	return float64(best) * s.BinHz()
}

// Peaks returns up to n local maxima above floor, strongest first.
func (s *Spectrum) Peaks(n int, floor float64) []Partial {
	var out []Partial
	for i := 1; i+1 < len(s.amplitude); i++ {
		a := s.amplitude[i]
		if a < floor || a < s.amplitude[i-1] || a <= s.amplitude[i+1] {
			continue
		}

		out = append(out, Partial{FrequencyHz: float64(i) * s.BinHz(), Amplitude: a})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Amplitude > out[j].Amplitude })

	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
