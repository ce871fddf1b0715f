package voice

import "github.com/cwbudde/algo-synth/dsp/core"

// Sampler produces one output sample per call.
type Sampler interface {
	Sample(clk core.Clock) float64
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(clk core.Clock) float64

// Sample implements Sampler.
func (f SamplerFunc) Sample(clk core.Clock) float64 { return f(clk) }

// Processor is an instrument driven by an input struct of type In.
type Processor[In any] interface {
	Process(in *In, clk core.Clock) float64
	Reset()
}

// Automation updates in before the sample at time t (seconds since the
// binding started or was last reset).
type Automation[In any] func(t float64, in *In)

// Binding couples a Processor with its input and automation.
type Binding[In any] struct {
	proc     Processor[In]
	in       *In
	automate Automation[In]
	elapsed  float64
}

// Bind returns a Sampler that runs automate (if non-nil) and then p on in
// for every sample. in is owned by the Binding from here on.
func Bind[In any](p Processor[In], in *In, automate Automation[In]) *Binding[In] {
	if in == nil {
		in = new(In)
	}

	return &Binding[In]{proc: p, in: in, automate: automate}
}

// Sample implements Sampler.
func (b *Binding[In]) Sample(clk core.Clock) float64 {
	clk = clk.Normalize()

	if b.automate != nil {
		b.automate(b.elapsed, b.in)
	}

	out := b.proc.Process(b.in, clk)
	b.elapsed += clk.SampleTime

	return out
}

// Input returns the bound input.
func (b *Binding[In]) Input() *In { return b.in }

// Elapsed returns the time rendered so far in seconds.
func (b *Binding[In]) Elapsed() float64 { return b.elapsed }

// Reset rewinds the automation clock and resets the processor.
func (b *Binding[In]) Reset() {
	b.elapsed = 0
	b.proc.Reset()
}
