package osc

import (
	"fmt"
	"math"
)

// DefaultTableSize is the sine table length used by instruments.
const DefaultTableSize = 4096

// Table is a precomputed single sine cycle. It is immutable after
// construction and safe for concurrent reads.
type Table struct {
	samples   []float64
	amplitude float64
}

// NewSineTable fills size samples with amplitude*sin(2*pi*i/size).
func NewSineTable(size int, amplitude float64) (*Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("osc: table size must be > 0: %d", size)
	}

	if math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("osc: table amplitude must be finite: %f", amplitude)
	}

	samples := make([]float64, size)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*float64(i)/float64(size))
	}

	return &Table{samples: samples, amplitude: amplitude}, nil
}

// Lookup returns the sample at floor(phase*size) mod size.
// No interpolation is performed.
func (t *Table) Lookup(phase float64) float64 {
	n := len(t.samples)
	if !(phase >= 0) || math.IsInf(phase, 1) {
		phase = 0
	} else if phase >= 1 {
		phase -= math.Floor(phase)
	}

	i := int(phase*float64(n)) % n

	return t.samples[i]
}

// Len returns the number of samples per cycle.
func (t *Table) Len() int { return len(t.samples) }

// Amplitude returns the peak value the table was built with.
func (t *Table) Amplitude() float64 { return t.amplitude }
