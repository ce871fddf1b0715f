package osc

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MinPulseWidth and MaxPulseWidth bound the square duty cycle so the
	// output never degenerates into silence or DC.
	MinPulseWidth = 0.01
	MaxPulseWidth = 0.99
)

// Shape selects a waveform.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSaw
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeTriangle:
		return "triangle"
	case ShapeSaw:
		return "saw"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseShape resolves a shape name as returned by Shape.String.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return ShapeSine, nil
	case "triangle", "tri":
		return ShapeTriangle, nil
	case "saw", "sawtooth":
		return ShapeSaw, nil
	case "square", "pulse", "sqr":
		return ShapeSquare, nil
	default:
		return 0, fmt.Errorf("osc: unknown shape %q", name)
	}
}

// ShapeFromKnob maps a continuous selector value to one of the four
// shapes, rounding to the nearest position.
func ShapeFromKnob(v float64) Shape {
	switch {
	case !(v >= 0.5):
		return ShapeSine
	case v < 1.5:
		return ShapeTriangle
	case v < 2.5:
		return ShapeSaw
	default:
		return ShapeSquare
	}
}

// Valid reports whether s names one of the four shapes.
func (s Shape) Valid() bool {
	return s >= ShapeSine && s <= ShapeSquare
}

// Sine returns sin(2*pi*phase).
func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// Triangle rises from -1 to 1 over [0, 0.5) and falls back over [0.5, 1).
func Triangle(phase float64) float64 {
	if phase < 0.5 {
		return 4*phase - 1
	}

	return 3 - 4*phase
}

// Saw returns 2*phase - 1. It jumps from 1 to -1 at the wrap.
func Saw(phase float64) float64 {
	return 2*phase - 1
}

// Square returns +1 while phase < width and -1 otherwise.
// width is clamped to [MinPulseWidth, MaxPulseWidth].
func Square(phase, width float64) float64 {
	if !(width >= MinPulseWidth) {
		width = MinPulseWidth
	} else if width > MaxPulseWidth {
		width = MaxPulseWidth
	}

	if phase < width {
		return 1
	}

	return -1
}
