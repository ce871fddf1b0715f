package core

import "math"

// fallbackSampleRate is used when a Clock carries neither a usable sample
// time nor a usable sample rate.
const fallbackSampleRate = 48000.0

// Clock is the time base the host hands to every per-sample call.
// SampleTime is the sample period in seconds; SampleRate is in Hz.
type Clock struct {
	SampleRate float64
	SampleTime float64
}

// ClockAt returns a Clock for sampleRate with SampleTime = 1/sampleRate.
func ClockAt(sampleRate float64) Clock {
	return Clock{SampleRate: sampleRate, SampleTime: 1 / SafeDivisor(sampleRate)}.Normalize()
}

// Normalize returns a copy of c whose fields are finite and positive.
// A missing SampleTime is derived from SampleRate and vice versa.
func (c Clock) Normalize() Clock {
	rateOK := IsFinite(c.SampleRate) && c.SampleRate > 0
	timeOK := IsFinite(c.SampleTime) && c.SampleTime > 0

	switch {
	case rateOK && timeOK:
		return c
	case timeOK:
		return Clock{SampleRate: 1 / c.SampleTime, SampleTime: c.SampleTime}
	case rateOK:
		return Clock{SampleRate: c.SampleRate, SampleTime: 1 / c.SampleRate}
	default:
		return Clock{SampleRate: fallbackSampleRate, SampleTime: 1 / fallbackSampleRate}
	}
}

// Nyquist returns half the sample rate.
func (c Clock) Nyquist() float64 {
	return 0.5 * c.Normalize().SampleRate
}

// Samples returns the number of whole samples covering seconds, rounded up.
func (c Clock) Samples(seconds float64) int {
	if !(seconds > 0) {
		return 0
	}

	n := math.Ceil(seconds / c.Normalize().SampleTime)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(n)
}
