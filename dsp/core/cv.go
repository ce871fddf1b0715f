package core

const (
	// GateThreshold is the voltage at or above which a gate/trigger input
	// reads as high.
	GateThreshold = 1.0

	// VoltsPerUnit converts control voltages to the normalized [0, 1]
	// range: 10 V is full scale.
	VoltsPerUnit = 10.0

	// MinFrequencyHz and MaxFrequencyHz bound every oscillator frequency.
	MinFrequencyHz = 10.0
	MaxFrequencyHz = 20000.0

	// MinCutoffHz and MaxCutoffHz bound every filter cutoff.
	MinCutoffHz = 20.0
	MaxCutoffHz = 20000.0
)

// VoltsToUnit maps a control voltage to [0, 1] using the fixed /10 scaling.
func VoltsToUnit(volts float64) float64 {
	return Clamp01(volts / VoltsPerUnit)
}

// GateHigh reports whether a gate voltage is at or above GateThreshold.
func GateHigh(volts float64) bool {
	return volts >= GateThreshold
}

// PitchToFrequency converts a 1V/octave pitch control value to Hz relative
// to baseHz: baseHz * 2^pitchVolts. The result is not clamped; callers that
// feed it into a phase accumulator go through ClampFrequency.
func PitchToFrequency(baseHz, pitchVolts float64) float64 {
	return baseHz * exp2(pitchVolts)
}

// ClampFrequency limits an oscillator frequency to [MinFrequencyHz, MaxFrequencyHz].
func ClampFrequency(hz float64) float64 {
	return Clamp(hz, MinFrequencyHz, MaxFrequencyHz)
}

// ClampCutoff limits a filter cutoff to [MinCutoffHz, MaxCutoffHz].
func ClampCutoff(hz float64) float64 {
	return Clamp(hz, MinCutoffHz, MaxCutoffHz)
}

// Exp2 returns 2^x. Built with the fastmath tag it uses a polynomial
// approximation.
func Exp2(x float64) float64 {
	return exp2(x)
}
