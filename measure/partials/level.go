package partials

import "math"

// RMS returns the root-mean-square value of signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum float64
	for _, v := range signal {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(signal)))
}

// Peak returns the maximum absolute value of signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, v := range signal {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(signal []float64) int {
	n := 0
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] < 0) != (signal[i] < 0) {
			n++
		}
	}

	return n
}

// EstimatePeriod returns the mean distance in samples between rising zero
// crossings, located with linear interpolation. It returns 0 when fewer
// than two rising crossings exist.
func EstimatePeriod(signal []float64) float64 {
	first, last := -1.0, -1.0
	count := 0
	for i := 1; i < len(signal); i++ {
		a, b := signal[i-1], signal[i]
		if a >= 0 || b < 0 {
			continue
		}

		pos := float64(i-1) + a/(a-b)
		if first < 0 {
			first = pos
		}
		last = pos
		count++
	}

	if count < 2 {
		return 0
	}

	return (last - first) / float64(count-1)
}
