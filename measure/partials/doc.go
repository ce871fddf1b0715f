// Package partials measures the harmonic content of rendered voices.
//
// Analyze computes a Hann-windowed magnitude spectrum, scaled so that a
// sinusoid of amplitude A reads A at its bin. AnalyzeWindow accepts any
// dsp/window type. The time-domain helpers
// (RMS, Peak, ZeroCrossings, EstimatePeriod) cover the checks that do not
// need a transform.
//
// Typical use:
//
//	buf := make([]float64, 4096)
//	// ... render a voice into buf ...
//	sp, err := partials.Analyze(buf, 48000)
//	if err != nil {
//	    return err
//	}
//	a := sp.AmplitudeAt(440)
package partials
