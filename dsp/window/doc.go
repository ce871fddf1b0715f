// Package window generates the analysis windows used by measure/partials.
//
// Windows are cosine sums evaluated over a symmetric (default) or periodic
// frame. CoherentGain and EquivalentNoiseBandwidth give the scaling needed
// to read sinusoid amplitudes and noise power from a windowed DFT.
package window
