package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/dsp/window"
	"github.com/cwbudde/algo-synth/measure/partials"
)

// analysis selects how rendered notes are measured.
type analysis struct {
	peaks  int
	window window.Type
}

type result struct {
	name        string
	path        string
	peak        float64
	rms         float64
	fundamental float64
	partials    []partials.Partial
}

// analysisWindow bounds the FFT length; the note is analyzed from its start.
const analysisWindow = 1 << 15

func analyze(name string, samples []float64, sampleRate float64, a analysis) (result, error) {
	r := result{
		name: name,
		peak: partials.Peak(samples),
		rms:  partials.RMS(samples),
	}

	seg := samples[:min(len(samples), analysisWindow)]
	sp, err := partials.AnalyzeWindow(seg, sampleRate, a.window)
	if err != nil {
		return result{}, fmt.Errorf("analyze: %w", err)
	}

	r.fundamental = sp.Fundamental()
	r.partials = sp.Peaks(a.peaks, 1e-3)

	return r, nil
}

func printResults(results []result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Instrument\tPeak [V]\tRMS [V]\tFundamental [Hz]\tPartials [Hz:V]\tFile\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----------\t--------\t-------\t----------------\t---------------\t----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.1f\t%s\t%s\n",
			r.name,
			r.peak,
			r.rms,
			r.fundamental,
			formatPartials(r.partials),
			r.path,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func formatPartials(ps []partials.Partial) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.0f:%.2f", p.FrequencyHz, p.Amplitude)
	}

	return strings.Join(parts, " ")
}
