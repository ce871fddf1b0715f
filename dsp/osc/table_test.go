package osc

import (
	"math"
	"testing"
)

func TestNewSineTable(t *testing.T) {
	tbl, err := NewSineTable(4, 5)
	if err != nil {
		t.Fatalf("NewSineTable() error = %v", err)
	}

	want := []float64{0, 5, 0, -5}
	for i, w := range want {
		got := tbl.Lookup(float64(i) / 4)
		if math.Abs(got-w) > 1e-12 {
			t.Fatalf("Lookup(%v) = %v, want %v", float64(i)/4, got, w)
		}
	}

	if tbl.Len() != 4 || tbl.Amplitude() != 5 {
		t.Fatalf("Len/Amplitude = %d/%v, want 4/5", tbl.Len(), tbl.Amplitude())
	}
}

func TestNewSineTableInvalid(t *testing.T) {
	if _, err := NewSineTable(0, 1); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := NewSineTable(16, math.NaN()); err == nil {
		t.Fatal("expected error for NaN amplitude")
	}
}

func TestTableLookupTruncates(t *testing.T) {
	tbl, err := NewSineTable(4, 1)
	if err != nil {
		t.Fatalf("NewSineTable() error = %v", err)
	}

	// 0.49*4 = 1.96 floors to index 1, no interpolation toward index 2.
	if got := tbl.Lookup(0.49); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Lookup(0.49) = %v, want 1", got)
	}
}

func TestTableLookupOutOfRangePhase(t *testing.T) {
	tbl := DefaultTable()
	for _, phase := range []float64{-0.5, math.NaN(), math.Inf(1), 1, 7.25} {
		got := tbl.Lookup(phase)
		if math.IsNaN(got) || got < -1 || got > 1 {
			t.Fatalf("Lookup(%v) = %v, want finite in [-1, 1]", phase, got)
		}
	}

	if got := tbl.Lookup(7.25); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Lookup(7.25) = %v, want 1", got)
	}
}

func TestTableMatchesAnalyticSine(t *testing.T) {
	tbl := DefaultTable()
	maxErr := 2 * math.Pi / float64(tbl.Len())
	for i := 0; i < 10000; i++ {
		phase := float64(i) / 10000
		d := math.Abs(tbl.Lookup(phase) - Sine(phase))
		if d > maxErr {
			t.Fatalf("phase %v: table error %v > %v", phase, d, maxErr)
		}
	}
}
