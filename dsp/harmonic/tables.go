package harmonic

import "fmt"

// Spacing selects one of the fixed frequency tables.
type Spacing int

const (
	// SpacingStandard is the harmonic series of A2.
	SpacingStandard Spacing = iota
	// SpacingLog places slots an octave apart, starting at A2.
	SpacingLog
	// SpacingSqrt places slots a half-octave (ratio sqrt(2)) apart.
	SpacingSqrt
)

func (s Spacing) String() string {
	switch s {
	case SpacingStandard:
		return "standard"
	case SpacingLog:
		return "log"
	case SpacingSqrt:
		return "sqrt"
	default:
		return "unknown"
	}
}

// SpacingFromSwitch maps a three-position switch value (0, 1, 2) to a
// Spacing, rounding to the nearest position.
func SpacingFromSwitch(v float64) Spacing {
	switch {
	case !(v >= 0.5):
		return SpacingStandard
	case v < 1.5:
		return SpacingLog
	default:
		return SpacingSqrt
	}
}

func validSpacing(s Spacing) bool {
	return s >= SpacingStandard && s <= SpacingSqrt
}

var fixedTables = [...][NumSlots]float64{
	SpacingStandard: {110, 220, 330, 440, 550, 660, 770, 880},
	SpacingLog:      {110, 220, 440, 880, 1760, 3520, 7040, 14080},
	SpacingSqrt:     {110, 155.56349186104046, 220, 311.1269837220809, 440, 622.2539674441618, 880, 1244.5079348883237},
}

// FixedTable returns the absolute slot frequencies for s.
func FixedTable(s Spacing) ([NumSlots]float64, error) {
	if !validSpacing(s) {
		return [NumSlots]float64{}, fmt.Errorf("harmonic: invalid spacing: %d", s)
	}

	return fixedTables[s], nil
}
