package osc

// Generator renders a Shape at a phase. width is only read for ShapeSquare.
// Implementations are stateless; all state lives in the Phase.
type Generator interface {
	Generate(shape Shape, phase, width float64) float64
}

// AnalyticGenerator computes every shape directly, sine via math.Sin.
type AnalyticGenerator struct{}

// Generate implements Generator.
func (AnalyticGenerator) Generate(shape Shape, phase, width float64) float64 {
	return generate(shape, phase, width, Sine)
}

// TableGenerator reads sine from a shared Table and computes the other
// shapes directly. The table is normalized by its amplitude so every shape
// stays in [-1, 1].
type TableGenerator struct {
	table *Table
	scale float64
}

// NewTableGenerator returns a Generator that reads sine from table.
// A nil table is replaced by a DefaultTableSize unit table.
func NewTableGenerator(table *Table) *TableGenerator {
	if table == nil {
		table = defaultTable
	}

	scale := 1.0
	if a := table.Amplitude(); a != 0 {
		scale = 1 / a
	}

	return &TableGenerator{table: table, scale: scale}
}

// Generate implements Generator.
func (g *TableGenerator) Generate(shape Shape, phase, width float64) float64 {
	if shape == ShapeSine {
		return g.table.Lookup(phase) * g.scale
	}

	return generate(shape, phase, width, Sine)
}

// Table returns the backing table.
func (g *TableGenerator) Table() *Table { return g.table }

func generate(shape Shape, phase, width float64, sine func(float64) float64) float64 {
	switch shape {
	case ShapeTriangle:
		return Triangle(phase)
	case ShapeSaw:
		return Saw(phase)
	case ShapeSquare:
		return Square(phase, width)
	default:
		return sine(phase)
	}
}

// defaultTable is shared read-only by every TableGenerator built without
// an explicit table.
var defaultTable = mustSineTable(DefaultTableSize)

func mustSineTable(size int) *Table {
	t, err := NewSineTable(size, 1)
	if err != nil {
		panic(err)
	}

	return t
}

// DefaultTable returns the shared unit-amplitude sine table.
func DefaultTable() *Table { return defaultTable }
