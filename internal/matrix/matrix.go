// Package matrix implements the dense matrix engine used by the network.
//
// Matrix stores float64 values in a flat row-major slice (offset i*cols + j)
// whose length is fixed at construction. Every algebra operation writes into
// the receiver or into a caller-provided destination of the right shape, so
// the forward and backward passes run without allocating.
//
// Shape checks are preconditions. A mismatch is a programming error and
// panics with an error wrapping ErrDimensionMismatch or ErrEmptyOperand;
// no operation retries or partially recovers.
package matrix

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// Matrix is a dense rows×cols matrix of float64 values in row-major order.
type Matrix struct {
	rows, cols int
	values     []float64 // len == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Zero dimensions are allowed (products reject them later with
// ErrEmptyOperand); negative dimensions panic with ErrBadShape.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		violation("New", ErrBadShape, "[%d,%d]", rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, values: make([]float64, rows*cols)}
}

// NewUniformRandom creates a rows×cols matrix with every cell drawn
// independently and uniformly from [lo, hi).
//
// A nil rng uses the process-global source.
func NewUniformRandom(rows, cols int, lo, hi float64, rng *rand.Rand) *Matrix {
	m := New(rows, cols)
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	span := hi - lo
	for i := range m.values {
		m.values[i] = lo + draw()*span
	}
	return m
}

// NewFromSlice creates a rows×cols matrix holding a copy of values.
func NewFromSlice(rows, cols int, values []float64) *Matrix {
	m := New(rows, cols)
	if len(values) != rows*cols {
		violation("NewFromSlice", ErrBadShape, "got %d values for [%d,%d]", len(values), rows, cols)
	}
	copy(m.values, values)
	return m
}

// NewColumn creates a len(values)×1 column vector holding a copy of values.
func NewColumn(values []float64) *Matrix {
	return NewFromSlice(len(values), 1, values)
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Values returns the backing row-major slice. Writes through it mutate m.
func (m *Matrix) Values() []float64 { return m.values }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

func (m *Matrix) offset(op string, i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		violation(op, ErrOutOfRange, "(%d,%d) in [%d,%d]", i, j, m.rows, m.cols)
	}
	return i*m.cols + j
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[m.offset("At", i, j)]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.values[m.offset("Set", i, j)] = v
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return NewFromSlice(m.rows, m.cols, m.values)
}

// ZeroFill resets every element to zero.
func (m *Matrix) ZeroFill() {
	clear(m.values)
}

// Dump writes the matrix to w, one row per line with five decimals.
// Debug and inspection only.
func (m *Matrix) Dump(w io.Writer) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(w, "%.5f ", m.values[i*m.cols+j])
		}
		fmt.Fprintln(w)
	}
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.values[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
