package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by contract-violation panics.
//
// Shape checks are preconditions: a violated check panics with an error that
// wraps one of these values, so a recovering caller can match it with errors.Is.
var (
	// ErrBadShape is raised when a matrix is requested with negative dimensions
	// or when backing data does not match rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch is raised when operand shapes are incompatible,
	// e.g. Add on different shapes or Dot where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyOperand is raised when a product or outer product receives an
	// operand with a zero dimension.
	ErrEmptyOperand = errors.New("matrix: empty operand")

	// ErrOutOfRange is raised by At/Set on an invalid index.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// violation panics with err wrapped in "matrix.<op>: ..." context.
func violation(op string, err error, format string, args ...any) {
	panic(fmt.Errorf("matrix.%s: %w: %s", op, err, fmt.Sprintf(format, args...)))
}

// checkSameShape panics unless a and b have identical shapes.
func checkSameShape(op string, a, b *Matrix) {
	if a.rows != b.rows || a.cols != b.cols {
		violation(op, ErrDimensionMismatch, "[%d,%d] vs [%d,%d]", a.rows, a.cols, b.rows, b.cols)
	}
}

// checkShape panics unless m is rows×cols.
func checkShape(op, name string, m *Matrix, rows, cols int) {
	if m.rows != rows || m.cols != cols {
		violation(op, ErrDimensionMismatch, "%s is [%d,%d], want [%d,%d]", name, m.rows, m.cols, rows, cols)
	}
}
