package matrix

// Dot computes dest = m × other.
//
// Requires m.Cols() == other.Rows(), no zero dimension, and dest shaped
// m.Rows() × other.Cols(). Every destination cell is reset before it is
// accumulated, so dest may be reused across calls.
func (m *Matrix) Dot(dest, other *Matrix) {
	if m.cols != other.rows {
		violation("Dot", ErrDimensionMismatch, "[%d,%d] x [%d,%d]", m.rows, m.cols, other.rows, other.cols)
	}
	if m.rows == 0 || m.cols == 0 || other.cols == 0 {
		violation("Dot", ErrEmptyOperand, "[%d,%d] x [%d,%d]", m.rows, m.cols, other.rows, other.cols)
	}
	checkShape("Dot", "dest", dest, m.rows, other.cols)

	n, k := other.cols, m.cols
	for i := 0; i < m.rows; i++ {
		row := m.values[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			sum := 0.0
			for p, a := range row {
				sum += a * other.values[p*n+j]
			}
			dest.values[i*n+j] = sum
		}
	}
}

// DotVector computes dest = m × vec where vec is a column of length m.Cols().
// dest must be m.Rows() × 1.
func (m *Matrix) DotVector(dest *Matrix, vec []float64) {
	if m.cols != len(vec) {
		violation("DotVector", ErrDimensionMismatch, "[%d,%d] x vector of %d", m.rows, m.cols, len(vec))
	}
	if m.rows == 0 || m.cols == 0 {
		violation("DotVector", ErrEmptyOperand, "[%d,%d] x vector of %d", m.rows, m.cols, len(vec))
	}
	checkShape("DotVector", "dest", dest, m.rows, 1)

	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for p, a := range m.values[i*m.cols : (i+1)*m.cols] {
			sum += a * vec[p]
		}
		dest.values[i] = sum
	}
}

// TransposeDot computes dest = mᵀ × other without materializing the transpose.
//
// Requires m.Rows() == other.Rows() and dest shaped m.Cols() × other.Cols().
// dest is reset first.
func (m *Matrix) TransposeDot(dest, other *Matrix) {
	m.checkTransposeDot("TransposeDot", dest, other)
	dest.ZeroFill()
	m.transposeDotInto(dest, other)
}

// TransposeDotAccumulate computes dest += mᵀ × other.
//
// Unlike every other product it does not reset dest: the caller owns the
// initial contents, either zeroed or intentionally pre-populated.
func (m *Matrix) TransposeDotAccumulate(dest, other *Matrix) {
	m.checkTransposeDot("TransposeDotAccumulate", dest, other)
	m.transposeDotInto(dest, other)
}

func (m *Matrix) checkTransposeDot(op string, dest, other *Matrix) {
	if m.rows != other.rows {
		violation(op, ErrDimensionMismatch, "[%d,%d]ᵀ x [%d,%d]", m.rows, m.cols, other.rows, other.cols)
	}
	if m.rows == 0 || m.cols == 0 || other.cols == 0 {
		violation(op, ErrEmptyOperand, "[%d,%d]ᵀ x [%d,%d]", m.rows, m.cols, other.rows, other.cols)
	}
	checkShape(op, "dest", dest, m.cols, other.cols)
}

// transposeDotInto adds mᵀ × other into dest, walking both operands by row
// so every inner loop reads contiguous memory.
func (m *Matrix) transposeDotInto(dest, other *Matrix) {
	n := other.cols
	for k := 0; k < m.rows; k++ {
		left := m.values[k*m.cols : (k+1)*m.cols]
		right := other.values[k*n : (k+1)*n]
		for i, a := range left {
			out := dest.values[i*n : (i+1)*n]
			for j, b := range right {
				out[j] += a * b
			}
		}
	}
}

// AccumulateOuterProduct adds col ⊗ row into m: m[i][j] += col[i] * row[j].
//
// Requires both vectors non-empty, len(col) == m.Rows() and
// len(row) == m.Cols(). Used to accumulate a weight gradient as the outer
// product of a layer's delta and its predecessor's activations.
func (m *Matrix) AccumulateOuterProduct(row, col []float64) {
	if len(row) == 0 || len(col) == 0 {
		violation("AccumulateOuterProduct", ErrEmptyOperand, "row %d, col %d", len(row), len(col))
	}
	if len(col) != m.rows || len(row) != m.cols {
		violation("AccumulateOuterProduct", ErrDimensionMismatch,
			"col %d x row %d into [%d,%d]", len(col), len(row), m.rows, m.cols)
	}
	for i, c := range col {
		out := m.values[i*m.cols : (i+1)*m.cols]
		for j, r := range row {
			out[j] += c * r
		}
	}
}
