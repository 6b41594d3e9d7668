package matrix

// Add computes dest = m + other elementwise. All three must share a shape.
func (m *Matrix) Add(dest, other *Matrix) {
	checkSameShape("Add", m, other)
	checkSameShape("Add", m, dest)
	for i, v := range m.values {
		dest.values[i] = v + other.values[i]
	}
}

// AddInPlace computes m += other elementwise.
func (m *Matrix) AddInPlace(other *Matrix) {
	checkSameShape("AddInPlace", m, other)
	for i, v := range other.values {
		m.values[i] += v
	}
}

// MultiplyInPlace computes the Hadamard product m ⊙= other.
func (m *Matrix) MultiplyInPlace(other *Matrix) {
	checkSameShape("MultiplyInPlace", m, other)
	for i, v := range other.values {
		m.values[i] *= v
	}
}

// SubScaled computes m -= scale * other / divisor elementwise.
//
// This is the gradient-descent step: scale is the learning rate and divisor
// the mini-batch size.
func (m *Matrix) SubScaled(other *Matrix, scale, divisor float64) {
	checkSameShape("SubScaled", m, other)
	for i, v := range other.values {
		m.values[i] -= scale * v / divisor
	}
}

// Map applies fn to every element in place.
func (m *Matrix) Map(fn func(float64) float64) {
	for i, v := range m.values {
		m.values[i] = fn(v)
	}
}

// MapTo writes fn(m[i]) into dest for every element of m.
//
// dest must hold at least as many cells as m; cells beyond len(m.Values())
// are left untouched.
func (m *Matrix) MapTo(dest *Matrix, fn func(float64) float64) {
	if len(dest.values) < len(m.values) {
		violation("MapTo", ErrDimensionMismatch, "dest [%d,%d] smaller than [%d,%d]",
			dest.rows, dest.cols, m.rows, m.cols)
	}
	for i, v := range m.values {
		dest.values[i] = fn(v)
	}
}

// MapWith replaces every element with fn(m[i], target[i]).
// target must have exactly as many elements as m.
func (m *Matrix) MapWith(target []float64, fn func(v, t float64) float64) {
	if len(target) != len(m.values) {
		violation("MapWith", ErrDimensionMismatch, "target of %d for [%d,%d]", len(target), m.rows, m.cols)
	}
	for i, v := range m.values {
		m.values[i] = fn(v, target[i])
	}
}
