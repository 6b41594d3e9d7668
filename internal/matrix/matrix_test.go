package matrix

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// requireViolation asserts that fn panics with an error wrapping want.
func requireViolation(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, want), "got %v, want %v", err, want)
	}()
	fn()
}

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	return NewUniformRandom(rows, cols, -5, 5, rng)
}

func toGonum(m *Matrix) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), append([]float64(nil), m.Values()...))
}

func TestNew(t *testing.T) {
	m := New(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, make([]float64, 6), m.Values())

	empty := New(0, 4)
	assert.Empty(t, empty.Values())

	requireViolation(t, ErrBadShape, func() { New(-1, 2) })
	requireViolation(t, ErrBadShape, func() { NewFromSlice(2, 2, []float64{1, 2, 3}) })
}

func TestNewUniformRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := NewUniformRandom(20, 30, -2, 3, rng)
	require.Len(t, m.Values(), 600)
	for _, v := range m.Values() {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}

	// Same seed, same draw.
	again := NewUniformRandom(20, 30, -2, 3, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, m.Values(), again.Values())
}

func TestAtSet(t *testing.T) {
	m := New(2, 3)
	m.Set(1, 2, 7)
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, 7.0, m.Values()[5], "row-major offset i*cols+j")

	requireViolation(t, ErrOutOfRange, func() { m.At(2, 0) })
	requireViolation(t, ErrOutOfRange, func() { m.Set(0, -1, 1) })
}

func TestDot(t *testing.T) {
	a := NewFromSlice(2, 2, []float64{2, 0, 1, 0})
	b := NewFromSlice(2, 3, []float64{2, 0, 1, 0, 0, 4})
	dest := New(2, 3)

	a.Dot(dest, b)
	assert.Equal(t, []float64{4, 0, 2, 2, 0, 1}, dest.Values())

	// Reset-then-accumulate: a second call yields the same result.
	a.Dot(dest, b)
	assert.Equal(t, []float64{4, 0, 2, 2, 0, 1}, dest.Values())
}

func TestDot_Square(t *testing.T) {
	a := NewFromSlice(3, 3, []float64{7, 7, 7, 8, 8, 8, 3, 3, 3})
	b := NewFromSlice(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	dest := New(3, 3)
	a.Dot(dest, b)
	assert.Equal(t, []float64{84, 105, 126, 96, 120, 144, 36, 45, 54}, dest.Values())
}

func TestDot_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 20; trial++ {
		r, k, c := 1+rng.IntN(6), 1+rng.IntN(6), 1+rng.IntN(6)
		a, b := randomMatrix(rng, r, k), randomMatrix(rng, k, c)
		dest := New(r, c)
		a.Dot(dest, b)

		var want mat.Dense
		want.Mul(toGonum(a), toGonum(b))
		assert.InDeltaSlice(t, want.RawMatrix().Data, dest.Values(), 1e-9)
	}
}

func TestDot_Violations(t *testing.T) {
	tests := []struct {
		name string
		a, b *Matrix
		dest *Matrix
		want error
	}{
		{"inner mismatch", New(8, 4), New(1, 7), New(8, 7), ErrDimensionMismatch},
		{"wrong dest", New(8, 4), New(4, 7), New(8, 6), ErrDimensionMismatch},
		{"oversized dest", New(8, 4), New(1, 7), New(10, 10), ErrDimensionMismatch},
		{"zero inner", New(4, 0), New(0, 7), New(4, 7), ErrEmptyOperand},
		{"all zero", New(0, 0), New(0, 7), New(0, 7), ErrEmptyOperand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireViolation(t, tt.want, func() { tt.a.Dot(tt.dest, tt.b) })
		})
	}
}

func TestDot_RejectsEveryIncompatiblePair(t *testing.T) {
	for ar := 1; ar <= 3; ar++ {
		for ac := 1; ac <= 3; ac++ {
			for br := 1; br <= 3; br++ {
				if ac == br {
					continue
				}
				a, b, dest := New(ar, ac), New(br, 2), New(ar, 2)
				requireViolation(t, ErrDimensionMismatch, func() { a.Dot(dest, b) })
			}
		}
	}
}

func TestDotVector(t *testing.T) {
	w := NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	dest := New(2, 1)
	w.DotVector(dest, []float64{1, 0, -1})
	assert.Equal(t, []float64{-2, -2}, dest.Values())

	w.DotVector(dest, []float64{1, 1, 1})
	assert.Equal(t, []float64{6, 15}, dest.Values())

	requireViolation(t, ErrDimensionMismatch, func() { w.DotVector(dest, []float64{1, 2}) })
	requireViolation(t, ErrDimensionMismatch, func() { w.DotVector(New(3, 1), []float64{1, 2, 3}) })
}

func TestTransposeDot_MatchesExplicitTranspose(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 50; trial++ {
		k, r, c := 1+rng.IntN(7), 1+rng.IntN(7), 1+rng.IntN(7)
		a, b := randomMatrix(rng, k, r), randomMatrix(rng, k, c)

		// Reference: materialize aᵀ, then Dot.
		at := New(r, k)
		for i := 0; i < k; i++ {
			for j := 0; j < r; j++ {
				at.Set(j, i, a.At(i, j))
			}
		}
		want := New(r, c)
		at.Dot(want, b)

		got := NewUniformRandom(r, c, 100, 200, rng) // stale contents must be discarded
		a.TransposeDot(got, b)
		assert.InDeltaSlice(t, want.Values(), got.Values(), 1e-12)

		var oracle mat.Dense
		oracle.Mul(toGonum(a).T(), toGonum(b))
		assert.InDeltaSlice(t, oracle.RawMatrix().Data, got.Values(), 1e-9)
	}
}

func TestTransposeDot_Violations(t *testing.T) {
	requireViolation(t, ErrDimensionMismatch, func() { New(3, 2).TransposeDot(New(2, 4), New(2, 4)) })
	requireViolation(t, ErrDimensionMismatch, func() { New(3, 2).TransposeDot(New(3, 4), New(3, 4)) })
	requireViolation(t, ErrEmptyOperand, func() { New(0, 2).TransposeDot(New(2, 4), New(0, 4)) })
}

func TestTransposeDotAccumulate(t *testing.T) {
	a := NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	b := NewColumn([]float64{1, 1})

	dest := NewColumn([]float64{10, 20})
	a.TransposeDotAccumulate(dest, b)
	assert.Equal(t, []float64{14, 26}, dest.Values(), "adds onto existing contents")

	reset := NewColumn([]float64{10, 20})
	a.TransposeDot(reset, b)
	assert.Equal(t, []float64{4, 6}, reset.Values())
}

func TestAccumulateOuterProduct(t *testing.T) {
	d := []float64{2, -3}
	p := []float64{5, 7, 11}
	m := New(2, 3)
	m.AccumulateOuterProduct(p, d)
	assert.Equal(t, []float64{
		d[0] * p[0], d[0] * p[1], d[0] * p[2],
		d[1] * p[0], d[1] * p[1], d[1] * p[2],
	}, m.Values())

	m.AccumulateOuterProduct(p, d)
	assert.Equal(t, 2*d[1]*p[2], m.At(1, 2), "accumulates across calls")

	requireViolation(t, ErrEmptyOperand, func() { m.AccumulateOuterProduct(nil, d) })
	requireViolation(t, ErrDimensionMismatch, func() { m.AccumulateOuterProduct(d, p) })
}

func TestElementwise(t *testing.T) {
	a := NewFromSlice(2, 2, []float64{2, 8, 1, 4})
	b := NewFromSlice(2, 2, []float64{1, 1, 2, 3})

	sum := New(2, 2)
	a.Add(sum, b)
	assert.Equal(t, []float64{3, 9, 3, 7}, sum.Values())

	c := a.Clone()
	c.AddInPlace(b)
	assert.Equal(t, sum.Values(), c.Values())

	c.MultiplyInPlace(b)
	assert.Equal(t, []float64{3, 9, 6, 21}, c.Values())

	c.SubScaled(b, 0.5, 2)
	assert.Equal(t, []float64{2.75, 8.75, 5.5, 20.25}, c.Values())

	assert.Equal(t, []float64{2, 8, 1, 4}, a.Values(), "Add leaves operands untouched")
}

func TestElementwise_RejectsShapeMismatch(t *testing.T) {
	shapes := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}, {1, 4}}
	for _, sa := range shapes {
		for _, sb := range shapes {
			if sa == sb {
				continue
			}
			a, b := New(sa[0], sa[1]), New(sb[0], sb[1])
			requireViolation(t, ErrDimensionMismatch, func() { a.Add(New(sa[0], sa[1]), b) })
			requireViolation(t, ErrDimensionMismatch, func() { a.AddInPlace(b) })
			requireViolation(t, ErrDimensionMismatch, func() { a.MultiplyInPlace(b) })
		}
	}
	requireViolation(t, ErrDimensionMismatch, func() { New(2, 2).Add(New(2, 3), New(2, 2)) })
}

func TestMap(t *testing.T) {
	m := NewFromSlice(2, 2, []float64{1, -2, 3, -4})
	m.Map(func(v float64) float64 { return v + 1 })
	assert.Equal(t, []float64{2, -1, 4, -3}, m.Values())

	dest := NewFromSlice(5, 1, []float64{9, 9, 9, 9, 9})
	m.MapTo(dest, func(v float64) float64 { return v * 2 })
	assert.Equal(t, []float64{4, -2, 8, -6, 9}, dest.Values(), "larger dest keeps its tail")

	requireViolation(t, ErrDimensionMismatch, func() { m.MapTo(New(1, 3), func(v float64) float64 { return v }) })

	m.MapWith([]float64{1, 1, 1, 1}, func(v, t float64) float64 { return v - t })
	assert.Equal(t, []float64{1, -2, 3, -4}, m.Values())
	requireViolation(t, ErrDimensionMismatch, func() { m.MapWith([]float64{1}, func(v, t float64) float64 { return v }) })
}

func TestZeroFillAndDump(t *testing.T) {
	m := NewFromSlice(2, 2, []float64{1, 2, 3, 4.5})

	var buf bytes.Buffer
	m.Dump(&buf)
	assert.Equal(t, "1.00000 2.00000 \n3.00000 4.50000 \n", buf.String())
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())

	m.ZeroFill()
	assert.Equal(t, []float64{0, 0, 0, 0}, m.Values())
}
