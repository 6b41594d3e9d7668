// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense row-major float64 matrix with
// preallocated-destination products.
//
// Every operation writes into a destination supplied by the caller, so a
// training loop allocates nothing after its buffers are built:
//
//	w := matrix.NewUniformRandom(3, 2, -1, 1, nil)
//	out := matrix.New(3, 1)
//	w.DotVector(out, []float64{0.5, 1})
//
// Shape mismatches panic with an error wrapping ErrDimensionMismatch,
// ErrEmptyOperand, ErrBadShape or ErrOutOfRange.
package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
)

// Matrix is a dense row-major matrix of float64.
type Matrix = matrix.Matrix

// New creates a zero-filled rows x cols matrix.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// NewUniformRandom creates a matrix with values drawn uniformly from
// [lo, hi). A nil rng uses the process-global source.
func NewUniformRandom(rows, cols int, lo, hi float64, rng *rand.Rand) *Matrix {
	return matrix.NewUniformRandom(rows, cols, lo, hi, rng)
}

// NewFromSlice wraps values (row-major) in a rows x cols matrix.
func NewFromSlice(rows, cols int, values []float64) *Matrix {
	return matrix.NewFromSlice(rows, cols, values)
}

// NewColumn wraps values in a len(values) x 1 matrix.
func NewColumn(values []float64) *Matrix {
	return matrix.NewColumn(values)
}

var (
	ErrBadShape          = matrix.ErrBadShape
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrEmptyOperand      = matrix.ErrEmptyOperand
	ErrOutOfRange        = matrix.ErrOutOfRange
)
