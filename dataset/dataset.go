// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides training samples and mini-batching helpers.
package dataset

import (
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/dataset"
)

// Sample is one input vector with its expected output.
type Sample = dataset.Sample

// XOR returns the four samples of the exclusive-or truth table.
func XOR() []Sample {
	return dataset.XOR()
}

// FromFunc samples fn at n points drawn uniformly from [lo, hi).
//
// Example:
//
//	samples := dataset.FromFunc(math.Sin, 200, -math.Pi, math.Pi, rng)
func FromFunc(fn func(float64) float64, n int, lo, hi float64, rng *rand.Rand) []Sample {
	return dataset.FromFunc(fn, n, lo, hi, rng)
}

// LoadCSV reads samples from a CSV file with a header row. The first inputs
// columns form the input vector and the remaining columns the target.
func LoadCSV(path string, inputs int) ([]Sample, error) {
	return dataset.LoadCSV(path, inputs)
}

// Shuffle permutes samples in place.
func Shuffle(samples []Sample, rng *rand.Rand) {
	dataset.Shuffle(samples, rng)
}

// Split divides samples into a training and a validation part; ratio is
// the validation fraction.
func Split(samples []Sample, ratio float64) (train, val []Sample) {
	return dataset.Split(samples, ratio)
}

// Batches partitions samples into contiguous mini-batches of size; the last
// one may be shorter.
func Batches(samples []Sample, size int) [][]Sample {
	return dataset.Batches(samples, size)
}
