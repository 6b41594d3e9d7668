// Package dataset provides training samples for the network: synthetic
// datasets, shuffling, splitting, mini-batch partitioning and CSV loading.
package dataset

import (
	"fmt"
	"math/rand/v2"
)

// Sample is one supervised training pair.
type Sample struct {
	Input  []float64
	Target []float64
}

// XOR returns the four samples of the two-input exclusive-or truth table.
func XOR() []Sample {
	return []Sample{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

// FromFunc samples fn at n points drawn uniformly from [lo, hi).
// Each sample maps the single input x to the single target fn(x).
// A nil rng uses the process-global source.
func FromFunc(fn func(float64) float64, n int, lo, hi float64, rng *rand.Rand) []Sample {
	if n < 0 {
		panic(fmt.Sprintf("FromFunc: negative sample count %d", n))
	}
	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	samples := make([]Sample, n)
	for i := range samples {
		x := lo + draw()*(hi-lo)
		samples[i] = Sample{Input: []float64{x}, Target: []float64{fn(x)}}
	}
	return samples
}

// Shuffle permutes samples in place.
// A nil rng uses the process-global source.
func Shuffle(samples []Sample, rng *rand.Rand) {
	swap := func(i, j int) { samples[i], samples[j] = samples[j], samples[i] }
	if rng == nil {
		rand.Shuffle(len(samples), swap)
		return
	}
	rng.Shuffle(len(samples), swap)
}

// Split divides samples into a training and a validation part.
//
// ratio is the validation fraction (e.g., 0.2 for 80/20). Both results
// share the backing array of samples.
func Split(samples []Sample, ratio float64) (train, val []Sample) {
	if ratio < 0 || ratio > 1 {
		panic(fmt.Sprintf("Split: ratio %v outside [0, 1]", ratio))
	}
	valSize := int(float64(len(samples)) * ratio)
	trainSize := len(samples) - valSize
	return samples[:trainSize], samples[trainSize:]
}

// Batches partitions samples into contiguous mini-batches of size samples.
// The last batch is shorter when len(samples) is not a multiple of size.
func Batches(samples []Sample, size int) [][]Sample {
	if size <= 0 {
		panic(fmt.Sprintf("Batches: batch size must be positive, got %d", size))
	}
	batches := make([][]Sample, 0, (len(samples)+size-1)/size)
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		batches = append(batches, samples[start:end])
	}
	return batches
}
