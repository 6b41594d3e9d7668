package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/matrix"
)

// Layer is a fully connected layer with its own forward caches, backward
// error signal and gradient accumulators.
//
// Forward: pre = W·x + b, output = act(pre)
// where:
//   - W is the weight matrix with shape [neurons, inputs]
//   - b is the bias column with shape [neurons, 1]
//   - x is the input column (raw input or the previous layer's output)
//
// Every buffer is allocated once at construction and reused for the life of
// the layer. The forward caches (pre-activation and output) and the backward
// delta are separate buffers, so Output keeps the forward result after a
// backward step.
type Layer struct {
	weights *matrix.Matrix // [neurons, inputs]
	bias    *matrix.Matrix // [neurons, 1]

	preActivation *matrix.Matrix // W·x + b from the last forward pass
	output        *matrix.Matrix // act(preActivation)
	delta         *matrix.Matrix // ∂cost/∂preActivation from the last backward step
	derivative    *matrix.Matrix // act'(preActivation) scratch

	gradW *matrix.Matrix // Σ outer(delta, x) over the current mini-batch
	gradB *matrix.Matrix // Σ delta over the current mini-batch

	activation Activation
	size       int
}

// NewLayer creates a layer of neurons units reading inputs values, with
// weights and biases drawn uniformly from [lo, hi).
//
// A nil rng uses the process-global source.
func NewLayer(neurons, inputs int, activation Activation, lo, hi float64, rng *rand.Rand) *Layer {
	if neurons <= 0 {
		panic(fmt.Errorf("NewLayer: %w: got %d neurons", ErrEmptyLayer, neurons))
	}
	if inputs <= 0 {
		panic(fmt.Errorf("NewLayer: %w: got %d inputs", ErrEmptyLayer, inputs))
	}

	return &Layer{
		weights:       matrix.NewUniformRandom(neurons, inputs, lo, hi, rng),
		bias:          matrix.NewUniformRandom(neurons, 1, lo, hi, rng),
		preActivation: matrix.New(neurons, 1),
		output:        matrix.New(neurons, 1),
		delta:         matrix.New(neurons, 1),
		derivative:    matrix.New(neurons, 1),
		gradW:         matrix.New(neurons, inputs),
		gradB:         matrix.New(neurons, 1),
		activation:    activation,
		size:          neurons,
	}
}

// ForwardFromInput runs the forward step on a raw input vector.
func (l *Layer) ForwardFromInput(input []float64) {
	l.weights.DotVector(l.preActivation, input)
	l.activate()
}

// ForwardFromLayer runs the forward step on the previous layer's output.
func (l *Layer) ForwardFromLayer(prev *matrix.Matrix) {
	l.weights.Dot(l.preActivation, prev)
	l.activate()
}

func (l *Layer) activate() {
	l.preActivation.AddInPlace(l.bias)
	l.preActivation.MapTo(l.output, l.activation.Apply)
}

// ComputeDeltaOutput computes the output layer's error signal:
//
//	delta = cost'(output, target) ⊙ act'(pre)
func (l *Layer) ComputeDeltaOutput(target []float64, cost Cost) {
	l.output.MapTo(l.delta, identity)
	l.delta.MapWith(target, cost.Derivative)
	l.applyActivationDerivative()
}

// ComputeDeltaHidden computes a hidden layer's error signal from the layer
// that follows it:
//
//	delta = (nextWᵀ · next.delta) ⊙ act'(pre)
//
// next is only read.
func (l *Layer) ComputeDeltaHidden(next *Layer) {
	next.weights.TransposeDot(l.delta, next.delta)
	l.applyActivationDerivative()
}

func (l *Layer) applyActivationDerivative() {
	l.preActivation.MapTo(l.derivative, l.activation.Derivative)
	l.delta.MultiplyInPlace(l.derivative)
}

// AccumulateWeightGradient adds outer(delta, prev) to the weight gradient,
// where prev is the input this layer saw on the forward pass.
func (l *Layer) AccumulateWeightGradient(prev []float64) {
	l.gradW.AccumulateOuterProduct(prev, l.delta.Values())
}

// AccumulateBiasGradient adds delta to the bias gradient.
func (l *Layer) AccumulateBiasGradient() {
	l.gradB.AddInPlace(l.delta)
}

// ApplyUpdate performs the gradient-descent step for a mini-batch:
//
//	W -= lr * gradW / batchSize
//	b -= lr * gradB / batchSize
func (l *Layer) ApplyUpdate(batchSize int, lr float64) {
	if batchSize <= 0 {
		panic(fmt.Sprintf("Layer.ApplyUpdate: batch size must be positive, got %d", batchSize))
	}
	n := float64(batchSize)
	l.weights.SubScaled(l.gradW, lr, n)
	l.bias.SubScaled(l.gradB, lr, n)
}

// ZeroGrad clears both gradient accumulators.
func (l *Layer) ZeroGrad() {
	l.gradW.ZeroFill()
	l.gradB.ZeroFill()
}

// Weights returns the weight matrix [neurons, inputs].
func (l *Layer) Weights() *matrix.Matrix { return l.weights }

// Bias returns the bias column [neurons, 1].
func (l *Layer) Bias() *matrix.Matrix { return l.bias }

// PreActivation returns the weighted sum from the last forward pass.
func (l *Layer) PreActivation() *matrix.Matrix { return l.preActivation }

// Output returns the activations from the last forward pass.
func (l *Layer) Output() *matrix.Matrix { return l.output }

// Delta returns the error signal from the last backward step.
func (l *Layer) Delta() *matrix.Matrix { return l.delta }

// WeightGrad returns the accumulated weight gradient.
func (l *Layer) WeightGrad() *matrix.Matrix { return l.gradW }

// BiasGrad returns the accumulated bias gradient.
func (l *Layer) BiasGrad() *matrix.Matrix { return l.gradB }

// Activation returns the layer's activation.
func (l *Layer) Activation() Activation { return l.activation }

// Size returns the number of neurons.
func (l *Layer) Size() int { return l.size }

// Inputs returns the expected input width.
func (l *Layer) Inputs() int { return l.weights.Cols() }

func identity(x float64) float64 { return x }
