// Package nn implements a dense feedforward network trained by manual
// backpropagation and mini-batch SGD.
//
// This package provides:
//   - Layer: fully connected layer with forward caches, delta and gradient accumulators
//   - Network: ordered chain of layers with forward, backprop and training
//   - Activation, Cost: closed registries resolved from names once at construction
//
// Layers form a fixed linear chain owned by the Network. Layer i reads layer
// i-1's output on the forward pass and layer i+1's weights and delta on the
// backward pass; both neighbors are reached by index, never by pointer links.
package nn

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/dataset"
)

var (
	// ErrTooFewLayers is raised when fewer than two sizes (input width and
	// at least one layer) are given.
	ErrTooFewLayers = errors.New("nn: network needs an input size and at least one layer")

	// ErrEmptyLayer is raised when a layer or the input is requested with
	// fewer than one unit.
	ErrEmptyLayer = errors.New("nn: layer must have at least one neuron")
)

// Default uniform initialization range for weights and biases.
const (
	DefaultInitMin = -1.0
	DefaultInitMax = 1.0
)

// Config describes a network.
type Config struct {
	// Sizes lists the input width followed by each layer's neuron count.
	Sizes []int

	Cost   string // Cost name (default: "quadratic")
	Hidden string // Activation of every layer but the last (default: "relu")
	Output string // Activation of the last layer (default: "relu")

	// Uniform initialization range [InitMin, InitMax). When both are zero
	// the default [-1, 1) is used.
	InitMin, InitMax float64

	// Xavier draws each layer from [-XavierBound, XavierBound) instead,
	// ignoring InitMin and InitMax.
	Xavier bool

	Rand   *rand.Rand   // Source for initialization (default: process-global)
	Logger *slog.Logger // Diagnostics (default: slog.Default())
}

// Network is an ordered chain of dense layers with a cost function.
type Network struct {
	layers    []*Layer
	inputSize int
	cost      Cost
	logger    *slog.Logger
}

// New builds a network from cfg.
//
// Fewer than two sizes panics with ErrTooFewLayers; a size below one panics
// with ErrEmptyLayer. Unrecognized function names are logged and replaced by
// the defaults.
func New(cfg Config) *Network {
	if len(cfg.Sizes) < 2 {
		panic(fmt.Errorf("nn.New: %w: got sizes %v", ErrTooFewLayers, cfg.Sizes))
	}
	for i, size := range cfg.Sizes {
		if size <= 0 {
			panic(fmt.Errorf("nn.New: %w: sizes[%d] = %d", ErrEmptyLayer, i, size))
		}
	}

	logger := loggerOrDefault(cfg.Logger)

	n := &Network{
		inputSize: cfg.Sizes[0],
		cost:      ResolveCost(defaultName(cfg.Cost), logger),
		logger:    logger,
	}
	hidden := ResolveActivation(defaultName(cfg.Hidden), logger)
	output := ResolveActivation(defaultName(cfg.Output), logger)

	last := len(cfg.Sizes) - 1
	for i := 1; i <= last; i++ {
		act := hidden
		if i == last {
			act = output
		}
		lo, hi := cfg.initRange(cfg.Sizes[i], cfg.Sizes[i-1])
		n.layers = append(n.layers, NewLayer(cfg.Sizes[i], cfg.Sizes[i-1], act, lo, hi, cfg.Rand))
	}

	logger.Debug("network created", "sizes", cfg.Sizes, "cost", n.cost.String(),
		"hidden", hidden.String(), "output", output.String(), "xavier", cfg.Xavier)
	return n
}

// defaultName maps an empty selector to "default".
func defaultName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}

// Forward propagates input through every layer in order and returns the
// last layer's output buffer.
//
// The returned slice aliases the network's state and is overwritten by the
// next Forward or Train call. Given fixed parameters, the same input always
// yields bit-identical output.
func (n *Network) Forward(input []float64) []float64 {
	if len(input) != n.inputSize {
		panic(fmt.Sprintf("Network.Forward: expected input with %d values, got %d", n.inputSize, len(input)))
	}

	n.layers[0].ForwardFromInput(input)
	for i := 1; i < len(n.layers); i++ {
		n.layers[i].ForwardFromLayer(n.layers[i-1].output)
	}
	return n.Output()
}

// Output returns the last layer's output from the most recent forward pass.
func (n *Network) Output() []float64 {
	return n.layers[len(n.layers)-1].output.Values()
}

// BatchCost returns the mean cost of the network over samples.
// An empty batch costs 0.
func (n *Network) BatchCost(samples []dataset.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range samples {
		total += n.cost.Eval(n.Forward(s.Input), s.Target)
	}
	return total / float64(len(samples))
}

// backprop runs one sample forward and accumulates its gradients into every
// layer. Gradients are not zeroed and parameters are not updated.
func (n *Network) backprop(s dataset.Sample) {
	n.Forward(s.Input)

	last := len(n.layers) - 1
	n.layers[last].ComputeDeltaOutput(s.Target, n.cost)
	n.accumulate(last, s.Input)

	for i := last - 1; i >= 0; i-- {
		n.layers[i].ComputeDeltaHidden(n.layers[i+1])
		n.accumulate(i, s.Input)
	}
}

// accumulate adds layer i's gradients against its predecessor's activations,
// or against the raw input for the first layer.
func (n *Network) accumulate(i int, input []float64) {
	prev := input
	if i > 0 {
		prev = n.layers[i-1].output.Values()
	}
	n.layers[i].AccumulateWeightGradient(prev)
	n.layers[i].AccumulateBiasGradient()
}

// Layers returns the layers in forward order.
func (n *Network) Layers() []*Layer { return n.layers }

// Layer returns layer i. It panics when i is out of range.
func (n *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of range [0, %d)", i, len(n.layers)))
	}
	return n.layers[i]
}

// Len returns the number of layers, input excluded.
func (n *Network) Len() int { return len(n.layers) }

// InputSize returns the expected input width.
func (n *Network) InputSize() int { return n.inputSize }

// OutputSize returns the width of the last layer.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].size }

// CostFunc returns the resolved cost.
func (n *Network) CostFunc() Cost { return n.cost }
