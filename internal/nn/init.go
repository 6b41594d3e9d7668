package nn

import (
	"fmt"
	"math"
)

// XavierBound returns the Xavier (Glorot) uniform bound for a layer:
//
//	sqrt(6 / (fanIn + fanOut))
//
// Weights drawn from [-bound, bound) keep the activation variance roughly
// constant across layers.
func XavierBound(fanIn, fanOut int) float64 {
	if fanIn+fanOut <= 0 {
		panic(fmt.Errorf("XavierBound: %w: fan in %d, fan out %d", ErrEmptyLayer, fanIn, fanOut))
	}
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}

// initRange returns the initialization interval for a layer of neurons
// units fed by inputs values.
func (c Config) initRange(neurons, inputs int) (lo, hi float64) {
	if c.Xavier {
		b := XavierBound(inputs, neurons)
		return -b, b
	}
	if c.InitMin == 0 && c.InitMax == 0 {
		return DefaultInitMin, DefaultInitMax
	}
	return c.InitMin, c.InitMax
}
