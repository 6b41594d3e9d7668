package nn

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownCost is returned by ParseCost for an unregistered name.
var ErrUnknownCost = errors.New("nn: unknown cost")

// Cost selects a cost function and its derivative with respect to the
// network output.
type Cost int

// Registered costs. The zero value is Quadratic, the default.
const (
	Quadratic Cost = iota
)

// DefaultCost is used for "default" and for unrecognized names.
const DefaultCost = Quadratic

// Eval computes the cost of output against target.
//
// Quadratic: 0.5 * Σ (output[i] - target[i])².
func (c Cost) Eval(output, target []float64) float64 {
	if len(output) != len(target) {
		panic(fmt.Sprintf("Cost.Eval: output has %d values, target %d", len(output), len(target)))
	}
	sum := 0.0
	for i, a := range output {
		d := a - target[i]
		sum += d * d
	}
	return 0.5 * sum
}

// Derivative returns ∂cost/∂output for a single output value a with target y.
func (c Cost) Derivative(a, y float64) float64 {
	return a - y
}

// String returns the registry name.
func (c Cost) String() string {
	if c == Quadratic {
		return "quadratic"
	}
	return fmt.Sprintf("Cost(%d)", int(c))
}

// ParseCost resolves a registry name strictly: "quadratic" or "default".
func ParseCost(name string) (Cost, error) {
	switch normalize(name) {
	case "quadratic", "default":
		return Quadratic, nil
	default:
		return DefaultCost, fmt.Errorf("%w: %q", ErrUnknownCost, name)
	}
}

// ResolveCost resolves name, logging a warning and falling back to
// DefaultCost when it is not recognized.
func ResolveCost(name string, logger *slog.Logger) Cost {
	c, err := ParseCost(name)
	if err != nil {
		loggerOrDefault(logger).Warn("unrecognized cost, using default",
			"name", name, "default", DefaultCost.String())
	}
	return c
}
