package nn

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// ErrUnknownActivation is returned by ParseActivation for an unregistered name.
var ErrUnknownActivation = errors.New("nn: unknown activation")

// Activation selects an elementwise nonlinearity and its derivative.
type Activation int

// Registered activations. The zero value is ReLU, the default.
const (
	ReLU Activation = iota
	Sigmoid
	Identity
)

// DefaultActivation is used for "default" and for unrecognized names.
const DefaultActivation = ReLU

// Apply evaluates the activation at x.
func (a Activation) Apply(x float64) float64 {
	switch a {
	case Sigmoid:
		return sigmoid(x)
	case Identity:
		return x
	default:
		if x > 0 {
			return x
		}
		return 0
	}
}

// Derivative evaluates the activation's derivative at the pre-activation x.
func (a Activation) Derivative(x float64) float64 {
	switch a {
	case Sigmoid:
		s := sigmoid(x)
		return s * (1 - s)
	case Identity:
		return 1
	default:
		if x > 0 {
			return 1
		}
		return 0
	}
}

// String returns the registry name.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Sigmoid:
		return "sigmoid"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ParseActivation resolves a registry name strictly.
//
// Recognized names (case and surrounding whitespace ignored): "sigmoid",
// "sigmoïd", "relu", "identity", "id" and "default".
func ParseActivation(name string) (Activation, error) {
	switch normalize(name) {
	case "sigmoid", "sigmoïd":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	case "identity", "id":
		return Identity, nil
	case "default":
		return DefaultActivation, nil
	default:
		return DefaultActivation, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

// ResolveActivation resolves name, logging a warning and falling back to
// DefaultActivation when it is not recognized.
func ResolveActivation(name string, logger *slog.Logger) Activation {
	a, err := ParseActivation(name)
	if err != nil {
		loggerOrDefault(logger).Warn("unrecognized activation, using default",
			"name", name, "default", DefaultActivation.String())
	}
	return a
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
