// Package optim implements learning-rate schedules for mini-batch SGD.
//
// The trainer records one representative cost per epoch and, after each
// epoch, asks its Schedule for the learning rate of the next one:
//
//	lr = schedule.Next(lr, costs)
//
// This package provides:
//   - HalveOnIncrease: halve whenever the latest cost rose (the default)
//   - Plateau: smoothed plateau detection with a floor
//   - Constant: never change the learning rate
package optim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownSchedule is returned by ParseSchedule for an unregistered name.
var ErrUnknownSchedule = errors.New("optim: unknown schedule")

// Schedule decides the learning rate for the next epoch.
type Schedule interface {
	// Next returns the learning rate to use after an epoch.
	//
	// lr is the current learning rate. costs holds one cost per completed
	// epoch, oldest first; the last entry belongs to the epoch just finished.
	Next(lr float64, costs []float64) float64
}

// HalveOnIncrease halves the learning rate when at least three epoch costs
// are recorded and the latest exceeds the previous one. There is no floor.
type HalveOnIncrease struct{}

// Next implements Schedule.
func (HalveOnIncrease) Next(lr float64, costs []float64) float64 {
	n := len(costs)
	if n >= 3 && costs[n-1] > costs[n-2] {
		return lr / 2
	}
	return lr
}

// Constant keeps the learning rate unchanged.
type Constant struct{}

// Next implements Schedule.
func (Constant) Next(lr float64, _ []float64) float64 { return lr }

// Plateau reduces the learning rate when the smoothed cost stops improving.
//
// The mean of the last Window costs is compared with the mean of the Window
// costs before them; when the relative improvement is below Threshold the
// learning rate is multiplied by Factor, never going below MinLR.
type Plateau struct {
	Window    int     // Costs per averaging window (default: 5)
	Factor    float64 // Multiplier applied on a plateau (default: 0.5)
	MinLR     float64 // Lower bound for the learning rate (default: 1e-6)
	Threshold float64 // Minimum relative improvement (default: 1e-3)
}

// PlateauConfig returns a Plateau schedule with defaults.
func PlateauConfig() Plateau {
	return Plateau{Window: 5, Factor: 0.5, MinLR: 1e-6, Threshold: 1e-3}
}

// Next implements Schedule.
func (p Plateau) Next(lr float64, costs []float64) float64 {
	p = p.withDefaults()

	// Act once per window, after two full windows are available.
	n := len(costs)
	if n < 2*p.Window || n%p.Window != 0 {
		return lr
	}
	recent := mean(costs[n-p.Window:])
	previous := mean(costs[n-2*p.Window : n-p.Window])

	if previous > 0 && (previous-recent)/previous >= p.Threshold {
		return lr
	}
	if previous <= 0 && recent < previous {
		return lr
	}
	return math.Max(lr*p.Factor, p.MinLR)
}

func (p Plateau) withDefaults() Plateau {
	def := PlateauConfig()
	if p.Window <= 0 {
		p.Window = def.Window
	}
	if p.Factor <= 0 || p.Factor >= 1 {
		p.Factor = def.Factor
	}
	if p.MinLR <= 0 {
		p.MinLR = def.MinLR
	}
	if p.Threshold <= 0 {
		p.Threshold = def.Threshold
	}
	return p
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ParseSchedule resolves a schedule by name: "halve" (or "default"),
// "plateau" and "constant". Case and surrounding whitespace are ignored.
func ParseSchedule(name string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "halve", "default", "":
		return HalveOnIncrease{}, nil
	case "plateau":
		return PlateauConfig(), nil
	case "constant":
		return Constant{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
	}
}
