// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/nn"
)

// Network is an ordered chain of dense layers with a cost function.
type Network = nn.Network

// Config describes a network.
type Config = nn.Config

// New builds a network from cfg.
//
// Example:
//
//	net := nn.New(nn.Config{Sizes: []int{784, 30, 10}, Hidden: "relu", Output: "sigmoid"})
func New(cfg Config) *Network {
	return nn.New(cfg)
}

// Layers

// Layer is one fully connected layer.
type Layer = nn.Layer

// NewLayer creates a layer of neurons units fed by inputs values, with
// weights and bias drawn uniformly from [lo, hi).
func NewLayer(neurons, inputs int, activation Activation, lo, hi float64, rng *rand.Rand) *Layer {
	return nn.NewLayer(neurons, inputs, activation, lo, hi, rng)
}

// XavierBound returns sqrt(6 / (fanIn + fanOut)), the bound used when
// Config.Xavier is set.
func XavierBound(fanIn, fanOut int) float64 {
	return nn.XavierBound(fanIn, fanOut)
}

// Activations

// Activation is an element-wise activation function.
type Activation = nn.Activation

// Supported activations.
const (
	ReLU     = nn.ReLU
	Sigmoid  = nn.Sigmoid
	Identity = nn.Identity
)

// ParseActivation resolves an activation name, rejecting unknown names.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// ResolveActivation resolves an activation name, falling back to ReLU with
// a warning on logger.
func ResolveActivation(name string, logger *slog.Logger) Activation {
	return nn.ResolveActivation(name, logger)
}

// Costs

// Cost is a per-sample cost function.
type Cost = nn.Cost

// Quadratic is 0.5 * sum((a - y)^2).
const Quadratic = nn.Quadratic

// ParseCost resolves a cost name, rejecting unknown names.
func ParseCost(name string) (Cost, error) {
	return nn.ParseCost(name)
}

// ResolveCost resolves a cost name, falling back to Quadratic with a
// warning on logger.
func ResolveCost(name string, logger *slog.Logger) Cost {
	return nn.ResolveCost(name, logger)
}

// Training

// TrainConfig holds configuration for Network.Train.
type TrainConfig = nn.TrainConfig

// Report summarizes a training run.
type Report = nn.Report

// Errors

var (
	ErrTooFewLayers      = nn.ErrTooFewLayers
	ErrEmptyLayer        = nn.ErrEmptyLayer
	ErrInvalidTraining   = nn.ErrInvalidTraining
	ErrUnknownActivation = nn.ErrUnknownActivation
	ErrUnknownCost       = nn.ErrUnknownCost
)
