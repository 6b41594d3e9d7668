// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense feed-forward networks trained with mini-batch
// stochastic gradient descent.
//
// # Overview
//
// This package contains:
//   - Network: an ordered chain of fully connected layers
//   - Layer: weights, bias, forward state and gradient buffers
//   - Activations: ReLU, Sigmoid, Identity
//   - Costs: Quadratic
//   - Training: Train, TrainConfig, Report
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenet/dataset"
//	    "github.com/born-ml/densenet/nn"
//	)
//
//	func main() {
//	    net := nn.New(nn.Config{
//	        Sizes:  []int{2, 4, 1},
//	        Hidden: "sigmoid",
//	        Output: "sigmoid",
//	    })
//
//	    report := net.Train(dataset.XOR(), nn.TrainConfig{
//	        BatchSize:    4,
//	        Epochs:       5000,
//	        LearningRate: 2,
//	    })
//
//	    out := net.Forward([]float64{1, 0})
//	}
//
// # Function Names
//
// Config takes activation and cost functions by name so that networks can
// be described in configuration files. Unrecognized names are logged and
// replaced by the defaults (ReLU, Quadratic). Use ParseActivation and
// ParseCost to reject them instead.
//
// # Contract Violations
//
// Shape mismatches and invalid sizes are programming errors and panic with
// an error wrapping one of the package sentinels, so a recovered value can
// be inspected with errors.Is.
package nn
