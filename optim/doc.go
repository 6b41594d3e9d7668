// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides learning-rate schedules for nn.Network.Train.
//
// # Overview
//
// This package contains:
//   - HalveOnIncrease: halves the rate when the epoch cost rises
//   - Plateau: scales the rate down when the smoothed cost stops improving
//   - Constant: keeps the rate fixed
//   - Schedule interface for custom policies
//
// # Basic Usage
//
//	report := net.Train(samples, nn.TrainConfig{
//	    BatchSize:    10,
//	    Epochs:       30,
//	    LearningRate: 3,
//	    Schedule:     optim.PlateauConfig(),
//	})
package optim
