// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/born-ml/densenet/internal/optim"

// Schedule picks the learning rate for the next epoch.
type Schedule = optim.Schedule

// HalveOnIncrease halves the learning rate when the latest epoch cost
// exceeds the previous one.
type HalveOnIncrease = optim.HalveOnIncrease

// Constant never changes the learning rate.
type Constant = optim.Constant

// Plateau scales the learning rate by Factor when the mean cost of the last
// Window epochs fails to improve on the window before it.
type Plateau = optim.Plateau

// PlateauConfig returns a Plateau with default settings.
//
// Example:
//
//	s := optim.PlateauConfig()
//	s.MinLR = 1e-4
func PlateauConfig() Plateau {
	return optim.PlateauConfig()
}

// ParseSchedule resolves a schedule name: "halve" (default), "plateau" or
// "constant".
func ParseSchedule(name string) (Schedule, error) {
	return optim.ParseSchedule(name)
}

// ErrUnknownSchedule is returned by ParseSchedule for unknown names.
var ErrUnknownSchedule = optim.ErrUnknownSchedule
