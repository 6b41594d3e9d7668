// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/densenet/dataset"
	"github.com/born-ml/densenet/matrix"
	"github.com/born-ml/densenet/nn"
	"github.com/born-ml/densenet/optim"
)

// TestPublicAPI builds and trains a network through the facade packages only.
func TestPublicAPI(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := rand.New(rand.NewPCG(9, 9))

	net := nn.New(nn.Config{
		Sizes:  []int{1, 6, 1},
		Hidden: "sigmoid",
		Output: "identity",
		Rand:   rng,
		Logger: logger,
	})
	require.Equal(t, 2, net.Len())
	assert.Equal(t, nn.Sigmoid, net.Layer(0).Activation())
	assert.Equal(t, nn.Identity, net.Layer(1).Activation())

	samples := dataset.FromFunc(func(x float64) float64 { return 0.5 * x }, 40, -1, 1, rng)
	train, val := dataset.Split(samples, 0.25)
	require.Len(t, val, 10)

	before := net.BatchCost(val)
	report := net.Train(train, nn.TrainConfig{
		BatchSize:    10,
		Epochs:       200,
		LearningRate: 0.1,
		Schedule:     optim.PlateauConfig(),
		Progress:     io.Discard,
	})
	assert.Equal(t, 200, report.Epochs)
	assert.Less(t, net.BatchCost(val), before)
}

func TestPublicAPI_Errors(t *testing.T) {
	_, err := nn.ParseActivation("tanh")
	assert.ErrorIs(t, err, nn.ErrUnknownActivation)

	_, err = optim.ParseSchedule("cosine")
	assert.ErrorIs(t, err, optim.ErrUnknownSchedule)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
	}()
	a := matrix.New(2, 3)
	a.Dot(matrix.New(2, 2), matrix.New(2, 2))
}
