package nn

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/born-ml/densenet/internal/dataset"
	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/internal/progress"
)

// ErrInvalidTraining is raised when a TrainConfig has a non-positive batch
// size, epoch count or learning rate.
var ErrInvalidTraining = errors.New("nn: invalid training configuration")

// TrainConfig holds configuration for Network.Train.
type TrainConfig struct {
	BatchSize    int     // Samples per mini-batch
	Epochs       int     // Passes over the dataset
	LearningRate float64 // Initial learning rate

	// Verbose prints a progress line per mini-batch to Progress.
	Verbose  bool
	Progress io.Writer // Progress destination (default: os.Stdout)

	// Schedule adapts the learning rate between epochs
	// (default: optim.HalveOnIncrease).
	Schedule optim.Schedule

	// CostSample is the number of leading samples whose mean cost represents
	// an epoch (default: BatchSize).
	CostSample int
}

// Report summarizes a training run.
type Report struct {
	RunID        uuid.UUID // Identifies the run in log output
	Costs        []float64 // Representative cost after each epoch
	LearningRate float64   // Learning rate after the last epoch
	Epochs       int       // Completed epochs
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.BatchSize <= 0 || c.Epochs <= 0 || c.LearningRate <= 0 {
		panic(fmt.Errorf("Network.Train: %w: batch size %d, epochs %d, learning rate %v",
			ErrInvalidTraining, c.BatchSize, c.Epochs, c.LearningRate))
	}
	if c.Progress == nil {
		c.Progress = os.Stdout
	}
	if c.Schedule == nil {
		c.Schedule = optim.HalveOnIncrease{}
	}
	if c.CostSample <= 0 {
		c.CostSample = c.BatchSize
	}
	return c
}

// Train runs mini-batch stochastic gradient descent over samples.
//
// samples is used in the given order; shuffle beforehand if needed. Each
// epoch partitions samples into contiguous mini-batches. For each mini-batch
// the gradients are zeroed, every sample is back-propagated, and every layer
// is updated once with the averaged gradient. After each epoch the cost of
// the first CostSample samples is recorded and the schedule picks the next
// learning rate.
func (n *Network) Train(samples []dataset.Sample, cfg TrainConfig) Report {
	cfg = cfg.withDefaults()

	report := Report{
		RunID:        uuid.New(),
		Costs:        make([]float64, 0, cfg.Epochs),
		LearningRate: cfg.LearningRate,
	}
	log := n.logger.With("run_id", report.RunID.String())
	log.Info("training started", "samples", len(samples), "batch_size", cfg.BatchSize,
		"epochs", cfg.Epochs, "learning_rate", cfg.LearningRate)

	if len(samples) == 0 {
		log.Warn("training skipped, no samples")
		return report
	}

	representative := samples[:min(cfg.CostSample, len(samples))]
	batches := dataset.Batches(samples, cfg.BatchSize)
	lr := cfg.LearningRate

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		var sampleCost float64
		if cfg.Verbose {
			sampleCost = n.BatchCost(representative)
		}

		for step, batch := range batches {
			n.trainBatch(batch, lr)
			if cfg.Verbose {
				progress.Display(cfg.Progress, step+1, len(batches), sampleCost, epoch, cfg.Epochs)
			}
		}

		cost := n.BatchCost(representative)
		report.Costs = append(report.Costs, cost)
		report.Epochs = epoch

		next := cfg.Schedule.Next(lr, report.Costs)
		if next != lr {
			log.Info("learning rate adjusted", "epoch", epoch, "from", lr, "to", next, "cost", cost)
		}
		lr = next
		log.Debug("epoch complete", "epoch", epoch, "cost", cost, "learning_rate", lr)
	}

	report.LearningRate = lr
	log.Info("training finished", "epochs", report.Epochs,
		"cost", report.Costs[len(report.Costs)-1], "learning_rate", lr)
	return report
}

// trainBatch accumulates gradients over batch and applies one update.
func (n *Network) trainBatch(batch []dataset.Sample, lr float64) {
	for _, l := range n.layers {
		l.ZeroGrad()
	}
	for _, s := range batch {
		n.backprop(s)
	}
	for _, l := range n.layers {
		l.ApplyUpdate(len(batch), lr)
	}
}
