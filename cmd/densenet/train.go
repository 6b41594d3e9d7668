package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/born-ml/densenet/internal/config"
	"github.com/born-ml/densenet/internal/dataset"
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/optim"
)

// summaryLines bounds the per-epoch cost table.
const summaryLines = 10

func trainCommand(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML run file (default: built-in XOR run)")
	epochs := fs.Int("epochs", 0, "Override training.epochs")
	lr := fs.Float64("lr", 0, "Override training.learning_rate")
	batch := fs.Int("batch", 0, "Override training.batch_size")
	debug := fs.Bool("v", false, "Debug logging")
	quiet := fs.Bool("quiet", false, "Only log warnings and errors")
	progressBar := fs.Bool("progress", false, "Draw a progress bar per mini-batch")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *epochs > 0 {
		cfg.Training.Epochs = *epochs
	}
	if *lr > 0 {
		cfg.Training.LearningRate = *lr
	}
	if *batch > 0 {
		cfg.Training.BatchSize = *batch
	}
	if *progressBar {
		cfg.Training.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	switch {
	case *debug:
		level = slog.LevelDebug
	case *quiet:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return train(cfg, stdout, logger)
}

func train(cfg config.Config, stdout io.Writer, logger *slog.Logger) error {
	seed := cfg.Network.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logger.Debug("seeded", "seed", seed)

	samples, err := loadSamples(cfg.Data, rng)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("dataset %q is empty", cfg.Data.Kind)
	}
	if got, want := len(samples[0].Input), cfg.Network.Layers[0]; got != want {
		return fmt.Errorf("dataset inputs (%d) do not match network input size (%d)", got, want)
	}
	if cfg.Data.Shuffle {
		dataset.Shuffle(samples, rng)
	}

	schedule, err := optim.ParseSchedule(cfg.Training.Schedule)
	if err != nil {
		return err
	}

	net := nn.New(nn.Config{
		Sizes:   cfg.Network.Layers,
		Cost:    cfg.Network.Cost,
		Hidden:  cfg.Network.Hidden,
		Output:  cfg.Network.Output,
		InitMin: cfg.Network.Init.Min,
		InitMax: cfg.Network.Init.Max,
		Xavier:  cfg.Network.Xavier,
		Rand:    rng,
		Logger:  logger,
	})
	if got, want := len(samples[0].Target), net.OutputSize(); got != want {
		return fmt.Errorf("dataset targets (%d) do not match network output size (%d)", got, want)
	}

	report := net.Train(samples, nn.TrainConfig{
		BatchSize:    cfg.Training.BatchSize,
		Epochs:       cfg.Training.Epochs,
		LearningRate: cfg.Training.LearningRate,
		Verbose:      cfg.Training.Verbose,
		Progress:     stdout,
		Schedule:     schedule,
	})

	printSummary(stdout, report)
	printPredictions(stdout, net, samples)
	return nil
}

func loadSamples(data config.Data, rng *rand.Rand) ([]dataset.Sample, error) {
	switch data.Kind {
	case config.DataXOR:
		return dataset.XOR(), nil
	case config.DataSine:
		return dataset.FromFunc(math.Sin, data.Samples, -math.Pi, math.Pi, rng), nil
	case config.DataCSV:
		return dataset.LoadCSV(data.Path, data.Inputs)
	default:
		return nil, fmt.Errorf("unknown data kind %q", data.Kind)
	}
}

func printSummary(w io.Writer, report nn.Report) {
	fmt.Fprintf(w, "\nrun %s: %d epochs, final learning rate %g\n", report.RunID, report.Epochs, report.LearningRate)
	n := len(report.Costs)
	if n == 0 {
		return
	}
	step := max(1, n/summaryLines)
	fmt.Fprintln(w, "epoch      cost")
	for i := 0; i < n; i += step {
		fmt.Fprintf(w, "%5d  %.8f\n", i+1, report.Costs[i])
	}
	if (n-1)%step != 0 {
		fmt.Fprintf(w, "%5d  %.8f\n", n, report.Costs[n-1])
	}
}

// printPredictions shows at most summaryLines samples.
func printPredictions(w io.Writer, net *nn.Network, samples []dataset.Sample) {
	fmt.Fprintln(w, "\npredictions")
	for _, s := range samples[:min(len(samples), summaryLines)] {
		out := net.Forward(s.Input)
		fmt.Fprintf(w, "%v -> %.4f (want %v)\n", s.Input, out, s.Target)
	}
}
