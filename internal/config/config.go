// Package config loads densenet run files.
//
// A run file is YAML:
//
//	network:
//	  layers: [2, 4, 1]
//	  cost: quadratic
//	  hidden: sigmoid
//	  output: sigmoid
//	  init: {min: -1, max: 1}
//	  xavier: false    # overrides init
//	  seed: 42
//	training:
//	  batch_size: 4
//	  epochs: 5000
//	  learning_rate: 2
//	  schedule: halve
//	  verbose: false
//	data:
//	  kind: xor        # xor, sine or csv
//	  path: data.csv   # csv only
//	  inputs: 2        # csv only
//	  samples: 200     # sine only
//	  shuffle: true
//
// Missing fields keep the values from Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/densenet/internal/optim"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid run configuration")

// Dataset kinds.
const (
	DataXOR  = "xor"
	DataSine = "sine"
	DataCSV  = "csv"
)

// Config is a complete run description.
type Config struct {
	Network  Network  `yaml:"network"`
	Training Training `yaml:"training"`
	Data     Data     `yaml:"data"`
}

// Network describes the architecture.
type Network struct {
	Layers []int  `yaml:"layers"`
	Cost   string `yaml:"cost"`
	Hidden string `yaml:"hidden"`
	Output string `yaml:"output"`
	Init   Range  `yaml:"init"`
	Xavier bool   `yaml:"xavier"`
	Seed   uint64 `yaml:"seed"` // 0 draws a random seed
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Training holds the SGD hyper-parameters.
type Training struct {
	BatchSize    int     `yaml:"batch_size"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	Schedule     string  `yaml:"schedule"`
	Verbose      bool    `yaml:"verbose"`
}

// Data selects the training set.
type Data struct {
	Kind    string `yaml:"kind"`
	Path    string `yaml:"path"`
	Inputs  int    `yaml:"inputs"`
	Samples int    `yaml:"samples"`
	Shuffle bool   `yaml:"shuffle"`
}

// Default returns the XOR demo configuration.
func Default() Config {
	return Config{
		Network: Network{
			Layers: []int{2, 4, 1},
			Cost:   "quadratic",
			Hidden: "sigmoid",
			Output: "sigmoid",
			Init:   Range{Min: -1, Max: 1},
		},
		Training: Training{
			BatchSize:    4,
			Epochs:       5000,
			LearningRate: 2,
			Schedule:     "halve",
		},
		Data: Data{
			Kind:    DataXOR,
			Samples: 200,
			Shuffle: true,
		},
	}
}

// Load reads and validates a run file. Fields absent from the file keep
// their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a run file from r.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the network would reject.
//
// Function names are not checked here: unknown names fall back to the
// defaults when the network is built.
func (c Config) Validate() error {
	var problems []string
	if len(c.Network.Layers) < 2 {
		problems = append(problems, "network.layers needs an input size and at least one layer")
	}
	for i, n := range c.Network.Layers {
		if n <= 0 {
			problems = append(problems, fmt.Sprintf("network.layers[%d] must be positive, got %d", i, n))
		}
	}
	if c.Network.Init.Max < c.Network.Init.Min {
		problems = append(problems, "network.init.max must not be below network.init.min")
	}
	if c.Training.BatchSize <= 0 {
		problems = append(problems, "training.batch_size must be positive")
	}
	if c.Training.Epochs <= 0 {
		problems = append(problems, "training.epochs must be positive")
	}
	if c.Training.LearningRate <= 0 {
		problems = append(problems, "training.learning_rate must be positive")
	}
	if _, err := optim.ParseSchedule(c.Training.Schedule); err != nil {
		problems = append(problems, err.Error())
	}

	switch c.Data.Kind {
	case DataXOR:
		if len(c.Network.Layers) > 0 && c.Network.Layers[0] != 2 {
			problems = append(problems, "xor data needs an input size of 2")
		}
	case DataSine:
		if len(c.Network.Layers) > 0 && c.Network.Layers[0] != 1 {
			problems = append(problems, "sine data needs an input size of 1")
		}
		if c.Data.Samples <= 0 {
			problems = append(problems, "data.samples must be positive")
		}
	case DataCSV:
		if c.Data.Path == "" {
			problems = append(problems, "data.path is required for csv data")
		}
		if c.Data.Inputs <= 0 {
			problems = append(problems, "data.inputs must be positive for csv data")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown data.kind %q", c.Data.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
