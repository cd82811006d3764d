// Package config reads YAML run files for the CLI and maps them onto a
// training configuration. The library itself takes plain Go structs; this
// package exists only for the file-driven entry points.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/resona-ml/resona/internal/physics"
	"github.com/resona-ml/resona/internal/sample"
	"github.com/resona-ml/resona/internal/train"
)

// File is the YAML schema of one run.
type File struct {
	Physics struct {
		Mass            float64 `yaml:"mass"`
		Damping         float64 `yaml:"damping"`
		Stiffness       float64 `yaml:"stiffness"`
		InitialPosition float64 `yaml:"initial_position"`
		InitialVelocity float64 `yaml:"initial_velocity"`
	} `yaml:"physics"`

	Domain struct {
		Length            float64 `yaml:"length"`
		BoundaryPoints    int     `yaml:"boundary_points"`
		CollocationPoints int     `yaml:"collocation_points"`
		Policy            string  `yaml:"policy"`
		Seed              int64   `yaml:"seed"`
	} `yaml:"domain"`

	Network struct {
		Hidden     []int  `yaml:"hidden"`
		Activation string `yaml:"activation"`
		WeightSeed int64  `yaml:"weight_seed"`
	} `yaml:"network"`

	Training struct {
		Optimizer     string  `yaml:"optimizer"`
		LearningRate  float64 `yaml:"learning_rate"`
		Momentum      float64 `yaml:"momentum"`
		MaxIterations int     `yaml:"max_iterations"`
		Tolerance     float64 `yaml:"tolerance"`
		Lambda        float64 `yaml:"lambda"`
		LogEvery      int     `yaml:"log_every"`
		Parallel      bool    `yaml:"parallel"`
	} `yaml:"training"`
}

// Default returns the schema defaults applied before decoding, so a run
// file only needs to state what differs.
func Default() File {
	var f File
	f.Domain.BoundaryPoints = 2
	f.Domain.Policy = "grid"
	f.Network.Hidden = []int{16, 16}
	f.Network.Activation = "tanh"
	f.Training.Optimizer = "adam"
	f.Training.LearningRate = 1e-3
	return f
}

// Parse decodes a YAML document into a training configuration. Unknown
// keys are rejected so typos fail loudly instead of silently falling back
// to defaults. Value-level validation is left to train.New.
func Parse(data []byte) (train.Config, error) {
	f := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return train.Config{}, fmt.Errorf("config: %w", err)
	}

	policy, err := sample.ParsePolicy(f.Domain.Policy)
	if err != nil {
		return train.Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := train.Config{
		Physics: physics.Params{
			Mass:            f.Physics.Mass,
			Damping:         f.Physics.Damping,
			Stiffness:       f.Physics.Stiffness,
			InitialPosition: f.Physics.InitialPosition,
			InitialVelocity: f.Physics.InitialVelocity,
		},
		Sampling: sample.Config{
			Domain:         f.Domain.Length,
			NumBoundary:    f.Domain.BoundaryPoints,
			NumCollocation: f.Domain.CollocationPoints,
			Policy:         policy,
			Seed:           f.Domain.Seed,
		},
		Hidden:        f.Network.Hidden,
		Activation:    f.Network.Activation,
		WeightSeed:    f.Network.WeightSeed,
		Optimizer:     f.Training.Optimizer,
		LearningRate:  f.Training.LearningRate,
		Momentum:      f.Training.Momentum,
		MaxIterations: f.Training.MaxIterations,
		Tolerance:     f.Training.Tolerance,
		Lambda:        f.Training.Lambda,
		LogEvery:      f.Training.LogEvery,
	}
	if f.Training.Parallel {
		cfg.Parallel = train.DefaultParallel()
	}
	return cfg, nil
}

// Load reads and parses a YAML run file.
func Load(path string) (train.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return train.Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}
