package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resona-ml/resona/internal/config"
	"github.com/resona-ml/resona/internal/sample"
	"github.com/resona-ml/resona/internal/train"
)

const fullRun = `
physics:
  mass: 1.0
  damping: 0.2
  stiffness: 1.0
  initial_position: 1.0
  initial_velocity: 0.0
domain:
  length: 4.0
  boundary_points: 2
  collocation_points: 64
  policy: random
  seed: 7
network:
  hidden: [32, 32]
  activation: sin
  weight_seed: 42
training:
  optimizer: sgd
  learning_rate: 0.01
  momentum: 0.9
  max_iterations: 500
  tolerance: 1e-6
  lambda: 0.1
  log_every: 50
  parallel: true
`

func TestParse_FullDocument(t *testing.T) {
	cfg, err := config.Parse([]byte(fullRun))
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Physics.Mass)
	assert.Equal(t, 0.2, cfg.Physics.Damping)
	assert.Equal(t, 4.0, cfg.Sampling.Domain)
	assert.Equal(t, 64, cfg.Sampling.NumCollocation)
	assert.Equal(t, sample.PolicyRandom, cfg.Sampling.Policy)
	assert.Equal(t, int64(7), cfg.Sampling.Seed)
	assert.Equal(t, []int{32, 32}, cfg.Hidden)
	assert.Equal(t, "sin", cfg.Activation)
	assert.Equal(t, "sgd", cfg.Optimizer)
	assert.Equal(t, 0.9, cfg.Momentum)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.Equal(t, 0.1, cfg.Lambda)
	assert.Equal(t, 50, cfg.LogEvery)
	assert.True(t, cfg.Parallel.Enabled)

	// The decoded configuration must be accepted as-is by the trainer.
	_, err = train.New(cfg)
	assert.NoError(t, err)
}

func TestParse_DefaultsFillOmittedFields(t *testing.T) {
	cfg, err := config.Parse([]byte(`
physics:
  mass: 2.0
  stiffness: 8.0
  initial_position: 1.0
domain:
  length: 1.0
  collocation_points: 16
training:
  max_iterations: 100
  lambda: 1.0
`))
	require.NoError(t, err)

	assert.Equal(t, sample.PolicyGrid, cfg.Sampling.Policy)
	assert.Equal(t, 2, cfg.Sampling.NumBoundary)
	assert.Equal(t, []int{16, 16}, cfg.Hidden)
	assert.Equal(t, "tanh", cfg.Activation)
	assert.Equal(t, "adam", cfg.Optimizer)
	assert.Equal(t, 1e-3, cfg.LearningRate)
	assert.False(t, cfg.Parallel.Enabled)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte(`
physics:
  mass: 1.0
  dampening: 0.2
`))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownPolicy(t *testing.T) {
	_, err := config.Parse([]byte(`
domain:
  policy: sobol
`))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("physics: ["))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullRun), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxIterations)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
