package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 9.81, cfg.Pendulum.Gravity)
	assert.Equal(t, 2.0, cfg.Pendulum.Length)
	assert.Equal(t, 1.0, cfg.Pendulum.ControlMax)
}

func TestLoad_NoFile_AppliesOptions(t *testing.T) {
	cfg, err := Load("", WithControlMax(2.5), WithTreeDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Pendulum.ControlMax)
	assert.Equal(t, 1, cfg.Tree.Depth)
}

func TestValidate_RejectsBadControlMax(t *testing.T) {
	cfg := Default()
	cfg.Pendulum.ControlMax = 0
	assert.ErrorIs(t, Validate(cfg), ErrInvalidControlMax)
}

func TestValidate_RejectsBadTreeDepth(t *testing.T) {
	cfg := Default()
	cfg.Tree.Depth = 3
	assert.ErrorIs(t, Validate(cfg), ErrInvalidTreeDepth)
}

func TestValidate_RejectsBadDtBounds(t *testing.T) {
	cfg := Default()
	cfg.Optimizer.DtMin = 0.5
	cfg.Optimizer.DtMax = 0.1
	assert.ErrorIs(t, Validate(cfg), ErrInvalidDtBounds)
}

func TestValidate_RejectsDegenerateSpawnRegion(t *testing.T) {
	cfg := Default()
	cfg.SpawnRegion.ThetaMin = 1.0
	cfg.SpawnRegion.ThetaMax = 1.0
	assert.ErrorIs(t, Validate(cfg), ErrInvalidSpawnRegion)
}

func TestValidate_RejectsUnknownCostKind(t *testing.T) {
	cfg := Default()
	cfg.Cost.Kind = "exotic"
	assert.ErrorIs(t, Validate(cfg), ErrUnknownCostKind)
}
