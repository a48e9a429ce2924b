package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default returns the stock configuration tree: g=9.81, ℓ=2.0, m=1.0,
// d=0.1, u_max=1.0.
func Default() *Config {
	return &Config{
		Pendulum: PendulumConfig{
			Gravity:    9.81,
			Length:     2.0,
			Mass:       1.0,
			Damping:    0.1,
			ControlMax: 1.0,
		},
		Cost: CostConfig{
			Kind:    "quadratic",
			Weights: [2]float64{1.0, 1.0},
		},
		Tree: TreeConfig{
			Depth:              2,
			GrandchildFactor:   0.2,
			GrandchildMergeTol: 1e-3,
			NominalDt:          0.05,
		},
		Optimizer: OptimizerConfig{
			DtMin:         0.01,
			DtMax:         0.5,
			MaxIterations: 200,
			ZeroTolerance: 1e-6,
		},
		PairOpt: PairOptimizerConfig{
			MeetingEpsilon: 1e-3,
			MaxIterations:  1500,
		},
		Merge: MergeConfig{
			EvolutionTol: 0.05,
			TreeTol:      1e-3,
			BufferTol:    1.5e-3,
		},
		SpawnRegion: SpawnRegionConfig{
			ThetaMin:                 -0.5,
			ThetaMax:                 0.5,
			ThetaDotMin:              -0.5,
			ThetaDotMax:              0.5,
			MinRadius:                0.1,
			CandidateSafetyStepBound: 100,
		},
		Picker: PickerConfig{
			CloseThreshold: 0.05,
		},
		Colors: map[string]string{
			"goal":    "#f2c94c",
			"normal":  "#56ccf2",
			"ghost":   "#bdbdbd",
			"dead":    "#eb5757",
			"merged":  "#9b51e0",
			"angel":   "#27ae60",
		},
	}
}

// Option mutates a Config after defaults and file/env layers have been
// applied; used by tests and programmatic callers that need a one-off
// override without writing a config file.
type Option func(*Config)

// WithControlMax overrides pendulum.control_max.
func WithControlMax(uMax float64) Option {
	return func(c *Config) { c.Pendulum.ControlMax = uMax }
}

// WithTreeDepth overrides tree.depth.
func WithTreeDepth(depth int) Option {
	return func(c *Config) { c.Tree.Depth = depth }
}

// Load builds a Config by layering Default() under a config file at path
// (if non-empty) and environment variables prefixed SPOREGRAPH_, then
// applies opts and validates the result.
//
// Complexity: O(1) beyond viper's file I/O.
func Load(path string, opts ...Option) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("SPOREGRAPH")
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindDefaults seeds viper's own default layer from a fully-populated
// Config so AutomaticEnv() and ReadInConfig() only need to override the
// keys a deployment actually cares about.
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("pendulum.gravity", cfg.Pendulum.Gravity)
	v.SetDefault("pendulum.length", cfg.Pendulum.Length)
	v.SetDefault("pendulum.mass", cfg.Pendulum.Mass)
	v.SetDefault("pendulum.damping", cfg.Pendulum.Damping)
	v.SetDefault("pendulum.control_max", cfg.Pendulum.ControlMax)
	v.SetDefault("cost.kind", cfg.Cost.Kind)
	v.SetDefault("cost.weights", []float64{cfg.Cost.Weights[0], cfg.Cost.Weights[1]})
	v.SetDefault("tree.depth", cfg.Tree.Depth)
	v.SetDefault("tree.grandchild_factor", cfg.Tree.GrandchildFactor)
	v.SetDefault("tree.grandchild_merge_tol", cfg.Tree.GrandchildMergeTol)
	v.SetDefault("tree.nominal_dt", cfg.Tree.NominalDt)
	v.SetDefault("optimizer.dt_min", cfg.Optimizer.DtMin)
	v.SetDefault("optimizer.dt_max", cfg.Optimizer.DtMax)
	v.SetDefault("optimizer.max_iterations", cfg.Optimizer.MaxIterations)
	v.SetDefault("optimizer.zero_tolerance", cfg.Optimizer.ZeroTolerance)
	v.SetDefault("pair_optimizer.meeting_epsilon", cfg.PairOpt.MeetingEpsilon)
	v.SetDefault("pair_optimizer.max_iterations", cfg.PairOpt.MaxIterations)
	v.SetDefault("merge.evolution_tol", cfg.Merge.EvolutionTol)
	v.SetDefault("merge.tree_tol", cfg.Merge.TreeTol)
	v.SetDefault("merge.buffer_tol", cfg.Merge.BufferTol)
	v.SetDefault("spawn_region.theta_min", cfg.SpawnRegion.ThetaMin)
	v.SetDefault("spawn_region.theta_max", cfg.SpawnRegion.ThetaMax)
	v.SetDefault("spawn_region.thetadot_min", cfg.SpawnRegion.ThetaDotMin)
	v.SetDefault("spawn_region.thetadot_max", cfg.SpawnRegion.ThetaDotMax)
	v.SetDefault("spawn_region.min_radius", cfg.SpawnRegion.MinRadius)
	v.SetDefault("spawn_region.candidate_safety_step_bound", cfg.SpawnRegion.CandidateSafetyStepBound)
	v.SetDefault("picker.close_threshold", cfg.Picker.CloseThreshold)
	v.SetDefault("colors", cfg.Colors)
}

// Validate checks invariants that must hold before any component reads cfg.
func Validate(cfg *Config) error {
	if cfg.Pendulum.ControlMax <= 0 {
		return ErrInvalidControlMax
	}
	if cfg.Tree.Depth != 1 && cfg.Tree.Depth != 2 {
		return ErrInvalidTreeDepth
	}
	if cfg.Optimizer.DtMin >= cfg.Optimizer.DtMax {
		return ErrInvalidDtBounds
	}
	if cfg.SpawnRegion.ThetaMin >= cfg.SpawnRegion.ThetaMax || cfg.SpawnRegion.ThetaDotMin >= cfg.SpawnRegion.ThetaDotMax {
		return ErrInvalidSpawnRegion
	}
	if cfg.Cost.Kind != "quadratic" {
		return fmt.Errorf("%w: %q", ErrUnknownCostKind, cfg.Cost.Kind)
	}

	return nil
}
