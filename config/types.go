package config

// PendulumConfig holds the immutable physical parameters of the pendulum.
type PendulumConfig struct {
	Gravity    float64 `mapstructure:"gravity"`     // g
	Length     float64 `mapstructure:"length"`      // ℓ
	Mass       float64 `mapstructure:"mass"`        // m
	Damping    float64 `mapstructure:"damping"`     // d
	ControlMax float64 `mapstructure:"control_max"` // u_max; control ∈ [-u_max, u_max]
}

// CostConfig selects and parameterizes the scalar planning cost function.
// The cost function is always a configured parameter, never a hidden
// default baked into Spore.
type CostConfig struct {
	// Kind names the cost function; "quadratic" is the only built-in kind.
	Kind string `mapstructure:"kind"`
	// Weights scales the per-axis squared error for "quadratic": [w_theta, w_thetadot].
	Weights [2]float64 `mapstructure:"weights"`
}

// TreeConfig parameterizes the depth-2 spore tree.
type TreeConfig struct {
	// Depth is 1 (children only) or 2 (children + grandchildren).
	Depth int `mapstructure:"depth"`
	// GrandchildFactor bounds |dt_gc| <= |dt_child| * GrandchildFactor.
	GrandchildFactor float64 `mapstructure:"grandchild_factor"`
	// GrandchildMergeTol is loaded but read by no component; tree-level
	// grandchild collapsing uses Merge.TreeTol.
	GrandchildMergeTol float64 `mapstructure:"grandchild_merge_tol"`
	// NominalDt is the default unsigned dt magnitude for newly built trees.
	NominalDt float64 `mapstructure:"nominal_dt"`
}

// OptimizerConfig bounds the per-spore (u, dt) optimizer.
type OptimizerConfig struct {
	DtMin         float64 `mapstructure:"dt_min"`
	DtMax         float64 `mapstructure:"dt_max"`
	MaxIterations int     `mapstructure:"max_iterations"`
	ZeroTolerance float64 `mapstructure:"zero_tolerance"` // dt snapped to 0 within this band
}

// PairOptimizerConfig bounds the 12-dim pair optimizer.
type PairOptimizerConfig struct {
	MeetingEpsilon float64 `mapstructure:"meeting_epsilon"`
	MaxIterations  int     `mapstructure:"max_iterations"`
}

// MergeConfig collects the three distinct merge-tolerance call sites, each
// a separately configurable parameter.
type MergeConfig struct {
	EvolutionTol float64 `mapstructure:"evolution_tol"` // evolution-step trajectory merge
	TreeTol      float64 `mapstructure:"tree_tol"`      // collapsing close grandchildren
	BufferTol    float64 `mapstructure:"buffer_tol"`    // buffer merge
}

// SpawnRegionConfig bounds the candidate-spawn rectangle in phase-plane
// coordinates and the Poisson-disk sampling radius.
type SpawnRegionConfig struct {
	ThetaMin                 float64 `mapstructure:"theta_min"`
	ThetaMax                 float64 `mapstructure:"theta_max"`
	ThetaDotMin              float64 `mapstructure:"thetadot_min"`
	ThetaDotMax              float64 `mapstructure:"thetadot_max"`
	MinRadius                float64 `mapstructure:"min_radius"`
	CandidateSafetyStepBound int     `mapstructure:"candidate_safety_step_bound"`
}

// PickerConfig parameterizes the neighbor-query subsystem.
type PickerConfig struct {
	CloseThreshold float64 `mapstructure:"close_threshold"`
}

// Config is the full configuration tree.
type Config struct {
	Pendulum    PendulumConfig      `mapstructure:"pendulum"`
	Cost        CostConfig          `mapstructure:"cost"`
	Tree        TreeConfig          `mapstructure:"tree"`
	Optimizer   OptimizerConfig     `mapstructure:"optimizer"`
	PairOpt     PairOptimizerConfig `mapstructure:"pair_optimizer"`
	Merge       MergeConfig         `mapstructure:"merge"`
	SpawnRegion SpawnRegionConfig   `mapstructure:"spawn_region"`
	Picker      PickerConfig        `mapstructure:"picker"`
	// Colors maps role/lifecycle keys (e.g. "goal", "ghost_max", "dead") to
	// opaque color identifiers consumed by the external visual layer; the
	// core never interprets these values (Non-goals: color/theme resources).
	Colors map[string]string `mapstructure:"colors"`
}
