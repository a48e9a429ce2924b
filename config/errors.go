package config

import "errors"

var (
	// ErrInvalidControlMax indicates a non-positive control bound.
	ErrInvalidControlMax = errors.New("config: pendulum.control_max must be positive")

	// ErrInvalidTreeDepth indicates Tree.Depth is outside {1, 2}.
	ErrInvalidTreeDepth = errors.New("config: tree.depth must be 1 or 2")

	// ErrInvalidDtBounds indicates optimizer.dt_min >= optimizer.dt_max.
	ErrInvalidDtBounds = errors.New("config: optimizer.dt_min must be < optimizer.dt_max")

	// ErrInvalidSpawnRegion indicates the spawn rectangle is degenerate or inverted.
	ErrInvalidSpawnRegion = errors.New("config: spawn_region bounds are degenerate")

	// ErrUnknownCostKind indicates CostConfig.Kind names an unsupported cost function.
	ErrUnknownCostKind = errors.New("config: unknown cost.kind")
)
