package main

import (
	"fmt"
	"time"

	"github.com/vgunyavoy/sporegraph/config"
	"github.com/vgunyavoy/sporegraph/dtctl"
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/logging"
	"github.com/vgunyavoy/sporegraph/manager"
	"github.com/vgunyavoy/sporegraph/optimizer"
	"github.com/vgunyavoy/sporegraph/pendulum"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// session wires one invocation's worth of managers together: it loads
// config.Config and constructs the managers that depend on it. The real
// graph resumes from statePath if present; everything else (the dt
// manager's current value and change count, the candidate pool, any ghost
// tree) is session-local and starts fresh each invocation, since nothing
// persists them across runs.
type session struct {
	cfg *config.Config
	sys *pendulum.System
	ids *idmanager.Manager
	g   *graph.Graph
	dt  *dtctl.Manager
	mgr *manager.Manager
}

func newSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("sporectl: loading config: %w", err)
	}

	sys := pendulum.New(cfg.Pendulum.Gravity, cfg.Pendulum.Length, cfg.Pendulum.Mass, cfg.Pendulum.Damping, cfg.Pendulum.ControlMax)

	sink := logging.Discard()
	g, loaded, err := graph.LoadSnapshotFile(statePath, cfg.Cost.Weights, sporelogic.QuadraticCost, sink)
	if err != nil {
		return nil, fmt.Errorf("sporectl: loading state %s: %w", statePath, err)
	}
	if !loaded {
		g = graph.New(sink)
	}

	ids := idmanager.NewFrom(g.MaxSporeID(), g.MaxLinkID())

	dt, err := dtctl.New(cfg.Tree.NominalDt)
	if err != nil {
		return nil, fmt.Errorf("sporectl: constructing dt manager: %w", err)
	}

	solver, err := optimizer.New(
		optimizer.Bounds{ControlMax: cfg.Pendulum.ControlMax, DtMin: cfg.Optimizer.DtMin, DtMax: cfg.Optimizer.DtMax},
		cfg.Optimizer.MaxIterations,
		cfg.Optimizer.ZeroTolerance,
		sys.StepFunc(),
		sporelogic.QuadraticCost,
	)
	if err != nil {
		return nil, fmt.Errorf("sporectl: constructing optimizer: %w", err)
	}

	spawnRegion := manager.SpawnRegion{
		ThetaMin: cfg.SpawnRegion.ThetaMin, ThetaMax: cfg.SpawnRegion.ThetaMax,
		ThetaDotMin: cfg.SpawnRegion.ThetaDotMin, ThetaDotMax: cfg.SpawnRegion.ThetaDotMax,
	}
	mgr, err := manager.New(
		g, solver, ids, sys.StepFunc(), sporelogic.QuadraticCost,
		cfg.Merge.EvolutionTol, cfg.SpawnRegion.CandidateSafetyStepBound,
		spawnRegion, cfg.SpawnRegion.MinRadius, cfg.Pendulum.ControlMax,
		manager.WithLogger(sink),
	)
	if err != nil {
		return nil, fmt.Errorf("sporectl: constructing manager: %w", err)
	}

	return &session{cfg: cfg, sys: sys, ids: ids, g: g, dt: dt, mgr: mgr}, nil
}

// save overwrites statePath with the current real graph: one file,
// overwritten on every state-changing invocation.
func (s *session) save() error {
	return s.g.WriteSnapshotFile(statePath, time.Now())
}
