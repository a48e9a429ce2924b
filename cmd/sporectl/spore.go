package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgunyavoy/sporegraph/manager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

var spawnFlags struct {
	theta, thetaDot         float64
	goalTheta, goalThetaDot float64
}

var sporeCmd = &cobra.Command{
	Use:   "spore",
	Short: "Seed, evolve, and activate spores along the evolution chain",
}

var sporeSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the root of a new evolution chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		initial := sporelogic.Point2D{Theta: spawnFlags.theta, ThetaDot: spawnFlags.thetaDot}
		goal := sporelogic.Point2D{Theta: spawnFlags.goalTheta, ThetaDot: spawnFlags.goalThetaDot}
		spore, err := s.mgr.SeedRoot(initial, goal, s.cfg.Cost.Weights, sporelogic.RoleNormal)
		if err != nil {
			return err
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded spore %d at (%.4f, %.4f)\n", spore.ID, spore.State.Theta, spore.State.ThetaDot)
		return nil
	},
}

var sporeEvolveCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Drive generate_new_spore once against the current evolvable spore",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		produced, err := s.mgr.GenerateNewSpore()
		if err != nil && !errors.Is(err, manager.ErrNoCurrentSpore) {
			return err
		}
		if produced == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "current spore is not evolvable; nothing produced")
			return nil
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "produced spore %d at (%.4f, %.4f)\n", produced.ID, produced.State.Theta, produced.State.ThetaDot)
		return nil
	},
}

var sporeEvolveAllCmd = &cobra.Command{
	Use:   "evolve-all-candidates",
	Short: "Drain the candidate pool, evolving each to completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		count := 0
		for ev := range s.mgr.EvolveAllCandidatesToCompletion() {
			count++
			fmt.Fprintf(cmd.OutOrStdout(), "candidate %d step %d -> spore %d (merged=%v completed=%v)\n",
				ev.CandidateID, ev.StepCount, ev.ProducedID, ev.Merged, ev.Completed)
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "processed %d evolution steps\n", count)
		return nil
	},
}

var sporeActivateCmd = &cobra.Command{
	Use:   "activate-candidate",
	Short: "Promote a random pool candidate to the current evolvable spore",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		goal := sporelogic.Point2D{Theta: spawnFlags.goalTheta, ThetaDot: spawnFlags.goalThetaDot}
		if _, err := s.mgr.GenerateCandidateSpores(goal, s.cfg.Cost.Weights); err != nil {
			return err
		}
		spore, err := s.mgr.ActivateRandomCandidate()
		if err != nil {
			return err
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "activated candidate %d at (%.4f, %.4f)\n", spore.ID, spore.State.Theta, spore.State.ThetaDot)
		return nil
	},
}

func init() {
	sporeSeedCmd.Flags().Float64Var(&spawnFlags.theta, "theta", 0, "initial theta")
	sporeSeedCmd.Flags().Float64Var(&spawnFlags.thetaDot, "theta-dot", 0, "initial theta-dot")
	sporeSeedCmd.Flags().Float64Var(&spawnFlags.goalTheta, "goal-theta", 0, "goal theta")
	sporeSeedCmd.Flags().Float64Var(&spawnFlags.goalThetaDot, "goal-theta-dot", 0, "goal theta-dot")

	sporeActivateCmd.Flags().Float64Var(&spawnFlags.goalTheta, "goal-theta", 0, "goal theta for freshly sampled candidates")
	sporeActivateCmd.Flags().Float64Var(&spawnFlags.goalThetaDot, "goal-theta-dot", 0, "goal theta-dot for freshly sampled candidates")

	sporeCmd.AddCommand(sporeSeedCmd, sporeEvolveCmd, sporeEvolveAllCmd, sporeActivateCmd)
}
