package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgunyavoy/sporegraph/buffermerge"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

var mergeFlags struct {
	cursorTheta, cursorThetaDot float64
	goalTheta, goalThetaDot     float64
	depth                       int
	optimizePairs               bool
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Buffer-merge and materialize a local tree into the real graph",
}

var mergeCommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "merge.buffer_and_materialize: build a tree at the cursor and commit it into the real graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mergeFlags.depth != 1 && mergeFlags.depth != 2 {
			return fmt.Errorf("sporectl: --depth must be 1 or 2, got %d", mergeFlags.depth)
		}
		s, err := newSession()
		if err != nil {
			return err
		}

		treeFlags.cursorTheta = mergeFlags.cursorTheta
		treeFlags.cursorThetaDot = mergeFlags.cursorThetaDot
		treeFlags.depth = mergeFlags.depth
		treeFlags.optimizePairs = mergeFlags.optimizePairs
		cursor := sporelogic.Point2D{Theta: mergeFlags.cursorTheta, ThetaDot: mergeFlags.cursorThetaDot}

		tr, err := buildTree(s, cursor)
		if err != nil {
			return err
		}

		buf, err := buffermerge.BuildBuffer(tr, s.cfg.Merge.BufferTol)
		if err != nil {
			return err
		}

		goal := sporelogic.Point2D{Theta: mergeFlags.goalTheta, ThetaDot: mergeFlags.goalThetaDot}
		result, err := buffermerge.Materialize(buf, s.g, s.ids, goal, s.cfg.Cost.Weights, sporelogic.QuadraticCost)
		if err != nil {
			return err
		}

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "materialized group %s: %d spores, %d links (%d merged links)\n",
			result.GroupID, len(result.SporeIDs), len(result.LinkIDs), result.MergedLinks)
		return nil
	},
}

func init() {
	mergeCommitCmd.Flags().Float64Var(&mergeFlags.cursorTheta, "cursor-theta", 0, "tree root theta")
	mergeCommitCmd.Flags().Float64Var(&mergeFlags.cursorThetaDot, "cursor-theta-dot", 0, "tree root theta-dot")
	mergeCommitCmd.Flags().Float64Var(&mergeFlags.goalTheta, "goal-theta", 0, "goal theta for materialized spores")
	mergeCommitCmd.Flags().Float64Var(&mergeFlags.goalThetaDot, "goal-theta-dot", 0, "goal theta-dot for materialized spores")
	mergeCommitCmd.Flags().IntVar(&mergeFlags.depth, "depth", 2, "tree depth to build before committing")
	mergeCommitCmd.Flags().BoolVar(&mergeFlags.optimizePairs, "optimize-pairs", false, "run the pair optimizer before committing")

	mergeCmd.AddCommand(mergeCommitCmd)
}
