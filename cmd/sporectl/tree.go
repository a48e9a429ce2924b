package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgunyavoy/sporegraph/pairopt"
	"github.com/vgunyavoy/sporegraph/sporelogic"
	"github.com/vgunyavoy/sporegraph/tree"
)

var treeFlags struct {
	cursorTheta, cursorThetaDot float64
	depth                       int
	optimizePairs               bool
	mode                        string
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Build and inspect the depth-2 local search tree at a cursor state",
}

// buildTree runs create_children → [create_grandchildren → merge →
// sort_and_pair → mean_points], honoring tree.set_depth(1|2); a CLI
// invocation is one shot, so depth and apply-optimal-pairs are flags on
// this command rather than separate stateful toggles.
func buildTree(s *session, cursor sporelogic.Point2D) (*tree.Tree, error) {
	tr, err := tree.New(cursor, s.sys.StepFunc())
	if err != nil {
		return nil, err
	}

	nominal := s.dt.CurrentDt()
	if err := tr.CreateChildren([4]float64{nominal, nominal, nominal, nominal}, s.cfg.Pendulum.ControlMax); err != nil {
		return nil, err
	}
	if treeFlags.depth == 1 {
		return tr, nil
	}

	gcDt := nominal * s.cfg.Tree.GrandchildFactor
	if err := tr.CreateGrandchildren([8]float64{gcDt, gcDt, gcDt, gcDt, gcDt, gcDt, gcDt, gcDt}); err != nil {
		return nil, err
	}
	if err := tr.MergeCloseGrandchildren(s.cfg.Merge.TreeTol); err != nil {
		return nil, err
	}
	if err := tr.SortAndPairGrandchildren(); err != nil {
		return nil, err
	}
	if err := tr.CalculateMeanPoints(); err != nil {
		return nil, err
	}

	if treeFlags.optimizePairs {
		bounds := pairopt.Bounds{DtLo: s.cfg.Optimizer.DtMin, DtHi: s.dt.CurrentDt()}
		if _, err := pairopt.Optimize(tr, bounds, s.cfg.PairOpt.MeetingEpsilon, s.cfg.PairOpt.MaxIterations); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

var treeBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "tree.set_depth + tree.apply_optimal_pairs: build a local tree and print its shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		if treeFlags.depth != 1 && treeFlags.depth != 2 {
			return fmt.Errorf("sporectl: --depth must be 1 or 2, got %d", treeFlags.depth)
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		cursor := sporelogic.Point2D{Theta: treeFlags.cursorTheta, ThetaDot: treeFlags.cursorThetaDot}

		tr, err := buildTree(s, cursor)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "root (%.4f, %.4f)\n", tr.Root.Theta, tr.Root.ThetaDot)
		for _, c := range tr.Children {
			fmt.Fprintf(cmd.OutOrStdout(), "  child[%d] control=%.3f dt=%.4f state=(%.4f, %.4f)\n", c.Index, c.Control, c.Dt, c.State.Theta, c.State.ThetaDot)
		}
		for _, gc := range tr.Grandchildren {
			fmt.Fprintf(cmd.OutOrStdout(), "    grandchild[%d] parent=%d control=%.3f dt=%.4f state=(%.4f, %.4f) merged_from=%v\n",
				gc.Index, gc.ParentIndex, gc.Control, gc.Dt, gc.State.Theta, gc.State.ThetaDot, gc.MergedFrom)
		}
		for i, mp := range tr.MeanPoints {
			fmt.Fprintf(cmd.OutOrStdout(), "  mean_point[%d] = (%.4f, %.4f)\n", i, mp.Theta, mp.ThetaDot)
		}
		if len(tr.MeanPoints) == 4 {
			fmt.Fprintf(cmd.OutOrStdout(), "quadrilateral area = %.6f\n", tree.QuadrilateralArea(tr.MeanPoints))
		}
		return nil
	},
}

// treeModeCmd implements tree.toggle_mode(spores|tree): a pure view-mode
// acknowledgement. The core has no per-invocation state to toggle across a
// one-shot CLI call, so this validates the name and reports it back,
// the same contract a long-running UI session would apply to its own
// view-state field.
var treeModeCmd = &cobra.Command{
	Use:   "mode [spores|tree]",
	Short: "tree.toggle_mode(spores|tree): report the requested local-view mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "spores", "tree":
			fmt.Fprintf(cmd.OutOrStdout(), "view mode: %s\n", args[0])
			return nil
		default:
			return fmt.Errorf("sporectl: mode must be \"spores\" or \"tree\", got %q", args[0])
		}
	},
}

func init() {
	treeBuildCmd.Flags().Float64Var(&treeFlags.cursorTheta, "cursor-theta", 0, "tree root theta")
	treeBuildCmd.Flags().Float64Var(&treeFlags.cursorThetaDot, "cursor-theta-dot", 0, "tree root theta-dot")
	treeBuildCmd.Flags().IntVar(&treeFlags.depth, "depth", 2, "tree.set_depth: 1 (children only) or 2 (children + grandchildren)")
	treeBuildCmd.Flags().BoolVar(&treeFlags.optimizePairs, "optimize-pairs", false, "tree.apply_optimal_pairs: run the pair optimizer before printing")

	treeCmd.AddCommand(treeBuildCmd, treeModeCmd)
}
