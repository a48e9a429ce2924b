package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgunyavoy/sporegraph/picker"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

var pickerFlags struct {
	lookTheta, lookThetaDot float64
	threshold               float64
}

var pickerCmd = &cobra.Command{
	Use:   "picker",
	Short: "Query the real graph's neighborhood around a look point",
}

func newPicker(s *session) (*picker.Picker, error) {
	threshold := pickerFlags.threshold
	if threshold <= 0 {
		threshold = s.cfg.Picker.CloseThreshold
	}
	return picker.New(s.g, picker.IdentityZoom, threshold)
}

func printReport(cmd *cobra.Command, report picker.Report) {
	if !report.HasClosest {
		fmt.Fprintln(cmd.OutOrStdout(), "graph is empty; no closest spore")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "closest spore %d (look point (%.4f, %.4f))\n",
		report.ClosestID, report.LookPoint.Theta, report.LookPoint.ThetaDot)
	fmt.Fprintf(cmd.OutOrStdout(), "close=%d far=%d\n", len(report.Close), len(report.Far))
	for _, n := range report.Neighborhood {
		fmt.Fprintf(cmd.OutOrStdout(), "  -> %d hops=%d direction=%s dts=%v controls=%v path=%v\n",
			n.TargetID, n.Hops, n.Direction, n.Dts, n.Controls, n.DisplayPath)
	}
}

var pickerForceUpdateCmd = &cobra.Command{
	Use:   "force-update",
	Short: "picker.force_update: recompute the report at a given look point",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		p, err := newPicker(s)
		if err != nil {
			return err
		}

		look := sporelogic.Point2D{Theta: pickerFlags.lookTheta, ThetaDot: pickerFlags.lookThetaDot}
		report, err := p.Update(look)
		if err != nil && !errors.Is(err, picker.ErrEmptyGraph) {
			return err
		}
		printReport(cmd, report)
		return nil
	},
}

var pickerSetThresholdCmd = &cobra.Command{
	Use:   "set-threshold",
	Short: "picker.set_threshold(eps): recompute the close/far split with a new threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pickerFlags.threshold <= 0 {
			return fmt.Errorf("sporectl: --threshold must be positive")
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		p, err := picker.New(s.g, picker.IdentityZoom, pickerFlags.threshold)
		if err != nil {
			return err
		}

		look := sporelogic.Point2D{Theta: pickerFlags.lookTheta, ThetaDot: pickerFlags.lookThetaDot}
		report, err := p.Update(look)
		if err != nil && !errors.Is(err, picker.ErrEmptyGraph) {
			return err
		}
		printReport(cmd, report)
		return nil
	},
}

func init() {
	pickerCmd.PersistentFlags().Float64Var(&pickerFlags.lookTheta, "look-theta", 0, "look point theta")
	pickerCmd.PersistentFlags().Float64Var(&pickerFlags.lookThetaDot, "look-theta-dot", 0, "look point theta-dot")
	pickerForceUpdateCmd.Flags().Float64Var(&pickerFlags.threshold, "threshold", 0, "close/far threshold override (defaults to config)")
	pickerSetThresholdCmd.Flags().Float64Var(&pickerFlags.threshold, "threshold", 0.05, "new close/far threshold")

	pickerCmd.AddCommand(pickerForceUpdateCmd, pickerSetThresholdCmd)
}
