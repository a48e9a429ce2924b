package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dtFlags struct {
	value float64
}

var dtCmd = &cobra.Command{
	Use:   "dt",
	Short: "Inspect and reset the current discretization step size",
}

var dtResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "dt.reset: reset the current dt to a given value (defaults to the configured nominal dt)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		value := dtFlags.value
		if value <= 0 {
			value = s.cfg.Tree.NominalDt
		}
		if err := s.dt.Reset(value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dt reset to %.6f\n", s.dt.CurrentDt())
		return nil
	},
}

var dtStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "dt.stats: report the current dt and change count",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		st := s.dt.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "current_dt=%.6f changes=%d\n", st.CurrentDt, st.ChangeCount)
		return nil
	},
}

func init() {
	dtResetCmd.Flags().Float64Var(&dtFlags.value, "value", 0, "new dt value (defaults to config tree.nominal_dt)")
	dtCmd.AddCommand(dtResetCmd, dtStatsCmd)
}
