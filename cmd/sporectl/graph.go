package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect and reset the real graph",
}

var graphClearCmd = &cobra.Command{
	Use:   "clear-all",
	Short: "graph.clear_all: destroy every spore and link in the real graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		s.g.Clear()
		s.ids.ClearHistory()

		if err := s.save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "graph cleared")
		return nil
	},
}

var graphStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the real graph's spore/link/goal counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		st := s.g.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "spores=%d links=%d goal_spores=%d\n", st.TotalSpores, st.TotalLinks, st.GoalSpores)
		return nil
	},
}

func init() {
	graphCmd.AddCommand(graphClearCmd, graphStatsCmd)
}
