package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	statePath  string
)

var rootCmd = &cobra.Command{
	Use:   "sporectl",
	Short: "Drive a controlled-pendulum spore-graph planner",
	Long: `sporectl exposes the command contract of a controlled-pendulum
trajectory planner: evolving spores toward a goal, building and optimizing
a local search tree, materializing the result into a real graph, and
querying that graph by screen position.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults layered under config.Default())")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "sporegraph_snapshot.json", "path to the persisted real-graph JSON snapshot")

	rootCmd.AddCommand(sporeCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(pickerCmd)
	rootCmd.AddCommand(dtCmd)
}
