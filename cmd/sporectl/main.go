// Command sporectl drives the planner's command surface (spore/tree/
// merge/group/graph/picker/dt) against a configured sporegraph session. Each
// subcommand is a thin wrapper: load config.Config, build the session,
// invoke exactly one core operation, print the result, save state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
