package main

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var sporeCountRe = regexp.MustCompile(`spores=(\d+)`)

func sporeCount(t *testing.T, statsOutput string) int {
	t.Helper()
	m := sporeCountRe.FindStringSubmatch(statsOutput)
	require.Len(t, m, 2, "statsOutput: %s", statsOutput)
	n, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	return n
}

// runCLI executes rootCmd with args against a scratch state file, returning
// combined stdout/stderr. Each call resets the shared statePath flag so
// successive invocations in one test resume the same persisted graph, the
// same way separate sporectl process invocations would.
func runCLI(t *testing.T, statePath string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--state", statePath}, args...))

	err := rootCmd.Execute()
	require.NoError(t, err, "output: %s", out.String())
	return out.String()
}

func TestCLIEndToEnd(t *testing.T) {
	state := filepath.Join(t.TempDir(), "snapshot.json")

	out := runCLI(t, state, "spore", "seed", "--theta", "0", "--theta-dot", "0", "--goal-theta", "3.14159", "--goal-theta-dot", "0")
	require.Contains(t, out, "seeded spore")

	out = runCLI(t, state, "spore", "evolve")
	require.True(t, containsAny(out, "produced spore", "not evolvable"))

	out = runCLI(t, state, "graph", "stats")
	beforeCommit := sporeCount(t, out)

	out = runCLI(t, state, "tree", "build", "--cursor-theta", "0", "--cursor-theta-dot", "0", "--depth", "2")
	require.Contains(t, out, "root (")
	require.Contains(t, out, "quadrilateral area")

	out = runCLI(t, state, "tree", "mode", "tree")
	require.Contains(t, out, "view mode: tree")

	out = runCLI(t, state, "merge", "commit", "--cursor-theta", "0", "--cursor-theta-dot", "0", "--goal-theta", "3.14159")
	require.Contains(t, out, "materialized group")

	out = runCLI(t, state, "graph", "stats")
	require.Greater(t, sporeCount(t, out), beforeCommit, "materialization should have added new spores")

	out = runCLI(t, state, "picker", "force-update", "--look-theta", "0", "--look-theta-dot", "0")
	require.Contains(t, out, "closest spore")

	out = runCLI(t, state, "dt", "stats")
	require.Contains(t, out, "current_dt=")

	out = runCLI(t, state, "dt", "reset", "--value", "0.2")
	require.Contains(t, out, "dt reset to 0.200000")

	out = runCLI(t, state, "group", "undo-last")
	require.Contains(t, out, "undid group")

	out = runCLI(t, state, "graph", "clear-all")
	require.Contains(t, out, "graph cleared")

	out = runCLI(t, state, "graph", "stats")
	require.Contains(t, out, "spores=0")
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if bytes.Contains([]byte(haystack), []byte(n)) {
			return true
		}
	}
	return false
}
