package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscardSwallowsEverything(t *testing.T) {
	s := Discard()
	s.Debugf("x=%d", 1)
	s.Infof("y")
	s.Warnf("z")
	s.Errorf("w")
	// Nothing to assert beyond "did not panic"; Discard has no observable state.
}

func TestWriterSinkFiltersBelowMin(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, LevelWarn)

	s.Debugf("hidden")
	s.Infof("also hidden")
	require.Empty(t, buf.String())

	s.Warnf("warn line %d", 1)
	s.Errorf("error line %d", 2)

	out := buf.String()
	require.Contains(t, out, "[WARN] warn line 1")
	require.Contains(t, out, "[ERROR] error line 2")
	require.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}
