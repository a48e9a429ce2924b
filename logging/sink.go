package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	// LevelDebug is for step-by-step tracing of manager internals.
	LevelDebug Level = iota
	// LevelInfo is for notable but expected state transitions.
	LevelInfo
	// LevelWarn is for recovered soft errors.
	LevelWarn
	// LevelError is for conditions the caller should inspect.
	LevelError
)

// String renders the level name used in formatted output.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sink is the logging dependency every manager constructor accepts.
// Implementations must be safe for concurrent use; the core itself is
// single-threaded but a Sink may fan out to multiple destinations.
type Sink interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// discardSink implements Sink and drops everything; used as the zero-value
// default so unit tests never need to wire a logger.
type discardSink struct{}

func (discardSink) Debugf(string, ...interface{}) {}
func (discardSink) Infof(string, ...interface{})  {}
func (discardSink) Warnf(string, ...interface{})  {}
func (discardSink) Errorf(string, ...interface{}) {}

// Discard returns a Sink that drops all output.
func Discard() Sink { return discardSink{} }

// writerSink writes leveled, timestamped lines to an io.Writer.
type writerSink struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

// New returns a Sink that writes lines at or above min to w.
// Complexity: O(1) per call beyond the formatting cost.
func New(w io.Writer, min Level) Sink {
	return &writerSink{w: w, min: min}
}

func (s *writerSink) emit(lvl Level, format string, args ...interface{}) {
	if lvl < s.min {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s [%s] %s\n", time.Now().UTC().Format(time.RFC3339Nano), lvl, fmt.Sprintf(format, args...))
}

func (s *writerSink) Debugf(format string, args ...interface{}) { s.emit(LevelDebug, format, args...) }
func (s *writerSink) Infof(format string, args ...interface{})  { s.emit(LevelInfo, format, args...) }
func (s *writerSink) Warnf(format string, args ...interface{})  { s.emit(LevelWarn, format, args...) }
func (s *writerSink) Errorf(format string, args ...interface{}) { s.emit(LevelError, format, args...) }
