// Package tracing threads structured, leveled logging through belief.Compute
// (ambient concern, spec.md §6's "core does not own logging" plus SPEC_FULL's
// ambient-stack requirement). The zero Logger is a disabled no-op so library
// consumers pay nothing unless they opt in via belief.WithLogger.
package tracing

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger the way the pack's qplay logger does: an
// embedded Logger field, spawned per scope rather than reconfigured in place.
type Logger struct {
	zerolog.Logger
}

// Options configures New.
type Options struct {
	// Debug enables DebugLevel; otherwise InfoLevel.
	Debug bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger writing to Options.Output (default os.Stderr).
func New(options Options) Logger {
	output := options.Output
	if output == nil {
		output = os.Stderr
	}
	level := zerolog.InfoLevel
	if options.Debug {
		level = zerolog.DebugLevel
	}
	return Logger{zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

// Nop returns a disabled Logger that discards every event; this is the
// default used by belief.Compute when WithLogger is not supplied.
func Nop() Logger {
	return Logger{zerolog.Nop()}
}

// WithRun spawns a child Logger carrying a fresh run-correlation id, so log
// lines from concurrent belief.Compute calls can be told apart.
func (l Logger) WithRun() (Logger, string) {
	runID := uuid.NewString()
	return Logger{l.With().Str("run_id", runID).Logger()}, runID
}

// SpawnForComponent tags every subsequent event with the originating
// component name (e.g. "belief", "diamond").
func (l Logger) SpawnForComponent(name string) Logger {
	return Logger{l.With().Str("component", name).Logger()}
}
