// Package logging sets up the zerolog logger shared by every ddlcmod
// package. Console output goes to stderr and a copy of every line is
// appended to the log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/ddlcmod/pkg/paths"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	fileMu  sync.Mutex
	logFile *os.File
)

// LevelForVerbosity maps the count of -v flags to a level: warnings by
// default, then info, debug and trace.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger installs the global logger for the given verbosity. A log
// file that cannot be opened is reported once and logging continues on
// the console only.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}

	path := paths.LogFile()
	f, fileErr := openLogFile(path)
	if fileErr == nil {
		writers = append(writers, f)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// openLogFile opens path for appending and replaces the previously opened
// log file, if any.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileMu.Lock()
	prev := logFile
	logFile = f
	fileMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return f, nil
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithOperation returns a copy of logger tagged with a fresh operation id,
// so every line emitted by one install or uninstall run can be grouped.
func WithOperation(logger zerolog.Logger, operation string) (zerolog.Logger, string) {
	id := uuid.NewString()
	return logger.With().Str("operation", operation).Str("op_id", id).Logger(), id
}

// LogOperationStart logs the start of an operation and returns a function
// logging its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
