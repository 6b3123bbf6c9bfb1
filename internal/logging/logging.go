// Package logging opens the log file for a game run. The TUI owns the
// terminal, so nothing is ever logged to stdout or stderr while playing.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session is the logger for one run of the program.
type Session struct {
	Logger *log.Logger
	RunID  string

	file io.Closer
}

// DefaultPath returns ~/.breakout/logs/breakout.log, or an empty string
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "logs", "breakout.log")
}

// Open creates a logger appending to path. An empty path discards output.
// Every record carries the run id.
func Open(path string, debug bool) (*Session, error) {
	runID := uuid.NewString()

	var (
		w    io.Writer = io.Discard
		file io.Closer
	)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, file = f, f
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           level,
	})

	return &Session{
		Logger: logger.With("run", runID),
		RunID:  runID,
		file:   file,
	}, nil
}

// Close closes the log file, if any.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
