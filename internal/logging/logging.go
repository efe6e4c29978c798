// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// runID tags every component entry so lines from one process can be
// grouped after the fact.
var runID string

// NewRun assigns a fresh run identifier and returns it.
func NewRun() string {
	runID = uuid.NewString()
	return runID
}

// Init sets the level ("trace".."panic") and format ("text" or "json").
func Init(level, format string) error {
	return configure(Log, os.Stderr, level, format)
}

func configure(l *logrus.Logger, out io.Writer, level, format string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	l.SetLevel(lvl)
	l.SetOutput(out)

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// For returns an entry tagged with the component name and, after NewRun,
// the run identifier.
func For(component string) *logrus.Entry {
	if runID == "" {
		return Log.WithField("component", component)
	}
	return Log.WithFields(logrus.Fields{"component": component, "run": runID})
}

// Discard silences the shared logger; tests use it to keep output clean.
func Discard() {
	Log.SetOutput(io.Discard)
}
