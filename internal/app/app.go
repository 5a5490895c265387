// Package app implements vhostd's behavior: internal/cmd wires CLI flags
// and arguments to the methods here, keeping wiring and behavior in
// separate packages.
package app

import (
	"io"
	"log/slog"

	"go.followtheprocess.codes/log"
)

// App holds the shared state every subcommand needs: where to write normal
// output, where to write logs, and the logger itself.
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// New returns an App configured to log at debug level when debug is true.
func New(debug bool, stdout, stderr io.Writer) App {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(log.Level(level)))

	return App{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Stdout returns the writer normal program output is written to.
func (a App) Stdout() io.Writer {
	return a.stdout
}

// Stderr returns the writer logs and diagnostics are written to.
func (a App) Stderr() io.Writer {
	return a.stderr
}
