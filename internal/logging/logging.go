// Package logging configures the zerolog logger shared by roster.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/rs/zerolog"
)

// Options controls where log output goes.
type Options struct {
	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer
	// FilePath, when set, also appends JSON lines to this file.
	FilePath string
	// Verbose lowers the console level from warn to debug.
	Verbose bool
}

// New builds a logger from opts. The returned close function releases the
// log file, if one was opened, and is always safe to call.
func New(opts Options) (zerolog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen, NoColor: !cli.IsTerminal(console)},
	}

	closeFn := func() error { return nil }
	if opts.FilePath != "" {
		file, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	multi := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multi).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}
