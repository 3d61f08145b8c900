// Package logging builds the zerolog loggers used by the CLI.
//
// Logs go to stderr through a console writer so stdout stays reserved for
// rendered constraint sets. When the ORDEREDVIEW_DEBUG environment variable
// is set to a file path, every event is also appended to that file as JSON.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DebugEnv names the environment variable holding the debug log path.
const DebugEnv = "ORDEREDVIEW_DEBUG"

// Options configures New.
type Options struct {
	Out     io.Writer // Console destination; defaults to os.Stderr
	Verbose bool      // Enable debug level
	NoColor bool      // Force plain output
}

// New creates a console logger. Colour is disabled when requested or when
// Out is not a terminal. The returned closer releases the debug file, if any.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    opts.NoColor || !isTerminal(out),
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	var closer io.Closer = nopCloser{}
	var w io.Writer = console
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := openDebugFile(path)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		closer = f
		w = zerolog.MultiLevelWriter(console, f)
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// openDebugFile opens path for appending, creating its directory if needed.
func openDebugFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
