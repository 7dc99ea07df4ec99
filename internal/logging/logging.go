// Package logging routes the charm default logger to a file. The terminal
// belongs to the TUI while it runs.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// DefaultFile is the log file used when none is given
const DefaultFile = "typeahead.log"

// New creates a logger writing to w
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "typeahead",
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// Setup points the default logger at path and returns a function closing the file
func Setup(path, level string) (func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	if path == "" {
		path = DefaultFile
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "could not open log file")
	}

	log.SetDefault(New(f, lvl))
	return f.Close, nil
}
