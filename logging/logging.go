// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// L is the game's logger. It writes to stderr until Configure is called.
var L = New(os.Stderr)

// New creates a logger with the game's prefix and timestamp format.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kallis-world",
	})
}

// Configure sets the minimum level of L, e.g. "debug" or "warn".
func Configure(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}
