package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w at the named level. Unknown levels
// fall back to info; Config.Validate rejects them earlier.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
