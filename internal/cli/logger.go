package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// newLogger creates the diagnostics logger. Logs always go to stderr because
// stdout carries machine-readable output (the matrix JSON).
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, clierrors.NewArgumentError(
			fmt.Sprintf("invalid log level %q", level),
			"Valid levels: debug, info, warn, error",
		)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
