// Package logging configures the slog logger used by the wui binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// DebugEnv enables debug logging when set to a true value.
const DebugEnv = "WUI_DEBUG"

// New returns a text logger writing to w (os.Stderr if nil). Debug records
// are kept only when debug is true.
func New(debug bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// DebugFromEnv reports whether DebugEnv holds a value strconv.ParseBool
// accepts as true.
func DebugFromEnv(getenv func(string) string) bool {
	on, err := strconv.ParseBool(getenv(DebugEnv))
	return err == nil && on
}
