package wui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TerminalSize returns the current terminal dimensions. COLUMNS and LINES
// win when set to positive numbers; any dimension they leave open comes from
// the terminal attached to stdout, or from 80x24 when there is none.
func TerminalSize() (width, height int) {
	return terminalSize(os.Getenv, func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})
}

func terminalSize(getenv func(string) string, query func() (int, int, error)) (width, height int) {
	width, height = envSize(getenv, "COLUMNS"), envSize(getenv, "LINES")
	if width > 0 && height > 0 {
		return width, height
	}
	w, h, err := query()
	if err != nil || w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = w
	}
	if height <= 0 {
		height = h
	}
	return width, height
}

func envSize(getenv func(string) string, key string) int {
	n, err := strconv.Atoi(getenv(key))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
