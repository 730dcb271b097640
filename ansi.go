package wui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SGR escape sequences for the styles and colors the formatter and the cli
// package use. They are plain strings and safe to share.
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	NoBold = "\x1b[22m"

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	DefaultFg = "\x1b[39m"
	DefaultBg = "\x1b[49m"
)

// SGR sequences: CSI sequences terminated by 'm'.
var (
	escapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	leadingEscape = regexp.MustCompile(`^\x1b\[[0-9;]*m`) // only at the start
)

// SGR builds a single CSI "m" sequence from params, joined by ';'.
// SGR() returns the reset sequence "\x1b[m".
func SGR(params ...string) string {
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// RGBFg returns a 24-bit foreground color sequence.
func RGBFg(r, g, b uint8) string {
	return SGR("38", "2", fmt.Sprint(r), fmt.Sprint(g), fmt.Sprint(b))
}

// RGBBg returns a 24-bit background color sequence.
func RGBBg(r, g, b uint8) string {
	return SGR("48", "2", fmt.Sprint(r), fmt.Sprint(g), fmt.Sprint(b))
}

// Colorize wraps s in prefix and Reset.
func Colorize(s, prefix string) string {
	return prefix + s + Reset
}

// StripEscapes removes SGR sequences from s. Other escape sequences are left
// untouched.
func StripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// VisibleLength returns the number of terminal columns s occupies once SGR
// sequences are removed. Wide runes count as two columns.
func VisibleLength(s string) int {
	return runewidth.StringWidth(StripEscapes(s))
}

// ElementCount returns the number of elements in s. It is the sequence
// counterpart of VisibleLength, used for column counts.
func ElementCount[T any](s []T) int {
	return len(s)
}
