// Package format provides shared string, byte-size, and time formatting
// utilities used by the dashboard panels.
package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripMarkup removes ANSI escape sequences from s, leaving only the
// characters that occupy terminal cells.
func StripMarkup(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of terminal columns s occupies once all
// styling escape sequences are stripped.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with spaces to exactly width visible columns. Strings
// already wider than width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate truncates a string to maxLen runes (Unicode-aware).
// Returns the full string if it's shorter than maxLen.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 0 {
		return ""
	}
	return string(runes[:maxLen])
}

// TruncateMiddle shortens s to exactly maxLen runes by replacing its middle
// with "...", preserving the head and tail of the string. The first and
// last floor((maxLen-3)/2) runes always survive; when maxLen-3 is odd the
// head keeps the extra rune. For maxLen <= 3 the string is hard-truncated
// without an ellipsis.
func TruncateMiddle(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return Truncate(s, maxLen)
	}

	tail := (maxLen - 3) / 2
	head := maxLen - 3 - tail
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
