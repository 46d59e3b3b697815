// Package widgets renders the reusable text widgets of the dashboard:
// horizontal bar gauges, compact mini-bars, and label/bar/readout lines
// aligned to a fixed inner width.
package widgets

import (
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hostpulse/internal/format"
)

// MiniBarWidth is the default width of a compact per-core gauge.
const MiniBarWidth = 6

// miniBarChar is the single repeating glyph used by mini-bars.
const miniBarChar = "|"

// GlyphStyle is a filled/empty glyph pair for drawing gauge segments.
type GlyphStyle struct {
	Name   string
	Filled string
	Empty  string
}

// The selectable visual styles. "blocks" is the process-wide default.
var glyphStyles = []GlyphStyle{
	{Name: "blocks", Filled: "█", Empty: "░"},
	{Name: "shaded", Filled: "▓", Empty: "░"},
	{Name: "ascii", Filled: "#", Empty: "-"},
}

var (
	styleMu     sync.RWMutex
	activeStyle = glyphStyles[0]
)

// SetGlyphStyle selects the process-wide glyph style by name. Unknown
// names are ignored and reported as false.
func SetGlyphStyle(name string) bool {
	for _, s := range glyphStyles {
		if s.Name == name {
			styleMu.Lock()
			activeStyle = s
			styleMu.Unlock()
			return true
		}
	}
	return false
}

// GlyphStyleName returns the name of the active style.
func GlyphStyleName() string {
	styleMu.RLock()
	defer styleMu.RUnlock()
	return activeStyle.Name
}

// CycleGlyphStyle advances to the next style and returns its name.
func CycleGlyphStyle() string {
	styleMu.Lock()
	defer styleMu.Unlock()
	for i, s := range glyphStyles {
		if s.Name == activeStyle.Name {
			activeStyle = glyphStyles[(i+1)%len(glyphStyles)]
			break
		}
	}
	return activeStyle.Name
}

// clampFraction forces f into [0,1]; NaN reads as 0.
func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// fillCount converts a fraction and width into a filled-cell count,
// clamped to [0, width].
func fillCount(fraction float64, width int) int {
	filled := int(math.Round(clampFraction(fraction) * float64(width)))
	if filled < 0 {
		return 0
	}
	if filled > width {
		return width
	}
	return filled
}

// RenderBar draws a gauge of exactly width display columns: filled glyphs
// in the given color followed by empty glyphs. Fractions outside [0,1] are
// clamped before the fill count is computed.
func RenderBar(fraction float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	styleMu.RLock()
	glyphs := activeStyle
	styleMu.RUnlock()

	filled := fillCount(fraction, width)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(glyphs.Filled, filled))
	return bar + strings.Repeat(glyphs.Empty, width-filled)
}

// MiniBar draws a compact gauge from a single repeating character, for
// rows of many small per-core gauges. A non-positive width falls back to
// MiniBarWidth.
func MiniBar(fraction float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = MiniBarWidth
	}
	filled := fillCount(fraction, width)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(miniBarChar, filled))
	return bar + strings.Repeat(" ", width-filled)
}

// AlignedLine composes `label + bar + padding + readout` so that the
// readout sits flush against the right edge of innerWidth. The bar absorbs
// whatever width the label and readout leave over, with a minimum gap of
// one column before the readout. Label and readout may carry styling; all
// width arithmetic uses their markup-stripped lengths. Whenever
// innerWidth >= label+readout+1 the visible width of the result equals
// innerWidth exactly.
func AlignedLine(label string, fraction float64, readout string, innerWidth int, color lipgloss.Color) string {
	prefix := ""
	if label != "" {
		prefix = label + " "
	}
	labelWidth := format.VisibleWidth(prefix)
	readoutWidth := format.VisibleWidth(readout)

	barWidth := innerWidth - labelWidth - readoutWidth - 1
	if barWidth < 0 {
		barWidth = 0
	}

	gap := innerWidth - labelWidth - barWidth - readoutWidth
	if gap < 1 {
		gap = 1
	}

	return prefix + RenderBar(fraction, barWidth, color) + strings.Repeat(" ", gap) + readout
}
