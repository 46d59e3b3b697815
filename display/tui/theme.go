package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the dashboard.
const (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#22C55E") // Green
	colorWarning   = lipgloss.Color("#EAB308") // Yellow
	colorDanger    = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
)

// Throughput color thresholds, bytes/sec. Both boundaries are inclusive so
// an exact 5 MiB/s sample renders red.
const (
	rateDangerBps  = 5 * 1024 * 1024
	rateWarningBps = 1 * 1024 * 1024
)

// Styles used throughout the dashboard.
var (
	styleTitle   lipgloss.Style
	styleError   lipgloss.Style
	styleSubtle  lipgloss.Style
	styleLabel   lipgloss.Style
	styleHeader  lipgloss.Style
	styleRunning lipgloss.Style
	styleStopped lipgloss.Style
	stylePanel   lipgloss.Style
)

func init() {
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	styleError = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorDanger)

	styleSubtle = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary)

	styleHeader = lipgloss.NewStyle().
		Bold(true)

	styleRunning = lipgloss.NewStyle().
		Foreground(colorSuccess)

	styleStopped = lipgloss.NewStyle().
		Foreground(colorDanger)

	stylePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1)
}

// loadColor maps a utilization fraction to the gauge color class.
func loadColor(fraction float64) lipgloss.Color {
	switch {
	case fraction >= 0.9:
		return colorDanger
	case fraction >= 0.7:
		return colorWarning
	default:
		return colorSuccess
	}
}

// rateColor maps a throughput magnitude to the gauge color class.
func rateColor(bps float64) lipgloss.Color {
	switch {
	case bps >= rateDangerBps:
		return colorDanger
	case bps >= rateWarningBps:
		return colorWarning
	default:
		return colorSuccess
	}
}
