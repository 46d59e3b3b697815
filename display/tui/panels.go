package tui

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/hostpulse/collectors"
	"gitlab.com/tinyland/lab/hostpulse/display/widgets"
	"gitlab.com/tinyland/lab/hostpulse/internal/format"
)

// Vertical budget constants. The header line and the bordered gauge row sit
// above the process panel; the services and footer lines sit below it.
const (
	fixedTopOffset     = 6
	reservedBottomRows = 2
	panelFrameRows     = 3
	minProcessBudget   = 5
)

// Process table column budgets in characters, joined by two-space gaps.
// NAME absorbs whatever the panel's inner width leaves over.
const (
	pidColWidth = 6
	cpuColWidth = 6
	rssColWidth = 10
)

const (
	colGap     = "  "
	segmentSep = "  |  "
)

// processRowBudget derives the number of process rows from the terminal
// height, floored so even tiny terminals show a couple of rows.
func processRowBudget(termHeight int) int {
	budget := termHeight - fixedTopOffset - reservedBottomRows
	if budget < minProcessBudget {
		budget = minProcessBudget
	}
	return budget - panelFrameRows
}

// panelInner converts a panel's outer width to its usable content width
// (border and padding subtracted), clamped at zero.
func panelInner(outer int) int {
	inner := outer - 4
	if inner < 0 {
		return 0
	}
	return inner
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// spaceEvenly joins items so they spread across innerWidth: the leftover
// width after the items' visible lengths is split into equal gaps, floored,
// never less than one space.
func spaceEvenly(items []string, innerWidth int) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	sum := 0
	for _, it := range items {
		sum += format.VisibleWidth(it)
	}
	gap := (innerWidth - sum) / (len(items) - 1)
	if gap < 1 {
		gap = 1
	}
	return strings.Join(items, strings.Repeat(" ", gap))
}

// cpuPanelLines renders the overall load gauge plus two rows of per-core
// mini-bars, the cores split into first half and second half.
func cpuPanelLines(c collectors.CPUStat, inner int) []string {
	frac := clamp01(c.Total / 100)
	readout := fmt.Sprintf("%.1f%% | cores: %d", c.Total, len(c.PerCore))
	lines := []string{
		widgets.AlignedLine(styleLabel.Render("CPU"), frac, readout, inner, loadColor(frac)),
	}

	half := (len(c.PerCore) + 1) / 2
	lines = append(lines,
		coreRow(c.PerCore[:half], inner),
		coreRow(c.PerCore[half:], inner),
	)
	return lines
}

func coreRow(cores []float64, inner int) string {
	items := make([]string, 0, len(cores))
	for _, pct := range cores {
		f := clamp01(pct / 100)
		items = append(items, widgets.MiniBar(f, widgets.MiniBarWidth, loadColor(f)))
	}
	return spaceEvenly(items, inner)
}

func memoryPanelLines(m collectors.MemoryStat, inner int) []string {
	frac := m.Fraction()
	pct := frac * 100
	return []string{
		widgets.AlignedLine(styleLabel.Render("Mem"), frac, fmt.Sprintf("%.1f%%", pct), inner, loadColor(frac)),
		fmt.Sprintf("%s / %s (%.1f%%)", format.Bytes(m.UsedBytes), format.Bytes(m.TotalBytes), pct),
		"",
	}
}

func networkPanelLines(tp collectors.Throughput, rates *collectors.RateState, inner int) []string {
	rx := tp.RxBytesPerSec
	tx := tp.TxBytesPerSec
	return []string{
		widgets.AlignedLine(styleLabel.Render("Down"), rates.Fraction(rx), format.BytesPerSec(rx), inner, rateColor(rx)),
		widgets.AlignedLine(styleLabel.Render("Up"), rates.Fraction(tx), format.BytesPerSec(tx), inner, rateColor(tx)),
		"",
	}
}

// processPanelLines renders the header row plus exactly rows process lines,
// padding with blanks when fewer processes exist so the panel height stays
// constant across ticks. Names wider than the NAME column are truncated in
// the middle. Processes must already be in ranking order.
func processPanelLines(procs []collectors.ProcessInfo, inner, rows int) []string {
	nameWidth := inner - pidColWidth - cpuColWidth - rssColWidth - 3*len(colGap)
	if nameWidth < 1 {
		nameWidth = 1
	}

	lines := make([]string, 0, rows+1)
	lines = append(lines, styleHeader.Render(fmt.Sprintf("%s%s%*s%s%*s%s%*s",
		format.PadRight("NAME", nameWidth), colGap,
		pidColWidth, "PID", colGap,
		cpuColWidth, "CPU%", colGap,
		rssColWidth, "MEM")))

	for i := 0; i < rows; i++ {
		if i >= len(procs) {
			lines = append(lines, "")
			continue
		}
		p := procs[i]
		name := format.PadRight(format.TruncateMiddle(p.Name, nameWidth), nameWidth)
		lines = append(lines, fmt.Sprintf("%s%s%*d%s%5.1f%%%s%*s",
			name, colGap,
			pidColWidth, p.PID, colGap,
			p.CPUPercent, colGap,
			rssColWidth, format.Bytes(p.RSSBytes)))
	}
	return lines
}

// servicesLine joins the per-service status segments into one line. There
// is deliberately no wrapping logic; very narrow terminals degrade.
func servicesLine(statuses []collectors.ServiceStatus) string {
	parts := make([]string, 0, len(statuses))
	for _, st := range statuses {
		if st.Running {
			parts = append(parts, styleRunning.Render(fmt.Sprintf("%s: %d (%.1f%%)", st.Name, st.PID, st.CPUPercent)))
		} else {
			parts = append(parts, styleStopped.Render(st.Name+": stopped"))
		}
	}
	return strings.Join(parts, segmentSep)
}

// footerLine concatenates OS identity, uptime, load averages, battery, and
// the local timestamp, each in its own color class.
func footerLine(snap *collectors.Snapshot, now time.Time) string {
	osID := strings.TrimSpace(snap.Host.Distro + " " + snap.Host.Release)
	if snap.Host.Kernel != "" {
		osID += " (" + snap.Host.Kernel + ")"
	}

	battery := styleSubtle.Render("bat n/a")
	if snap.Battery.Present {
		style := styleRunning
		if snap.Battery.Percent < 20 {
			style = styleStopped
		}
		battery = style.Render(fmt.Sprintf("bat %.0f%%", snap.Battery.Percent))
	}

	segments := []string{
		styleLabel.Render(osID),
		styleRunning.Render("up " + format.Uptime(snap.UptimeSeconds)),
		styleSubtle.Render(fmt.Sprintf("load %.2f %.2f %.2f", snap.Load.Load1, snap.Load.Load5, snap.Load.Load15)),
		battery,
		styleSubtle.Render(now.Format("15:04:05")),
	}
	return strings.Join(segments, segmentSep)
}
