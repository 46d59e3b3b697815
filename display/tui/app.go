// Package tui implements the live dashboard using Bubbletea's Elm
// architecture: a fixed-cadence tick drives one concurrent metric gather,
// and every render is a full overwrite laid out from the current terminal
// size.
package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hostpulse/collectors"
	"gitlab.com/tinyland/lab/hostpulse/display/widgets"
)

// Options configures the dashboard model.
type Options struct {
	// Interval is the sampling cadence. Zero means one second.
	Interval time.Duration
	// Catalog is the service catalog to match each tick.
	Catalog []collectors.ServiceCatalogEntry
	// ProcessRowCap limits the process table height. Zero means derive
	// from the terminal size only.
	ProcessRowCap int
	// Logger receives tick diagnostics. Nil means discard.
	Logger *slog.Logger
}

// Model is the root Bubbletea model for the dashboard.
type Model struct {
	opts   Options
	rates  *collectors.RateState
	snap   *collectors.Snapshot
	tp     collectors.Throughput
	err    error
	width  int
	height int
	ready  bool
	logger *slog.Logger
}

// New returns an initialized Model. Rate smoothing state starts fresh;
// nothing persists across runs.
func New(opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if len(opts.Catalog) == 0 {
		opts.Catalog = collectors.DefaultCatalog()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		opts:   opts,
		rates:  collectors.NewRateState(),
		logger: logger,
	}
}

// Messages
type (
	tickMsg      time.Time
	snapshotMsg  struct{ snap *collectors.Snapshot }
	gatherErrMsg struct{ err error }
)

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// gatherCmd performs one concurrent fetch of all metric sources. A failure
// abandons the tick; the stale snapshot stays on screen.
func gatherCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := collectors.Gather(context.Background())
		if err != nil {
			return gatherErrMsg{err}
		}
		return snapshotMsg{snap}
	}
}

// Init fires the first gather immediately and starts the tick cadence.
func (m Model) Init() tea.Cmd {
	return tea.Batch(gatherCmd(), tickCmd(m.opts.Interval))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, gatherCmd()
		case key.Matches(msg, keys.CycleStyle):
			widgets.CycleGlyphStyle()
		}

	case tickMsg:
		return m, tea.Batch(gatherCmd(), tickCmd(m.opts.Interval))

	case snapshotMsg:
		m.snap = msg.snap
		m.err = nil
		m.tp = m.rates.Update(msg.snap.Net, msg.snap.TakenAt)

	case gatherErrMsg:
		m.err = msg.err
		m.logger.Debug("tick abandoned", "error", msg.err)
	}
	return m, nil
}

// View lays out the full dashboard for the current terminal size. All
// widths are recomputed here every tick; nothing is cached across resizes.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.snap == nil {
		return m.renderHeader()
	}

	colWidth := m.width / 3
	lastWidth := m.width - 2*colWidth

	gaugeRow := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(cpuPanelLines(m.snap.CPU, panelInner(colWidth)), colWidth),
		renderPanel(memoryPanelLines(m.snap.Memory, panelInner(colWidth)), colWidth),
		renderPanel(networkPanelLines(m.tp, m.rates, panelInner(lastWidth)), lastWidth),
	)

	rows := processRowBudget(m.height)
	if m.opts.ProcessRowCap > 0 && rows > m.opts.ProcessRowCap {
		rows = m.opts.ProcessRowCap
	}
	procPanel := renderPanel(processPanelLines(m.snap.Processes, panelInner(m.width), rows), m.width)

	services := servicesLine(collectors.MatchServices(m.snap.Processes, m.opts.Catalog))
	footer := footerLine(m.snap, time.Now())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		gaugeRow,
		procPanel,
		services,
		footer,
	)
}

func (m Model) renderHeader() string {
	title := styleTitle.Render("hostpulse")
	if m.err != nil {
		// A failed gather replaces the title; the panels below keep
		// their last successful content.
		title = styleError.Render("error: " + m.err.Error())
	}
	if m.snap == nil {
		return title
	}
	return title + colGap + styleSubtle.Render(m.snap.TakenAt.Format("Mon Jan 2 15:04:05 2006"))
}

// renderPanel wraps content lines in the shared bordered panel style at the
// given outer width.
func renderPanel(lines []string, outerWidth int) string {
	width := outerWidth - 2
	if width < 0 {
		width = 0
	}
	return stylePanel.Width(width).Render(strings.Join(lines, "\n"))
}

// Run starts the Bubbletea program on the alternate screen and blocks
// until quit. The only fatal error is failing to attach to the terminal.
func Run(opts Options) error {
	prog := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
