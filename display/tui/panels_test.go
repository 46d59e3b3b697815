package tui

import (
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/hostpulse/collectors"
	"gitlab.com/tinyland/lab/hostpulse/internal/format"
)

func TestProcessRowBudget(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{40, 29}, // 40 - 6 - 2 - 3
		{24, 13},
		{10, 2}, // floored at the 5-row minimum budget
		{0, 2},
	}
	for _, tt := range tests {
		if got := processRowBudget(tt.height); got != tt.want {
			t.Errorf("processRowBudget(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestPanelInner_NeverNegative(t *testing.T) {
	for _, outer := range []int{-5, 0, 1, 3, 4, 80} {
		if got := panelInner(outer); got < 0 {
			t.Errorf("panelInner(%d) = %d, must be >= 0", outer, got)
		}
	}
	if got := panelInner(40); got != 36 {
		t.Errorf("panelInner(40) = %d, want 36", got)
	}
}

func TestSpaceEvenly_FillsWidthWhenDivisible(t *testing.T) {
	items := []string{"aaaaaa", "bbbbbb", "cccccc"}
	got := spaceEvenly(items, 30)
	if w := format.VisibleWidth(got); w != 30 {
		t.Errorf("spaceEvenly width = %d, want 30", w)
	}
}

func TestSpaceEvenly_MinimumOneSpace(t *testing.T) {
	items := []string{"aaaaaa", "bbbbbb", "cccccc"}
	got := spaceEvenly(items, 10)
	if got != "aaaaaa bbbbbb cccccc" {
		t.Errorf("spaceEvenly narrow = %q, want single-space joins", got)
	}
}

func TestSpaceEvenly_Degenerate(t *testing.T) {
	if got := spaceEvenly(nil, 20); got != "" {
		t.Errorf("spaceEvenly(nil) = %q, want empty", got)
	}
	if got := spaceEvenly([]string{"solo"}, 20); got != "solo" {
		t.Errorf("spaceEvenly(single) = %q, want item untouched", got)
	}
}

func TestCPUPanelLines(t *testing.T) {
	c := collectors.CPUStat{
		Total:   42.5,
		PerCore: []float64{10, 20, 30, 40, 50, 60, 70, 80},
	}
	lines := cpuPanelLines(c, 60)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(format.StripMarkup(lines[0]), "42.5% | cores: 8") {
		t.Errorf("gauge line = %q, want readout with core count", format.StripMarkup(lines[0]))
	}
	if got := format.VisibleWidth(lines[0]); got != 60 {
		t.Errorf("gauge line visible width = %d, want 60", got)
	}
	// Four cores per row, each drawn at the default mini-bar width.
	for _, row := range lines[1:] {
		stripped := format.StripMarkup(row)
		if len(strings.Fields(stripped)) == 0 {
			t.Errorf("core row %q is empty", row)
		}
		if w := format.VisibleWidth(row); w > 60 {
			t.Errorf("core row visible width = %d, exceeds inner width 60", w)
		}
	}
}

func TestMemoryPanelLines_FiftyPercent(t *testing.T) {
	m := collectors.MemoryStat{TotalBytes: 16000000000, UsedBytes: 8000000000}
	lines := memoryPanelLines(m, 50)

	if !strings.Contains(format.StripMarkup(lines[0]), "50.0%") {
		t.Errorf("gauge readout = %q, want 50.0%%", format.StripMarkup(lines[0]))
	}
	detail := format.StripMarkup(lines[1])
	if !strings.Contains(detail, "8.0 GB / 16 GB (50.0%)") {
		t.Errorf("detail line = %q, want humanized used/total", detail)
	}
	if got := format.VisibleWidth(lines[0]); got != 50 {
		t.Errorf("gauge line visible width = %d, want 50", got)
	}
}

// Two samples one second apart with 5 MiB and 1 MiB deltas: rates land
// exactly on the color thresholds, so Down is red and Up is yellow.
func TestNetworkFixture_RatesAndColors(t *testing.T) {
	rates := collectors.NewRateState()
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rates.Update([]collectors.NetCounters{{Name: "eth0", RxBytes: 1, TxBytes: 1}}, t0)
	tp := rates.Update([]collectors.NetCounters{
		{Name: "eth0", RxBytes: 1 + 5242880, TxBytes: 1 + 1048576},
	}, t0.Add(time.Second))

	if tp.RxBytesPerSec != 5242880 || tp.TxBytesPerSec != 1048576 {
		t.Fatalf("rates = %+v, want (5242880, 1048576)", tp)
	}
	if got := rateColor(tp.RxBytesPerSec); got != colorDanger {
		t.Errorf("rx color = %v, want danger (red)", got)
	}
	if got := rateColor(tp.TxBytesPerSec); got != colorWarning {
		t.Errorf("tx color = %v, want warning (yellow)", got)
	}
	if got := rateColor(1048575); got != colorSuccess {
		t.Errorf("sub-threshold color = %v, want success (green)", got)
	}

	lines := networkPanelLines(tp, rates, 50)
	down := format.StripMarkup(lines[0])
	if !strings.HasPrefix(down, "Down ") {
		t.Errorf("down line = %q", down)
	}
	if !strings.HasSuffix(down, "/s") {
		t.Errorf("down line = %q, want rate readout at right edge", down)
	}
}

func TestProcessPanelLines_ConstantHeight(t *testing.T) {
	procs := []collectors.ProcessInfo{
		{PID: 1, Name: "init", CPUPercent: 0.1, RSSBytes: 1 << 20},
		{PID: 2, Name: "chrome", CPUPercent: 55.2, RSSBytes: 1 << 30},
	}
	lines := processPanelLines(procs, 80, 10)
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want header + 10 rows", len(lines))
	}
	for i := 3; i < 11; i++ {
		if lines[i] != "" {
			t.Errorf("row %d = %q, want blank padding", i, lines[i])
		}
	}
}

func TestProcessPanelLines_RowWidths(t *testing.T) {
	procs := []collectors.ProcessInfo{
		{PID: 4242, Name: "postgres", CPUPercent: 12.3, RSSBytes: 256 << 20},
	}
	inner := 80
	lines := processPanelLines(procs, inner, 3)
	if got := format.VisibleWidth(lines[0]); got != inner {
		t.Errorf("header visible width = %d, want %d", got, inner)
	}
	if got := format.VisibleWidth(lines[1]); got != inner {
		t.Errorf("data row visible width = %d, want %d", got, inner)
	}
}

func TestProcessPanelLines_LongNameMiddleTruncated(t *testing.T) {
	long := strings.Repeat("x", 30) + "MARKER" + strings.Repeat("y", 30)
	procs := []collectors.ProcessInfo{{PID: 9, Name: long, CPUPercent: 1, RSSBytes: 1}}
	lines := processPanelLines(procs, 60, 1)

	row := format.StripMarkup(lines[1])
	if !strings.Contains(row, "...") {
		t.Errorf("row = %q, want middle-truncated name", row)
	}
	if !strings.HasPrefix(row, "xxx") {
		t.Errorf("row = %q, want name prefix preserved", row)
	}
	if !strings.Contains(row, "yy ") && !strings.Contains(row, "yyy") {
		t.Errorf("row = %q, want name suffix preserved", row)
	}
}

func TestServicesLine(t *testing.T) {
	statuses := []collectors.ServiceStatus{
		{Name: "MongoDB", Running: true, PID: 42, CPUPercent: 3.7},
		{Name: "Redis"},
		{Name: "Nginx"},
	}
	line := format.StripMarkup(servicesLine(statuses))
	if !strings.Contains(line, "MongoDB: 42 (3.7%)") {
		t.Errorf("line = %q, want running segment with pid and cpu", line)
	}
	if !strings.Contains(line, "Redis: stopped") {
		t.Errorf("line = %q, want stopped segment", line)
	}
	if got := strings.Count(line, "  |  "); got != 2 {
		t.Errorf("separator count = %d, want 2", got)
	}
}

func TestFooterLine(t *testing.T) {
	snap := &collectors.Snapshot{
		Host:          collectors.HostInfo{Distro: "ubuntu", Release: "24.04", Kernel: "6.8.0"},
		UptimeSeconds: 266460,
		Load:          collectors.LoadAvg{Load1: 0.52, Load5: 0.48, Load15: 0.45},
	}
	now := time.Date(2024, 6, 1, 13, 45, 7, 0, time.Local)
	line := format.StripMarkup(footerLine(snap, now))

	for _, want := range []string{
		"ubuntu 24.04 (6.8.0)",
		"up 3d 2h 1m",
		"load 0.52 0.48 0.45",
		"bat n/a",
		"13:45:07",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("footer = %q, missing %q", line, want)
		}
	}
}

func TestFooterLine_BatteryPresent(t *testing.T) {
	snap := &collectors.Snapshot{Battery: collectors.Battery{Present: true, Percent: 85}}
	line := format.StripMarkup(footerLine(snap, time.Now()))
	if !strings.Contains(line, "bat 85%") {
		t.Errorf("footer = %q, want battery percentage", line)
	}
}

func TestRenderHeader_ErrorReplacesTitle(t *testing.T) {
	m := New(Options{})
	m.err = errFixture("cpu load: permission denied")
	header := format.StripMarkup(m.renderHeader())
	if !strings.Contains(header, "error: cpu load: permission denied") {
		t.Errorf("header = %q, want error text", header)
	}
	if strings.Contains(header, "hostpulse") {
		t.Errorf("header = %q, error must replace the title", header)
	}
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
