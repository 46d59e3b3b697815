package collectors

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sync/errgroup"
)

// Gather fetches one Snapshot from all metric sources concurrently. The
// sources are independent and I/O-bound, so they are issued together and
// awaited jointly; the first error fails the whole tick. Battery is the
// one tolerated failure and reports as absent instead.
func Gather(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: time.Now()}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := cpu.PercentWithContext(ctx, 0, false)
		if err != nil {
			return fmt.Errorf("cpu load: %w", err)
		}
		perCore, err := cpu.PercentWithContext(ctx, 0, true)
		if err != nil {
			return fmt.Errorf("per-core load: %w", err)
		}
		if len(total) > 0 {
			snap.CPU.Total = finite(total[0])
		}
		snap.CPU.PerCore = make([]float64, len(perCore))
		for i, v := range perCore {
			snap.CPU.PerCore[i] = finite(v)
		}
		return nil
	})

	g.Go(func() error {
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return fmt.Errorf("memory: %w", err)
		}
		snap.Memory = MemoryStat{TotalBytes: vm.Total, UsedBytes: vm.Used}
		return nil
	})

	g.Go(func() error {
		counters, err := net.IOCountersWithContext(ctx, true)
		if err != nil {
			return fmt.Errorf("network counters: %w", err)
		}
		snap.Net = make([]NetCounters, 0, len(counters))
		for _, c := range counters {
			snap.Net = append(snap.Net, NetCounters{
				Name:    c.Name,
				RxBytes: c.BytesRecv,
				TxBytes: c.BytesSent,
			})
		}
		return nil
	})

	g.Go(func() error {
		procs, err := processTable(ctx)
		if err != nil {
			return fmt.Errorf("process table: %w", err)
		}
		snap.Processes = procs
		return nil
	})

	g.Go(func() error {
		info, err := host.InfoWithContext(ctx)
		if err != nil {
			return fmt.Errorf("host identity: %w", err)
		}
		snap.Host = HostInfo{
			Distro:  info.Platform,
			Release: info.PlatformVersion,
			Kernel:  info.KernelVersion,
		}
		snap.UptimeSeconds = info.Uptime
		return nil
	})

	g.Go(func() error {
		avg, err := load.AvgWithContext(ctx)
		if err != nil {
			return fmt.Errorf("load average: %w", err)
		}
		snap.Load = LoadAvg{
			Load1:  finite(avg.Load1),
			Load5:  finite(avg.Load5),
			Load15: finite(avg.Load15),
		}
		return nil
	})

	g.Go(func() error {
		// Best effort: hosts without a battery report absent.
		snap.Battery = readBattery()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// processTable builds the per-process rows. Individual processes that
// disappear or deny access mid-scan are skipped, not fatal.
func processTable(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercentWithContext(ctx)

		var rss uint64
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			rss = mi.RSS
		}

		rows = append(rows, ProcessInfo{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: finite(cpuPct),
			RSSBytes:   rss,
		})
	}
	SortByUsage(rows)
	return rows, nil
}

// readBattery reads charge from /sys/class/power_supply. gopsutil has no
// battery API, so this follows the sysfs convention directly.
func readBattery() Battery {
	paths, _ := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
		if err != nil {
			continue
		}
		return Battery{Present: true, Percent: finite(pct)}
	}
	return Battery{}
}
