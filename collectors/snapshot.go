// Package collectors gathers raw host metrics into immutable per-tick
// snapshots and derives throughput and service-presence state from them.
package collectors

import (
	"math"
	"sort"
	"time"
)

// CPUStat holds instantaneous CPU load percentages.
type CPUStat struct {
	// Total is the overall load, 0-100.
	Total float64 `json:"total"`
	// PerCore is the per-core load, 0-100 each.
	PerCore []float64 `json:"per_core"`
}

// MemoryStat holds RAM usage in bytes.
type MemoryStat struct {
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`
}

// Fraction returns used/total clamped to [0,1]. A zero total yields 0.
func (m MemoryStat) Fraction() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	f := float64(m.UsedBytes) / float64(m.TotalBytes)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// NetCounters holds cumulative byte counters for one network interface.
// RxRate/TxRate carry a source-reported instantaneous rate when the
// underlying facility provides one; zero means "not reported".
type NetCounters struct {
	Name    string  `json:"name"`
	RxBytes uint64  `json:"rx_bytes"`
	TxBytes uint64  `json:"tx_bytes"`
	RxRate  float64 `json:"rx_rate,omitempty"`
	TxRate  float64 `json:"tx_rate,omitempty"`
}

// ProcessInfo is one row of the process table.
type ProcessInfo struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`
}

// HostInfo identifies the operating system.
type HostInfo struct {
	Distro  string `json:"distro"`
	Release string `json:"release"`
	Kernel  string `json:"kernel"`
}

// LoadAvg is the 1/5/15-minute load-average triple.
type LoadAvg struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// Battery reports charge state. Present is false when the host has no
// battery or the read failed; failure is tolerated, never fatal.
type Battery struct {
	Present bool    `json:"present"`
	Percent float64 `json:"percent"`
}

// Snapshot is the full bundle of raw metrics fetched once per tick. It is
// constructed fresh every tick, never mutated, and discarded after the
// tick's render completes.
type Snapshot struct {
	TakenAt       time.Time     `json:"taken_at"`
	CPU           CPUStat       `json:"cpu"`
	Memory        MemoryStat    `json:"memory"`
	Net           []NetCounters `json:"net"`
	Processes     []ProcessInfo `json:"processes"`
	Host          HostInfo      `json:"host"`
	UptimeSeconds uint64        `json:"uptime_seconds"`
	Load          LoadAvg       `json:"load"`
	Battery       Battery       `json:"battery"`
}

// SortByUsage orders processes by CPU% descending, ties broken by resident
// memory descending. The sort is stable: rows with identical CPU% and RSS
// keep their original relative order.
func SortByUsage(procs []ProcessInfo) {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].CPUPercent != procs[j].CPUPercent {
			return procs[i].CPUPercent > procs[j].CPUPercent
		}
		return procs[i].RSSBytes > procs[j].RSSBytes
	})
}

// finite coerces NaN and infinite readings to 0 so that malformed source
// values can never corrupt gauge or width arithmetic.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
