package collectors

import (
	"math"
	"time"
)

// minElapsedSeconds floors the sample spacing so the first tick or a clock
// anomaly can't blow up the division.
const minElapsedSeconds = 0.001

// observedMaxDecay is the per-tick decay applied to the gauge ceiling,
// letting the scale drift back down after a traffic burst.
const observedMaxDecay = 0.95

// Throughput is the smoothed bytes/sec estimate for the primary interface.
type Throughput struct {
	RxBytesPerSec float64
	TxBytesPerSec float64
}

// RateState carries network smoothing state across ticks: the last observed
// counters for the primary interface and a decaying observed maximum used
// to scale gauge fractions. It is only ever touched from the single
// sampling/render sequence, so it needs no locking. ObservedMax never drops
// below 1.
type RateState struct {
	iface  string
	lastRx uint64
	lastTx uint64
	lastAt time.Time
	primed bool

	ObservedMax float64
}

// NewRateState returns a RateState with the ObservedMax floor in place.
func NewRateState() *RateState {
	return &RateState{ObservedMax: 1}
}

// PrimaryInterface selects the representative interface: the first with
// nonzero combined rx+tx counters, falling back to the first in the list.
// Returns false only for an empty list.
func PrimaryInterface(ifaces []NetCounters) (NetCounters, bool) {
	if len(ifaces) == 0 {
		return NetCounters{}, false
	}
	for _, c := range ifaces {
		if c.RxBytes+c.TxBytes > 0 {
			return c, true
		}
	}
	return ifaces[0], true
}

// Update computes the current tick's rx/tx bytes/sec and advances the
// smoothing state. A source-reported instantaneous rate is preferred when
// it is finite and strictly positive; otherwise the rate comes from the
// counter delta divided by elapsed wall-clock time. After the rates are
// known, ObservedMax becomes max(ObservedMax*0.95, 1, |rx|, |tx|).
func (s *RateState) Update(ifaces []NetCounters, now time.Time) Throughput {
	var tp Throughput

	if nic, ok := PrimaryInterface(ifaces); ok {
		if s.primed && s.iface == nic.Name {
			elapsed := now.Sub(s.lastAt).Seconds()
			if elapsed < minElapsedSeconds {
				elapsed = minElapsedSeconds
			}
			// Counter wraparound or reset reads as zero traffic.
			if nic.RxBytes >= s.lastRx {
				tp.RxBytesPerSec = float64(nic.RxBytes-s.lastRx) / elapsed
			}
			if nic.TxBytes >= s.lastTx {
				tp.TxBytesPerSec = float64(nic.TxBytes-s.lastTx) / elapsed
			}
		}

		if r := finite(nic.RxRate); r > 0 {
			tp.RxBytesPerSec = r
		}
		if r := finite(nic.TxRate); r > 0 {
			tp.TxBytesPerSec = r
		}

		s.iface = nic.Name
		s.lastRx = nic.RxBytes
		s.lastTx = nic.TxBytes
		s.lastAt = now
		s.primed = true
	}

	tp.RxBytesPerSec = finite(tp.RxBytesPerSec)
	tp.TxBytesPerSec = finite(tp.TxBytesPerSec)

	s.ObservedMax = math.Max(
		math.Max(s.ObservedMax*observedMaxDecay, 1),
		math.Max(math.Abs(tp.RxBytesPerSec), math.Abs(tp.TxBytesPerSec)),
	)
	return tp
}

// Fraction scales a rate against the observed maximum, clamped to [0,1].
func (s *RateState) Fraction(rate float64) float64 {
	f := math.Abs(finite(rate)) / s.ObservedMax
	if f > 1 {
		return 1
	}
	return f
}
