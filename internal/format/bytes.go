package format

import "github.com/dustin/go-humanize"

// Bytes renders a byte count as a short human string ("8.0 GB", "512 kB").
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// BytesPerSec renders a throughput value as a human string with an "/s"
// suffix. Negative inputs are treated as zero.
func BytesPerSec(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.Bytes(uint64(bps)) + "/s"
}
