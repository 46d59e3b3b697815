// hostpulse is a live terminal dashboard for host metrics.
//
// It samples CPU load, memory, network throughput, the process table, and
// known background services once per second and renders them as colored
// bar gauges that adapt to the terminal size.
//
// Usage:
//
//	hostpulse [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/hostpulse/config.yaml)
//	-snapshot         Print one metrics snapshot as JSON and exit
//	-y                Non-interactive; skip the first-run config prompt
//	-interval string  Sampling cadence override (e.g. 1s, 500ms)
//	-style string     Gauge glyph style override (blocks|shaded|ascii)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/hostpulse/collectors"
	"gitlab.com/tinyland/lab/hostpulse/config"
	"gitlab.com/tinyland/lab/hostpulse/display/tui"
	"gitlab.com/tinyland/lab/hostpulse/display/widgets"
)

// defaultInterval is the sampling cadence used when the configured value
// fails to parse.
const defaultInterval = time.Second

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/hostpulse/config.yaml)")
		snapshot    = flag.Bool("snapshot", false, "Print one metrics snapshot as JSON and exit")
		assumeYes   = flag.Bool("y", false, "Non-interactive; skip the first-run config prompt")
		intervalStr = flag.String("interval", "", "Sampling cadence override (e.g. 1s, 500ms)")
		styleFlag   = flag.String("style", "", "Gauge glyph style override (blocks|shaded|ascii)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hostpulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostpulse: %v\n", err)
		os.Exit(1)
	}
	if *intervalStr != "" {
		cfg.Interval = *intervalStr
	}
	if *styleFlag != "" {
		cfg.Style = *styleFlag
	}

	if !widgets.SetGlyphStyle(cfg.Style) {
		fmt.Fprintf(os.Stderr, "hostpulse: unknown gauge style %q (want blocks, shaded, or ascii)\n", cfg.Style)
		os.Exit(1)
	}

	if *snapshot {
		os.Exit(runSnapshot())
	}

	maybeOfferDefaultConfig(*configPath, *assumeYes)

	opts := tui.Options{
		Interval:      parseInterval(cfg.Interval),
		Catalog:       cfg.Catalog(),
		ProcessRowCap: cfg.ProcessRows,
		Logger:        logger,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "hostpulse: %v\n", err)
		os.Exit(1)
	}
}

// runSnapshot gathers one snapshot and emits it as indented JSON, for
// scripting and debugging without the interactive display.
func runSnapshot() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, err := collectors.Gather(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostpulse: gather: %v\n", err)
		return 1
	}
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostpulse: encode: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// maybeOfferDefaultConfig prompts to create a starter config file on first
// run. Skipped entirely when a config path was given explicitly, when -y
// was passed, or when stdin is not a terminal.
func maybeOfferDefaultConfig(explicitPath string, assumeYes bool) {
	if explicitPath != "" || assumeYes {
		return
	}
	path := config.DefaultPath()
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}

	fmt.Printf("No config file found. Create a default at %s? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
		return
	}
	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "hostpulse: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}

// parseInterval parses a duration string, falling back to the default
// cadence on empty or malformed input.
func parseInterval(s string) time.Duration {
	if s == "" {
		return defaultInterval
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultInterval
	}
	return d
}
