package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sysglance/logger"
	"sysglance/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Config holds CLI configuration.
type Config struct {
	Section  string
	JSONMode bool
	Watch    bool
	Interval time.Duration
	TopProcs int
	NoColor  bool
}

// validSections lists the report sections selectable as a positional
// argument.
var validSections = []string{"mem", "storage", "all"}

func printUsage() {
	fmt.Fprintf(os.Stderr, `sysglance v%s — memory and storage health reports for Linux terminals

Usage:
  sysglance [OPTIONS] [SECTION]

Sections:
  mem               Memory report: usage bar, breakdown, DIMM/NUMA
                    topology, swap, top processes
  storage           Drive SMART table, storage pools, datasets
  all               Both (default)

Options:
  -json             Single JSON snapshot of the collected records
  -watch            Live full-screen viewer, refreshed every -interval
  -interval N       Refresh seconds for -watch (default: 5)
  -top N            Processes listed in the memory report (default: 10)
  -no-color         Disable ANSI styling
  -version          Print version and exit

Run as root for the DIMM inventory and complete SMART data; without it
those sub-reports degrade with a warning.

Examples:
  sysglance                      Both reports, colored
  sysglance mem                  Memory report only
  sudo sysglance storage         Drive and pool report with full SMART data
  sysglance -json | jq .mem      Machine-readable snapshot
  sudo sysglance -watch -interval 10
`, Version)
}

// Run parses flags and produces the requested report.
func Run() error {
	var cfg Config
	var intervalSec int
	var showVersion bool

	flag.BoolVar(&cfg.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&cfg.Watch, "watch", false, "Live viewer, refreshed every -interval")
	flag.IntVar(&intervalSec, "interval", 5, "Refresh interval in seconds for -watch")
	flag.IntVar(&cfg.TopProcs, "top", 10, "Processes listed in the memory report")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable ANSI styling")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("sysglance v%s\n", Version)
		return nil
	}

	cfg.Interval = time.Duration(intervalSec) * time.Second
	cfg.Section = "all"
	if args := flag.Args(); len(args) > 0 {
		cfg.Section = args[0]
	}
	valid := false
	for _, s := range validSections {
		if cfg.Section == s {
			valid = true
			break
		}
	}
	if !valid {
		fmt.Fprintf(os.Stderr, "Error: unknown section %q\nValid sections: %s\n\n",
			cfg.Section, strings.Join(validSections, ", "))
		printUsage()
		os.Exit(1)
	}

	logger.Init(cfg.NoColor)
	if cfg.NoColor || cfg.JSONMode {
		ui.SetNoColor()
	}

	if os.Geteuid() != 0 && !cfg.JSONMode {
		logger.Log.Warn().Msg("running without root — DIMM inventory skipped, SMART data may be incomplete")
	}

	if cfg.JSONMode {
		return runJSON(cfg)
	}
	if cfg.Watch {
		m := ui.NewModel(func() string { return renderSections(cfg) }, cfg.Interval)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	return runOnce(cfg)
}
