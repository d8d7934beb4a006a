package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"sysglance/collector"
	"sysglance/logger"
	"sysglance/model"
	"sysglance/ui"
)

// buildMemReport runs the memory pipeline. Only an unreadable meminfo
// is fatal; every other collector degrades with a warning.
func buildMemReport(topN int) (*model.MemReport, error) {
	rep := &model.MemReport{GeneratedAt: time.Now()}
	for _, c := range collector.DefaultMemCollectors(topN) {
		err := c.Collect(rep)
		if err == nil {
			continue
		}
		if c.Name() == "meminfo" {
			return nil, err
		}
		warnSkipped(c.Name(), err)
	}
	return rep, nil
}

// buildStorageReport runs the storage pipeline; nothing in it is fatal.
func buildStorageReport() *model.StorageReport {
	rep := &model.StorageReport{GeneratedAt: time.Now()}
	for _, c := range collector.DefaultStorageCollectors() {
		if err := c.Collect(rep); err != nil {
			warnSkipped(c.Name(), err)
		}
	}
	return rep
}

// warnSkipped words the degradation warning by cause: a missing tool
// and missing privilege are expected conditions, anything else is
// surfaced verbatim.
func warnSkipped(name string, err error) {
	switch {
	case errors.Is(err, collector.ErrNeedsRoot):
		logger.Log.Warn().Str("collector", name).Msg("skipped: requires root")
	case errors.Is(err, exec.ErrNotFound):
		logger.Log.Warn().Str("collector", name).Err(err).Msg("skipped: tool not installed")
	default:
		logger.Log.Warn().Str("collector", name).Err(err).Msg("degraded")
	}
}

// renderSections collects and renders the sections cfg selects.
func renderSections(cfg Config) string {
	out := ""
	if cfg.Section == "mem" || cfg.Section == "all" {
		rep, err := buildMemReport(cfg.TopProcs)
		if err != nil {
			out += fmt.Sprintf("memory report unavailable: %v\n", err)
		} else {
			out += ui.RenderMemory(rep)
		}
	}
	if cfg.Section == "storage" || cfg.Section == "all" {
		if cfg.Section == "all" {
			out += "\n"
		}
		out += ui.RenderStorage(buildStorageReport())
	}
	return out
}

// runOnce prints a single report to stdout.
func runOnce(cfg Config) error {
	if cfg.Section == "mem" || cfg.Section == "all" {
		rep, err := buildMemReport(cfg.TopProcs)
		if err != nil {
			return fmt.Errorf("memory report: %w", err)
		}
		fmt.Print(ui.RenderMemory(rep))
	}
	if cfg.Section == "storage" || cfg.Section == "all" {
		if cfg.Section == "all" {
			fmt.Println()
		}
		fmt.Print(ui.RenderStorage(buildStorageReport()))
	}
	return nil
}

// runJSON emits the collected records as a single JSON document.
func runJSON(cfg Config) error {
	doc := struct {
		Timestamp time.Time            `json:"timestamp"`
		Mem       *model.MemReport     `json:"mem,omitempty"`
		Storage   *model.StorageReport `json:"storage,omitempty"`
	}{Timestamp: time.Now()}

	if cfg.Section == "mem" || cfg.Section == "all" {
		rep, err := buildMemReport(cfg.TopProcs)
		if err != nil {
			return fmt.Errorf("memory report: %w", err)
		}
		doc.Mem = rep
	}
	if cfg.Section == "storage" || cfg.Section == "all" {
		doc.Storage = buildStorageReport()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
