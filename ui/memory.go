package ui

import (
	"fmt"
	"strings"
	"time"

	"sysglance/model"
)

const memBoxW = 58

// RenderMemory renders the full memory report: usage bar, breakdown
// panel, module/NUMA topology, swap, top processes and the summary.
func RenderMemory(rep *model.MemReport) string {
	var sb strings.Builder
	snap := &rep.Snapshot

	sb.WriteString(titleStyle.Render("MEMORY") + "\n\n")

	// Usage bar: fill is used-of-total, color follows the usage tiers.
	used := snap.Used()
	pct := 0
	if snap.Total > 0 {
		pct = int(used * 100 / snap.Total)
	}
	sb.WriteString(fmt.Sprintf(" RAM  %s %s\n",
		usageBar(used, snap.Total, barWidth),
		valueStyle.Render(fmt.Sprintf("%d%%  (%s / %s)", pct, fmtBytes(used), fmtBytes(snap.Total)))))
	sb.WriteString("\n")

	sb.WriteString(renderBreakdown(snap))
	sb.WriteString(renderTopology(rep))
	sb.WriteString(renderSwap(snap))
	sb.WriteString(renderTopProcesses(rep.TopProcesses))
	sb.WriteString(renderMemSummary(snap, rep.GeneratedAt))
	return sb.String()
}

func renderBreakdown(snap *model.MemorySnapshot) string {
	pctOf := func(v uint64) string {
		if snap.Total == 0 {
			return "N/A"
		}
		return fmt.Sprintf("%s  (%d%%)", fmtBytes(v), v*100/snap.Total)
	}
	return renderKVBox("Breakdown", []kv{
		{"Apps", pctOf(snap.Used())},
		{"Cache/Buffers", pctOf(snap.Cached + snap.Buffers)},
		{"Kernel", pctOf(snap.Kernel())},
		{"Free", pctOf(snap.Free)},
	}, memBoxW) + "\n"
}

// renderTopology prefers the firmware DIMM inventory; without it (no
// root, no dmidecode) a single aggregate panel stands in.
func renderTopology(rep *model.MemReport) string {
	var sb strings.Builder
	if len(rep.DIMMs) == 0 {
		sb.WriteString(renderKVBox("System RAM", []kv{
			{"Installed", fmtBytesOrNA(rep.Snapshot.Total)},
			{"Topology", "Unknown (module inventory requires root)"},
		}, memBoxW))
		sb.WriteString("\n")
	} else {
		sb.WriteString(boxTop("Memory Modules", memBoxW) + "\n")
		sb.WriteString(boxRow(headerStyle.Render(fmt.Sprintf("%-10s %-10s %-8s %-12s %s",
			"LOCATOR", "SIZE", "TYPE", "SPEED", "MANUFACTURER")), memBoxW) + "\n")
		for _, d := range rep.DIMMs {
			size := "empty"
			st := dimStyle
			if !d.Empty() {
				size = fmtBytes(d.SizeBytes)
				st = valueStyle
			}
			row := fmt.Sprintf("%-10s %-10s %-8s %-12s %s",
				truncate(d.Locator, 10), size, truncate(d.Type, 8),
				truncate(d.Speed, 12), truncate(d.Manufacturer, 14))
			sb.WriteString(boxRow(st.Render(row), memBoxW) + "\n")
		}
		sb.WriteString(boxBot(memBoxW) + "\n\n")
	}

	// NUMA panels appear only on multi-node systems; the collector
	// leaves the slice empty otherwise.
	if len(rep.NUMANodes) >= 2 {
		for _, n := range rep.NUMANodes {
			sb.WriteString(renderKVBox(fmt.Sprintf("NUMA Node %d", n.ID), []kv{
				{"Memory", fmt.Sprintf("%s / %s used", fmtBytes(n.MemUsed()), fmtBytes(n.MemTotal))},
				{"CPUs", n.CPUList},
			}, memBoxW))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderSwap(snap *model.MemorySnapshot) string {
	if snap.SwapTotal == 0 {
		return " " + dimStyle.Render("Swap: Not configured") + "\n\n"
	}
	rows := []kv{
		{"Usage", fmt.Sprintf("%s / %s  (%d%%)", fmtBytes(snap.SwapUsed()), fmtBytes(snap.SwapTotal), snap.SwapUsedPct())},
		{"Swappiness", fmt.Sprintf("%d", snap.Swappiness)},
	}
	for _, d := range snap.SwapDevices {
		rows = append(rows, kv{truncate(d.Name, 16),
			fmt.Sprintf("%s type=%s prio=%d", fmtBytes(d.Size), d.Type, d.Priority)})
	}
	out := renderKVBox("Swap", rows, memBoxW)
	if snap.HugePagesTotal > 0 {
		out += " " + dimStyle.Render(fmt.Sprintf("Huge pages: %d x %s (%d free)",
			snap.HugePagesTotal, fmtBytes(snap.HugepageSize), snap.HugePagesFree)) + "\n"
	}
	return out + "\n"
}

func renderTopProcesses(procs []model.ProcessMem) string {
	if len(procs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %-7s %-10s %9s %6s  %s",
		"PID", "USER", "RSS", "MEM%", "COMMAND")) + "\n")
	for _, p := range procs {
		sb.WriteString(fmt.Sprintf(" %-7d %-10s %9s %5.1f%%  %s\n",
			p.PID, truncate(p.User, 10), fmtBytes(p.RSS), p.MemPct,
			valueStyle.Render(truncate(p.Command, cmdWidth))))
	}
	return sb.String() + "\n"
}

func renderMemSummary(snap *model.MemorySnapshot, at time.Time) string {
	pct := snap.UsedPct()
	unavailable := snap.Unavailable()
	swap := "Swap: Not configured"
	if snap.SwapTotal > 0 {
		swap = fmt.Sprintf("Swap: %s / %s", fmtBytes(snap.SwapUsed()), fmtBytes(snap.SwapTotal))
	}
	rows := []kv{
		{"RAM", fmt.Sprintf("%s / %s  (%d%%)", fmtBytes(unavailable), fmtBytes(snap.Total), pct)},
		{"Swap", strings.TrimPrefix(swap, "Swap: ")},
		{"Pressure", usageStyle(pct).Render(pressureLabel(pct))},
		{"Generated", at.Format(time.RFC1123)},
	}
	return renderKVBox("Summary", rows, memBoxW)
}
