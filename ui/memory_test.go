package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sysglance/model"
)

// Half-used 16 GiB system with no swap: the summary must say 50%, Low
// pressure, and that swap is not configured.
func TestRenderMemory_HalfUsedNoSwap(t *testing.T) {
	rep := &model.MemReport{
		Snapshot: model.MemorySnapshot{
			Total:     16777216 * 1024,
			Available: 8388608 * 1024,
			Free:      8388608 * 1024,
		},
		GeneratedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	}
	out := RenderMemory(rep)

	assert.Contains(t, out, "(50%)")
	assert.Contains(t, out, "Low")
	assert.NotContains(t, out, "Moderate")
	assert.Contains(t, out, "Swap: Not configured")
	assert.Contains(t, out, "16 GiB")
}

// Without MemAvailable the summary must agree with the usage bar
// rather than reporting a full machine under high pressure.
func TestRenderMemory_SummaryWithoutAvailable(t *testing.T) {
	rep := &model.MemReport{
		Snapshot:    model.MemorySnapshot{Total: 16 << 30, Free: 8 << 30},
		GeneratedAt: time.Now(),
	}
	out := RenderMemory(rep)

	assert.Contains(t, out, "(50%)")
	assert.Contains(t, out, "8.0 GiB / 16 GiB")
	assert.Contains(t, out, "Low")
	assert.NotContains(t, out, "(100%)")
	assert.NotContains(t, out, "High")
}

func TestRenderMemory_NUMAOnlyWithTwoNodes(t *testing.T) {
	rep := &model.MemReport{
		Snapshot:    model.MemorySnapshot{Total: 1 << 30, Available: 1 << 29, Free: 1 << 29},
		GeneratedAt: time.Now(),
	}
	assert.NotContains(t, RenderMemory(rep), "NUMA")

	rep.NUMANodes = []model.NUMANode{{ID: 0, MemTotal: 1 << 29, CPUList: "0-3"}}
	assert.NotContains(t, RenderMemory(rep), "NUMA", "a single node is not a NUMA topology")

	rep.NUMANodes = append(rep.NUMANodes, model.NUMANode{ID: 1, MemTotal: 1 << 29, CPUList: "4-7"})
	out := RenderMemory(rep)
	assert.Contains(t, out, "NUMA Node 0")
	assert.Contains(t, out, "NUMA Node 1")
	assert.Contains(t, out, "4-7")
}

func TestRenderMemory_DIMMFallback(t *testing.T) {
	rep := &model.MemReport{
		Snapshot:    model.MemorySnapshot{Total: 1 << 34, Available: 1 << 33, Free: 1 << 33},
		GeneratedAt: time.Now(),
	}
	assert.Contains(t, RenderMemory(rep), "System RAM")

	rep.DIMMs = []model.DIMMSlot{
		{Locator: "DIMM_A1", SizeBytes: 1 << 34, Type: "DDR4", Speed: "2933 MT/s", Manufacturer: "Samsung"},
		{Locator: "DIMM_A2"},
	}
	out := RenderMemory(rep)
	assert.NotContains(t, out, "System RAM")
	assert.Contains(t, out, "DIMM_A1")
	assert.Contains(t, out, "empty")
}

func TestRenderMemory_SwapConfigured(t *testing.T) {
	rep := &model.MemReport{
		Snapshot: model.MemorySnapshot{
			Total:      1 << 33,
			Available:  1 << 32,
			Free:       1 << 32,
			SwapTotal:  2 << 30,
			SwapFree:   1 << 30,
			Swappiness: 60,
			SwapDevices: []model.SwapDevice{
				{Name: "/dev/dm-1", Type: "partition", Size: 2 << 30, Priority: -2},
			},
		},
		GeneratedAt: time.Now(),
	}
	out := RenderMemory(rep)
	assert.NotContains(t, out, "Not configured")
	assert.Contains(t, out, "/dev/dm-1")
	assert.Contains(t, out, "Swappiness")
}

func TestRenderMemory_TopProcesses(t *testing.T) {
	rep := &model.MemReport{
		Snapshot: model.MemorySnapshot{Total: 1 << 33, Available: 1 << 32, Free: 1 << 32},
		TopProcesses: []model.ProcessMem{
			{PID: 1234, User: "postgres", RSS: 2 << 30, MemPct: 25.0,
				Command: "/usr/lib/postgresql/16/bin/postgres -D /var/lib/postgresql/16/main"},
		},
		GeneratedAt: time.Now(),
	}
	out := RenderMemory(rep)
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "postgres")
	// Long commands are truncated to the display width.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1234") {
			assert.NotContains(t, line, "/var/lib/postgresql/16/main")
		}
	}
}
