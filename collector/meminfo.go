package collector

import (
	"fmt"
	"path/filepath"
	"strings"

	"sysglance/model"
	"sysglance/util"
)

// MeminfoCollector reads /proc/meminfo, /proc/swaps and the swappiness
// knob into the memory snapshot.
type MeminfoCollector struct {
	ProcPath string // defaults to /proc
}

func (c *MeminfoCollector) Name() string { return "meminfo" }

func (c *MeminfoCollector) Collect(rep *model.MemReport) error {
	root := c.ProcPath
	if root == "" {
		root = "/proc"
	}

	kv, err := util.ParseKeyValueFile(filepath.Join(root, "meminfo"))
	if err != nil {
		return fmt.Errorf("read meminfo: %w", err)
	}
	rep.Snapshot = ParseMeminfo(kv)

	// Swap details are optional; their absence leaves zero values.
	if lines, err := util.ReadFileLines(filepath.Join(root, "swaps")); err == nil {
		rep.Snapshot.SwapDevices = parseSwaps(lines)
	}
	rep.Snapshot.Swappiness = util.ParseInt(util.ReadSysString(filepath.Join(root, "sys/vm/swappiness")))
	return nil
}

// ParseMeminfo maps the recognized meminfo keys into a snapshot.
// Unrecognized keys are ignored and missing keys stay zero.
func ParseMeminfo(kv map[string]string) model.MemorySnapshot {
	return model.MemorySnapshot{
		Total:        util.ParseKB(kv["MemTotal"]),
		Free:         util.ParseKB(kv["MemFree"]),
		Available:    util.ParseKB(kv["MemAvailable"]),
		Buffers:      util.ParseKB(kv["Buffers"]),
		Cached:       util.ParseKB(kv["Cached"]),
		Shmem:        util.ParseKB(kv["Shmem"]),
		Slab:         util.ParseKB(kv["Slab"]),
		SReclaimable: util.ParseKB(kv["SReclaimable"]),
		SUnreclaim:   util.ParseKB(kv["SUnreclaim"]),
		KernelStack:  util.ParseKB(kv["KernelStack"]),
		PageTables:   util.ParseKB(kv["PageTables"]),
		Dirty:        util.ParseKB(kv["Dirty"]),
		SwapTotal:    util.ParseKB(kv["SwapTotal"]),
		SwapFree:     util.ParseKB(kv["SwapFree"]),
		SwapCached:   util.ParseKB(kv["SwapCached"]),

		HugePagesTotal: util.ParseUint64(kv["HugePages_Total"]),
		HugePagesFree:  util.ParseUint64(kv["HugePages_Free"]),
		HugepageSize:   util.ParseKB(kv["Hugepagesize"]),
	}
}

// parseSwaps parses /proc/swaps. The first line is a header; Size and
// Used columns are in kB.
func parseSwaps(lines []string) []model.SwapDevice {
	var devs []model.SwapDevice
	for i, line := range lines {
		if i == 0 {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 5 {
			continue
		}
		devs = append(devs, model.SwapDevice{
			Name:     f[0],
			Type:     f[1],
			Size:     util.ParseUint64(f[2]) * 1024,
			Used:     util.ParseUint64(f[3]) * 1024,
			Priority: util.ParseInt(f[4]),
		})
	}
	return devs
}
