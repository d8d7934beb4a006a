package collector

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"sysglance/model"
	"sysglance/util"
)

// ErrNeedsRoot marks collectors that have nothing to report without
// elevated privilege; the runner words the warning accordingly.
var ErrNeedsRoot = errors.New("requires root privilege")

// DIMMCollector inventories physical memory modules via
// "dmidecode --type 17". Without root the report falls back to a single
// aggregate panel rendered from the memory snapshot.
type DIMMCollector struct{}

func (c *DIMMCollector) Name() string { return "dimm" }

func (c *DIMMCollector) Collect(rep *model.MemReport) error {
	if os.Geteuid() != 0 {
		return ErrNeedsRoot
	}
	path, err := exec.LookPath("dmidecode")
	if err != nil {
		return err
	}
	out, err := exec.Command(path, "--type", "17").Output()
	if err != nil {
		return fmt.Errorf("run dmidecode: %w", err)
	}
	rep.DIMMs = ParseDMIMemoryDevices(string(out))
	return nil
}

// ParseDMIMemoryDevices parses dmidecode type-17 output: blocks headed
// by a "Memory Device" line at column zero, followed by tab-indented
// "Key: Value" details. Absent or placeholder fields degrade to
// "Unknown".
func ParseDMIMemoryDevices(out string) []model.DIMMSlot {
	var slots []model.DIMMSlot
	var cur map[string]string
	flush := func() {
		if cur == nil {
			return
		}
		slots = append(slots, model.DIMMSlot{
			Locator:      dmiField(cur, "Locator"),
			SizeBytes:    parseDMISize(cur["Size"]),
			Type:         dmiField(cur, "Type"),
			Speed:        dmiField(cur, "Speed"),
			Manufacturer: dmiField(cur, "Manufacturer"),
			PartNumber:   dmiField(cur, "Part Number"),
		})
		cur = nil
	}
	for _, line := range strings.Split(out, "\n") {
		if line == "Memory Device" {
			flush()
			cur = make(map[string]string)
			continue
		}
		if cur == nil || !strings.HasPrefix(line, "\t") {
			continue
		}
		kv := strings.SplitN(line, ":", 2)
		if len(kv) == 2 {
			cur[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	flush()
	return slots
}

// dmiField returns a detail value, mapping dmidecode's placeholder
// strings to "Unknown".
func dmiField(m map[string]string, key string) string {
	v := m[key]
	switch v {
	case "", "Unknown", "Not Specified", "None":
		return "Unknown"
	}
	return v
}

// parseDMISize converts a size like "8192 MB" or "16 GB" to bytes.
// "No Module Installed" (and anything unparseable) yields 0.
func parseDMISize(s string) uint64 {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0
	}
	n := util.ParseUint64(f[0])
	switch f[1] {
	case "KB":
		return n << 10
	case "MB":
		return n << 20
	case "GB":
		return n << 30
	case "TB":
		return n << 40
	}
	return 0
}
