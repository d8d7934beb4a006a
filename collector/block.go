package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"sysglance/model"
	"sysglance/util"
)

// driveNamePattern matches whole-disk block devices worth reporting:
// SATA/SCSI (sda..sdzz), legacy IDE (hda..) and NVMe namespaces.
// Partitions, loop devices, device-mapper nodes and the like fall
// through.
var driveNamePattern = regexp.MustCompile(`^(sd[a-z]+|hd[a-z]+|nvme\d+n\d+)$`)

// BlockCollector walks /sys/block and seeds one DriveRecord per
// matching device, classifying the bus from the device name and the
// rotational queue flag.
type BlockCollector struct {
	SysBlockPath string // defaults to /sys/block
}

func (c *BlockCollector) Name() string { return "block" }

func (c *BlockCollector) Collect(rep *model.StorageReport) error {
	root := c.SysBlockPath
	if root == "" {
		root = "/sys/block"
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read %s: %w", root, err)
	}

	for _, e := range entries {
		name := e.Name()
		if !driveNamePattern.MatchString(name) {
			continue
		}
		d := model.DriveRecord{
			Name:   name,
			Device: "/dev/" + name,
			Bus:    classifyBus(root, name),
			Health: model.HealthUnknown,
		}
		// size is in 512-byte sectors regardless of the device's own
		// logical block size.
		if s := util.ReadSysString(filepath.Join(root, name, "size")); s != "" {
			d.Capacity = util.ParseUint64(s) * 512
		}
		rep.Drives = append(rep.Drives, d)
	}
	sort.Slice(rep.Drives, func(i, j int) bool { return rep.Drives[i].Name < rep.Drives[j].Name })
	return nil
}

// classifyBus distinguishes NVMe by name and SSD/HDD by the rotational
// flag. An unreadable flag leaves the bus unknown rather than guessing.
func classifyBus(root, name string) model.BusType {
	if len(name) >= 4 && name[:4] == "nvme" {
		return model.BusNVMe
	}
	switch util.ReadSysString(filepath.Join(root, name, "queue", "rotational")) {
	case "0":
		return model.BusSSD
	case "1":
		return model.BusHDD
	}
	return model.BusUnknown
}
