package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sysglance/model"
)

func TestRenderStorage_MixedDriveHealth(t *testing.T) {
	rep := &model.StorageReport{
		Drives: []model.DriveRecord{
			{Name: "nvme0n1", Device: "/dev/nvme0n1", Bus: model.BusNVMe,
				Capacity: 2000398934016, Model: "WD_BLACK SN850X 2000GB",
				Health: model.HealthPassed, Temperature: 42, PowerOnHours: 4321,
				WearPct: 5, WearKind: model.WearPctUsed},
			{Name: "sda", Device: "/dev/sda", Bus: model.BusHDD,
				Health: model.HealthFailed, ReallocSectors: 12, PendingSectors: 3},
			// smartctl choked on this one; the sysfs seed still renders.
			{Name: "sdb", Device: "/dev/sdb", Bus: model.BusUnknown,
				Health: model.HealthUnknown, ErrorString: "exit status 2"},
		},
		GeneratedAt: time.Now(),
	}
	out := RenderStorage(rep)

	// One bad device never suppresses the others.
	assert.Contains(t, out, "nvme0n1")
	assert.Contains(t, out, "sda")
	assert.Contains(t, out, "sdb")
	assert.Contains(t, out, "WD_BLACK")
	assert.Contains(t, out, "N/A")

	assert.Contains(t, out, "1 healthy")
	assert.Contains(t, out, "1 unknown")
	assert.Contains(t, out, "1 failed")
}

func TestRenderStorage_NoDrives(t *testing.T) {
	rep := &model.StorageReport{GeneratedAt: time.Now()}
	out := RenderStorage(rep)
	assert.Contains(t, out, "No drives detected")
	assert.NotContains(t, out, "Pool")
}

func TestRenderStorage_PoolPanel(t *testing.T) {
	rep := &model.StorageReport{
		Pools: []model.PoolRecord{{
			Name: "tank", Size: 12 << 40, Alloc: 9 << 40, Free: 3 << 40,
			CapacityPct: 75, FragPct: 21, Health: "ONLINE",
			ScanLine:   "scrub repaired 0B in 04:13:27 with 0 errors on Sun Aug 10 04:37:28 2026",
			ErrorsLine: "No known data errors",
			Vdevs: []model.VdevRecord{{
				Name: "mirror-0", State: "ONLINE", Depth: 1,
				Children: []model.VdevRecord{
					{Name: "sda", State: "ONLINE", Depth: 2},
					{Name: "sdb", State: "DEGRADED", Depth: 2, CksumErrs: 4},
				},
			}},
		}},
		GeneratedAt: time.Now(),
	}
	out := RenderStorage(rep)

	assert.Contains(t, out, "Pool tank")
	assert.Contains(t, out, "mirror-0")
	assert.Contains(t, out, "sdb")
	assert.Contains(t, out, "C:4")
	assert.Contains(t, out, "scrub repaired")
	assert.Contains(t, out, "1 online")
}

func TestRenderStorage_Datasets(t *testing.T) {
	rep := &model.StorageReport{
		Datasets: []model.DatasetRecord{
			{Name: "tank/media", Used: 5 << 40, Avail: 2 << 40, Refer: 5 << 40,
				CompressRatio: 1.02, Mountpoint: "/tank/media"},
			{Name: "tank/backup", Used: 1 << 40, Avail: 2 << 40, Refer: 1 << 40,
				Mountpoint: "/tank/backup"},
		},
		GeneratedAt: time.Now(),
	}
	out := RenderStorage(rep)
	assert.Contains(t, out, "tank/media")
	assert.Contains(t, out, "1.02x")
	// Zero ratio comes from a field the tool omitted.
	assert.Contains(t, out, "N/A")
}
