package model

import "time"

// MemReport aggregates everything the memory section renders.
type MemReport struct {
	Snapshot     MemorySnapshot `json:"snapshot"`
	DIMMs        []DIMMSlot     `json:"dimms,omitempty"`
	NUMANodes    []NUMANode     `json:"numa_nodes,omitempty"`
	TopProcesses []ProcessMem   `json:"top_processes,omitempty"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// StorageReport aggregates everything the storage section renders.
type StorageReport struct {
	Drives      []DriveRecord   `json:"drives,omitempty"`
	Pools       []PoolRecord    `json:"pools,omitempty"`
	Datasets    []DatasetRecord `json:"datasets,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// DriveTally counts drives by health verdict for the summary panel.
type DriveTally struct {
	Healthy int
	Unknown int
	Failed  int
}

// TallyDrives buckets drive records by their normalized verdict.
// Anything that is not an explicit pass or fail counts as unknown, so a
// drive smartctl could not query still shows up in the totals.
func TallyDrives(drives []DriveRecord) DriveTally {
	var t DriveTally
	for i := range drives {
		switch drives[i].Health {
		case HealthPassed:
			t.Healthy++
		case HealthFailed:
			t.Failed++
		default:
			t.Unknown++
		}
	}
	return t
}

// PoolTally counts pools by health state for the summary panel.
type PoolTally struct {
	Online   int
	Degraded int
	Faulted  int
	Other    int
}

// TallyPools buckets pools by their reported state.
func TallyPools(pools []PoolRecord) PoolTally {
	var t PoolTally
	for i := range pools {
		switch pools[i].Health {
		case "ONLINE":
			t.Online++
		case "DEGRADED":
			t.Degraded++
		case "FAULTED":
			t.Faulted++
		default:
			t.Other++
		}
	}
	return t
}
