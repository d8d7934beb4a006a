package model

// BusType classifies how a block device is attached.
type BusType string

const (
	BusNVMe    BusType = "NVMe"
	BusSSD     BusType = "SSD"
	BusHDD     BusType = "HDD"
	BusUnknown BusType = "Unknown"
)

// WearKind distinguishes the two vendor conventions for SSD endurance.
// NVMe reports percentage consumed (low = healthy); SATA SSDs usually
// report percentage of life remaining (high = healthy). The renderer
// colors them with opposite polarity, so the kind travels with the value.
type WearKind int

const (
	WearNone WearKind = iota
	WearPctUsed
	WearPctRemaining
)

// Health verdicts normalized from smartctl output. Anything else the
// tool reports is carried through as-is.
const (
	HealthPassed  = "Passed"
	HealthFailed  = "Failed"
	HealthUnknown = "Unknown"
)

// DriveRecord holds SMART and sysfs data for a single block device.
// Each field degrades independently: a missing or malformed value stays
// at its zero value and renders as "N/A".
type DriveRecord struct {
	Device   string // "/dev/sda", "/dev/nvme0n1"
	Name     string // "sda", "nvme0n1"
	Bus      BusType
	Capacity uint64
	Model    string
	Serial   string

	Health       string // Passed / Failed / Unknown / raw string
	PowerOnHours int
	Temperature  int // Celsius, 0 = unknown
	PowerCycles  int

	ReallocSectors int
	PendingSectors int
	UncorrSectors  int
	MediaErrors    int
	ErrLogEntries  int

	WearPct  int
	WearKind WearKind

	ErrorString string // non-empty if smartctl failed outright
}

// TotalErrors sums the cumulative error counters appropriate for the
// drive's protocol: reallocated + pending + uncorrectable sectors for
// ATA, media errors + error log entries for NVMe.
func (d *DriveRecord) TotalErrors() int {
	if d.Bus == BusNVMe {
		return d.MediaErrors + d.ErrLogEntries
	}
	return d.ReallocSectors + d.PendingSectors + d.UncorrSectors
}

// PoolRecord describes one storage pool and its redundancy hierarchy.
type PoolRecord struct {
	Name        string
	Size        uint64
	Alloc       uint64
	Free        uint64
	CapacityPct int
	FragPct     int // -1 when the pool does not report fragmentation
	Health      string

	ReadErrs  uint64
	WriteErrs uint64
	CksumErrs uint64

	Vdevs      []VdevRecord
	ErrorsLine string // "errors:" line from zpool status
	ScanLine   string // scrub/resilver status, if present
}

// VdevRecord is one device or redundancy group within a pool. Depth 0
// is a direct pool member, 1 a member of a redundancy group, 2 a leaf
// beneath a group.
type VdevRecord struct {
	Name      string
	State     string
	ReadErrs  uint64
	WriteErrs uint64
	CksumErrs uint64
	Depth     int
	Children  []VdevRecord
}

// DatasetRecord is one row of the dataset listing.
type DatasetRecord struct {
	Name          string
	Used          uint64
	Avail         uint64
	Refer         uint64
	CompressRatio float64
	Mountpoint    string
}
