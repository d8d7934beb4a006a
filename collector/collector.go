package collector

import "sysglance/model"

// MemCollector populates part of a memory report. Collectors are run in
// order; a failing collector degrades its own section and never aborts
// the report.
type MemCollector interface {
	Name() string
	Collect(rep *model.MemReport) error
}

// StorageCollector populates part of a storage report.
type StorageCollector interface {
	Name() string
	Collect(rep *model.StorageReport) error
}

// DefaultMemCollectors returns the memory report pipeline. Order
// matters: the process list and NUMA panels render after the snapshot
// they annotate.
func DefaultMemCollectors(topN int) []MemCollector {
	return []MemCollector{
		&MeminfoCollector{},
		&DIMMCollector{},
		&NUMACollector{},
		&ProcessCollector{MaxProcs: topN},
	}
}

// DefaultStorageCollectors returns the storage report pipeline. The
// block scan seeds the drive records the SMART pass fills in.
func DefaultStorageCollectors() []StorageCollector {
	return []StorageCollector{
		&BlockCollector{},
		&SMARTCollector{},
		&ZFSCollector{},
	}
}
