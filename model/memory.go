package model

// MemorySnapshot holds one reading of /proc/meminfo plus swap details.
// All quantities are bytes. Fields missing from the kernel's output stay
// zero; nothing here is persisted between runs.
type MemorySnapshot struct {
	Total        uint64
	Free         uint64
	Available    uint64
	Buffers      uint64
	Cached       uint64
	Shmem        uint64
	Slab         uint64
	SReclaimable uint64
	SUnreclaim   uint64
	KernelStack  uint64
	PageTables   uint64
	Dirty        uint64

	SwapTotal  uint64
	SwapFree   uint64
	SwapCached uint64
	Swappiness int

	HugePagesTotal uint64
	HugePagesFree  uint64
	HugepageSize   uint64

	SwapDevices []SwapDevice
}

// SwapDevice is one row of /proc/swaps.
type SwapDevice struct {
	Name     string
	Type     string
	Size     uint64
	Used     uint64
	Priority int
}

// Used returns total minus free, buffers and cache, clamped at zero so
// ill-formed proc data cannot underflow.
func (m *MemorySnapshot) Used() uint64 {
	sub := m.Free + m.Buffers + m.Cached
	if sub > m.Total {
		return 0
	}
	return m.Total - sub
}

// Kernel returns memory held by kernel structures (slab, stacks, page
// tables).
func (m *MemorySnapshot) Kernel() uint64 {
	return m.Slab + m.KernelStack + m.PageTables
}

// Unavailable returns memory not available to new allocations. Kernels
// before 3.14 (and some containers) omit MemAvailable; the zero
// sentinel then falls back to Used so a missing field never reads as a
// fully consumed machine.
func (m *MemorySnapshot) Unavailable() uint64 {
	if m.Available == 0 || m.Available > m.Total {
		return m.Used()
	}
	return m.Total - m.Available
}

// UsedPct is the percentage of RAM not available to new allocations,
// the figure the summary and pressure tier are based on. Zero total
// (unparseable meminfo) yields 0 rather than dividing.
func (m *MemorySnapshot) UsedPct() int {
	if m.Total == 0 {
		return 0
	}
	return int(m.Unavailable() * 100 / m.Total)
}

// SwapUsed returns swap in use, clamped at zero.
func (m *MemorySnapshot) SwapUsed() uint64 {
	if m.SwapFree > m.SwapTotal {
		return 0
	}
	return m.SwapTotal - m.SwapFree
}

// SwapUsedPct returns swap usage percentage, 0 when swap is absent.
func (m *MemorySnapshot) SwapUsedPct() int {
	if m.SwapTotal == 0 {
		return 0
	}
	return int(m.SwapUsed() * 100 / m.SwapTotal)
}

// DIMMSlot is one physical memory module slot from the firmware
// inventory. Absent fields degrade to "Unknown"; SizeBytes is 0 for an
// empty slot.
type DIMMSlot struct {
	Locator      string
	SizeBytes    uint64
	Type         string
	Speed        string
	Manufacturer string
	PartNumber   string
}

// Empty reports whether no module is installed in the slot.
func (d DIMMSlot) Empty() bool { return d.SizeBytes == 0 }

// NUMANode is one memory/CPU locality domain. Collected only on systems
// with at least two nodes.
type NUMANode struct {
	ID       int
	MemTotal uint64
	MemFree  uint64
	CPUList  string
}

// MemUsed returns the node's used memory, clamped at zero.
func (n NUMANode) MemUsed() uint64 {
	if n.MemFree > n.MemTotal {
		return 0
	}
	return n.MemTotal - n.MemFree
}

// ProcessMem is one row of the top-resident-memory process list.
type ProcessMem struct {
	PID     int32
	User    string
	RSS     uint64
	MemPct  float32
	Command string
}
