package collector

import (
	"fmt"
	"os/exec"
	"strings"

	"sysglance/model"
	"sysglance/util"
)

// ZFSCollector reports pools via zpool and datasets via zfs. Either
// tool being absent degrades that sub-report; a malformed pool or
// dataset line degrades only itself.
type ZFSCollector struct {
	MaxDatasets int // rows to keep, default 20
}

func (c *ZFSCollector) Name() string { return "zfs" }

func (c *ZFSCollector) Collect(rep *model.StorageReport) error {
	zpool, err := exec.LookPath("zpool")
	if err != nil {
		return err
	}

	out, err := exec.Command(zpool, "list", "-Hp", "-o", "name,size,alloc,free,cap,frag,health").Output()
	if err != nil {
		return fmt.Errorf("zpool list: %w", err)
	}
	rep.Pools = ParseZpoolList(string(out))

	for i := range rep.Pools {
		statusOut, err := exec.Command(zpool, "status", rep.Pools[i].Name).Output()
		if err != nil {
			continue
		}
		ParseZpoolStatus(string(statusOut), &rep.Pools[i])
	}

	if zfs, err := exec.LookPath("zfs"); err == nil {
		listOut, err := exec.Command(zfs, "list", "-Hp", "-o", "name,used,avail,refer,compressratio,mountpoint").Output()
		if err == nil {
			limit := c.MaxDatasets
			if limit <= 0 {
				limit = 20
			}
			rep.Datasets = ParseZFSList(string(listOut), limit)
		}
	}
	return nil
}

// ParseZpoolList parses "zpool list -Hp" output, one tab-separated pool
// per line: name, size, alloc, free, cap, frag, health. A short or
// unparseable line is skipped without affecting the others.
func ParseZpoolList(out string) []model.PoolRecord {
	var pools []model.PoolRecord
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) < 7 {
			continue
		}
		p := model.PoolRecord{
			Name:        f[0],
			Size:        util.ParseUint64(f[1]),
			Alloc:       util.ParseUint64(f[2]),
			Free:        util.ParseUint64(f[3]),
			CapacityPct: util.ParseInt(strings.TrimSuffix(f[4], "%")),
			Health:      f[6],
			FragPct:     -1,
		}
		if frag := strings.TrimSuffix(f[5], "%"); frag != "-" {
			p.FragPct = util.ParseInt(frag)
		}
		pools = append(pools, p)
	}
	return pools
}

// ParseZpoolStatus fills scan status, the errors line and the vdev tree
// from "zpool status <pool>" output. The config table is tab-prefixed;
// nesting is two spaces per level, with the pool row itself at level
// zero carrying the aggregate error counters.
func ParseZpoolStatus(out string, pool *model.PoolRecord) {
	inConfig := false
	inScan := false
	var rows []model.VdevRecord

	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "scan:"):
			pool.ScanLine = strings.TrimSpace(strings.TrimPrefix(trimmed, "scan:"))
			inScan = true
			continue
		case strings.HasPrefix(trimmed, "errors:"):
			pool.ErrorsLine = strings.TrimSpace(strings.TrimPrefix(trimmed, "errors:"))
			inConfig = false
			inScan = false
			continue
		case trimmed == "config:":
			inConfig = true
			inScan = false
			continue
		}
		if inScan {
			// An in-progress scrub wraps its progress detail onto
			// indented continuation lines.
			if trimmed == "" || sectionHeader(trimmed) {
				inScan = false
			} else {
				pool.ScanLine += " " + trimmed
				continue
			}
		}
		if !inConfig || trimmed == "" {
			continue
		}

		body := strings.TrimPrefix(line, "\t")
		f := strings.Fields(body)
		if len(f) == 0 || f[0] == "NAME" {
			continue
		}
		depth := (len(body) - len(strings.TrimLeft(body, " "))) / 2

		vdev := model.VdevRecord{Name: f[0], Depth: depth}
		if len(f) > 1 {
			vdev.State = f[1]
		}
		if len(f) > 4 {
			vdev.ReadErrs = util.ParseUint64(f[2])
			vdev.WriteErrs = util.ParseUint64(f[3])
			vdev.CksumErrs = util.ParseUint64(f[4])
		}

		if depth == 0 && vdev.Name == pool.Name {
			// The pool's own row carries the aggregate counters.
			pool.ReadErrs = vdev.ReadErrs
			pool.WriteErrs = vdev.WriteErrs
			pool.CksumErrs = vdev.CksumErrs
			if pool.Health == "" {
				pool.Health = vdev.State
			}
			continue
		}
		rows = append(rows, vdev)
	}

	pos := 0
	pool.Vdevs = buildVdevTree(rows, &pos, minVdevDepth(rows))
}

// sectionHeader reports whether a zpool status line opens a new section
// ("pool:", "state:", "action:", ...).
func sectionHeader(s string) bool {
	head, _, ok := strings.Cut(s, ":")
	if !ok || head == "" {
		return false
	}
	for _, r := range head {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func minVdevDepth(rows []model.VdevRecord) int {
	min := 1
	for _, r := range rows {
		if r.Depth < min {
			min = r.Depth
		}
	}
	return min
}

// buildVdevTree turns the depth-annotated config rows into a tree.
// Rows deeper than their predecessor become its children; a row with no
// possible parent is kept at the current level rather than dropped.
func buildVdevTree(rows []model.VdevRecord, pos *int, depth int) []model.VdevRecord {
	var out []model.VdevRecord
	for *pos < len(rows) {
		row := rows[*pos]
		if row.Depth < depth {
			return out
		}
		if row.Depth > depth {
			if len(out) == 0 {
				row.Depth = depth
				out = append(out, row)
				*pos++
				continue
			}
			out[len(out)-1].Children = buildVdevTree(rows, pos, row.Depth)
			continue
		}
		out = append(out, row)
		*pos++
	}
	return out
}

// ParseZFSList parses "zfs list -Hp" output into dataset records,
// keeping at most limit rows. The parsable compressratio is a bare
// multiplier; older zfs prints it with an "x" suffix, tolerated here.
func ParseZFSList(out string, limit int) []model.DatasetRecord {
	var sets []model.DatasetRecord
	for _, line := range strings.Split(out, "\n") {
		if len(sets) >= limit {
			break
		}
		f := strings.Fields(line)
		if len(f) < 6 {
			continue
		}
		sets = append(sets, model.DatasetRecord{
			Name:          f[0],
			Used:          util.ParseUint64(f[1]),
			Avail:         util.ParseUint64(f[2]),
			Refer:         util.ParseUint64(f[3]),
			CompressRatio: util.ParseFloat64(strings.TrimSuffix(f[4], "x")),
			Mountpoint:    f[5],
		})
	}
	return sets
}
