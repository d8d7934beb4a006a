package collector

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sysglance/model"
	"sysglance/util"
)

// NUMACollector reads per-node topology from
// /sys/devices/system/node/node*/{meminfo,cpulist}. Systems with fewer
// than two nodes get no NUMA section at all.
type NUMACollector struct {
	SysPath string // defaults to /sys/devices/system/node
}

func (c *NUMACollector) Name() string { return "numa" }

func (c *NUMACollector) Collect(rep *model.MemReport) error {
	root := c.SysPath
	if root == "" {
		root = "/sys/devices/system/node"
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		// No node directory means a single-node system, not a failure.
		return nil
	}

	var nodes []model.NUMANode
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "node") {
			continue
		}
		id := util.ParseInt(strings.TrimPrefix(name, "node"))
		if id == 0 && name != "node0" {
			continue
		}
		node := model.NUMANode{ID: id}
		if lines, err := util.ReadFileLines(filepath.Join(root, name, "meminfo")); err == nil {
			node.MemTotal = nodeMeminfoValue(lines, "MemTotal")
			node.MemFree = nodeMeminfoValue(lines, "MemFree")
		}
		node.CPUList = util.ReadSysString(filepath.Join(root, name, "cpulist"))
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	if len(nodes) < 2 {
		return nil
	}
	rep.NUMANodes = nodes
	return nil
}

// nodeMeminfoValue extracts one key from a per-node meminfo file, whose
// lines look like "Node 0 MemTotal:  131724884 kB".
func nodeMeminfoValue(lines []string, key string) uint64 {
	want := key + ":"
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) >= 4 && f[2] == want {
			return util.ParseKB(f[3] + " kB")
		}
	}
	return 0
}
