package collector

import (
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v3/process"

	"sysglance/model"
)

// ProcessCollector lists the processes with the highest resident memory.
type ProcessCollector struct {
	MaxProcs int // rows to keep, default 10
}

func (c *ProcessCollector) Name() string { return "process" }

func (c *ProcessCollector) Collect(rep *model.MemReport) error {
	limit := c.MaxProcs
	if limit <= 0 {
		limit = 10
	}

	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	rows := make([]model.ProcessMem, 0, len(procs))
	for _, p := range procs {
		mi, err := p.MemoryInfo()
		if err != nil || mi == nil || mi.RSS == 0 {
			continue
		}
		row := model.ProcessMem{PID: p.Pid, RSS: mi.RSS}
		if user, err := p.Username(); err == nil {
			row.User = user
		}
		if pct, err := p.MemoryPercent(); err == nil {
			row.MemPct = pct
		}
		if cmd, err := p.Cmdline(); err == nil && cmd != "" {
			row.Command = cmd
		} else if name, err := p.Name(); err == nil {
			row.Command = name
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].RSS > rows[j].RSS })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	rep.TopProcesses = rows
	return nil
}
