package ui

import (
	"fmt"
	"strings"
	"time"

	"sysglance/model"
)

// RenderStorage renders the drive table, pool panels, dataset listing
// and summary.
func RenderStorage(rep *model.StorageReport) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("STORAGE") + "\n\n")
	sb.WriteString(renderDrives(rep.Drives))
	sb.WriteString(renderPools(rep.Pools))
	sb.WriteString(renderDatasets(rep.Datasets))
	sb.WriteString(renderStorageSummary(rep))
	return sb.String()
}

func renderDrives(drives []model.DriveRecord) string {
	if len(drives) == 0 {
		return " " + dimStyle.Render("No drives detected") + "\n\n"
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %-10s %-7s %9s  %-24s %-8s %5s %7s %7s %6s",
		"DEVICE", "BUS", "SIZE", "MODEL", "HEALTH", "TEMP", "HOURS", "ERRORS", "WEAR")) + "\n")
	for i := range drives {
		sb.WriteString(driveRow(&drives[i]) + "\n")
	}
	return sb.String() + "\n"
}

// driveRow renders one fixed-width table row. Every field falls back to
// "N/A" on its own; a drive smartctl choked on still shows its sysfs
// data.
func driveRow(d *model.DriveRecord) string {
	modelName := d.Model
	if modelName == "" {
		modelName = "N/A"
	}
	temp := "N/A"
	if d.Temperature > 0 {
		temp = fmt.Sprintf("%d°C", d.Temperature)
	}
	errs := fmt.Sprintf("%d", d.TotalErrors())
	wear := "N/A"
	wearStyled := dimStyle.Render(wear)
	if d.WearKind != model.WearNone {
		wear = fmt.Sprintf("%d%%", d.WearPct)
		wearStyled = wearStyle(d.WearPct, d.WearKind).Render(wear)
	}
	return fmt.Sprintf(" %-10s %-7s %9s  %-24s %s %5s %7s %s %s",
		d.Name, d.Bus, fmtBytesOrNA(d.Capacity), truncate(modelName, 24),
		styledPad(healthStyle(d.Health).Render(padRight(d.Health, 8)), 8),
		temp, fmtIntOrNA(d.PowerOnHours),
		styledPad(errCountStyle(uint64(d.TotalErrors())).Render(fmt.Sprintf("%7s", errs)), 7),
		styledPad(wearStyled, 6))
}

func renderPools(pools []model.PoolRecord) string {
	if len(pools) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range pools {
		sb.WriteString(renderPool(&pools[i]))
	}
	return sb.String()
}

func renderPool(p *model.PoolRecord) string {
	var sb strings.Builder
	frag := "N/A"
	if p.FragPct >= 0 {
		frag = fragStyle(p.FragPct).Render(fmt.Sprintf("%d%%", p.FragPct))
	}
	rows := []kv{
		{"Health", stateStyle(p.Health).Render(p.Health)},
		{"Size", fmt.Sprintf("%s  (alloc %s, free %s)", fmtBytesOrNA(p.Size), fmtBytesOrNA(p.Alloc), fmtBytesOrNA(p.Free))},
		{"Capacity", capacityStyle(p.CapacityPct).Render(fmt.Sprintf("%d%%", p.CapacityPct))},
		{"Fragmentation", frag},
		{"Errors", fmt.Sprintf("%s read / %s write / %s cksum",
			errCountStyle(p.ReadErrs).Render(fmt.Sprintf("%d", p.ReadErrs)),
			errCountStyle(p.WriteErrs).Render(fmt.Sprintf("%d", p.WriteErrs)),
			errCountStyle(p.CksumErrs).Render(fmt.Sprintf("%d", p.CksumErrs)))},
	}
	if p.ScanLine != "" {
		rows = append(rows, kv{"Scrub", truncate(p.ScanLine, 60)})
	}
	if p.ErrorsLine != "" {
		st := okStyle
		if p.ErrorsLine != "No known data errors" {
			st = critStyle
		}
		rows = append(rows, kv{"Data errors", st.Render(truncate(p.ErrorsLine, 60))})
	}
	sb.WriteString(renderKVBox("Pool "+p.Name, rows, 72))
	for _, v := range p.Vdevs {
		renderVdev(&sb, v, 1)
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderVdev prints the redundancy tree: one indent level for group
// members, two for leaf devices beneath a group.
func renderVdev(sb *strings.Builder, v model.VdevRecord, depth int) {
	errPart := ""
	if v.ReadErrs+v.WriteErrs+v.CksumErrs > 0 {
		errPart = "  " + critStyle.Render(fmt.Sprintf("R:%d W:%d C:%d", v.ReadErrs, v.WriteErrs, v.CksumErrs))
	}
	sb.WriteString(fmt.Sprintf("   %s%s  %s%s\n",
		strings.Repeat("  ", depth),
		valueStyle.Render(padRight(v.Name, 24-2*depth)),
		stateStyle(v.State).Render(v.State),
		errPart))
	for _, c := range v.Children {
		renderVdev(sb, c, depth+1)
	}
}

func renderDatasets(sets []model.DatasetRecord) string {
	if len(sets) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf(" %-28s %9s %9s %9s %6s  %s",
		"DATASET", "USED", "AVAIL", "REFER", "RATIO", "MOUNTPOINT")) + "\n")
	for _, s := range sets {
		ratio := "N/A"
		if s.CompressRatio > 0 {
			ratio = fmt.Sprintf("%.2fx", s.CompressRatio)
		}
		sb.WriteString(fmt.Sprintf(" %-28s %9s %9s %9s %6s  %s\n",
			truncate(s.Name, 28), fmtBytes(s.Used), fmtBytes(s.Avail),
			fmtBytes(s.Refer), ratio, truncate(s.Mountpoint, 30)))
	}
	return sb.String() + "\n"
}

func renderStorageSummary(rep *model.StorageReport) string {
	dt := model.TallyDrives(rep.Drives)
	rows := []kv{
		{"Drives", fmt.Sprintf("%s healthy, %s unknown, %s failed",
			okStyle.Render(fmt.Sprintf("%d", dt.Healthy)),
			dimStyle.Render(fmt.Sprintf("%d", dt.Unknown)),
			errCountStyle(uint64(dt.Failed)).Render(fmt.Sprintf("%d", dt.Failed)))},
	}
	if len(rep.Pools) > 0 {
		pt := model.TallyPools(rep.Pools)
		rows = append(rows, kv{"Pools", fmt.Sprintf("%s online, %s degraded, %s faulted",
			okStyle.Render(fmt.Sprintf("%d", pt.Online)),
			warnStyle.Render(fmt.Sprintf("%d", pt.Degraded)),
			errCountStyle(uint64(pt.Faulted)).Render(fmt.Sprintf("%d", pt.Faulted)))})
	}
	rows = append(rows, kv{"Generated", rep.GeneratedAt.Format(time.RFC1123)})
	return renderKVBox("Summary", rows, 72)
}
