package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// barWidth is the character width of usage bars.
const barWidth = 40

// cmdWidth is the display width commands in the process list are
// truncated to.
const cmdWidth = 40

// barFill computes the filled cell count for a usage bar using integer
// arithmetic. For any used <= total the result is within [0, width];
// out-of-range input is clamped rather than rejected.
func barFill(used, total uint64, width int) int {
	if width < 1 || total == 0 {
		return 0
	}
	if used > total {
		used = total
	}
	return int(used * uint64(width) / total)
}

// usageBar renders a colored bar for used-of-total, tiered by the usage
// thresholds.
func usageBar(used, total uint64, width int) string {
	filled := barFill(used, total, width)
	pct := 0
	if total > 0 {
		pct = int(used * 100 / total)
	}
	b := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return usageStyle(pct).Render(b)
}

// fmtBytes renders a byte count in IEC units ("1023 KiB", "1.0 MiB").
func fmtBytes(b uint64) string {
	return humanize.IBytes(b)
}

// fmtBytesOrNA substitutes the unknown sentinel for a zero byte count.
func fmtBytesOrNA(b uint64) string {
	if b == 0 {
		return "N/A"
	}
	return fmtBytes(b)
}

// fmtIntOrNA substitutes the unknown sentinel for a non-positive count.
func fmtIntOrNA(v int) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", v)
}

// styledPad pads a styled string to the given visual width. Unlike
// fmt.Sprintf("%-Xs") this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// padRight pads or truncates a plain string to an exact width.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) >= width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// truncate shortens s to maxLen characters with ellipsis if needed.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// ─── box drawing ────────────────────────────────────────────────────────────

func boxTop(title string, innerW int) string {
	if title == "" {
		return " " + dimStyle.Render("╭"+strings.Repeat("─", innerW+2)+"╮")
	}
	label := " " + title + " "
	rest := innerW + 1 - lipgloss.Width(label)
	if rest < 0 {
		rest = 0
	}
	return " " + dimStyle.Render("╭─") + titleStyle.Render(label) +
		dimStyle.Render(strings.Repeat("─", rest)+"╮")
}

func boxBot(innerW int) string {
	return " " + dimStyle.Render("╰"+strings.Repeat("─", innerW+2)+"╯")
}

func boxRow(content string, innerW int) string {
	pad := innerW - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	return " " + dimStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + dimStyle.Render("│")
}

// kv is one labeled row inside a panel.
type kv struct {
	Key string
	Val string
}

// renderKVBox renders key-value pairs inside a titled box.
func renderKVBox(title string, details []kv, innerW int) string {
	var sb strings.Builder
	sb.WriteString(boxTop(title, innerW) + "\n")
	for _, d := range details {
		content := fmt.Sprintf("%s %s",
			styledPad(dimStyle.Render(d.Key+":"), 16),
			valueStyle.Render(d.Val))
		sb.WriteString(boxRow(content, innerW) + "\n")
	}
	sb.WriteString(boxBot(innerW) + "\n")
	return sb.String()
}
