package ui

import (
	"github.com/charmbracelet/lipgloss"

	"sysglance/model"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// SetNoColor strips every style, for -no-color and non-terminal output.
func SetNoColor() {
	plain := lipgloss.NewStyle()
	titleStyle = plain
	headerStyle = plain
	valueStyle = plain
	dimStyle = plain
	okStyle = plain
	warnStyle = plain
	critStyle = plain
}

// usageStyle colors a usage percentage: <70 green, 70-89 yellow,
// >=90 red. The same tiers drive the pressure assessment.
func usageStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 90:
		return critStyle
	case pct >= 70:
		return warnStyle
	default:
		return okStyle
	}
}

// pressureLabel maps a usage percentage to the qualitative tier.
func pressureLabel(pct int) string {
	switch {
	case pct >= 90:
		return "High"
	case pct >= 70:
		return "Moderate"
	default:
		return "Low"
	}
}

// capacityStyle colors a pool capacity percentage: >=90 red, >=80
// yellow.
func capacityStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 90:
		return critStyle
	case pct >= 80:
		return warnStyle
	default:
		return okStyle
	}
}

// fragStyle colors a pool fragmentation percentage: >=50 red, >=30
// yellow.
func fragStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 50:
		return critStyle
	case pct >= 30:
		return warnStyle
	default:
		return okStyle
	}
}

// wearStyle colors an SSD endurance percentage. The polarity depends on
// the vendor convention: "percentage used" is healthy when low,
// "life remaining" is healthy when high. Collapsing the two would
// silently invert the health signal.
func wearStyle(pct int, kind model.WearKind) lipgloss.Style {
	switch kind {
	case model.WearPctUsed:
		switch {
		case pct >= 90:
			return critStyle
		case pct >= 70:
			return warnStyle
		default:
			return okStyle
		}
	case model.WearPctRemaining:
		switch {
		case pct <= 10:
			return critStyle
		case pct <= 30:
			return warnStyle
		default:
			return okStyle
		}
	}
	return dimStyle
}

// healthStyle colors a drive health verdict.
func healthStyle(verdict string) lipgloss.Style {
	switch verdict {
	case model.HealthPassed:
		return okStyle
	case model.HealthFailed:
		return critStyle
	case model.HealthUnknown:
		return dimStyle
	}
	return warnStyle
}

// stateStyle colors a pool or vdev state string.
func stateStyle(state string) lipgloss.Style {
	switch state {
	case "ONLINE", "AVAIL":
		return okStyle
	case "DEGRADED":
		return warnStyle
	case "FAULTED", "OFFLINE", "UNAVAIL", "REMOVED":
		return critStyle
	}
	return dimStyle
}

// errCountStyle highlights non-zero error counters.
func errCountStyle(n uint64) lipgloss.Style {
	if n > 0 {
		return critStyle
	}
	return okStyle
}
