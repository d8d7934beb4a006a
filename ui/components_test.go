package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarFill_WithinBounds(t *testing.T) {
	const width = 40
	for total := uint64(0); total <= 100; total += 10 {
		for used := uint64(0); used <= total; used += 5 {
			fill := barFill(used, total, width)
			assert.GreaterOrEqual(t, fill, 0, "used=%d total=%d", used, total)
			assert.LessOrEqual(t, fill, width, "used=%d total=%d", used, total)
		}
	}
}

func TestBarFill_Extremes(t *testing.T) {
	assert.Equal(t, 0, barFill(0, 100, 40))
	assert.Equal(t, 40, barFill(100, 100, 40))
	assert.Equal(t, 20, barFill(50, 100, 40))
	assert.Equal(t, 0, barFill(50, 0, 40), "zero total must not divide")
	assert.Equal(t, 40, barFill(200, 100, 40), "overshoot clamps to full")
	assert.Equal(t, 0, barFill(1, 1, 0), "degenerate width")
}

func TestFmtBytes_IECThresholds(t *testing.T) {
	assert.Equal(t, "1023 KiB", fmtBytes(1023*1024))
	assert.Equal(t, "1.0 MiB", fmtBytes(1024*1024))
	assert.Equal(t, "1.0 GiB", fmtBytes(1024*1024*1024))
	assert.Equal(t, "512 B", fmtBytes(512))
	assert.Equal(t, "16 GiB", fmtBytes(16*1024*1024*1024))
}

func TestFmtBytesOrNA(t *testing.T) {
	assert.Equal(t, "N/A", fmtBytesOrNA(0))
	assert.Equal(t, "1.0 KiB", fmtBytesOrNA(1024))
}

func TestFmtIntOrNA(t *testing.T) {
	assert.Equal(t, "N/A", fmtIntOrNA(0))
	assert.Equal(t, "N/A", fmtIntOrNA(-1))
	assert.Equal(t, "42", fmtIntOrNA(42))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "very lo...", truncate("very long string", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "ab...", padRight("abcdefgh", 5))
	assert.Equal(t, "", padRight("abc", 0))
	assert.Equal(t, "", padRight("abc", -3))
}
