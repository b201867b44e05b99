package monitor

import (
	"fmt"
	"time"
)

// FormatSpeed formats a KB/s value with the appropriate unit.
// The input is already in KB/s, so the unit boundaries sit at 1024 (MB/s) and
// 1024*1024 (GB/s). Negative values (counter resets) format as-is.
func FormatSpeed(speed float64) string {
	switch {
	case speed >= 1024*1024:
		return fmt.Sprintf("%.2f GB/s", speed/(1024*1024))
	case speed >= 1024:
		return fmt.Sprintf("%.2f MB/s", speed/1024)
	default:
		return fmt.Sprintf("%.2f KB/s", speed)
	}
}

// FormatBytes formats a byte count with the appropriate unit.
// Values below 1 MB render in KB (dividing by 1024), so FormatBytes(1024*1024)
// is exactly "1.00 MB" and anything smaller stays in KB.
func FormatBytes(bytes float64) string {
	switch {
	case bytes >= 1024*1024*1024:
		return fmt.Sprintf("%.2f GB", bytes/(1024*1024*1024))
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.2f MB", bytes/(1024*1024))
	default:
		return fmt.Sprintf("%.2f KB", bytes/1024)
	}
}

// FormatDuration formats an elapsed duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
