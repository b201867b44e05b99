package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes float64
		want  string
	}{
		{"zero", 0, "0.00 KB"},
		{"small stays in KB", 512, "0.50 KB"},
		{"one KB", 1024, "1.00 KB"},
		{"just below MB boundary", 1024*1024 - 1, "1024.00 KB"},
		{"exact MB boundary", 1024 * 1024, "1.00 MB"},
		{"mid MB", 5.5 * 1024 * 1024, "5.50 MB"},
		{"just below GB boundary", 1024*1024*1024 - 1, "1024.00 MB"},
		{"exact GB boundary", 1024 * 1024 * 1024, "1.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  string
	}{
		{"zero", 0, "0.00 KB/s"},
		{"plain KB/s", 100.5, "100.50 KB/s"},
		{"just below MB boundary", 1023.99, "1023.99 KB/s"},
		{"exact MB boundary", 1024, "1.00 MB/s"},
		{"exact GB boundary", 1024 * 1024, "1.00 GB/s"},
		{"negative passthrough", -12, "-12.00 KB/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSpeed(tt.speed))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds", 42 * time.Second, "00:00:42"},
		{"minutes", 5*time.Minute + 3*time.Second, "00:05:03"},
		{"hours", 2*time.Hour + 30*time.Minute + 9*time.Second, "02:30:09"},
		{"over a day keeps counting hours", 26 * time.Hour, "26:00:00"},
		{"negative clamps to zero", -5 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
