package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"0.1.0-rc1", "v0.1.0-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.0.0", "abc1234", "2026-01-01")
	assert.Equal(t, "1.0.0", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-01", date)
}
