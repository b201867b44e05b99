package netstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoopback(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"lo", true},
		{"lo0", true},
		{"eth0", false},
		{"en0", false},
		{"wlan0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLoopback(tt.name))
		})
	}
}

func TestSystemSourceSnapshotExcludesLoopback(t *testing.T) {
	src := NewSystemSource()

	snap, err := src.Snapshot()
	if err != nil {
		t.Skipf("OS counters unavailable: %v", err)
	}

	require.NotNil(t, snap)
	assert.NotContains(t, snap, "lo")
	assert.NotContains(t, snap, "lo0")
}

func TestSystemSourceIsUpUnknownInterface(t *testing.T) {
	src := NewSystemSource()

	// Unknown interfaces must report down, never an error.
	assert.False(t, src.IsUp("definitely-not-a-real-interface-9999"))
}
