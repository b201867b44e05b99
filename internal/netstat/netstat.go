// Package netstat wraps the OS per-interface network counter query.
//
// It exposes cumulative byte/packet counters and link status for every
// non-loopback interface. Counters are cumulative since boot as reported by
// the OS; speed derivation from successive snapshots happens in the monitor
// package, not here.
package netstat

import (
	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/rileyhilliard/netgraph/internal/errors"
)

// Counters holds the cumulative counters reported by the OS for one interface.
type Counters struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// Snapshot maps interface name to its cumulative counters at one point in time.
type Snapshot map[string]Counters

// Source provides point-in-time counter snapshots and link status.
// IsUp is best-effort display data: it never returns an error, reporting
// false for unknown interfaces or failed queries.
type Source interface {
	Snapshot() (Snapshot, error)
	IsUp(name string) bool
}

// SystemSource reads counters from the local OS via gopsutil.
type SystemSource struct{}

// NewSystemSource creates a Source backed by the local OS counters.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// Snapshot returns cumulative counters for all non-loopback interfaces.
func (s *SystemSource) Snapshot() (Snapshot, error) {
	counters, err := psnet.IOCounters(true)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetstat,
			"Failed to read network interface counters",
			"Check that the OS exposes per-interface statistics (e.g. /proc/net/dev on Linux)")
	}

	snap := make(Snapshot, len(counters))
	for _, c := range counters {
		if IsLoopback(c.Name) {
			continue
		}
		snap[c.Name] = Counters{
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		}
	}
	return snap, nil
}

// IsUp reports whether the named interface currently has link.
// Failures and unknown names report false; status is display-only.
func (s *SystemSource) IsUp(name string) bool {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Name != name {
			continue
		}
		for _, flag := range iface.Flags {
			if flag == "up" {
				return true
			}
		}
		return false
	}
	return false
}

// IsLoopback reports whether name is the loopback device.
// The loopback interface is never part of a Snapshot.
func IsLoopback(name string) bool {
	return name == "lo" || name == "lo0"
}
