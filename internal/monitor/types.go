package monitor

// InterfaceSeries holds the rolling speed history and lifetime statistics for
// a single network interface. Series are created lazily on the first tick an
// interface appears in two consecutive snapshots, and live for the process
// lifetime; an interface that later disappears keeps its last-known state.
type InterfaceSeries struct {
	// SentSpeed and RecvSpeed are per-tick speed samples in KB/s, bounded to
	// the history size, oldest evicted first. They grow and shrink in
	// lockstep with TimeIndex.
	SentSpeed []float64
	RecvSpeed []float64

	// TimeIndex is the x-axis positions 0..len-1, regenerated after every
	// eviction so the x-axis always spans the history window.
	TimeIndex []int

	// PeakSent and PeakRecv are lifetime maxima in KB/s, never windowed or
	// reset.
	PeakSent float64
	PeakRecv float64

	// TotalSent and TotalRecv mirror the OS cumulative byte counters from
	// the most recent snapshot (overwritten, not accumulated).
	TotalSent uint64
	TotalRecv uint64

	// PacketsSent and PacketsRecv mirror the OS cumulative packet counters
	// from the most recent snapshot.
	PacketsSent uint64
	PacketsRecv uint64
}

// Len returns the number of samples currently in the history window.
func (s *InterfaceSeries) Len() int {
	return len(s.TimeIndex)
}

// LatestSent returns the most recent TX speed sample, or 0 if none exist.
func (s *InterfaceSeries) LatestSent() float64 {
	if len(s.SentSpeed) == 0 {
		return 0
	}
	return s.SentSpeed[len(s.SentSpeed)-1]
}

// LatestRecv returns the most recent RX speed sample, or 0 if none exist.
func (s *InterfaceSeries) LatestRecv() float64 {
	if len(s.RecvSpeed) == 0 {
		return 0
	}
	return s.RecvSpeed[len(s.RecvSpeed)-1]
}
