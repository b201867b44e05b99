package monitor

import (
	"sort"
	"time"

	"github.com/rileyhilliard/netgraph/internal/netstat"
)

// DefaultHistorySize is the default number of speed samples retained per
// interface.
const DefaultHistorySize = 60

// Engine owns the per-interface rolling state and converts successive counter
// snapshots into speed samples. It is mutated only from the dashboard update
// step and read only from the render step; the two never overlap in time, so
// no locking is needed.
type Engine struct {
	historySize int
	series      map[string]*InterfaceSeries
	order       []string // interface insertion order, drives palette assignment
	startTime   time.Time
}

// NewEngine creates an engine with the given history window length.
// Sizes <= 0 fall back to DefaultHistorySize. The engine construction time is
// the reference point for the monitor duration display.
func NewEngine(historySize int) *Engine {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Engine{
		historySize: historySize,
		series:      make(map[string]*InterfaceSeries),
		startTime:   time.Now(),
	}
}

// HistorySize returns the configured rolling window length.
func (e *Engine) HistorySize() int {
	return e.historySize
}

// StartTime returns when the engine was created.
func (e *Engine) StartTime() time.Time {
	return e.startTime
}

// Update derives one speed sample per interface from a pair of consecutive
// snapshots and folds it into the rolling state.
//
// Only interfaces present in both snapshots produce a sample: speed needs two
// observations, so an interface appearing for the first time contributes
// nothing this tick (and gets no series entry yet). Speed is the raw counter
// delta divided by 1024 - KB per tick, not divided by elapsed wall time, so
// the value is only an accurate KB/s when ticks land on the nominal interval.
// A counter that went backwards (interface reset) yields a negative sample,
// kept as-is.
func (e *Engine) Update(current, previous netstat.Snapshot) {
	// Sorted iteration keeps palette assignment deterministic when several
	// interfaces first appear on the same tick.
	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prev, seen := previous[name]
		if !seen {
			continue
		}
		cur := current[name]

		sentSpeed := (float64(cur.BytesSent) - float64(prev.BytesSent)) / 1024
		recvSpeed := (float64(cur.BytesRecv) - float64(prev.BytesRecv)) / 1024

		s := e.getOrCreate(name)

		if sentSpeed > s.PeakSent {
			s.PeakSent = sentSpeed
		}
		if recvSpeed > s.PeakRecv {
			s.PeakRecv = recvSpeed
		}

		s.TotalSent = cur.BytesSent
		s.TotalRecv = cur.BytesRecv
		s.PacketsSent = cur.PacketsSent
		s.PacketsRecv = cur.PacketsRecv

		s.SentSpeed = append(s.SentSpeed, sentSpeed)
		s.RecvSpeed = append(s.RecvSpeed, recvSpeed)
		s.TimeIndex = append(s.TimeIndex, len(s.TimeIndex))

		if len(s.TimeIndex) > e.historySize {
			s.SentSpeed = s.SentSpeed[1:]
			s.RecvSpeed = s.RecvSpeed[1:]
			s.TimeIndex = s.TimeIndex[1:]
			for i := range s.TimeIndex {
				s.TimeIndex[i] = i
			}
		}
	}
}

// getOrCreate returns the series for an interface, creating it on first use.
func (e *Engine) getOrCreate(name string) *InterfaceSeries {
	s, ok := e.series[name]
	if !ok {
		s = &InterfaceSeries{}
		e.series[name] = s
		e.order = append(e.order, name)
	}
	return s
}

// Interfaces returns interface names in insertion order.
func (e *Engine) Interfaces() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Series returns the series for an interface, or nil if it has never produced
// a sample.
func (e *Engine) Series(name string) *InterfaceSeries {
	return e.series[name]
}

// MaxSample returns the largest speed sample currently held in any history
// window, across both directions of every interface. Returns 0 with no data.
func (e *Engine) MaxSample() float64 {
	maxVal := 0.0
	for _, s := range e.series {
		for _, v := range s.SentSpeed {
			if v > maxVal {
				maxVal = v
			}
		}
		for _, v := range s.RecvSpeed {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Totals returns the summed cumulative byte counters across all interfaces
// with at least one sample.
func (e *Engine) Totals() (sent, recv uint64) {
	for _, s := range e.series {
		if s.Len() == 0 {
			continue
		}
		sent += s.TotalSent
		recv += s.TotalRecv
	}
	return sent, recv
}

// Peaks returns the highest lifetime peak across all interfaces with at least
// one sample, per direction.
func (e *Engine) Peaks() (sent, recv float64) {
	for _, s := range e.series {
		if s.Len() == 0 {
			continue
		}
		if s.PeakSent > sent {
			sent = s.PeakSent
		}
		if s.PeakRecv > recv {
			recv = s.PeakRecv
		}
	}
	return sent, recv
}

// Current returns the sum of the most recent speed sample across all
// interfaces, per direction.
func (e *Engine) Current() (sent, recv float64) {
	for _, s := range e.series {
		if s.Len() == 0 {
			continue
		}
		sent += s.LatestSent()
		recv += s.LatestRecv()
	}
	return sent, recv
}

// ActiveCount returns the number of interfaces with a non-empty history.
func (e *Engine) ActiveCount() int {
	count := 0
	for _, s := range e.series {
		if s.Len() > 0 {
			count++
		}
	}
	return count
}
