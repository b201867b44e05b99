// Package monitor implements the real-time network traffic dashboard.
//
// The dashboard samples per-interface cumulative byte counters at a fixed
// interval, derives KB/s speed samples from successive deltas, keeps a
// bounded rolling history per interface, and renders a two-panel frame: a
// braille line chart of TX/RX speed per interface alongside a bordered
// summary panel with totals, peaks, current throughput, per-interface status,
// and session duration.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds the engine, the previous snapshot, and layout state
//   - Update: Processes tick, resize, and key messages
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Engine          - Rolling per-interface speed history plus lifetime stats
//	InterfaceSeries - One interface's histories, peaks, and totals
//	Options         - Interval, history window, panel and scaling toggles
//	Theme           - Dark/light lipgloss palettes for chart and panel
//
// # Tick Cycle
//
// Each tick runs strictly in sequence on the program goroutine:
//
//  1. tickMsg fires at the configured interval (default 1s)
//  2. sample() reads a counter snapshot from the netstat source
//  3. Engine.Update derives speeds from the (previous, current) pair
//  4. View() re-renders chart and stats panel from engine state
//
// Speed is the raw counter delta divided by 1024 - KB per tick rather than a
// wall-clock normalized rate. The two agree exactly when ticks land on the
// nominal interval; the simplification is deliberate and preserved.
//
// # History Window
//
// Every interface keeps TX speed, RX speed, and x-axis index sequences that
// grow and shrink in lockstep, FIFO-bounded to the configured history size.
// After an eviction the index sequence is regenerated as 0..len-1 so the
// chart's x-domain stays fixed at the window length. Peaks are lifetime
// maxima, never windowed; totals mirror the OS cumulative counters.
package monitor
