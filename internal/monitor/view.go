package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/netgraph/internal/chart"
)

// Frame margins: columns reserved for borders/labels and rows reserved so
// the frame never touches the terminal edge.
const (
	marginCols = 5
	marginRows = 3
)

// Minimum usable frame size before the dashboard degrades to a notice.
const (
	minFrameWidth  = 20
	minFrameHeight = 6
)

// statsWidthRatio is the fraction of the usable width given to the chart when
// the stats panel is shown; the panel takes the remainder.
const chartWidthRatio = 0.75

// View renders the dashboard frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width - marginCols
	height := m.height - marginRows
	if width < minFrameWidth || height < minFrameHeight {
		return "Terminal too small for netgraph - resize to continue"
	}

	// One row of the margin hosts the key help footer.
	frameHeight := height - 1

	chartWidth := width
	statsWidth := 0
	if m.opts.ShowStats {
		chartWidth = int(float64(width) * chartWidthRatio)
		statsWidth = width - chartWidth
	}

	chartBlock := m.renderChart(chartWidth, frameHeight)

	var b strings.Builder
	if statsWidth > 0 {
		statsBlock := strings.Join(
			renderStatsPanel(m.engine, m.source, statsWidth, frameHeight, m.opts.Theme), "\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chartBlock, statsBlock))
	} else {
		b.WriteString(chartBlock)
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

// renderChart builds the line chart for every interface with history.
func (m Model) renderChart(width, height int) string {
	c := chart.New(width, height)
	c.SetTitle("Network Traffic Monitor")
	c.SetXLabel(fmt.Sprintf("Seconds ago (last %ds)", m.engine.HistorySize()))
	c.SetYLabel("Speed")
	c.SetGrid(true)
	c.SetXRange(float64(m.engine.HistorySize()))
	c.SetStyles(chart.Styles{
		Title: m.opts.Theme.Title,
		Axis:  m.opts.Theme.Axis,
		Grid:  m.opts.Theme.Grid,
	})

	if m.opts.AutoScale {
		c.SetYMax(yLimit(m.engine.MaxSample()))
	}

	colorIdx := 0
	for _, name := range m.engine.Interfaces() {
		s := m.engine.Series(name)
		if s == nil || s.Len() == 0 {
			continue
		}
		c.AddSeries(chart.Series{
			Label: fmt.Sprintf("%s (TX)", name),
			X:     s.TimeIndex,
			Y:     s.SentSpeed,
			Color: m.opts.Theme.SeriesColor(colorIdx),
		})
		c.AddSeries(chart.Series{
			Label: fmt.Sprintf("%s (RX)", name),
			X:     s.TimeIndex,
			Y:     s.RecvSpeed,
			Color: m.opts.Theme.SeriesColor(colorIdx + 1),
		})
		colorIdx += 2
	}

	return c.Render()
}

// yLimit computes the auto-scaled y-axis upper bound: ten percent of headroom
// above the largest observed sample, with a floor of 1.0 KB/s so an idle
// network still shows a sensible axis.
func yLimit(maxSample float64) float64 {
	if maxSample < 1.0 {
		maxSample = 1.0
	}
	return maxSample * 1.1
}
