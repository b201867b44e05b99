package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/rileyhilliard/netgraph/internal/netstat"
)

// statsPanel builds the bordered summary panel as exactly height lines of
// exactly width display columns. Content that does not fit the height is cut;
// a panel shorter than its chart is padded with blank bordered lines so the
// two blocks always align row for row.
type statsPanel struct {
	width int
	inner int
	theme Theme
	lines []string
}

// renderStatsPanel renders the summary panel for the current engine state.
func renderStatsPanel(e *Engine, src netstat.Source, width, height int, theme Theme) []string {
	if width < 4 || height < 2 {
		return nil
	}

	p := &statsPanel{width: width, inner: width - 2, theme: theme}

	border := theme.Border
	p.lines = append(p.lines, border.Render("┌"+strings.Repeat("─", p.inner)+"┐"))
	p.addCentered("Network Summary")
	p.lines = append(p.lines, border.Render("│")+theme.Header.Render(strings.Repeat("═", p.inner))+border.Render("│"))
	p.add("")

	totalSent, totalRecv := e.Totals()
	peakSent, peakRecv := e.Peaks()
	currentSent, currentRecv := e.Current()

	p.add(" Total Transferred:")
	p.add(fmt.Sprintf("   ↑ %s", FormatBytes(float64(totalSent))))
	p.add(fmt.Sprintf("   ↓ %s", FormatBytes(float64(totalRecv))))
	p.add("")
	p.add(" Peak Throughput:")
	p.add(fmt.Sprintf("   ↑ %s", FormatSpeed(peakSent)))
	p.add(fmt.Sprintf("   ↓ %s", FormatSpeed(peakRecv)))
	p.add("")
	p.add(" Current Throughput:")
	p.add(fmt.Sprintf("   ↑ %s", FormatSpeed(currentSent)))
	p.add(fmt.Sprintf("   ↓ %s", FormatSpeed(currentRecv)))
	p.add("")

	p.add(" Interface Details:")
	for _, name := range e.Interfaces() {
		s := e.Series(name)
		if s == nil || s.Len() == 0 {
			continue
		}
		status := StatusDown
		if src != nil && src.IsUp(name) {
			status = StatusUp
		}
		p.add("")
		p.add(fmt.Sprintf(" %s %s:", status, name))
		p.add(fmt.Sprintf("   Current: ↑%s", FormatSpeed(s.LatestSent())))
		p.add(fmt.Sprintf("           ↓%s", FormatSpeed(s.LatestRecv())))
		p.add(fmt.Sprintf("   Packets: %s tx, %s rx",
			humanize.Comma(int64(s.PacketsSent)), humanize.Comma(int64(s.PacketsRecv))))
	}

	p.add("")
	p.add(" Active Interfaces:")
	p.add(fmt.Sprintf("   %d", e.ActiveCount()))
	p.add("")
	p.add(" Monitor Duration:")
	p.add(fmt.Sprintf("   %s", FormatDuration(time.Since(e.StartTime()))))

	// Pad (or cut) to the chart height, then close the border.
	if len(p.lines) > height-1 {
		p.lines = p.lines[:height-1]
	}
	for len(p.lines) < height-1 {
		p.add("")
	}
	p.lines = append(p.lines, border.Render("└"+strings.Repeat("─", p.inner)+"┘"))

	return p.lines
}

// add appends one bordered content line, padding or truncating the text to
// the exact inner width. Width is measured in display columns so double-width
// glyphs (the status indicators) keep the right border aligned.
func (p *statsPanel) add(text string) {
	p.lines = append(p.lines,
		p.theme.Border.Render("│")+p.theme.Text.Render(padToWidth(text, p.inner))+p.theme.Border.Render("│"))
}

// addCentered appends a bordered line with the text centered.
func (p *statsPanel) addCentered(text string) {
	text = runewidth.Truncate(text, p.inner, "")
	pad := p.inner - runewidth.StringWidth(text)
	left := pad / 2
	centered := strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	p.lines = append(p.lines,
		p.theme.Border.Render("│")+p.theme.Header.Render(centered)+p.theme.Border.Render("│"))
}

// padToWidth pads or truncates text to exactly width display columns.
func padToWidth(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w > width {
		text = runewidth.Truncate(text, width, "")
		w = runewidth.StringWidth(text)
	}
	return text + strings.Repeat(" ", width-w)
}
