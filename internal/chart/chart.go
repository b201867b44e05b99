// Package chart renders multi-series line charts onto a braille text canvas.
//
// The canvas uses the Unicode braille block (U+2800-U+28FF), giving each
// terminal cell a 2x4 dot matrix: twice the horizontal and four times the
// vertical resolution of one character. Render returns a text block of
// exactly the requested height and width, so callers can compose the chart
// with other panels by plain row concatenation.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const brailleBase = '⠀'

// brailleDots maps sub-row/sub-column to the bit offset of the corresponding
// braille dot. Sub-row is 0-3 top to bottom, sub-column is 0-1 left to right.
var brailleDots = [4][2]uint8{
	{0, 3}, // dots 1 and 4
	{1, 4}, // dots 2 and 5
	{2, 5}, // dots 3 and 6
	{6, 7}, // dots 7 and 8
}

// Series is one labeled stream of points. X positions are interpreted within
// the chart's x-domain; X and Y must have equal length.
type Series struct {
	Label string
	X     []int
	Y     []float64
	Color lipgloss.Color
}

// Styles controls the colors of the chart chrome. Zero-value styles render
// plain text.
type Styles struct {
	Title lipgloss.Style
	Axis  lipgloss.Style
	Grid  lipgloss.Style
}

// LineChart plots labeled series against a fixed x-domain with an optional
// explicit y-limit.
type LineChart struct {
	width  int
	height int

	title  string
	xLabel string
	yLabel string

	xMax float64 // x-domain is [0, xMax); <= 0 fits the data
	yMax float64 // y-range is [0, yMax]; <= 0 fits the data
	grid bool

	styles Styles
	series []Series
}

// New creates a line chart that renders into a width x height cell block.
func New(width, height int) *LineChart {
	return &LineChart{width: width, height: height}
}

// SetTitle sets the centered title line.
func (c *LineChart) SetTitle(title string) { c.title = title }

// SetXLabel sets the x-axis label shown under the plot.
func (c *LineChart) SetXLabel(label string) { c.xLabel = label }

// SetYLabel sets the y-axis label shown beside the x-axis label.
func (c *LineChart) SetYLabel(label string) { c.yLabel = label }

// SetXRange fixes the x-domain to [0, max).
func (c *LineChart) SetXRange(max float64) { c.xMax = max }

// SetYMax fixes the upper y-limit. Values <= 0 fit the plotted data.
func (c *LineChart) SetYMax(max float64) { c.yMax = max }

// SetGrid toggles the dotted gridline overlay.
func (c *LineChart) SetGrid(enabled bool) { c.grid = enabled }

// SetStyles sets the chrome styles.
func (c *LineChart) SetStyles(s Styles) { c.styles = s }

// AddSeries adds a stream to plot. Later series draw over earlier ones where
// they overlap.
func (c *LineChart) AddSeries(s Series) {
	c.series = append(c.series, s)
}

// Render draws the chart and returns exactly c.height rows, each c.width
// display columns wide. Degenerate dimensions return an empty string.
func (c *LineChart) Render() string {
	if c.width < 1 || c.height < 1 {
		return ""
	}

	// Row budget: title and axis chrome are dropped first on short charts so
	// the plot area never disappears entirely.
	titleRows, axisRows, labelRows := 1, 1, 1
	if c.height < 5 {
		titleRows, labelRows = 0, 0
		if c.height < 3 {
			axisRows = 0
		}
	}
	plotRows := c.height - titleRows - axisRows - labelRows

	gutter := 10 // 8-column tick label + space + axis bar
	canvasW := c.width - gutter
	if canvasW < 4 {
		gutter = 0
		canvasW = c.width
	}

	yMax := c.effectiveYMax()
	xMax := c.effectiveXMax()

	dots, colors := c.plot(plotRows, canvasW, xMax, yMax)

	var rows []string
	if titleRows > 0 {
		rows = append(rows, c.renderTitle())
	}
	for r := 0; r < plotRows; r++ {
		rows = append(rows, c.renderPlotRow(r, plotRows, canvasW, gutter, yMax, dots, colors))
	}
	if axisRows > 0 {
		rows = append(rows, c.renderAxisRow(canvasW, gutter))
	}
	if labelRows > 0 {
		rows = append(rows, c.renderLabelRow())
	}

	return strings.Join(rows, "\n")
}

// effectiveYMax resolves the y-limit, fitting the data when none was set.
func (c *LineChart) effectiveYMax() float64 {
	if c.yMax > 0 {
		return c.yMax
	}
	fit := 0.0
	for _, s := range c.series {
		for _, v := range s.Y {
			if v > fit {
				fit = v
			}
		}
	}
	if fit <= 0 {
		fit = 1
	}
	return fit
}

// effectiveXMax resolves the x-domain, fitting the data when none was set.
func (c *LineChart) effectiveXMax() float64 {
	if c.xMax > 0 {
		return c.xMax
	}
	fit := 1
	for _, s := range c.series {
		for _, x := range s.X {
			if x+1 > fit {
				fit = x + 1
			}
		}
	}
	return float64(fit)
}

// plot rasterizes every series into a braille dot grid plus a per-cell color
// index (-1 for empty, otherwise the index of the last series to touch it).
func (c *LineChart) plot(plotRows, canvasW int, xMax, yMax float64) ([][]rune, [][]int) {
	dots := make([][]rune, plotRows)
	colors := make([][]int, plotRows)
	for r := range dots {
		dots[r] = make([]rune, canvasW)
		colors[r] = make([]int, canvasW)
		for col := range dots[r] {
			dots[r][col] = brailleBase
			colors[r][col] = -1
		}
	}
	if plotRows < 1 || canvasW < 1 {
		return dots, colors
	}

	dotW := canvasW * 2
	dotH := plotRows * 4

	for si, s := range c.series {
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		prevX, prevY := -1, -1
		for i := 0; i < n; i++ {
			dx := scale(float64(s.X[i]), xMax, dotW)
			dy := dotH - 1 - scale(s.Y[i], yMax, dotH)
			if prevX >= 0 {
				drawSegment(dots, colors, si, prevX, prevY, dx, dy)
			} else {
				setDot(dots, colors, si, dx, dy)
			}
			prevX, prevY = dx, dy
		}
	}

	return dots, colors
}

// scale maps a value in [0, max) onto [0, steps-1], clamping out-of-range
// input (negative speeds land on the baseline).
func scale(v, max float64, steps int) int {
	if max <= 0 {
		return 0
	}
	pos := int(v / max * float64(steps-1))
	if pos < 0 {
		return 0
	}
	if pos >= steps {
		return steps - 1
	}
	return pos
}

// drawSegment draws a line of dots between two dot coordinates.
func drawSegment(dots [][]rune, colors [][]int, series, x0, y0, x1, y1 int) {
	steps := abs(x1-x0)
	if abs(y1-y0) > steps {
		steps = abs(y1 - y0)
	}
	if steps == 0 {
		setDot(dots, colors, series, x1, y1)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		setDot(dots, colors, series, x, y)
	}
}

// setDot sets one braille dot and records the owning series for the cell.
func setDot(dots [][]rune, colors [][]int, series, x, y int) {
	row := y / 4
	col := x / 2
	if row < 0 || row >= len(dots) || col < 0 || col >= len(dots[row]) {
		return
	}
	bit := brailleDots[y%4][x%2]
	dots[row][col] |= rune(1 << bit)
	colors[row][col] = series
}

func (c *LineChart) renderTitle() string {
	title := runewidth.Truncate(c.title, c.width, "")
	pad := c.width - runewidth.StringWidth(title)
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + c.styles.Title.Render(title) + strings.Repeat(" ", right)
}

// renderPlotRow renders one canvas row with its y-axis gutter. Tick labels
// appear on a subset of rows; grid cells fill where no series drew.
func (c *LineChart) renderPlotRow(row, plotRows, canvasW, gutter int, yMax float64, dots [][]rune, colors [][]int) string {
	var b strings.Builder

	if gutter > 0 {
		if c.labelledRow(row, plotRows) {
			value := yMax * float64(plotRows-row) / float64(plotRows)
			b.WriteString(c.styles.Axis.Render(axisLabel(value) + " ┤"))
		} else {
			b.WriteString(strings.Repeat(" ", gutter-1))
			b.WriteString(c.styles.Axis.Render("│"))
		}
	}

	for col := 0; col < canvasW; col++ {
		if colors[row][col] >= 0 {
			color := c.series[colors[row][col]].Color
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(dots[row][col])))
			continue
		}
		if cell, ok := c.gridCell(row, plotRows, col); ok {
			b.WriteString(c.styles.Grid.Render(cell))
			continue
		}
		b.WriteByte(' ')
	}

	return b.String()
}

// axisLabelWidth is the column budget for a y tick label; with the " ┤"
// joint it fills the gutter exactly.
const axisLabelWidth = 10 - 2

// axisLabel formats a y tick value right-aligned into exactly axisLabelWidth
// columns. Values too wide for fixed-point notation fall back to a compact
// %g form so the gutter never grows past its budget.
func axisLabel(value float64) string {
	s := fmt.Sprintf("%.1f", value)
	if len(s) > axisLabelWidth {
		s = fmt.Sprintf("%.3g", value)
	}
	if len(s) > axisLabelWidth {
		s = s[:axisLabelWidth]
	}
	return fmt.Sprintf("%*s", axisLabelWidth, s)
}

// labelledRow reports whether a plot row carries a y tick label.
// The top row and the rows at regular intervals are labelled.
func (c *LineChart) labelledRow(row, plotRows int) bool {
	every := plotRows / 5
	if every < 1 {
		every = 1
	}
	return row%every == 0
}

// gridCell returns the gridline character for an empty cell, if any.
// Horizontal dotted lines follow the labelled rows; vertical ones repeat
// every tenth column.
func (c *LineChart) gridCell(row, plotRows, col int) (string, bool) {
	if !c.grid {
		return "", false
	}
	if c.labelledRow(row, plotRows) {
		return "┄", true
	}
	if col%10 == 0 {
		return "┊", true
	}
	return "", false
}

func (c *LineChart) renderAxisRow(canvasW, gutter int) string {
	if gutter == 0 {
		return c.styles.Axis.Render(strings.Repeat("─", canvasW))
	}
	return strings.Repeat(" ", gutter-1) + c.styles.Axis.Render("└"+strings.Repeat("─", canvasW))
}

// renderLabelRow renders the y-label on the left and the x-label centered.
func (c *LineChart) renderLabelRow() string {
	yLabel := runewidth.Truncate(c.yLabel, c.width/4, "")
	xLabel := runewidth.Truncate(c.xLabel, c.width-runewidth.StringWidth(yLabel), "")

	pad := c.width - runewidth.StringWidth(xLabel)
	left := pad / 2
	if left < runewidth.StringWidth(yLabel) {
		left = runewidth.StringWidth(yLabel)
	}
	right := c.width - left - runewidth.StringWidth(xLabel)
	if right < 0 {
		right = 0
		left = c.width - runewidth.StringWidth(xLabel)
	}

	return c.styles.Axis.Render(yLabel) +
		strings.Repeat(" ", left-runewidth.StringWidth(yLabel)) +
		c.styles.Axis.Render(xLabel) +
		strings.Repeat(" ", right)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
