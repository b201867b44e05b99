package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status indicator glyphs for interface link state. Both are double-width
// characters; padding arithmetic measures display width, not byte length.
const (
	StatusUp   = "🟢"
	StatusDown = "🔴"
)

// Theme bundles the styles for one color scheme. The series palette is fixed
// at six colors; TX/RX pairs consume adjacent entries in interface insertion
// order, wrapping at six.
type Theme struct {
	Name    string
	Palette [6]lipgloss.Color

	Title  lipgloss.Style
	Axis   lipgloss.Style
	Grid   lipgloss.Style
	Border lipgloss.Style
	Header lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
}

// SeriesColor returns the palette entry for a series index, wrapping past the
// end of the palette.
func (t Theme) SeriesColor(idx int) lipgloss.Color {
	return t.Palette[idx%len(t.Palette)]
}

// DarkTheme returns the bright-on-dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Palette: [6]lipgloss.Color{
			lipgloss.Color("9"),  // red
			lipgloss.Color("12"), // blue
			lipgloss.Color("10"), // green
			lipgloss.Color("11"), // yellow
			lipgloss.Color("13"), // magenta
			lipgloss.Color("14"), // cyan
		},
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Grid:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// LightTheme returns the standard-intensity scheme for light terminals.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Palette: [6]lipgloss.Color{
			lipgloss.Color("1"), // red
			lipgloss.Color("4"), // blue
			lipgloss.Color("2"), // green
			lipgloss.Color("3"), // yellow
			lipgloss.Color("5"), // magenta
			lipgloss.Color("6"), // cyan
		},
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
		Axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Grid:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// DetectTheme picks dark or light based on the terminal background.
// Used when neither --dark nor --light is given.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}
