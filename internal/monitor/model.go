package monitor

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/netgraph/internal/logger"
	"github.com/rileyhilliard/netgraph/internal/netstat"
)

// Options configures the dashboard.
type Options struct {
	Interval    time.Duration
	HistorySize int
	ShowStats   bool
	AutoScale   bool
	Theme       Theme
}

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
}

// ShortHelp returns the bindings for the one-line help footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the traffic dashboard.
//
// One tick runs sample, update, render in strict sequence on the program
// goroutine; there are no concurrent samplers, so the engine needs no
// locking.
type Model struct {
	opts   Options
	engine *Engine
	source netstat.Source
	log    logger.Logger

	// previous is the snapshot from the last tick; speed derivation always
	// works on the (previous, current) pair.
	previous netstat.Snapshot

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// tickMsg signals a sampling tick.
type tickMsg time.Time

// NewModel creates the dashboard model and takes the initial counter
// snapshot, which becomes the "previous" side of the first tick's delta.
// A failed initial snapshot is logged and treated as empty.
func NewModel(source netstat.Source, opts Options, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	previous, err := source.Snapshot()
	if err != nil {
		log.Warn("initial counter snapshot failed: %v", err)
		previous = netstat.Snapshot{}
	}

	m := Model{
		opts:     opts,
		engine:   NewEngine(opts.HistorySize),
		source:   source,
		log:      log,
		previous: previous,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	// Seed dimensions so the first frame has a layout before the program
	// delivers its WindowSizeMsg.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
	}

	return m
}

// Engine exposes the metric engine, mainly for tests.
func (m Model) Engine() *Engine {
	return m.engine
}

// Init starts the sampling ticker.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles ticks, resizes, and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.sample()
		return m, m.tickCmd()
	}

	return m, nil
}

// sample takes one counter snapshot and folds it into the engine.
// A failed snapshot is logged and the tick proceeds with an empty one, so a
// transient OS error degrades the display instead of killing the dashboard.
func (m *Model) sample() {
	current, err := m.source.Snapshot()
	if err != nil {
		m.log.Warn("counter snapshot failed: %v", err)
		current = netstat.Snapshot{}
	}
	m.engine.Update(current, m.previous)
	m.previous = current
}

// tickCmd schedules the next sampling tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard and blocks until the user quits or the process is
// interrupted. Bubble Tea restores the terminal (cursor visibility included)
// on every exit path, including panics.
func Run(source netstat.Source, opts Options, log logger.Logger) error {
	p := tea.NewProgram(NewModel(source, opts, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
