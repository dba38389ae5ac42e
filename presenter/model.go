package presenter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Model is a Bubble Tea program that hosts one presentation session in the
// terminal. The session starts on the first WindowSizeMsg, once the screen
// dimensions are known.
type Model struct {
	cfg   Config
	lines []string

	host *TerminalHost
	ctrl *Controller
}

func New(lines []string, cfg Config) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	host := NewTerminalHost(termenv.DefaultOutput(), cfg.Style)
	return Model{
		cfg:   cfg,
		lines: lines,
		host:  host,
		ctrl:  NewController(host, cfg),
	}
}

// NewWithHost is like New but runs the session on the given host. Tests use
// it to observe surfaces without a live terminal.
func NewWithHost(lines []string, cfg Config, host *TerminalHost) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{
		cfg:   cfg,
		lines: lines,
		host:  host,
		ctrl:  NewController(host, cfg),
	}
}

// Controller exposes the session state machine, e.g. for host shells that
// deliver their own events.
func (m Model) Controller() *Controller { return m.ctrl }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.SetScreenSize(msg.Width, msg.Height)
		switch m.ctrl.State() {
		case StateUninitialized:
			// Errors here can only be double-start, which cannot happen on
			// this path.
			_ = m.ctrl.Start(m.lines)
		case StateActive:
			_ = m.ctrl.Resize()
		}
		return m, nil

	case tea.KeyMsg:
		km := m.cfg.KeyMap
		switch {
		case key.Matches(msg, km.Quit):
			m.ctrl.Quit()
			return m, tea.Quit
		case key.Matches(msg, km.Next):
			_ = m.ctrl.Next()
		case key.Matches(msg, km.Prev):
			_ = m.ctrl.Prev()
		case key.Matches(msg, km.First):
			_ = m.ctrl.First()
		case key.Matches(msg, km.Last):
			_ = m.ctrl.Last()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.ctrl.State() != StateActive {
		return ""
	}
	return m.host.View()
}
