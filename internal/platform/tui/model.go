// Package tui provides the Bubble Tea front end for the arcade: the game
// loop, the menu, the scoreboard and the SSH server.
package tui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// helpRows is the space below the playfield reserved for the key help.
const helpRows = 1

// toastTicks is how long a status message stays on the help row.
const toastTicks = 120

// modelSeq numbers models so a tick meant for a finished game is dropped.
var modelSeq atomic.Uint64

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	model uint64
	At    time.Time
}

// tickCmd returns a command that sends one TickMsg after a tick interval.
func tickCmd(model uint64, cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg{model: model, At: t}
	})
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	id      uint64
	runner  *platform.Runner
	screen  *core.Screen
	palette Palette
	help    help.Model
	helpSty lipgloss.Style

	toast      string
	toastLeft  int
	quitting   bool
	backToMenu bool
	standalone bool // Own program: leaving the game ends it
}

// NewModel wraps a game in a model. The runtime config describes the whole
// terminal; the game gets all rows but the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts platform.RunnerOptions) *Model {
	return NewModelWithRenderer(game, cfg, opts, nil)
}

// NewModelWithRenderer is NewModel with colors bound to r, for SSH sessions.
func NewModelWithRenderer(game registry.Game, cfg core.RuntimeConfig, opts platform.RunnerOptions, r *lipgloss.Renderer) *Model {
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		id:      modelSeq.Add(1),
		runner:  platform.NewRunner(game, cfg, opts),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette: NewPalette(r),
		help:    h,
		helpSty: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.runner.Start()
	return tickCmd(m.id, m.runner.Runtime())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		h := max(msg.Height-helpRows, 1)
		m.runner.Resize(msg.Width, h)
		m.screen.Resize(msg.Width, h)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.model != m.id || m.quitting || m.backToMenu {
			return m, nil
		}
		m.runner.Tick()
		if m.toastLeft > 0 {
			m.toastLeft--
		}
		return m, tickCmd(m.id, m.runner.Runtime())
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.runner.Key(platform.KeyName(msg.String())) {
	case platform.KeyQuit:
		m.quitting = true
		m.runner.Stop()
		return m, tea.Quit

	case platform.KeyBack:
		m.backToMenu = true
		m.runner.Stop()
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case platform.KeyScreenshot:
		path, err := m.runner.SaveScreenshot(platform.ScreenshotDir())
		if err != nil {
			m.notify(err.Error())
		} else {
			m.notify("Saved " + path)
		}
	}
	return m, nil
}

func (m *Model) notify(s string) {
	m.toast = s
	m.toastLeft = toastTicks
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.runner.Render(m.screen)
	return m.palette.RenderScreen(m.screen) + "\n" + m.footer()
}

func (m *Model) footer() string {
	if m.toastLeft > 0 {
		return m.helpSty.Render(m.toast)
	}
	st := m.runner.State()
	if st.GameOver {
		return m.helpSty.Render(fmt.Sprintf("Score: %d  •  enter/r restart  •  esc menu  •  q quit", st.Score))
	}
	return m.help.View(m.runner.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m *Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m *Model) BackToMenu() bool { return m.backToMenu }

// State returns the game state after the latest tick.
func (m *Model) State() core.GameState { return m.runner.State() }

// Run starts a Bubble Tea program for one game and blocks until it ends.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts platform.RunnerOptions) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(*Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
