package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/platform"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	Info   registry.GameInfo
	Levels []string // Empty for games without level choice
	Level  int
}

// label is the menu line for the item, without the cursor.
func (it MenuItem) label() string {
	s := it.Info.Title
	if it.Info.Players > 1 {
		s += fmt.Sprintf(" (%dP)", it.Info.Players)
	}
	if len(it.Levels) > 0 {
		s += fmt.Sprintf("  < %d: %s >", it.Level+1, it.Levels[it.Level])
	}
	return s
}

type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	footer   lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("245")),
		item:     r.NewStyle(),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
		footer:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	config core.RuntimeConfig
	styles menuStyles

	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel lists every registered game. opts is used to probe games for
// their level lists.
func NewMenuModel(cfg core.RuntimeConfig, opts registry.Options, r *lipgloss.Renderer) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, info := range games {
		item := MenuItem{Info: info}
		if g, err := registry.Create(info.ID, opts); err == nil {
			if lv, ok := g.(registry.Leveled); ok {
				item.Levels = lv.LevelNames()
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		styles: newMenuStyles(r),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := platform.KeyName(msg.String())

	switch k {
	case "left", "h":
		m.shiftLevel(-1)
		return m, nil
	case "right", "l":
		m.shiftLevel(1)
		return m, nil
	}

	switch platform.MapMenuKey(k) {
	case platform.MenuActionQuit, platform.MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case platform.MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case platform.MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case platform.MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case platform.MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// shiftLevel moves the start level of the highlighted game, wrapping.
func (m *MenuModel) shiftLevel(d int) {
	if len(m.items) == 0 {
		return
	}
	it := &m.items[m.cursor]
	if n := len(it.Levels); n > 0 {
		it.Level = ((it.Level+d)%n + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.styles.subtitle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label()
		style := m.styles.item
		if i == m.cursor {
			line = "> " + item.label()
			style = m.styles.selected
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "↑/↓ navigate  •  ←/→ level  •  enter play  •  tab scores  •  q quit"
	b.WriteString(centerText(m.styles.footer.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the finished menu.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case m.selected != nil:
		res.GameID = m.selected.Info.ID
		res.Level = m.selected.Level
	default:
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, opts registry.Options) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, opts, nil), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
