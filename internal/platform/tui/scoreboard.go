package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// maxRows is how many scores or duels one page loads.
const maxRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardStyles struct {
	title  lipgloss.Style
	tab    lipgloss.Style
	active lipgloss.Style
	box    lipgloss.Style
	muted  lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return scoreboardStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:    r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		active: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		muted:  r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// ScoreboardModel shows stored high scores, or duel results for versus games.
type ScoreboardModel struct {
	games  []registry.GameInfo
	cursor int
	store  *storage.Store

	table   table.Model
	summary string // Line above the table
	empty   bool
	err     error

	help   help.Model
	keys   ScoreboardKeyMap
	styles scoreboardStyles
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store *storage.Store, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		styles: newScoreboardStyles(r),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

// current returns the game being shown.
func (m *ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// load fills the table for the current game.
func (m *ScoreboardModel) load() {
	m.err = nil
	m.summary = ""
	info, ok := m.current()
	if !ok || m.store == nil {
		m.empty = true
		m.table = m.newTable([]table.Column{{Title: "Score", Width: 10}}, nil)
		return
	}
	if info.Versus {
		m.loadDuels(info.ID)
	} else {
		m.loadScores(info.ID)
	}
}

func (m *ScoreboardModel) loadScores(gameID string) {
	scores, err := m.store.TopScores(gameID, maxRows)
	m.err = err

	if stats, err := m.store.GetGameStats(gameID); err != nil {
		m.err = err
	} else if stats.GamesCount > 0 {
		m.summary = fmt.Sprintf("%d played  •  avg %.0f  •  last %s",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("Jan 02 15:04"))
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	m.empty = len(rows) == 0
	m.table = m.newTable([]table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 16},
	}, rows)
}

func (m *ScoreboardModel) loadDuels(gameID string) {
	tally, err := m.store.Tally(gameID)
	if err != nil {
		m.err = err
	}
	m.summary = fmt.Sprintf("P1 %d  •  P2 %d  •  draws %d", tally.P1Wins, tally.P2Wins, tally.Draws)

	duels, err := m.store.RecentDuels(gameID, maxRows)
	if err != nil {
		m.err = err
	}

	rows := make([]table.Row, len(duels))
	for i, d := range duels {
		winner := "draw"
		if d.Winner > 0 {
			winner = fmt.Sprintf("Player %d", d.Winner)
		}
		rows[i] = table.Row{winner, fmt.Sprintf("%ds", d.Ticks/60), d.CreatedAt.Format("Jan 02 15:04")}
	}
	m.empty = len(rows) == 0
	m.table = m.newTable([]table.Column{
		{Title: "Winner", Width: 10},
		{Title: "Length", Width: 8},
		{Title: "Date", Width: 16},
	}, rows)
}

func (m *ScoreboardModel) newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves to the next or previous game, wrapping.
func (m *ScoreboardModel) step(d int) {
	if n := len(m.games); n > 0 {
		m.cursor = ((m.cursor+d)%n + n) % n
		m.load()
	}
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	if m.summary != "" {
		b.WriteString(centerText(m.summary, m.width))
		b.WriteString("\n")
	}

	var body string
	switch {
	case m.store == nil:
		body = m.styles.muted.Render("Scores are unavailable: no database.")
	case m.err != nil:
		body = m.styles.muted.Render("Could not load scores: " + m.err.Error())
	case m.empty:
		body = m.styles.muted.Render("Nothing recorded yet.\nPlay a round to get on the board!")
	default:
		body = m.table.View()
	}
	for _, line := range strings.Split(m.styles.box.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// tabs renders the game strip, falling back to "< Title >" when narrow.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			parts[i] = m.styles.active.Render(g.Title)
		} else {
			parts[i] = m.styles.tab.Render(g.Title)
		}
	}
	line := strings.Join(parts, "")
	if lipgloss.Width(line) > m.width-4 {
		if info, ok := m.current(); ok {
			return m.styles.active.Render("< " + info.Title + " >")
		}
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, nil), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
