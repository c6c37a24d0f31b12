package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-classics/internal/core"
	_ "github.com/vovakirdan/arcade-classics/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-classics/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-classics/internal/games/tank"
	"github.com/vovakirdan/arcade-classics/internal/platform"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderScreenPlainAndColored(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(0, 1, 'X', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("default-colored cells should render as plain text, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "X") {
		t.Errorf("colored cell missing from %q", lines[1])
	}
}

func TestModelTicksAndPauses(t *testing.T) {
	game, err := registry.Create("asteroids", registry.Options{})
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(game, testRuntime(), platform.RunnerOptions{})
	m.Init()

	m.Update(keyMsg("p"))
	m.Update(TickMsg{model: m.id})
	if !m.State().Paused {
		t.Fatal("p should pause the game")
	}

	m.Update(keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc while paused should leave the game")
	}

	view := m.View()
	if strings.Count(view, "\n") != testRuntime().ScreenH-1 {
		t.Errorf("view should fill the terminal: playfield plus one help row")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game, _ := registry.Create("asteroids", registry.Options{})
	m := NewModel(game, testRuntime(), platform.RunnerOptions{})
	m.Init()

	_, cmd := m.Update(TickMsg{model: m.id + 1000})
	if cmd != nil {
		t.Error("a tick from another model must not start a second tick chain")
	}
	_, cmd = m.Update(TickMsg{model: m.id})
	if cmd == nil {
		t.Error("own ticks should schedule the next one")
	}
}

func TestModelQuit(t *testing.T) {
	game, _ := registry.Create("tank", registry.Options{})
	m := NewModel(game, testRuntime(), platform.RunnerOptions{})
	m.Init()

	_, cmd := m.Update(keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestMenuNavigationAndLevels(t *testing.T) {
	menu := NewMenuModel(testRuntime(), registry.Options{}, nil)

	idx := -1
	for i, it := range menu.items {
		if it.Info.ID == "breakout" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("breakout should be listed")
	}
	if len(menu.items[idx].Levels) == 0 {
		t.Fatal("breakout should offer a level choice")
	}

	for range idx {
		next, _ := menu.Update(keyMsg("down"))
		menu = next.(MenuModel)
	}
	next, _ := menu.Update(keyMsg("right"))
	menu = next.(MenuModel)
	next, _ = menu.Update(keyMsg("enter"))
	menu = next.(MenuModel)

	res := menu.Result()
	if res.GameID != "breakout" || res.Level != 1 {
		t.Errorf("Result() = %+v, expected breakout at level 1", res)
	}
	if !strings.Contains(menu.View(), "Breakout") {
		t.Error("menu view should list titles")
	}
}

func TestMenuMarksTwoPlayerGames(t *testing.T) {
	menu := NewMenuModel(testRuntime(), registry.Options{}, nil)
	if !strings.Contains(menu.View(), "Tank Duel (2P)") {
		t.Error("two-player games should be tagged")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(testRuntime(), registry.Options{}, platform.RunnerOptions{}, nil)
	s.Init()

	s.Update(keyMsg("tab"))
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "no database") {
		t.Error("scoreboard without a store should say so")
	}

	s.Update(keyMsg("esc"))
	if s.screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}

	_, cmd := s.Update(keyMsg("enter"))
	if s.screen != screenGame || cmd == nil {
		t.Fatal("enter should start the highlighted game")
	}

	s.Update(keyMsg("p"))
	s.Update(TickMsg{model: s.game.id})
	s.Update(keyMsg("esc"))
	if s.screen != screenMenu {
		t.Error("leaving a paused game should return to the menu")
	}

	s.Update(keyMsg("q"))
	if !s.quitting {
		t.Error("q in the menu should quit")
	}
}

func TestScoreboardShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveDuel("tank", 2, 600)

	m := NewScoreboardModel(store, 100, 40, nil)
	show := func(id string) {
		t.Helper()
		for i, g := range m.games {
			if g.ID == id {
				m.cursor = i
				m.load()
				return
			}
		}
		t.Fatalf("game %q is not on the board", id)
	}

	show("asteroids")
	if !strings.HasPrefix(m.summary, "2 played  •  avg 200") {
		t.Errorf("summary = %q", m.summary)
	}
	if !strings.Contains(m.View(), "2 played") {
		t.Error("the board should show how many games were played")
	}

	show("breakout")
	if m.summary != "" || !m.empty {
		t.Errorf("an unplayed game should have no stats, got %q", m.summary)
	}

	show("tank")
	if !strings.Contains(m.summary, "P2 1") {
		t.Errorf("duel summary = %q", m.summary)
	}
}
