// Package platform turns terminal key events into per-player input frames
// and drives a registered game one tick at a time. The Bubble Tea and tcell
// front ends both sit on top of it.
package platform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

// KeyName is a key in Bubble Tea's KeyMsg.String() spelling.
// It satisfies fmt.Stringer so it can be matched against key.Binding.
type KeyName string

func (k KeyName) String() string { return string(k) }

// Hit is one action produced by a key press.
type Hit struct {
	Player core.PlayerID
	Action core.Action
}

// PlayerKeys holds the movement and fire bindings of one player.
type PlayerKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
}

// pairs lists the bindings with the action each one produces.
func (p PlayerKeys) pairs() []struct {
	b key.Binding
	a core.Action
} {
	return []struct {
		b key.Binding
		a core.Action
	}{
		{p.Up, core.ActionUp},
		{p.Down, core.ActionDown},
		{p.Left, core.ActionLeft},
		{p.Right, core.ActionRight},
		{p.Fire, core.ActionFire},
	}
}

// KeyMapper translates key presses to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Players []PlayerKeys // Index 0 is player 1

	Pause   key.Binding
	Restart key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
	Shot    key.Binding // Screenshot
}

// NewKeyMapper builds the bindings for gameID with the given number of
// local players. Player slots the controls leave empty get the default set
// for player 1 and nothing for the others.
func NewKeyMapper(controls config.ControlsConfig, gameID string, players int) *KeyMapper {
	gc := controls.For(gameID)
	fallback := controls.For("default")

	src := []config.KeysConfig{gc.Player1, gc.Player2}
	if src[0].Empty() {
		src[0] = fallback.Player1
	}

	players = core.Clamp(players, 1, len(src))
	km := &KeyMapper{
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Shot:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
	for i := range players {
		km.Players = append(km.Players, newPlayerKeys(src[i], i+1))
	}
	return km
}

func newPlayerKeys(k config.KeysConfig, n int) PlayerKeys {
	bind := func(keys []string, what string) key.Binding {
		names := make([]string, len(keys))
		for i, s := range keys {
			names[i] = normalizeKey(s)
		}
		desc := what
		if n > 1 {
			desc = "p" + string(rune('0'+n)) + " " + what
		}
		return key.NewBinding(key.WithKeys(names...), key.WithHelp(strings.Join(keys, "/"), desc))
	}
	return PlayerKeys{
		Up:    bind(k.Up, "up"),
		Down:  bind(k.Down, "down"),
		Left:  bind(k.Left, "left"),
		Right: bind(k.Right, "right"),
		Fire:  bind(k.Fire, "fire"),
	}
}

// normalizeKey maps config spellings to KeyMsg.String() ones.
func normalizeKey(s string) string {
	switch s := strings.ToLower(strings.TrimSpace(s)); s {
	case "space", "spacebar":
		return " "
	case "return":
		return "enter"
	case "escape":
		return "esc"
	default:
		return s
	}
}

// Map returns every action k triggers. One key can serve several roles, for
// example Enter is both player 2's fire and the restart confirmation.
func (km *KeyMapper) Map(k KeyName) []Hit {
	var hits []Hit
	for i, p := range km.Players {
		id := core.PlayerID(i + 1)
		for _, pair := range p.pairs() {
			if key.Matches(k, pair.b) {
				hits = append(hits, Hit{Player: id, Action: pair.a})
			}
		}
	}

	global := []struct {
		b key.Binding
		a core.Action
	}{
		{km.Pause, core.ActionPause},
		{km.Restart, core.ActionRestart},
		{km.Confirm, core.ActionConfirm},
	}
	for _, g := range global {
		if key.Matches(k, g.b) {
			for i := range km.Players {
				hits = append(hits, Hit{Player: core.PlayerID(i + 1), Action: g.a})
			}
		}
	}
	return hits
}

// IsQuit reports whether k leaves the program.
func (km *KeyMapper) IsQuit(k KeyName) bool { return key.Matches(k, km.Quit) }

// IsBack reports whether k returns to the menu.
func (km *KeyMapper) IsBack(k KeyName) bool { return key.Matches(k, km.Back) }

// IsScreenshot reports whether k saves the screen to a file.
func (km *KeyMapper) IsScreenshot(k KeyName) bool { return key.Matches(k, km.Shot) }

// ShortHelp implements help.KeyMap.
func (km *KeyMapper) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, p := range km.Players {
		out = append(out, p.Left, p.Right, p.Up, p.Fire)
	}
	return append(out, km.Pause, km.Back, km.Quit)
}

// FullHelp implements help.KeyMap.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, p := range km.Players {
		out = append(out, []key.Binding{p.Up, p.Down, p.Left, p.Right, p.Fire})
	}
	return append(out, []key.Binding{km.Pause, km.Restart, km.Back, km.Quit, km.Shot})
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapMenuKey translates a key to a menu action.
func MapMenuKey(k KeyName) MenuAction {
	switch k {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
