// Package tank implements a local two-player tank duel. Each player drives
// with their own keys; bullets only hurt the opposing tank.
package tank

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Visual characters for rendering
const (
	HullChar   = '█'
	BarrelChar = '■'
	BulletChar = '•'
	LivesChar  = '♥'
)

var tankColors = [2]core.Color{core.ColorBrightGreen, core.ColorBrightYellow}

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 1
)

// Game adapts a duel World to the platform.
type Game struct {
	opts    registry.Options
	cfg     config.TankConfig
	runtime core.RuntimeConfig
	world   *World
	sounds  sim.SoundSink
	paused  bool

	screenTooSmall bool
}

// New creates a new tank duel.
func New(opts registry.Options) *Game {
	return &Game{opts: opts, sounds: sim.NopSounds{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tank" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tank Duel" }

// Players reports the two local players.
func (g *Game) Players() int { return 2 }

// Winner returns the winning player of a finished round, or 0 for a draw
// or a round still in play.
func (g *Game) Winner() core.PlayerID {
	if g.world == nil || !g.world.Round.Over() {
		return 0
	}
	return g.world.Winner
}

// Ticks returns how long the current round has run.
func (g *Game) Ticks() int {
	if g.world == nil {
		return 0
	}
	return g.world.Tick
}

// SetSounds routes sound effects to s.
func (g *Game) SetSounds(s sim.SoundSink) {
	g.sounds = s
	if g.world != nil {
		g.world.SetSounds(s)
	}
}

// World exposes the simulation for tests and snapshots.
func (g *Game) World() *World { return g.world }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTank(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultTankConfig()
	}
	config.ApplyTankPreset(&cfg, g.opts.Difficulty)
	g.cfg = cfg

	g.world = NewWorld(cfg)
	g.world.SetSounds(g.sounds)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Step advances the game by one tick. Either player can pause or restart.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.world.Round.Over() {
		if g.world.Round.Restart(in.Player1()) || g.world.Round.Restart(in.Player2()) {
			g.world.Reset()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	sim.Advance(g.world, in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state. The duel has no score; Won is
// set when either player won outright.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		GameOver: g.world.Round.Over(),
		Won:      g.world.Round.Won(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	w := g.world
	proj := core.NewProjection(w.field.W, w.field.H, dst.Width(), dst.Height(), hudRows)
	r := g.cfg.Tank.Size / 2

	for i, t := range w.Tanks {
		proj.DrawDisc(dst, t.Pos, r, HullChar, tankColors[i])
		barrel := t.Pos.Add(core.Heading(t.Rot).Scale(r * 1.5))
		proj.DrawPoint(dst, barrel, BarrelChar, core.ColorWhite)

		for _, b := range t.Bullets.All() {
			proj.DrawPoint(dst, b.Pos, BulletChar, tankColors[i])
		}
	}

	p1 := "P1 " + strings.Repeat(string(LivesChar), w.Tanks[0].Lives)
	p2 := "P2 " + strings.Repeat(string(LivesChar), w.Tanks[1].Lives)
	dst.DrawTextColor(1, 0, p1, tankColors[0])
	dst.DrawTextCentered(0, "TANK DUEL")
	dst.DrawTextColor(dst.Width()-len([]rune(p2))-1, 0, p2, tankColors[1])

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case w.Round.Over() && w.Winner == 0:
		dst.DrawMessageBox("DRAW!", "Enter/R to play again")
	case w.Round.Over():
		dst.DrawMessageBox(fmt.Sprintf("PLAYER %d WINS!", w.Winner), "Enter/R to play again")
	}
}

// Register the game with the registry
func init() {
	registry.Register("tank", func(opts registry.Options) registry.Game {
		return New(opts)
	})
}
