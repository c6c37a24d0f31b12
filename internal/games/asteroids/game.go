// Package asteroids implements a wrap-around Asteroids clone: a thrusting
// ship, a bullet pool with a lifetime and rocks that split in half until
// they reach the minimum size.
package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Visual characters for rendering
const (
	BulletChar = '·'
	ThrustChar = '*'
)

// shipGlyphs maps eight 45° sectors, starting at "up", to arrows.
var shipGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// rockGlyphs by polygon side count, cycling.
var rockGlyphs = []rune{'@', '#', '%', '&', 'O'}

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 1
)

// Game adapts a World to the platform.
type Game struct {
	opts    registry.Options
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	world   *World
	sounds  sim.SoundSink
	paused  bool

	screenTooSmall bool
}

// New creates a new Asteroids game instance.
func New(opts registry.Options) *Game {
	return &Game{opts: opts, sounds: sim.NopSounds{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Asteroids" }

// SetSounds routes sound effects to s.
func (g *Game) SetSounds(s sim.SoundSink) {
	g.sounds = s
	if g.world != nil {
		g.world.SetSounds(s)
	}
}

// TakeFinishedScore reports a game that ended in a loss reset.
func (g *Game) TakeFinishedScore() (int, bool) {
	if g.world == nil {
		return 0, false
	}
	return g.world.TakeFinishedScore()
}

// World exposes the simulation for tests and snapshots.
func (g *Game) World() *World { return g.world }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, g.opts.Difficulty)
	g.cfg = cfg

	g.world = NewWorld(cfg, runtime.Seed)
	g.world.SetSounds(g.sounds)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	p1 := in.Player1()
	if g.world.Round.Over() {
		if g.world.Round.Restart(p1) {
			g.world.Reset()
		}
		return core.StepResult{State: g.State()}
	}

	if p1.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	sim.Advance(g.world, in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
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

	for _, r := range w.Rocks.All() {
		glyph := rockGlyphs[r.Sides%len(rockGlyphs)]
		proj.DrawDisc(dst, r.Pos, r.Size, glyph, core.ColorGray)
	}

	for _, b := range w.Bullets.All() {
		proj.DrawPoint(dst, b.Pos, BulletChar, core.ColorBrightYellow)
	}

	if w.Ship.Thrusting {
		tail := w.Ship.Pos.Sub(core.Heading(w.Ship.Rot).Scale(w.Ship.Radius * 1.5))
		proj.DrawPoint(dst, tail, ThrustChar, core.ColorOrange)
	}
	proj.DrawPoint(dst, w.Ship.Pos, shipGlyph(w.Ship.Rot), core.ColorSky)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score))
	rocks := fmt.Sprintf("Rocks: %d", w.Rocks.Len())
	dst.DrawText(dst.Width()-len(rocks)-1, 0, rocks)

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case w.Round.Won():
		dst.DrawMessageBox("FIELD CLEARED!", fmt.Sprintf("Score: %d  |  Enter/R to restart", w.Score))
	}
}

// shipGlyph picks the arrow closest to the ship's heading.
func shipGlyph(rot float64) rune {
	deg := math.Mod(rot, 360)
	if deg < 0 {
		deg += 360
	}
	sector := int(math.Floor((deg+22.5)/45)) % len(shipGlyphs)
	return shipGlyphs[sector]
}

// Register the game with the registry
func init() {
	registry.Register("asteroids", func(opts registry.Options) registry.Game {
		return New(opts)
	})
}
