// Package invaders implements Space Invaders. The grid marches sideways and
// drops a row at each wall while bombing the cannon below.
package invaders

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
	PlayerChar = '▲'
	ShotChar   = '|'
	BombChar   = '!'
	LivesChar  = '♥'
)

// Invader glyphs and colors by grid row, top to bottom
var (
	invaderGlyphs = []rune{'Ж', 'Ш', 'Ш', 'M', 'M'}
	invaderColors = []core.Color{core.ColorMagenta, core.ColorCyan, core.ColorCyan, core.ColorGreen, core.ColorGreen}
)

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 1
)

// Game adapts a World to the platform.
type Game struct {
	opts      registry.Options
	cfg       config.InvadersConfig
	runtime   core.RuntimeConfig
	world     *World
	sounds    sim.SoundSink
	highScore int
	paused    bool

	screenTooSmall bool
}

// New creates a new Space Invaders game instance.
func New(opts registry.Options) *Game {
	return &Game{opts: opts, sounds: sim.NopSounds{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Invaders" }

// SetSounds routes sound effects to s.
func (g *Game) SetSounds(s sim.SoundSink) {
	g.sounds = s
	if g.world != nil {
		g.world.SetSounds(s)
	}
}

// SetHighScore seeds the HUD with the stored best score.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.world != nil {
		g.world.HighScore = max(g.world.HighScore, score)
	}
}

// World exposes the simulation for tests and snapshots.
func (g *Game) World() *World { return g.world }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	config.ApplyInvadersPreset(&cfg, g.opts.Difficulty)
	g.cfg = cfg

	g.world = NewWorld(cfg, runtime.Seed)
	g.world.SetSounds(g.sounds)
	g.world.HighScore = g.highScore
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

	for _, inv := range w.Invaders.All() {
		i := inv.Row % len(invaderGlyphs)
		proj.DrawRect(dst, w.invaderRect(inv), invaderGlyphs[i], invaderColors[i])
	}

	for _, s := range w.Shots.All() {
		proj.DrawRect(dst, w.shotRect(s, w.cfg.Shots), ShotChar, core.ColorBrightWhite)
	}
	for _, b := range w.Bombs.All() {
		proj.DrawRect(dst, w.shotRect(b, w.cfg.Bombs.ProjectileConfig), BombChar, core.ColorBrightRed)
	}

	if !w.Round.Lost() {
		proj.DrawRect(dst, w.Player.Rect(), PlayerChar, core.ColorBrightGreen)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Hi: %d", w.HighScore))
	lives := strings.Repeat(string(LivesChar), w.Lives)
	dst.DrawTextColor(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorRed)

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case w.Round.Won():
		dst.DrawMessageBox("EARTH IS SAFE!", fmt.Sprintf("Score: %d  |  Enter/R to restart", w.Score))
	case w.Round.Lost() && w.invaded:
		dst.DrawMessageBox("INVADED!", fmt.Sprintf("Score: %d  |  Enter/R to restart", w.Score))
	case w.Round.Lost():
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Enter/R to restart", w.Score))
	}
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func(opts registry.Options) registry.Game {
		return New(opts)
	})
}
