// Package sandbox is a small playground for the shared simulation: one
// ship, one bullet and one enemy that swoops around the field center.
package sandbox

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	BulletChar = '|'
	EnemyChar  = 'X'
)

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 1
)

// Game adapts a World to the platform.
type Game struct {
	opts      registry.Options
	cfg       config.SandboxConfig
	runtime   core.RuntimeConfig
	world     *World
	sounds    sim.SoundSink
	highScore int
	paused    bool

	screenTooSmall bool
}

// New creates a new sandbox instance.
func New(opts registry.Options) *Game {
	return &Game{opts: opts, sounds: sim.NopSounds{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "sandbox" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Sandbox" }

// SetSounds routes sound effects to s.
func (g *Game) SetSounds(s sim.SoundSink) {
	g.sounds = s
	if g.world != nil {
		g.world.SetSounds(s)
	}
}

// Music reports whether background music should play.
func (g *Game) Music() bool {
	if g.world == nil {
		return config.DefaultSandboxConfig().Music
	}
	return g.cfg.Music
}

// SetHighScore seeds the HUD with the stored best score.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.world != nil {
		g.world.HighScore = max(g.world.HighScore, score)
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

	cfg, err := config.LoadSandbox(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultSandboxConfig()
	}
	config.ApplySandboxPreset(&cfg, g.opts.Difficulty)
	g.cfg = cfg

	g.world = NewWorld(cfg)
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

	// The sandbox never ends; running out of lives resets the world.
	if in.Player1().Has(core.ActionPause) {
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
		Score:  g.world.Score,
		Paused: g.paused,
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

	for _, e := range w.Enemies.All() {
		proj.DrawRect(dst, w.enemyRect(e), EnemyChar, core.ColorBrightRed)
	}
	for _, b := range w.Bullets.All() {
		proj.DrawRect(dst, w.bulletRect(b), BulletChar, core.ColorBrightYellow)
	}
	proj.DrawRect(dst, w.Player.Rect(), PlayerChar, core.ColorSky)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Hi: %d", w.HighScore))
	lives := fmt.Sprintf("Lives: %d", w.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)
	if !w.Wait.Done() {
		dst.DrawTextColor(1, dst.Height()-1, fmt.Sprintf("Enemy launches in %d", w.Wait.Remaining()), core.ColorGray)
	}

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}
// Register the game with the registry
func init() {
	registry.Register("sandbox", func(opts registry.Options) registry.Game {
		return New(opts)
	})
}
