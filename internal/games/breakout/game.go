package breakout

import (
	"fmt"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Visual characters for rendering
const (
	PaddleChar      = '='
	BallChar        = '●'
	HardBrickGlyph  = '▓'
	SolidBrickGlyph = 'X'
)

// Brick glyphs and colors by row (cycling through)
var (
	BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+'}
	BrickColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue}
)

const (
	minScreenW = 30
	minScreenH = 15
	hudRows    = 2
)

// Game implements the Breakout game logic.
type Game struct {
	mode    GameMode
	opts    registry.Options
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	world   *World
	sounds  sim.SoundSink
	paused  bool

	screenTooSmall bool
	levelErr       error
}

// New creates a new Breakout game instance (campaign mode).
func New(opts registry.Options) *Game {
	return &Game{mode: ModeCampaign, opts: opts, sounds: sim.NopSounds{}}
}

// NewEndless creates a new Breakout game instance in endless mode.
func NewEndless(opts registry.Options) *Game {
	return &Game{mode: ModeEndless, opts: opts, sounds: sim.NopSounds{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
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

	cfg, levels, err := g.load()
	g.cfg = cfg
	g.levelErr = err

	g.world = NewWorld(cfg, levels, g.mode, g.opts.Level)
	g.world.SetSounds(g.sounds)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// load reads the config and the level pack. A broken pack falls back to the
// built-in levels and returns the error for the HUD.
func (g *Game) load() (config.BreakoutConfig, []*Level, error) {
	cfg, err := config.LoadBreakout(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, g.opts.Difficulty)

	levels, err := LoadLevels(cfg.LevelsPath, cfg.Bricks.Points)
	if err != nil {
		levels = BuiltinLevels(cfg.Bricks.Points)
	}
	return cfg, levels, err
}

// LevelNames lists the campaign levels in play order.
func (g *Game) LevelNames() []string {
	_, levels, _ := g.load()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names
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

	// Handle pause toggle
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

	// Check for screen too small
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	w := g.world
	proj := core.NewProjection(w.field.W, w.field.H, dst.Width(), dst.Height(), hudRows)

	g.renderHUD(dst)

	for _, wall := range w.Walls {
		proj.DrawRect(dst, wall, SolidBrickGlyph, core.ColorGray)
	}
	for _, b := range w.Bricks.All() {
		glyph := BrickGlyphs[b.Row%len(BrickGlyphs)]
		if b.Type == BrickHard && b.HP > 1 {
			glyph = HardBrickGlyph
		}
		proj.DrawRect(dst, b.Rect, glyph, BrickColors[b.Row%len(BrickColors)])
	}

	proj.DrawRect(dst, w.Paddle.Rect(), PaddleChar, core.ColorBrightWhite)
	proj.DrawPoint(dst, w.Ball.Pos, BallChar, core.ColorBrightYellow)

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", w.Lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", w.Cycle*w.Levels()+w.LevelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", w.LevelIndex+1, w.Levels())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if g.levelErr != nil {
		dst.DrawText(1, 1, "level pack error, using built-in levels")
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	w := g.world
	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case w.Round.Won():
		dst.DrawMessageBox("YOU WIN!", fmt.Sprintf("Final Score: %d  |  Enter/R to restart", w.Score))
	case w.Round.Lost():
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Enter/R to restart", w.Score))
	case w.Round.Awaiting():
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register("breakout_endless", func(opts registry.Options) registry.Game {
		return NewEndless(opts)
	})
}
