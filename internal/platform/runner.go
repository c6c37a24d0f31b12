package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

// Audio is the sound backend a runner drives. audio.Manager implements it.
type Audio interface {
	sim.SoundSink
	StartMusic()
	StopMusic()
}

// KeyResult tells the front end what a key press means outside the game.
type KeyResult int

const (
	KeyGame KeyResult = iota // Handled by the game, or ignored
	KeyQuit
	KeyBack
	KeyScreenshot
)

// RunnerOptions configures a Runner. Every field is optional.
type RunnerOptions struct {
	Store    *storage.Store
	Audio    Audio
	Controls config.ControlsConfig
	Logger   *log.Logger
}

// Runner owns one game session: it collects key presses between ticks,
// steps the game, and records the result when a round ends.
type Runner struct {
	game    registry.Game
	runtime core.RuntimeConfig
	store   *storage.Store
	audio   Audio
	logger  *log.Logger

	keys  *KeyMapper
	held  *HeldKeys
	frame core.MultiInputFrame
	tick  int

	state core.GameState
	saved bool // Result of the current round already stored
}

// NewRunner prepares game for play. Call Start before the first Tick.
func NewRunner(game registry.Game, runtime core.RuntimeConfig, opts RunnerOptions) *Runner {
	runtime = runtime.WithDefaults(time.Now())
	controls := opts.Controls
	if controls == nil {
		controls = config.DefaultControls()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
	}

	r := &Runner{
		game:    game,
		runtime: runtime,
		store:   opts.Store,
		audio:   opts.Audio,
		logger:  logger,
		keys:    NewKeyMapper(controls, game.ID(), registry.PlayerCount(game)),
		held:    NewHeldKeys(runtime.TickRate),
		frame:   core.NewMultiInputFrame(),
	}

	if su, ok := game.(registry.SoundUser); ok && r.audio != nil {
		su.SetSounds(r.audio)
	}
	return r
}

// Start resets the game and begins music for games that want it.
func (r *Runner) Start() {
	r.game.Reset(r.runtime)
	r.loadHighScore()
	r.state = r.game.State()
	r.saved = false

	if mu, ok := r.game.(registry.MusicUser); ok && mu.Music() && r.audio != nil {
		r.audio.StartMusic()
	}
}

// Stop ends the session's music.
func (r *Runner) Stop() {
	if r.audio != nil {
		r.audio.StopMusic()
	}
}

func (r *Runner) loadHighScore() {
	hs, ok := r.game.(registry.HighScorer)
	if !ok || r.store == nil {
		return
	}
	best, err := r.store.HighScore(r.game.ID())
	if err != nil {
		r.logger.Warn("could not load high score", "game", r.game.ID(), "error", err)
		return
	}
	hs.SetHighScore(best)
}

// Game returns the game being run.
func (r *Runner) Game() registry.Game { return r.game }

// Keys returns the active bindings, for help lines.
func (r *Runner) Keys() *KeyMapper { return r.keys }

// Runtime returns the current runtime config.
func (r *Runner) Runtime() core.RuntimeConfig { return r.runtime }

// State returns the state after the latest tick.
func (r *Runner) State() core.GameState { return r.state }

// Key feeds one key press. Game actions are queued for the next tick.
func (r *Runner) Key(k KeyName) KeyResult {
	switch {
	case r.keys.IsQuit(k):
		return KeyQuit
	case r.keys.IsScreenshot(k):
		return KeyScreenshot
	case r.keys.IsBack(k) && (r.state.GameOver || r.state.Paused):
		return KeyBack
	}

	for _, hit := range r.keys.Map(k) {
		switch hit.Action {
		case core.ActionPause, core.ActionRestart, core.ActionConfirm:
			r.frame.Press(hit.Player, hit.Action)
		default:
			if r.held.Press(hit, r.tick) {
				r.frame.Press(hit.Player, hit.Action)
			}
		}
	}
	return KeyGame
}

// Tick advances the game by one step and returns the new state.
func (r *Runner) Tick() core.GameState {
	r.tick++
	r.held.Apply(&r.frame, r.tick)

	wasOver := r.state.GameOver
	r.state = r.game.Step(r.frame).State
	r.frame.Clear()

	switch {
	case r.state.GameOver && !r.saved:
		r.record()
		r.saved = true
	case wasOver && !r.state.GameOver:
		// The game restarted itself.
		r.saved = false
		r.held.Clear()
		r.loadHighScore()
	}

	if re, ok := r.game.(registry.RoundEnder); ok {
		if score, ended := re.TakeFinishedScore(); ended {
			r.saveScore(score)
			r.loadHighScore()
		}
	}
	return r.state
}

// record stores the finished round: a duel result for versus games,
// otherwise the score.
func (r *Runner) record() {
	if r.store == nil {
		return
	}
	id := r.game.ID()

	if v, ok := r.game.(registry.Versus); ok {
		if _, err := r.store.SaveDuel(id, int(v.Winner()), v.Ticks()); err != nil {
			r.logger.Warn("could not save duel", "game", id, "error", err)
		}
		return
	}

	r.saveScore(r.state.Score)
}

// saveScore stores a positive score.
func (r *Runner) saveScore(score int) {
	if r.store == nil || score <= 0 {
		return
	}
	id := r.game.ID()
	if _, err := r.store.SaveScore(id, score); err != nil {
		r.logger.Warn("could not save score", "game", id, "error", err)
	}
}

// Resize adapts to a new terminal size. A game in progress restarts so it
// can lay itself out again.
func (r *Runner) Resize(w, h int) {
	if w == r.runtime.ScreenW && h == r.runtime.ScreenH {
		return
	}
	r.runtime.ScreenW = w
	r.runtime.ScreenH = h
	if !r.state.GameOver {
		r.game.Reset(r.runtime)
		r.loadHighScore()
		r.state = r.game.State()
	}
}

// Render draws the game into dst.
func (r *Runner) Render(dst *core.Screen) {
	r.game.Render(dst)
}

// SaveScreenshot renders the game as plain text into dir and returns the
// file path.
func (r *Runner) SaveScreenshot(dir string) (string, error) {
	screen := core.NewScreen(r.runtime.ScreenW, r.runtime.ScreenH)
	r.game.Render(screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("platform: screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", r.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("platform: screenshot: %w", err)
	}
	return path, nil
}

// ScreenshotDir is the default screenshot location, ~/.arcade/screenshots.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}
