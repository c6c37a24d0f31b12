package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/platform/tcellui"
	"github.com/vovakirdan/arcade-classics/internal/platform/tui"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

var (
	flagBackend string
	flagLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (player 1 defaults):
  Arrows/WASD - Move, turn, thrust
  Space       - Fire
  P           - Pause
  Enter/R     - Restart (after game over)
  Esc         - Back (when paused or over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Key bindings can be changed in controls.yaml (see --controls).

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play asteroids
  arcade play invaders --difficulty hard
  arcade play breakout --level 3
  arcade play tank --backend tcell
  arcade play galaxian --config ./my-galaxian.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagBackend, "backend", "bubbletea", "Terminal backend: bubbletea or tcell")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Starting level for games with levels")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagControls, "controls", "", "Path to custom controls YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 1, "Sound volume from 0 to 1")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with replacement .wav sounds")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	opts := gameOptions()
	opts.Level = max(flagLevel-1, 0)

	game, err := registry.Create(gameID, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sess := openLocalSession()
	cfg := terminalConfig()

	var runErr error
	switch flagBackend {
	case "tcell":
		_, runErr = tcellui.Run(game, cfg, sess.opts)
	case "bubbletea", "":
		_, runErr = tui.Run(game, cfg, sess.opts)
	default:
		runErr = fmt.Errorf("unknown backend %q", flagBackend)
	}

	// Close before a potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
