// arcade plays classic arcade shooters and paddle games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores or duel results (--all, --clear)
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-classics/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-classics/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-classics/internal/games/galaxian"
	_ "github.com/vovakirdan/arcade-classics/internal/games/invaders"
	_ "github.com/vovakirdan/arcade-classics/internal/games/sandbox"
	_ "github.com/vovakirdan/arcade-classics/internal/games/tank"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Classics - retro shooters in your terminal",
	Long: `Arcade Classics plays Asteroids, Breakout, Galaxian, Space Invaders
and a two-player tank duel directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and duel results
  config   - Print a default game config

Examples:
  arcade list
  arcade play asteroids
  arcade play tank --backend tcell
  arcade menu
  arcade serve --ssh :2222
  arcade scores invaders`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
			log.SetLevel(lvl)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
