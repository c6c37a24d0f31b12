package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, with a line of
play statistics. For two-player duels, shows the win tally and the latest
results instead. Without a game, prints a summary of every game.

Examples:
  arcade scores
  arcade scores asteroids
  arcade scores invaders --limit 20
  arcade scores breakout --all
  arcade scores tank --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and duels for the game")
}

func runScores(_ *cobra.Command, args []string) {
	var info registry.GameInfo
	if len(args) == 1 {
		var ok bool
		if info, ok = registry.Info(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
	} else if flagScoresClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}

	switch {
	case info.ID == "":
		err = printOverview(os.Stdout, store, registry.List())
	case flagScoresClear:
		err = clearScores(os.Stdout, store, info)
	case info.Versus:
		err = printDuels(os.Stdout, store, info, limit, flagFPS)
	default:
		err = printScores(os.Stdout, store, info, limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores lists a game's best scores. A limit of 0 lists all of them.
func printScores(w io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(info.ID, limit)
	} else {
		scores, err = store.AllScores(info.ID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", info.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", stats.HighScore)
	fmt.Fprintf(w, "Games played: %d   Average: %.0f   Last played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printDuels(w io.Writer, store *storage.Store, info registry.GameInfo, limit, fps int) error {
	tally, err := store.Tally(info.ID)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = tally.Total()
	}
	duels, err := store.RecentDuels(info.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Duels - %s\n", info.Title)
	fmt.Fprintln(w)

	if tally.Total() == 0 {
		fmt.Fprintln(w, "No duels recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' with a friend!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  Player 1: %d   Player 2: %d   Draws: %d\n", tally.P1Wins, tally.P2Wins, tally.Draws)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s  %-8s  %s\n", "Winner", "Length", "Date")
	fmt.Fprintf(w, "  %-10s  %-8s  %s\n", "------", "------", "----")
	for _, d := range duels {
		winner := "draw"
		if d.Winner > 0 {
			winner = fmt.Sprintf("Player %d", d.Winner)
		}
		fmt.Fprintf(w, "  %-10s  %-8s  %s\n", winner, fmt.Sprintf("%ds", d.Ticks/max(fps, 1)), d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printOverview prints one line per game: score statistics for score games
// and the duel count for versus games.
func printOverview(w io.Writer, store *storage.Store, games []registry.GameInfo) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  %-12s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-12s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, info := range games {
		if info.Versus {
			tally, err := store.Tally(info.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %-12s  %-6d  %s\n", info.ID, tally.Total(), "(duels)")
			continue
		}
		s, ok := stats[info.ID]
		if !ok {
			fmt.Fprintf(w, "  %-12s  %-6d  %s\n", info.ID, 0, "-")
			continue
		}
		fmt.Fprintf(w, "  %-12s  %-6d  %-8d  %-8.0f  %s\n",
			info.ID, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, info registry.GameInfo) error {
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all records for %s.\n", info.Title)
	return nil
}
