package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the leaderboard",
	Long: `Display the best scores and the score history.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores -i
  tetris scores --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of history entries to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the score history and the best scores")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	title := game.Title()

	hsKey := tetris.HighScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		if err := store.SaveHighScores(hsKey, nil); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, hsKey, width, height)
	}

	best, err := store.LoadHighScores(hsKey)
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}
	history, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(best) == 0 && len(history) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	for i, s := range best {
		fmt.Printf("  %d. %d\n", i+1, s)
	}
	fmt.Println()

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range history {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Avg: %.0f  Best: %d\n", stats.GamesCount, stats.AvgScore, stats.HighScore)
	}
	return nil
}
