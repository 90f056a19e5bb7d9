package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catcher/internal/registry"
	"github.com/vovakirdan/tui-catcher/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top results for a mode, or a summary of every mode
when none is given.

Examples:
  catcher scores
  catcher scores catcher
  catcher scores catcher_rush --limit 25
  catcher scores catcher --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'catcher list' to see available modes", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", registry.TitleOf(gameID))
	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catcher play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-6d  %-6s  %-7s  %s\n",
			i+1, r.Score, r.Verdict,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Played: %d  Won: %.0f%%  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.WinRate()*100, stats.AvgScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-6s  %-6s  %-5s  %s\n", "Mode", "Played", "Best", "Won", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-14s  %-6d  %-6d  %-5s  %s\n",
			id, s.GamesCount, s.HighScore,
			fmt.Sprintf("%.0f%%", s.WinRate()*100),
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
