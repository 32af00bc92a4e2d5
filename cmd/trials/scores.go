package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascii-trials/internal/engine"
	"github.com/vovakirdan/ascii-trials/internal/platform/tui"
	"github.com/vovakirdan/ascii-trials/internal/registry"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded results",
	Long: `Without a game, summarise every game played so far.
With a game, list its ten best results.

Examples:
  trials scores
  trials scores dodger
  trials scores --recent
  trials scores basketball --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse results in an interactive table",
	Run:   runBoard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent results of every game")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results of the given game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 1:
		err = gameScores(store, args[0])
	case flagClear:
		err = fmt.Errorf("--clear needs a game")
	case flagRecent:
		err = recentScores(store)
	default:
		err = summary(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func gameScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", game.Title())
		return nil
	}

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Results - %s\n", game.Title())
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'trials play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8s  %s\n",
			i+1, r.Score, verdict(r.Won), r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func recentScores(store *storage.Store) error {
	results, err := store.RecentResults(0)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}
	fmt.Printf("  %-16s  %-12s  %-6s  %s\n", "Date", "Game", "Score", "Result")
	for _, r := range results {
		fmt.Printf("  %-16s  %-12s  %-6d  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Score, verdict(r.Won))
	}
	return nil
}

func summary(store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet. Run 'trials play' to begin.")
		return nil
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-4s  %-4s  %s\n", "Game", "Played", "Won", "Best", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %-6d  %-4d  %-4d  %s\n", id, st.Played, st.Wins, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func verdict(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

func runBoard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := engine.TerminalSize(os.Stdout, 80, 24)
	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
