package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfighter/internal/registry"
	"github.com/vovakirdan/starfighter/internal/storage"
)

var (
	flagFlights bool
	flagClear   bool
	flagLimit   int
	flagAll     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and the flight log",
	Long: `Display the top high scores for a mode, or a summary of every mode
when none is given.

Examples:
  starfighter scores
  starfighter scores starfighter
  starfighter scores starfighter --flights
  starfighter scores starfighter --all
  starfighter scores starfighter_wrap --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagFlights, "flights", false, "Show recent flights instead of high scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and flights for the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded score, ignoring --limit")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a mode")
		}
		if flagFlights {
			return printFlights(store, "", "All modes")
		}
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'starfighter list' to see available modes", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores and flights for %s.\n", title)
		return nil
	case flagFlights:
		return printFlights(store, gameID, title)
	}
	return printHighScores(store, gameID, title)
}

func printHighScores(store *storage.Store, gameID, title string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'starfighter play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Flights: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printFlights(store *storage.Store, gameID, title string) error {
	flights, err := store.RecentFlights(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving flights: %w", err)
	}

	fmt.Printf("Flight Log - %s\n", title)
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No flights logged yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-18s  %7s  %6s  %5s  %8s  %s\n", "Date", "Mode", "Time", "Shots", "Lost", "Distance", "Boundary")
	for _, f := range flights {
		secs := f.Seconds()
		fmt.Printf("  %-16s  %-18s  %4d:%02d  %6d  %5d  %8d  %s\n",
			f.CreatedAt.Format("2006-01-02 15:04"), f.GameID, secs/60, secs%60,
			f.ShotsFired, f.ShotsDropped, f.Distance, f.Boundary)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %6s  %6s  %8s  %s\n", "Mode", "Best", "Scores", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %6d  %6d  %8.1f  %s\n", id, s.HighScore, s.GamesCount, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
