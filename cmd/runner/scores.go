package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/highscore"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best scores and run history",
	Long: `Display the best score of every difficulty, followed by the top 10
runs of one difficulty (or of all of them).

Examples:
  runner scores
  runner scores hard
  runner scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the given difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	levels := config.Difficulties()
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels = []config.Difficulty{d}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	if flagClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
			os.Exit(1)
		}
		if err := store.ClearRuns(ctx, levels[0].String()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run history of %s cleared.\n", levels[0])
		return
	}

	table := highscore.New(store, nil)
	fmt.Printf("Best scores (%s)\n\n", kv.GetOr(ctx, store, kv.KeyUsername, "not logged in"))
	for _, d := range config.Difficulties() {
		fmt.Printf("  %-8s %d\n", d, table.Get(ctx, d))
	}

	for _, d := range levels {
		runs, err := store.TopRuns(ctx, d.String(), 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nTop runs - %s\n\n", d)
		if len(runs) == 0 {
			fmt.Println("  No runs recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
		fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, r.Username, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
