package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bluebird-flight/internal/games/bluebird"
	"github.com/vovakirdan/bluebird-flight/internal/platform/tui"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

var (
	flagPlayer      string
	flagTop         bool
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best score and recent runs",
	Long: `Display the best score and the latest runs of a player.

Players of the SSH server are listed under their SSH user name.

Examples:
  bluebird scores
  bluebird scores --top
  bluebird scores --player alice --limit 20
  bluebird scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (default: local user)")
	scoresCmd.Flags().BoolVar(&flagTop, "top", false, "List highest scoring runs instead of the latest")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	kv, player := playerStore(store, flagPlayer)

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(kv, store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(player, flagLimit)
	if flagTop {
		runs, err = store.TopRuns(player, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bluebird Flight - %s\n", player)
	fmt.Println()
	fmt.Printf("  Best score: %d\n", bluebird.BestScore(kv))
	if stats.Runs > 0 {
		fmt.Printf("  Runs:       %d (average %.1f, last %s)\n", stats.Runs, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bluebird play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-14s  %s\n", "#", "Score", "Tier", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-14s  %s\n", "--", "-----", "----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-7s  %-14s  %s\n", i+1, r.Score, r.Tier, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// playerStore returns the key-value view holding the scores of player.
// The local player's keys are unprefixed, as written by play; SSH players
// keep theirs under a user prefix.
func playerStore(store storage.KV, player string) (storage.KV, string) {
	if player == "" || player == localPlayer() {
		return store, localPlayer()
	}
	return storage.WithPrefix(store, "user:"+player), player
}
