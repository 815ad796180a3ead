package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov/topic-arcade/internal/platform/tui"
	"github.com/akarpov/topic-arcade/internal/registry"
	"github.com/akarpov/topic-arcade/internal/storage"
)

var flagScoresTopic string

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show stored high scores",
	Long: `Display high scores per topic.

With a game argument, prints that game's high scores to stdout; --topic
narrows it to a single value. Without arguments, opens the interactive
scoreboard.

Examples:
  arcade scores
  arcade scores dodge
  arcade scores dodge --topic space`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresTopic, "topic", "", "Show only this topic's high score")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagScoresTopic != "" {
		score, err := store.HighScore(gameID, flagScoresTopic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s / %s: %d\n", game.Title(), flagScoresTopic, score)
		return
	}

	scores, err := store.HighScoresForGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No high scores yet.")
		fmt.Println()
		fmt.Printf("Run 'arcade play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-18s  %-10s  %s\n", "Topic", "Best", "Set On")
	fmt.Printf("  %-18s  %-10s  %s\n", "-----", "----", "------")

	for _, entry := range scores {
		fmt.Printf("  %-18s  %-10d  %s\n",
			entry.Topic, entry.Score, entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
