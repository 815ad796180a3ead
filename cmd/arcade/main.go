// arcade is a terminal platform for topic-skinned arcade games.
//
// Usage:
//
//	arcade list                       - List available games
//	arcade play <game>                - Play a game
//	arcade play <game> --topic space  - Play with a different asset topic
//	arcade serve                      - Start SSH server for remote play
//	arcade scores [game]              - Show stored high scores
//
// Global flags:
//
//	--fps <rate>    - Set frame rate for variable-step games (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/akarpov/topic-arcade/internal/games/collector"
	_ "github.com/akarpov/topic-arcade/internal/games/dodge"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Topic Arcade - retro games with swappable topic skins",
	Long: `Topic Arcade is a terminal gaming platform. Every game draws its actor,
item and background from a topic: a named set of text sprites resolved
from a directory or URL, with graceful fallbacks when assets are missing.

Available commands:
  list     - Show all available games
  play     - Play a specific game
  serve    - Start SSH server for remote play
  scores   - View stored high scores

Examples:
  arcade list
  arcade play dodge
  arcade play collector --topic space
  arcade serve --ssh :2222
  arcade scores dodge`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for variable-step games")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
