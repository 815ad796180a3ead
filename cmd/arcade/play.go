package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov/topic-arcade/internal/assets"
	"github.com/akarpov/topic-arcade/internal/config"
	"github.com/akarpov/topic-arcade/internal/core"
	"github.com/akarpov/topic-arcade/internal/games/collector"
	"github.com/akarpov/topic-arcade/internal/games/dodge"
	"github.com/akarpov/topic-arcade/internal/platform/tui"
	"github.com/akarpov/topic-arcade/internal/registry"
	"github.com/akarpov/topic-arcade/internal/storage"
)

var (
	flagConfig        string
	flagTopic         string
	flagAssetBase     string
	flagFallbackAsset string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space          - Jump (dodge); mouse tap works too
  Arrows/WASD    - Steer (collector); mouse swipes work too
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a screenshot to ~/.arcade/screenshots

A topic names the sprite set (actor, item, background). Assets resolve
from --assets first, then --fallback-assets, then built-in placeholders.
Both flags accept a directory path or an http(s) URL prefix.

Examples:
  arcade play dodge
  arcade play collector --topic space
  arcade play dodge --topic cats --assets https://assets.example.com/themes
  arcade play dodge --config ./my-dodge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagTopic, "topic", assets.DefaultTopic, "Asset topic to play with")
	playCmd.Flags().StringVar(&flagAssetBase, "assets", "", "Primary asset base (directory or URL)")
	playCmd.Flags().StringVar(&flagFallbackAsset, "fallback-assets", "", "Fallback asset base (directory or URL)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Install game tuning before creation
	switch gameID {
	case "dodge":
		cfg, err := config.LoadDodge(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		dodge.SetConfig(cfg)
	case "collector":
		cfg, err := config.LoadCollector(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		collector.SetConfig(cfg)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults when not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Topic:    flagTopic,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "assets"})
	loader := assets.NewLoader(assets.Resolver{
		Base:         flagAssetBase,
		FallbackBase: flagFallbackAsset,
	}, logger)

	runErr := tui.Run(game, store, loader, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
