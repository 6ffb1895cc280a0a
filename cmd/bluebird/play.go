package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bluebird-flight/internal/core"
	"github.com/vovakirdan/bluebird-flight/internal/platform/tui"
	"github.com/vovakirdan/bluebird-flight/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W/Click  - Flap
  P/Esc             - Pause, press again to resume after a 3 second countdown
  Enter/R           - Play again (on the score screen)
  Ctrl+S            - Save a text screenshot to ~/.bluebird/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start easy, get harder at 30 and 60 points
  normal - Start at normal, get harder at 60 points
  hard   - Start at hard
  fixed  - No progression, stay at the configured start tier

Examples:
  bluebird play
  bluebird play --difficulty hard
  bluebird play --seed 42 --fps 30
  bluebird play --config ./my-bluebird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player: localPlayer(),
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without persistence", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
		opts.History = store
	}

	logger.Info("starting game", "tier", cfg.Difficulty.Start, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
