package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stickrun/internal/core"
	"github.com/vovakirdan/stickrun/internal/platform/tui"
	"github.com/vovakirdan/stickrun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Log in, pick a difficulty and run. A stored username skips the login.

Controls:
  Space/Up   - Jump (twice for a double jump)
  P/Esc      - Pause
  R/Space    - Restart (after game over)
  H/Tab      - High scores
  L          - Log out
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newFileLogger("runner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	deps := tui.Deps{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue in memory - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("running without persistence", "error", err)
	} else {
		defer store.Close()
		deps.Store = store
		deps.History = store
	}

	if runErr := tui.Run(deps); runErr != nil {
		logger.Error("program failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
