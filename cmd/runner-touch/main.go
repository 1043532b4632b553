// runner-touch opens the touch frontend of Stick Man Runner in a desktop
// window. Click or tap to jump; everything else uses on-screen buttons.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickrun/internal/config"
	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/platform/ebitenui"
	"github.com/vovakirdan/stickrun/internal/platform/touch"
	"github.com/vovakirdan/stickrun/internal/storage"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner-touch",
	Short: "Stick Man Runner in a window, with touch controls",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.stickrun/runner.db", "Path to the database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom runner.yaml")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show TPS/FPS")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-touch",
		Level:           level,
	})

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}

	var store kv.Store
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("running without persistence", "error", err)
		store = kv.NewMemory()
	} else {
		defer db.Close()
		store = db
	}

	c := touch.NewController(touch.Deps{
		Store:  store,
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	defer c.Close()

	app := ebitenui.New(c)
	app.SetDebug(flagDebug)
	return ebitenui.Run(app, "Stick Man Runner")
}
