// runner is a stick man side-scroller for the terminal.
//
// Usage:
//
//	runner                   - Play (same as runner play)
//	runner play              - Log in, pick a difficulty and run
//	runner scores [level]    - Show best scores and the run history
//	runner logout            - Forget the stored username
//	runner config            - Print the effective game configuration
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.stickrun/runner.db)
//	--config <path>      - Use a custom runner.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination for interactive modes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Stick Man Runner - jump over obstacles in your terminal",
	Long: `Stick Man Runner is an endless side-scroller. Jump (twice in the air if
you need to) over the obstacles, score a point every tick and beat your
best on each difficulty.

Available commands:
  play     - Play (default)
  scores   - View best scores and run history
  logout   - Forget the stored username
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  runner
  runner scores hard
  runner serve --ssh :2222
  runner config > ~/.stickrun/configs/runner.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stickrun/runner.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom runner.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.stickrun/runner.log", "Log file for interactive modes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
