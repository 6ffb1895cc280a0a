// bluebird is a terminal side-scroller: fly through the gaps, don't touch
// the pipes or the edges of the world.
//
// Usage:
//
//	bluebird play            - Play in this terminal
//	bluebird serve           - Start SSH server for remote play
//	bluebird scores          - Show best score and recent runs
//	bluebird config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.bluebird/config.yaml, ./configs/bluebird.yaml)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.bluebird/bluebird.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log file used while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bluebird-flight/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bluebird",
	Short: "Bluebird Flight - a side-scroller for your terminal",
	Long: `Bluebird Flight is a terminal arcade game. Flap through the gaps of an
endless stream of obstacles; the game gets harder at 30 and 60 points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View best score and recent runs
  config   - Print the effective configuration

Configuration is read from --config, ~/.bluebird/config.yaml or
./configs/bluebird.yaml, then overridden by BLUEBIRD_* environment variables
(BLUEBIRD_PHYSICS__GRAVITY=700 sets physics.gravity).

Examples:
  bluebird play
  bluebird play --difficulty hard --seed 42
  bluebird serve --ssh :2222 --metrics :9090
  bluebird scores --top`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bluebird/bluebird.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bluebird/bluebird.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}
