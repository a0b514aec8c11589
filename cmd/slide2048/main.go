// slide2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	slide2048                - Play (same as "slide2048 play")
//	slide2048 play           - Play in the terminal
//	slide2048 demo           - Let the computer play headless and print the result
//	slide2048 config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the configured frame rate
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Path to a config YAML
//	--log-file <path>    - Append logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "slide2048 - the 2048 puzzle in your terminal",
	Long: `slide2048 is the 2048 sliding-tile puzzle for the terminal.
Tiles glide across the board at a fixed speed and merge when two equal
tiles meet.

Available commands:
  play     - Play in the terminal (default)
  demo     - Headless autoplay
  config   - Print the effective configuration

Examples:
  slide2048
  slide2048 play --seed 42
  slide2048 demo --moves 200 --strategy greedy
  slide2048 config > ~/.slide2048/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Animation.FPS = flagFPS
	}
	return cfg, nil
}

// newLogger creates the command logger. It writes to --log-file when set,
// otherwise to fallback. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide2048",
		Level:           level,
	}), closer, nil
}
