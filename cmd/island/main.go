// island is a terminal ball-bouncing arcade game.
//
// Usage:
//
//	island list                 - List available games
//	island play [game]          - Play a game (default: island)
//	island menu                 - Pick a game interactively
//	island simulate [game]      - Run a game headless and print the result
//	island config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (0 = use config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to a custom island.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/island-bounce/internal/config"
	"github.com/vovakirdan/island-bounce/internal/core"
	"github.com/vovakirdan/island-bounce/internal/games/island"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "island",
	Short: "Island Bounce - keep the ball off the floor",
	Long: `Island Bounce is a terminal arcade game. A ball bounces around the
arena; every hit on the island scores a point and the game ends when
the ball falls past your paddle.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive game picker
  simulate  - Run a game headless
  config    - Print the effective configuration

Examples:
  island play
  island play island_classic
  island simulate --ticks 5000 --autopilot
  island config > ~/.island/configs/island.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom island.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the island configuration, applies the --fps override
// and hands it to the game package. Skipped config files are reported on logger.
func loadConfig(logger *log.Logger) (config.IslandConfig, error) {
	cfg, err := config.LoadIsland(flagConfig, logger)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Physics.FPS = flagFPS
	}
	island.SetConfig(cfg)
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "island",
		Level:           level,
	})
	return logger, closeFn, nil
}

// consoleLogger reports on stderr before a TUI takes over the terminal.
func consoleLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "island"})
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig(cfg config.IslandConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Physics.FPS,
		Seed:     flagSeed,
	}
}
