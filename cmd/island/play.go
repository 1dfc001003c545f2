package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-bounce/internal/games/island"
	"github.com/vovakirdan/island-bounce/internal/platform/tui"
	"github.com/vovakirdan/island-bounce/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: island).

Controls:
  Left/H/A     - Move paddle left
  Right/L/D    - Move paddle right
  Mouse drag   - Move paddle to the pointer
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  island play
  island play island_classic
  island play --fps 30 --seed 42
  island play --config ./my-island.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := island.Standard.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'island list' to see available games", gameID)
	}
	return playGame(gameID)
}

// playGame runs one game in the terminal until the user quits.
func playGame(gameID string) error {
	cfg, err := loadConfig(consoleLogger())
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, terminalConfig(cfg), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
