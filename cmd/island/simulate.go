package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-bounce/internal/config"
	"github.com/vovakirdan/island-bounce/internal/core"
	"github.com/vovakirdan/island-bounce/internal/games/island"
	"github.com/vovakirdan/island-bounce/internal/games/island/sim"
	"github.com/vovakirdan/island-bounce/internal/loop"
	"github.com/vovakirdan/island-bounce/internal/registry"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagRealtime  bool
	flagWidth     int
	flagHeight    int
	flagFrame     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [game]",
	Short: "Run a game headless and print the result",
	Long: `Runs a game without a terminal UI on the fixed-tick scheduler.

The run stops after --ticks ticks, on game over, or on Ctrl+C.
With --autopilot the paddle follows the ball. Without --realtime the
ticks run back to back.

Examples:
  island simulate
  island simulate --ticks 10000 --autopilot --seed 7
  island simulate island_classic --ticks 600 --realtime --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks (0 = until game over)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Move the paddle under the ball every tick")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks on the wall clock")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Virtual screen width in cells")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Virtual screen height in cells")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame as plain text")
}

// simOptions configures a headless run.
type simOptions struct {
	GameID    string
	Ticks     int
	Autopilot bool
	Realtime  bool
	Frame     bool
	Runtime   core.RuntimeConfig
	Config    config.IslandConfig
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks      uint64
	Score      int
	GameOver   bool
	IslandHits int
	PaddleHits int
	Hash       uint64
	Frame      string // Final screen, set when simOptions.Frame is
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := island.Standard.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := simOptions{
		GameID:    gameID,
		Ticks:     flagTicks,
		Autopilot: flagAutopilot,
		Realtime:  flagRealtime,
		Frame:     flagFrame,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWidth,
			ScreenH:  flagHeight,
			TickRate: cfg.Physics.FPS,
			Seed:     flagSeed,
		},
		Config: cfg,
	}

	res, err := simulate(ctx, opts, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "game:        %s\n", gameID)
	fmt.Fprintf(out, "ticks:       %d\n", res.Ticks)
	fmt.Fprintf(out, "score:       %d\n", res.Score)
	fmt.Fprintf(out, "island hits: %d\n", res.IslandHits)
	fmt.Fprintf(out, "paddle hits: %d\n", res.PaddleHits)
	fmt.Fprintf(out, "game over:   %t\n", res.GameOver)
	fmt.Fprintf(out, "hash:        %016x\n", res.Hash)
	if res.Frame != "" {
		fmt.Fprintf(out, "\n%s\n", res.Frame)
	}
	return nil
}

// simulate runs a game headless on the tick scheduler.
// A cancelled context ends the run early without an error.
func simulate(ctx context.Context, opts simOptions, logger *log.Logger) (simResult, error) {
	created, err := registry.Create(opts.GameID)
	if err != nil {
		return simResult{}, err
	}
	game, ok := created.(*island.Game)
	if !ok {
		return simResult{}, fmt.Errorf("game %q cannot run headless", opts.GameID)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = 1
	}
	game.Reset(opts.Runtime)

	newTicker := loop.Immediate
	if opts.Realtime {
		newTicker = loop.RealTime
	}

	var res simResult
	input := core.NewInputFrame()

	logger.Debug("simulation started", "game", opts.GameID, "seed", opts.Runtime.Seed, "ticks", opts.Ticks)

	err = loop.Run(ctx, opts.Runtime.TickRate, newTicker, func(tick uint64) bool {
		if opts.Ticks > 0 && tick >= uint64(opts.Ticks) {
			return false
		}
		if opts.Autopilot {
			followBall(game, opts.Config.Grid.UnitsPerCol)
		}

		game.Step(input)
		state := game.Sim()
		ev := game.LastEvents()

		if ev.Has(sim.EventIsland) {
			res.IslandHits++
			logger.Debug("island hit", "tick", state.Tick, "score", state.Score)
		}
		if ev.Has(sim.EventPaddle) {
			res.PaddleHits++
			logger.Debug("paddle hit", "tick", state.Tick)
		}
		if ev.Has(sim.EventGameOver) {
			logger.Info("game over", "tick", state.Tick, "score", state.Score)
			return false
		}
		return true
	})
	if err != nil && ctx.Err() == nil {
		return simResult{}, err
	}

	state := game.Sim()
	res.Ticks = state.Tick
	res.Score = state.Score
	res.GameOver = state.GameOver
	res.Hash = game.Snapshot().Hash()

	if opts.Frame {
		screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
		game.SetAlpha(1)
		game.Render(screen)
		res.Frame = screen.String()
	}
	return res, nil
}

// followBall centers the paddle under the ball's current column.
func followBall(game *island.Game, unitsPerCol float64) {
	center := game.Sim().Ball.X + game.Params().BallWidth/2
	game.MovePaddleTo(int(center / unitsPerCol))
}
