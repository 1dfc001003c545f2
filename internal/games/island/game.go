// Package island implements Island Bounce: a ball bounces around the arena,
// scores a point on every hit of the island near the top, and ends the game
// when it falls past the player's paddle.
package island

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/island-bounce/internal/config"
	"github.com/vovakirdan/island-bounce/internal/core"
	"github.com/vovakirdan/island-bounce/internal/games/island/sim"
	"github.com/vovakirdan/island-bounce/internal/registry"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	IslandChar = '▓'
	PaddleChar = '█'
)

// Variant selects the rule set of a registered game.
type Variant struct {
	ID    string
	Title string
	Floor sim.FloorRule
}

// The registered variants.
var (
	Standard = Variant{ID: "island", Title: "Island Bounce", Floor: sim.FloorEndsGame}
	Classic  = Variant{ID: "island_classic", Title: "Island Bounce Classic", Floor: sim.FloorBounces}
)

// gameConfig is the configuration used by registry-created games.
var gameConfig = config.DefaultIslandConfig()

// SetConfig sets the configuration for games created after this call.
func SetConfig(cfg config.IslandConfig) {
	gameConfig = cfg
}

// Game adapts the pure simulation to the arcade game contract.
type Game struct {
	variant Variant
	cfg     config.IslandConfig
	runtime core.RuntimeConfig
	params  sim.Params
	rng     *rand.Rand

	prev   sim.State // Committed state of the previous tick, for interpolation
	state  sim.State
	alpha  float64
	events sim.Events
	paused bool
}

// New creates a game of the given variant using the configuration set by SetConfig.
func New(v Variant) *Game {
	return NewWithConfig(v, gameConfig)
}

// NewWithConfig creates a game of the given variant with an explicit configuration.
func NewWithConfig(v Variant, cfg config.IslandConfig) *Game {
	return &Game{
		variant: v,
		cfg:     cfg,
		alpha:   1,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a new session. The arena is sized from the screen once here
// and stays fixed until the next Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		runtime.ScreenW, runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	arenaW := float64(runtime.ScreenW) * g.cfg.Grid.UnitsPerCol
	arenaH := float64(runtime.ScreenH) * g.cfg.Grid.UnitsPerRow
	g.params = sim.NewParams(g.cfg, arenaW, arenaH, g.variant.Floor)

	g.state = sim.New(g.params, g.rng)
	g.prev = g.state
	g.alpha = 1
	g.events = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Ticks that do not simulate report no events
	g.events = 0

	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.params.HasPaddle() {
		if in.Has(core.ActionLeft) {
			g.movePaddle(g.state.Paddle.X - g.cfg.Paddle.KeyStep)
		}
		if in.Has(core.ActionRight) {
			g.movePaddle(g.state.Paddle.X + g.cfg.Paddle.KeyStep)
		}
	}

	g.prev = g.state
	g.state, g.events = sim.Step(g.state, g.params)
	g.alpha = 0

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	g.state = sim.Restart(g.state, g.params, g.rng)
	g.prev = g.state
	g.alpha = 1
	g.events = 0
	g.paused = false
}

func (g *Game) movePaddle(x float64) {
	g.state = sim.MovePaddle(g.state, x, g.params)
	g.prev.Paddle = g.state.Paddle
}

// MovePaddleTo centers the paddle on a terminal column.
// Input arrives between ticks; the next tick sees the last call.
// Like the keyboard, it is ignored while paused or after game over.
func (g *Game) MovePaddleTo(col int) {
	if !g.params.HasPaddle() || g.state.GameOver || g.paused {
		return
	}
	center := (float64(col) + 0.5) * g.cfg.Grid.UnitsPerCol
	g.movePaddle(center - g.params.PaddleW/2)
}

// SetAlpha sets how far the ball is drawn between the previous and the
// current tick, in [0, 1]. Collision math never sees this value.
func (g *Game) SetAlpha(alpha float64) {
	g.alpha = core.ClampF(alpha, 0, 1)
}

// LastEvents returns what happened during the most recent tick.
func (g *Game) LastEvents() sim.Events {
	return g.events
}

// Sim returns the current simulation state.
func (g *Game) Sim() sim.State {
	return g.state
}

// Params returns the session parameters.
func (g *Game) Params() sim.Params {
	return g.params
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawRect(g.cells(g.params.Island), IslandChar, core.ColorGreen)

	if g.params.HasPaddle() {
		dst.DrawRect(g.cells(g.params.PaddleRect(g.state.Paddle.X)), PaddleChar, core.ColorWhite)
	}

	ball := g.prev.Ball.Lerp(g.state.Ball, g.alpha)
	dst.DrawRect(g.cells(g.params.BallRect(ball)), BallChar, core.ColorBrightYellow)

	score := fmt.Sprintf("Score: %d", g.state.Score)
	dst.DrawTextColor(dst.Width()-len(score)-1, 0, score, core.ColorBrightCyan)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score %d  |  R restart  |  Q quit", g.state.Score))
	}
}

// cells converts an arena box to the terminal cells it covers.
func (g *Game) cells(r core.RectF) core.Rect {
	ux, uy := g.cfg.Grid.UnitsPerCol, g.cfg.Grid.UnitsPerRow
	x0 := int(math.Floor(r.X / ux))
	y0 := int(math.Floor(r.Y / uy))
	x1 := max(int(math.Ceil(r.Right()/ux)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()/uy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightRed)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(Standard.ID, func() registry.Game {
		return New(Standard)
	})
	registry.Register(Classic.ID, func() registry.Game {
		return New(Classic)
	})
}
