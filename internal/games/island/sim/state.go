package sim

import (
	"math/rand"

	"github.com/vovakirdan/island-bounce/internal/core"
)

// State is one simulation frame. Values are never mutated in place:
// every operation returns a new State.
type State struct {
	Ball      core.Vec2 // Top-left corner of the ball box
	Direction core.Vec2 // Unit vector
	Paddle    core.Vec2 // Top-left corner of the paddle box; Y is fixed
	Score     int
	GameOver  bool
	Tick      uint64
}

// New creates the initial state: ball centered, random direction,
// paddle a quarter of the way across, game running.
func New(p Params, rng *rand.Rand) State {
	return State{
		Ball:      p.Center(),
		Direction: core.RandomDirection(rng),
		Paddle:    core.V(p.ArenaW/4, p.PaddleY),
	}
}

// Restart resets s for a new round. The ball is re-centered with a fresh
// direction, score and game over are cleared, and the paddle stays where
// the player left it.
func Restart(s State, p Params, rng *rand.Rand) State {
	next := New(p, rng)
	next.Paddle = s.Paddle
	return next
}

// MovePaddle places the paddle's left edge at x. The last call before a
// tick is the one the tick sees.
func MovePaddle(s State, x float64, p Params) State {
	if p.ClampPaddle {
		x = core.ClampF(x, 0, max(p.ArenaW-p.PaddleW, 0))
	}
	s.Paddle = core.V(x, p.PaddleY)
	return s
}
