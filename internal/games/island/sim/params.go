// Package sim implements the island game simulation as pure functions over
// immutable state values. It has no knowledge of terminals or timers.
package sim

import (
	"github.com/vovakirdan/island-bounce/internal/config"
	"github.com/vovakirdan/island-bounce/internal/core"
)

// FloorRule decides what happens when the ball reaches the bottom edge.
type FloorRule int

const (
	// FloorEndsGame ends the game when the ball passes the floor line.
	FloorEndsGame FloorRule = iota
	// FloorBounces treats the floor as a wall. There is no paddle and no game over.
	FloorBounces
)

// String returns a human-readable name for the rule.
func (r FloorRule) String() string {
	switch r {
	case FloorEndsGame:
		return "ends-game"
	case FloorBounces:
		return "bounces"
	default:
		return "unknown"
	}
}

// Params holds everything the update step reads but never writes.
// It is fixed for a session.
type Params struct {
	ArenaW, ArenaH float64
	Speed          float64 // Units per tick
	BallWidth      float64
	Island         core.RectF
	PaddleW        float64
	PaddleH        float64
	PaddleY        float64
	ClampPaddle    bool
	Floor          FloorRule
}

// NewParams derives session parameters from the configuration and arena size.
func NewParams(cfg config.IslandConfig, arenaW, arenaH float64, floor FloorRule) Params {
	return Params{
		ArenaW:    arenaW,
		ArenaH:    arenaH,
		Speed:     cfg.Physics.Speed,
		BallWidth: cfg.Physics.BallWidth,
		Island: core.RectF{
			X: cfg.Island.X,
			Y: cfg.Island.Y,
			W: cfg.Island.W,
			H: cfg.Island.H,
		},
		PaddleW:     arenaW * cfg.Paddle.WidthRatio,
		PaddleH:     cfg.Paddle.Height,
		PaddleY:     arenaH - cfg.Paddle.Offset,
		ClampPaddle: cfg.Paddle.Clamp,
		Floor:       floor,
	}
}

// HasPaddle reports whether the variant has a player paddle.
func (p Params) HasPaddle() bool {
	return p.Floor == FloorEndsGame
}

// PaddleRect returns the paddle box for a paddle at x.
func (p Params) PaddleRect(x float64) core.RectF {
	return core.RectF{X: x, Y: p.PaddleY, W: p.PaddleW, H: p.PaddleH}
}

// BallRect returns the ball box with its top-left corner at pos.
func (p Params) BallRect(pos core.Vec2) core.RectF {
	return core.RectF{X: pos.X, Y: pos.Y, W: p.BallWidth, H: p.BallWidth}
}

// Center returns the ball position that puts the middle of the ball box on
// the arena midpoint.
func (p Params) Center() core.Vec2 {
	half := p.BallWidth / 2
	return core.V(p.ArenaW/2-half, p.ArenaH/2-half)
}
