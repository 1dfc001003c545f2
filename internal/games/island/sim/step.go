package sim

import (
	"strings"

	"github.com/vovakirdan/island-bounce/internal/core"
)

// Events is a set of things that happened during one tick.
type Events uint8

const (
	EventCeiling Events = 1 << iota
	EventWall
	EventFloor
	EventIsland
	EventPaddle
	EventGameOver
)

// Has reports whether all events in e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// String lists the events, e.g. "wall|island".
func (ev Events) String() string {
	if ev == 0 {
		return "none"
	}
	names := []struct {
		e    Events
		name string
	}{
		{EventCeiling, "ceiling"},
		{EventWall, "wall"},
		{EventFloor, "floor"},
		{EventIsland, "island"},
		{EventPaddle, "paddle"},
		{EventGameOver, "game-over"},
	}
	var parts []string
	for _, n := range names {
		if ev.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Step advances the simulation by one tick. It is a no-op once the game is over.
//
// Checks run in a fixed order (floor, ceiling, walls, island, paddle) and each
// one that matches replaces the new direction with a single-axis flip of the
// pre-tick direction, so the last match wins and at most one axis changes.
func Step(s State, p Params) (State, Events) {
	if s.GameOver {
		return s, 0
	}

	var ev Events
	dir := s.Direction
	next := s.Ball.Add(dir.Scale(p.Speed))
	newDir := dir

	flipX := core.V(-dir.X, dir.Y)
	flipY := core.V(dir.X, -dir.Y)

	if next.Y > p.ArenaH-p.BallWidth {
		ev |= EventFloor
		switch p.Floor {
		case FloorBounces:
			newDir = flipY
		default:
			s.GameOver = true
			ev |= EventGameOver
		}
	}

	if next.Y < 0 {
		ev |= EventCeiling
		newDir = flipY
	}

	if next.X < 0 || next.X > p.ArenaW-p.BallWidth {
		ev |= EventWall
		newDir = flipX
	}

	ball := p.BallRect(next)

	if ball.Intersects(p.Island) {
		ev |= EventIsland
		if p.Island.SpansX(s.Ball.X) {
			newDir = flipY
		} else {
			newDir = flipX
		}
		s.Score++
	}

	if p.HasPaddle() {
		paddle := p.PaddleRect(s.Paddle.X)
		if ball.Intersects(paddle) {
			ev |= EventPaddle
			if paddle.SpansX(s.Ball.X) {
				newDir = flipY
			} else {
				newDir = flipX
			}
		}
	}

	s.Direction = newDir
	s.Ball = s.Ball.Add(newDir.Scale(p.Speed))
	s.Tick++
	return s, ev
}
