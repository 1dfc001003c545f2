package island

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	BallX    int64 // Positions and directions are stored as float64 bits
	BallY    int64
	DirX     int64
	DirY     int64
	PaddleX  int64
	Score    int
	GameOver bool
	Paused   bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.state.Tick,
		BallX:    bits(g.state.Ball.X),
		BallY:    bits(g.state.Ball.Y),
		DirX:     bits(g.state.Direction.X),
		DirY:     bits(g.state.Direction.Y),
		PaddleX:  bits(g.state.Paddle.X),
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

func bits(f float64) int64 {
	return int64(math.Float64bits(f)) //#nosec G115 -- bit pattern, not a numeric conversion
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DirY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Paused {
		h = h*31 + 2
	}
	return h
}
