package breakout

import "github.com/vovakirdan/arcade-classics/internal/sim"

// Snapshot contains the complete world state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       int
	Score      int
	Lives      int
	LevelIndex int
	Cycle      int
	Phase      int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Each brick is 4 values: X, Y, HP, Points
	BrickData []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       w.Tick,
		Score:      w.Score,
		Lives:      w.Lives,
		LevelIndex: w.LevelIndex,
		Cycle:      w.Cycle,
		Phase:      int(w.Round.Phase),
		PaddleX:    w.Paddle.Pos.X,
		BallX:      w.Ball.Pos.X,
		BallY:      w.Ball.Pos.Y,
		BallVX:     w.Ball.Vel.X,
		BallVY:     w.Ball.Vel.Y,
	}
	for _, b := range w.Bricks.All() {
		snap.BrickData = append(snap.BrickData, b.Rect.X, b.Rect.Y, float64(b.HP), float64(b.Points))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := sim.HashInts(uint64(snap.Tick), snap.Score, snap.Lives, snap.LevelIndex, snap.Cycle, snap.Phase) //#nosec G115 -- hash computation
	h = sim.HashFloats(h, snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	return sim.HashFloats(h, snap.BrickData...)
}
