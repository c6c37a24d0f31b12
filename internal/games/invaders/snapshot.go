package invaders

import "github.com/vovakirdan/arcade-classics/internal/sim"

// Snapshot contains the complete world state for determinism tests.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	Phase    int
	MarchDir float64
	PlayerX  float64

	// Each shot or bomb is 2 floats: X, Y
	ShotData []float64
	BombData []float64

	// Each invader is 2 floats: X, Y
	InvaderData []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.Tick,
		Score:    w.Score,
		Lives:    w.Lives,
		Phase:    int(w.Round.Phase),
		MarchDir: w.MarchDir,
		PlayerX:  w.Player.Pos.X,
	}
	for _, s := range w.Shots.All() {
		snap.ShotData = append(snap.ShotData, s.Pos.X, s.Pos.Y)
	}
	for _, b := range w.Bombs.All() {
		snap.BombData = append(snap.BombData, b.Pos.X, b.Pos.Y)
	}
	for _, inv := range w.Invaders.All() {
		snap.InvaderData = append(snap.InvaderData, inv.Pos.X, inv.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := sim.HashInts(uint64(snap.Tick), snap.Score, snap.Lives, snap.Phase) //#nosec G115 -- hash computation
	h = sim.HashFloats(h, snap.MarchDir, snap.PlayerX)
	h = sim.HashFloats(h, snap.ShotData...)
	h = sim.HashFloats(h, snap.BombData...)
	return sim.HashFloats(h, snap.InvaderData...)
}
