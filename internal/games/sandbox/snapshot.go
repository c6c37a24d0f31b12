package sandbox

import "github.com/vovakirdan/arcade-classics/internal/sim"

// Snapshot contains the complete world state for determinism tests.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	Resets   int
	WaitLeft int

	PlayerX float64

	BulletData []float64 // X, Y per bullet
	EnemyData  []float64 // X, Y, Progress per enemy
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.Tick,
		Score:    w.Score,
		Lives:    w.Lives,
		Resets:   w.Resets,
		WaitLeft: w.Wait.Remaining(),
		PlayerX:  w.Player.Pos.X,
	}
	for _, b := range w.Bullets.All() {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y)
	}
	for _, e := range w.Enemies.All() {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, float64(e.Progress))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := sim.HashInts(uint64(snap.Tick), snap.Score, snap.Lives, snap.Resets, snap.WaitLeft) //#nosec G115 -- hash computation
	h = sim.HashFloats(h, snap.PlayerX)
	h = sim.HashFloats(h, snap.BulletData...)
	return sim.HashFloats(h, snap.EnemyData...)
}
