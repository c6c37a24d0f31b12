package tank

import "github.com/vovakirdan/arcade-classics/internal/sim"

// Snapshot contains the complete duel state for determinism tests.
type Snapshot struct {
	Tick   int
	Phase  int
	Winner int

	// Each tank is 4 floats: X, Y, Rot, Lives
	TankData []float64

	// Each bullet is 3 floats: owner, X, Y
	BulletData []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   w.Tick,
		Phase:  int(w.Round.Phase),
		Winner: int(w.Winner),
	}
	for _, t := range w.Tanks {
		snap.TankData = append(snap.TankData, t.Pos.X, t.Pos.Y, t.Rot, float64(t.Lives))
		for _, b := range t.Bullets.All() {
			snap.BulletData = append(snap.BulletData, float64(t.Player), b.Pos.X, b.Pos.Y)
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := sim.HashInts(uint64(snap.Tick), snap.Phase, snap.Winner) //#nosec G115 -- hash computation
	h = sim.HashFloats(h, snap.TankData...)
	return sim.HashFloats(h, snap.BulletData...)
}
