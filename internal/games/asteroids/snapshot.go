package asteroids

import "github.com/vovakirdan/arcade-classics/internal/sim"

// Snapshot contains the complete world state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   int
	Score  int
	Resets int
	Phase  int

	ShipX, ShipY, ShipVX, ShipVY, ShipRot float64

	// Each bullet is 5 floats: X, Y, VX, VY, Age
	BulletData []float64

	// Each rock is 6 floats: X, Y, VX, VY, Size, Sides
	RockData []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    w.Tick,
		Score:   w.Score,
		Resets:  w.Resets,
		Phase:   int(w.Round.Phase),
		ShipX:   w.Ship.Pos.X,
		ShipY:   w.Ship.Pos.Y,
		ShipVX:  w.Ship.Vel.X,
		ShipVY:  w.Ship.Vel.Y,
		ShipRot: w.Ship.Rot,
	}
	for _, b := range w.Bullets.All() {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, float64(b.Age))
	}
	for _, r := range w.Rocks.All() {
		snap.RockData = append(snap.RockData, r.Pos.X, r.Pos.Y, r.Vel.X, r.Vel.Y, r.Size, float64(r.Sides))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := sim.HashInts(uint64(snap.Tick), snap.Score, snap.Resets, snap.Phase) //#nosec G115 -- hash computation
	h = sim.HashFloats(h, snap.ShipX, snap.ShipY, snap.ShipVX, snap.ShipVY, snap.ShipRot)
	h = sim.HashFloats(h, snap.BulletData...)
	h = sim.HashFloats(h, snap.RockData...)
	return h
}
