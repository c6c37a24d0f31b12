package asteroids

import (
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func press(actions ...core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	for _, a := range actions {
		m.Press(core.Player1, a)
	}
	return m
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultAsteroidsConfig(), 7)
}

func TestNewWorldState(t *testing.T) {
	w := newTestWorld(t)
	cfg := config.DefaultAsteroidsConfig()

	if w.Rocks.Len() != cfg.Rocks.Initial {
		t.Errorf("rocks = %d, expected %d", w.Rocks.Len(), cfg.Rocks.Initial)
	}
	center := core.V(cfg.Field.Width/2, cfg.Field.Height/2)
	if w.Ship.Pos != center {
		t.Errorf("ship at %v, expected %v", w.Ship.Pos, center)
	}
	for _, r := range w.Rocks.All() {
		if r.Size != cfg.Rocks.InitialSize {
			t.Errorf("fresh rock size %v, expected %v", r.Size, cfg.Rocks.InitialSize)
		}
		if d := r.Pos.Sub(center).Len(); d < cfg.Rocks.Clearance {
			t.Errorf("fresh rock %v is %v from the ship, expected at least %v", r.Pos, d, cfg.Rocks.Clearance)
		}
	}
}

func TestShipHitResetsWholeGame(t *testing.T) {
	w := newTestWorld(t)
	cfg := config.DefaultAsteroidsConfig()
	center := w.Ship.Pos

	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: center}, Size: 60, Sides: 6})
	w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(10, 10)}})
	w.Score = 340
	w.Ship.Rot = 45
	w.Ship.Vel = core.V(0.5, 0)

	sim.Advance(w, idle())

	if w.Rocks.Len() != 5 {
		t.Errorf("rocks after reset = %d, expected 5", w.Rocks.Len())
	}
	if w.Ship.Pos != center || w.Ship.Vel != (core.Vec{}) || w.Ship.Rot != 0 {
		t.Errorf("ship = %+v, expected at rest in the center", w.Ship.Body)
	}
	if w.Score != cfg.Gameplay.InitialScore {
		t.Errorf("score = %d, expected %d", w.Score, cfg.Gameplay.InitialScore)
	}
	if w.Bullets.Len() != 0 {
		t.Errorf("bullets = %d, stale bullets survived the reset", w.Bullets.Len())
	}
	if w.Round.Over() {
		t.Error("a loss reset should leave the round in play")
	}
	if w.Resets != 1 {
		t.Errorf("Resets = %d, expected 1", w.Resets)
	}
}

func TestSplitConservation(t *testing.T) {
	tests := []struct {
		name      string
		size      float64
		wantDelta int
		wantChild float64
	}{
		{"initial size splits in two", 60, +1, 30},
		{"medium splits in two", 30, +1, 15},
		{"minimum size is destroyed", 15, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			target := core.V(100, 100)

			w.Rocks.Clear()
			w.Rocks.Spawn(Rock{Body: sim.Body{Pos: target}, Size: tc.size})
			w.Rocks.Spawn(Rock{Body: sim.Body{Pos: core.V(650, 850)}, Size: 15}) // keeps the round alive
			w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: target}})
			before := w.Rocks.Len()
			score := w.Score

			sim.Advance(w, idle())

			if got := w.Rocks.Len() - before; got != tc.wantDelta {
				t.Fatalf("rock count delta = %d, expected %d", got, tc.wantDelta)
			}
			if w.Bullets.Len() != 0 {
				t.Error("the bullet should be consumed by the hit")
			}
			if w.Score <= score {
				t.Error("destroying a rock should score")
			}

			children := 0
			for _, r := range w.Rocks.All() {
				if r.Pos == target {
					children++
					if r.Size != tc.wantChild {
						t.Errorf("child size = %v, expected %v", r.Size, tc.wantChild)
					}
				}
			}
			if tc.wantChild > 0 && children != 2 {
				t.Errorf("children at the hit position = %d, expected 2", children)
			}
		})
	}
}

func TestLastRockWinsSameTick(t *testing.T) {
	w := newTestWorld(t)
	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: core.V(100, 100)}, Size: 15})
	w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(100, 100)}})

	sim.Advance(w, idle())

	if w.Rocks.Len() != 0 {
		t.Fatalf("rocks = %d, expected 0", w.Rocks.Len())
	}
	if !w.Round.Won() {
		t.Errorf("round = %+v, expected won in the same tick", w.Round)
	}
}

func TestFireWithFullPoolIsDropped(t *testing.T) {
	w := newTestWorld(t)
	var sounds sim.SoundLog
	w.SetSounds(&sounds)

	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: core.V(650, 850)}, Size: 15})
	for !w.Bullets.Full() {
		w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(20, 20)}})
	}

	sim.Advance(w, press(core.ActionFire))

	if w.Bullets.Len() != w.Bullets.Cap() {
		t.Errorf("bullets = %d, expected %d", w.Bullets.Len(), w.Bullets.Cap())
	}
	if sounds.Count(sim.SoundLaser) != 0 {
		t.Error("a dropped shot should make no sound")
	}
}

func TestFireSpawnsBulletAndSound(t *testing.T) {
	w := newTestWorld(t)
	var sounds sim.SoundLog
	w.SetSounds(&sounds)

	sim.Advance(w, press(core.ActionFire))

	if w.Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, expected 1", w.Bullets.Len())
	}
	if sounds.Count(sim.SoundLaser) != 1 {
		t.Errorf("laser played %d times, expected 1", sounds.Count(sim.SoundLaser))
	}

	// Holding fire does not repeat with the edge gate.
	held := core.NewMultiInputFrame()
	held.Hold(core.Player1, core.ActionFire)
	sim.Advance(w, held)
	if w.Bullets.Len() != 1 {
		t.Errorf("bullets = %d after holding fire, expected 1", w.Bullets.Len())
	}
}

func TestBulletLifetime(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	w := NewWorld(cfg, 3)
	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: core.V(5, 5)}, Size: 1})
	w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(400, 300), Vel: core.V(0, 0)}})

	for range cfg.Bullets.Lifetime - 1 {
		sim.Advance(w, idle())
	}
	if w.Bullets.Len() != 1 {
		t.Fatal("bullet should live until its lifetime")
	}
	sim.Advance(w, idle())
	if w.Bullets.Len() != 0 {
		t.Error("bullet should expire at its lifetime")
	}
}

func TestWrapInvariantDuringPlay(t *testing.T) {
	w := newTestWorld(t)
	f := w.Field()

	inside := func(p core.Vec) bool {
		return p.X >= 0 && p.X < f.W && p.Y >= 0 && p.Y < f.H
	}

	for tick := range 1200 {
		in := core.NewMultiInputFrame()
		in.Hold(core.Player1, core.ActionUp)
		if tick%7 == 0 {
			in.Press(core.Player1, core.ActionFire)
		}
		if tick%90 < 20 {
			in.Hold(core.Player1, core.ActionLeft)
		}
		sim.Advance(w, in)

		if w.Round.Over() {
			w.Reset()
		}
		if !inside(w.Ship.Pos) {
			t.Fatalf("tick %d: ship at %v", tick, w.Ship.Pos)
		}
		for _, b := range w.Bullets.All() {
			if !inside(b.Pos) {
				t.Fatalf("tick %d: bullet at %v", tick, b.Pos)
			}
		}
		for _, r := range w.Rocks.All() {
			if !inside(r.Pos) {
				t.Fatalf("tick %d: rock at %v", tick, r.Pos)
			}
		}
		if w.Rocks.Len() > w.Rocks.Cap() || w.Bullets.Len() > w.Bullets.Cap() {
			t.Fatalf("tick %d: pool over capacity", tick)
		}
	}
}

func TestShipHitReportsFinishedScore(t *testing.T) {
	w := newTestWorld(t)
	if _, ok := w.TakeFinishedScore(); ok {
		t.Fatal("a fresh world has no finished game")
	}

	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: w.Ship.Pos}, Size: 60, Sides: 6})
	w.Score = 500
	sim.Advance(w, idle())

	score, ok := w.TakeFinishedScore()
	if !ok || score != 500 {
		t.Errorf("TakeFinishedScore() = %d, %v, expected 500, true", score, ok)
	}
	if _, ok := w.TakeFinishedScore(); ok {
		t.Error("a finished score should be reported once")
	}
}
