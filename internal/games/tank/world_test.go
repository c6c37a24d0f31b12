package tank

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

func idle() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultTankConfig())
}

// shootAt puts a bullet from shooter just short of the opposing tank,
// moving toward it.
func shootAt(w *World, shooter int) {
	target := w.Tanks[1-shooter].Pos
	w.Tanks[shooter].Bullets.Spawn(Bullet{Body: sim.Body{
		Pos: target.Add(core.V(0, -22)),
		Vel: core.V(0, 5),
	}})
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)

	t1, t2 := w.Tanks[0], w.Tanks[1]
	if t1.Pos != core.V(100, 100) || t1.Rot != 0 {
		t.Errorf("tank 1 = %v rot %v", t1.Pos, t1.Rot)
	}
	if t2.Pos != core.V(620, 800) || t2.Rot != 180 {
		t.Errorf("tank 2 = %v rot %v", t2.Pos, t2.Rot)
	}
	if t1.Lives != 3 || t2.Lives != 3 {
		t.Errorf("lives = %d/%d, expected 3/3", t1.Lives, t2.Lives)
	}
	if w.TankByPlayer(core.Player2) != t2 || w.TankByPlayer(3) != nil {
		t.Error("TankByPlayer should map player ids to tanks")
	}
}

func TestPlayersDriveIndependently(t *testing.T) {
	w := newTestWorld(t)
	in := core.NewMultiInputFrame()
	in.Hold(core.Player1, core.ActionUp)
	in.Hold(core.Player2, core.ActionRight)

	sim.Advance(w, in)

	if w.Tanks[0].Pos != core.V(100, 98) {
		t.Errorf("tank 1 at %v, expected (100, 98)", w.Tanks[0].Pos)
	}
	if w.Tanks[0].Rot != 0 {
		t.Error("tank 1 should not turn on player 2's key")
	}
	if w.Tanks[1].Pos != core.V(620, 800) || w.Tanks[1].Rot != 182.5 {
		t.Errorf("tank 2 at %v rot %v, expected to turn in place", w.Tanks[1].Pos, w.Tanks[1].Rot)
	}
}

func TestFireUsesOwnPool(t *testing.T) {
	w := newTestWorld(t)
	sounds := &sim.SoundLog{}
	w.SetSounds(sounds)

	in := core.NewMultiInputFrame()
	in.Press(core.Player2, core.ActionFire)
	sim.Advance(w, in)

	if w.Tanks[0].Bullets.Len() != 0 || w.Tanks[1].Bullets.Len() != 1 {
		t.Fatalf("pools = %d/%d, expected 0/1", w.Tanks[0].Bullets.Len(), w.Tanks[1].Bullets.Len())
	}
	b := w.Tanks[1].Bullets.At(0)
	// Spawned 20 below tank 2 (barrel faces down), then moved 5.
	if math.Abs(b.Pos.X-620) > 1e-9 || math.Abs(b.Pos.Y-825) > 1e-9 {
		t.Errorf("bullet at %v, expected (620, 825)", b.Pos)
	}
	if sounds.Count(sim.SoundLaser) != 1 {
		t.Error("firing should play the laser")
	}
}

func TestFullPoolDropsShot(t *testing.T) {
	w := newTestWorld(t)
	in := core.NewMultiInputFrame()
	in.Press(core.Player1, core.ActionFire)

	for range 4 {
		sim.Advance(w, in)
	}
	if w.Tanks[0].Bullets.Len() != 3 {
		t.Errorf("bullets = %d, expected the pool capped at 3", w.Tanks[0].Bullets.Len())
	}
}

func TestBulletsDieOffField(t *testing.T) {
	w := newTestWorld(t)
	in := core.NewMultiInputFrame()
	in.Press(core.Player1, core.ActionFire)
	sim.Advance(w, in)

	for range 20 {
		sim.Advance(w, idle())
	}
	if w.Tanks[0].Bullets.Len() != 0 {
		t.Error("a bullet past the top edge should be gone")
	}
}

func TestTanksStayInField(t *testing.T) {
	tests := []struct {
		name string
		rot  float64
		tank int
	}{
		{"up", 0, 0},
		{"left", -90, 0},
		{"right", 90, 1},
		{"down", 180, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			tk := w.Tanks[tc.tank]
			tk.Rot = tc.rot
			half := w.cfg.Tank.Size / 2

			in := core.NewMultiInputFrame()
			in.Hold(tk.Player, core.ActionUp)
			for range 500 {
				sim.Advance(w, in)
				p := tk.Pos
				if p.X < half || p.X > w.field.W-half || p.Y < half || p.Y > w.field.H-half {
					t.Fatalf("tank at %v outside [%v, W-%v]", p, half, half)
				}
			}
		})
	}
}

func TestWrapBoundaryOption(t *testing.T) {
	cfg := config.DefaultTankConfig()
	cfg.Tank.Boundary = "wrap"
	w := NewWorld(cfg)

	in := core.NewMultiInputFrame()
	in.Hold(core.Player1, core.ActionUp)
	for range 100 {
		sim.Advance(w, in)
		if y := w.Tanks[0].Pos.Y; y < 0 || y >= w.field.H {
			t.Fatalf("y = %v outside [0, H)", y)
		}
	}
	if w.Tanks[0].Pos.Y != 800 {
		t.Errorf("y = %v, expected to wrap to 800", w.Tanks[0].Pos.Y)
	}
}

func TestHitCostsLifeAndRespawns(t *testing.T) {
	w := newTestWorld(t)
	sounds := &sim.SoundLog{}
	w.SetSounds(sounds)
	w.Tanks[0].Pos = core.V(300, 300)
	w.Tanks[1].Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(10, 10)}})
	shootAt(w, 0)

	sim.Advance(w, idle())

	if w.Tanks[1].Lives != 2 || w.Tanks[0].Lives != 3 {
		t.Errorf("lives = %d/%d, expected 3/2", w.Tanks[0].Lives, w.Tanks[1].Lives)
	}
	if w.Tanks[0].Pos != core.V(100, 100) {
		t.Error("both tanks should respawn after a hit")
	}
	if w.Tanks[0].Bullets.Len() != 0 || w.Tanks[1].Bullets.Len() != 0 {
		t.Error("respawn should clear every bullet")
	}
	if sounds.Count(sim.SoundExplosion) != 1 {
		t.Error("a hit should explode")
	}
	if !w.Round.Playing() {
		t.Error("round continues while both tanks have lives")
	}
}

func TestOwnBulletsNeverHit(t *testing.T) {
	w := newTestWorld(t)
	w.Tanks[0].Bullets.Spawn(Bullet{Body: sim.Body{Pos: w.Tanks[0].Pos}})

	sim.Advance(w, idle())
	if w.Tanks[0].Lives != 3 {
		t.Error("a tank should not be hurt by its own bullet")
	}
}

func TestRoundOutcome(t *testing.T) {
	tests := []struct {
		name     string
		shooters []int
		winner   core.PlayerID
		won      bool
	}{
		{"player 1 wins", []int{0}, core.Player1, true},
		{"player 2 wins", []int{1}, core.Player2, true},
		{"draw", []int{0, 1}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Tanks[0].Lives, w.Tanks[1].Lives = 1, 1
			for _, s := range tc.shooters {
				shootAt(w, s)
			}
			sim.Advance(w, idle())

			if !w.Round.Over() {
				t.Fatal("a fatal hit should end the round")
			}
			if w.Winner != tc.winner || w.Round.Won() != tc.won {
				t.Errorf("winner = %d won = %v, expected %d/%v", w.Winner, w.Round.Won(), tc.winner, tc.won)
			}
		})
	}
}
