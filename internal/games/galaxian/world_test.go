package galaxian

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

func hold(actions ...core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	for _, a := range actions {
		m.Hold(core.Player1, a)
	}
	return m
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.DefaultGalaxianConfig()
	cfg.Difficulty.Enabled = false
	return NewWorld(cfg, 42)
}

// shootAt places a bullet inside enemy i.
func shootAt(w *World, i int) {
	e := w.Enemies.At(i)
	w.Bullets.Spawn(Bullet{Body: sim.Body{
		Pos: e.Pos.Add(core.V(18, 10+w.cfg.Bullets.Speed)),
		Vel: core.V(0, -w.cfg.Bullets.Speed),
	}})
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)

	if w.Enemies.Len() != 32 {
		t.Errorf("enemies = %d, expected 32", w.Enemies.Len())
	}
	if w.Lives != 3 || w.Score != 0 {
		t.Errorf("lives = %d score = %d", w.Lives, w.Score)
	}
	if !w.Round.Playing() {
		t.Error("round should start playing")
	}
	if w.Player.Pos.X != (w.field.W-w.Player.W)/2 {
		t.Errorf("player x = %v, expected centered", w.Player.Pos.X)
	}
}

func TestFireRespectsPool(t *testing.T) {
	w := newTestWorld(t)
	sounds := &sim.SoundLog{}
	w.SetSounds(sounds)

	sim.Advance(w, press(core.ActionFire))
	sim.Advance(w, press(core.ActionFire))
	if w.Bullets.Len() != 2 {
		t.Fatalf("bullets = %d, expected 2", w.Bullets.Len())
	}

	sim.Advance(w, press(core.ActionFire))
	if w.Bullets.Len() != 2 {
		t.Errorf("bullets = %d, a full pool should drop the shot", w.Bullets.Len())
	}
	if sounds.Count(sim.SoundLaser) != 2 {
		t.Errorf("laser sounds = %d, expected 2", sounds.Count(sim.SoundLaser))
	}
}

func TestBulletLeavesField(t *testing.T) {
	w := newTestWorld(t)
	w.Enemies.Clear()
	w.Enemies.Spawn(Enemy{Row: 3, Col: 7})
	w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(300, 5), Vel: core.V(0, -12)}})

	sim.Advance(w, idle())
	sim.Advance(w, idle())
	if w.Bullets.Len() != 0 {
		t.Error("a bullet past the top should be gone")
	}
}

func TestShootingEnemies(t *testing.T) {
	tests := []struct {
		name   string
		attack bool
		points int
	}{
		{"formation", false, 30},
		{"diving", true, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			if tc.attack {
				e := w.Enemies.At(5)
				e.State = Diving
				e.Pos = core.V(300, 400)
			}
			shootAt(w, 5)
			sim.Advance(w, idle())

			if w.Enemies.Active(5) {
				t.Error("enemy should be destroyed")
			}
			if w.Bullets.Len() != 0 {
				t.Error("bullet should be spent")
			}
			if w.Score != tc.points {
				t.Errorf("score = %d, expected %d", w.Score, tc.points)
			}
			if w.HighScore != tc.points {
				t.Errorf("high score = %d, expected %d", w.HighScore, tc.points)
			}
		})
	}
}

func TestLastEnemyWinsSameTick(t *testing.T) {
	w := newTestWorld(t)
	for i := range w.Enemies.Cap() {
		if i != 0 {
			w.Enemies.Kill(i)
		}
	}
	shootAt(w, 0)
	sim.Advance(w, idle())

	if !w.Round.Won() {
		t.Error("destroying the last enemy should win the round")
	}
}

func TestDiverHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	e := w.Enemies.At(3)
	e.State = Diving
	w.Player.Pos.X = 0
	e.Pos = core.V(0, w.Player.Pos.Y)
	sim.Advance(w, idle())

	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if w.Enemies.At(3).Attacking() {
		t.Error("the diver should go back to the formation")
	}
	if w.Player.Pos.X != (w.field.W-w.Player.W)/2 {
		t.Error("player should respawn centered")
	}
	if !w.Round.Playing() {
		t.Error("a life loss with lives left keeps playing")
	}
}

func TestLastLifeLosesRound(t *testing.T) {
	w := newTestWorld(t)
	w.Lives = 1
	e := w.Enemies.At(0)
	e.State = Diving
	e.Pos = core.V(w.Player.Pos.X, w.Player.Pos.Y)
	sim.Advance(w, idle())

	if !w.Round.Lost() {
		t.Error("losing the last life should lose the round")
	}
}

func TestFormationEnemiesNeverHitPlayer(t *testing.T) {
	w := newTestWorld(t)
	e := w.Enemies.At(0)
	w.Player.Pos = e.Pos
	w.Collide()
	if w.playerHit >= 0 {
		t.Error("only attacking enemies can hit the player")
	}
}

func TestDiveCycle(t *testing.T) {
	w := newTestWorld(t)
	interval := w.cfg.Dive.Interval

	for range interval - 1 {
		sim.Advance(w, idle())
	}
	if attackers(w) != 0 {
		t.Fatal("no enemy should dive before the interval")
	}

	sim.Advance(w, idle())
	if attackers(w) != 1 {
		t.Fatalf("attackers = %d, expected 1 after the interval", attackers(w))
	}
	diver := -1
	for i, e := range w.Enemies.All() {
		if e.Attacking() {
			diver = i
		}
	}

	for range w.cfg.Dive.ArcTicks {
		sim.Advance(w, idle())
	}
	if w.Enemies.At(diver).State != Diving {
		t.Fatalf("state = %d, expected diving after the arc", w.Enemies.At(diver).State)
	}
}

func TestReturningEnemyRejoinsFormation(t *testing.T) {
	w := newTestWorld(t)
	w.dive = sim.NewTimer(0)
	e := w.Enemies.At(0)
	e.State = Diving
	e.Pos = core.V(5, w.field.H-1)
	e.Vel = core.V(0, 6)

	sim.Advance(w, idle())
	if e.State != Returning {
		t.Fatalf("state = %d, expected returning after leaving the bottom", e.State)
	}

	for range 200 {
		sim.Advance(w, idle())
	}
	if e.State != InFormation {
		t.Errorf("state = %d, expected back in formation", e.State)
	}
	if e.Pos != w.slot(e.Row, e.Col) {
		t.Errorf("pos = %v, expected the formation slot", e.Pos)
	}
}

func TestPlayerStaysInField(t *testing.T) {
	w := newTestWorld(t)
	w.dive = sim.NewTimer(0)
	limit := w.field.W - w.Player.W

	for range 200 {
		sim.Advance(w, hold(core.ActionRight))
		if w.Player.Pos.X < 0 || w.Player.Pos.X > limit {
			t.Fatalf("player x = %v outside [0, %v]", w.Player.Pos.X, limit)
		}
	}
	for range 200 {
		sim.Advance(w, hold(core.ActionLeft))
	}
	if w.Player.Pos.X != 0 {
		t.Errorf("player x = %v, expected 0", w.Player.Pos.X)
	}
}

func attackers(w *World) int {
	n := 0
	for _, e := range w.Enemies.All() {
		if e.Attacking() {
			n++
		}
	}
	return n
}
