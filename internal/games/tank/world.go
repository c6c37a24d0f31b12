package tank

import (
	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Tank is one player's mover. Pos is its center; Rot 0 points up.
type Tank struct {
	sim.Body
	Player  core.PlayerID
	Lives   int
	Bullets *sim.Pool[Bullet]

	gate     sim.FireGate
	spawn    core.Vec
	spawnRot float64
}

// Bullet is a round shot that flies straight until it leaves the field.
type Bullet struct {
	sim.Body
}

// World is the two-player duel.
//
// Loss policy: a hit costs the victim a life and puts both tanks back on
// their spawn points with their bullets cleared (sim.LossLife). When the
// victim has no lives left the round ends and the other player wins. Two
// fatal hits in the same tick end the round as a draw.
type World struct {
	cfg        config.TankConfig
	field      sim.Field
	boundary   sim.Boundary
	bulletEdge sim.Boundary

	Tanks  [2]*Tank
	Tick   int
	Round  sim.Round
	Winner core.PlayerID // Zero until the round is over; stays zero on a draw

	sounds sim.SoundSink

	// Per-tick scratch: index of the bullet from Tanks[i] that hit the
	// opponent, or -1.
	hits [2]int
}

// NewWorld creates a duel ready to play.
func NewWorld(cfg config.TankConfig) *World {
	w := &World{
		cfg:        cfg,
		field:      sim.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		boundary:   sim.ParseBoundary(cfg.Tank.Boundary, sim.BoundClamp),
		bulletEdge: sim.ParseBoundary(cfg.Bullets.Boundary, sim.BoundNone),
		sounds:     sim.NopSounds{},
	}
	gate := sim.ParseGateMode(cfg.Bullets.FireGate, sim.GateEdge)
	w.Tanks[0] = &Tank{
		Player:   core.Player1,
		Bullets:  sim.NewPool[Bullet](cfg.Bullets.Capacity),
		gate:     sim.NewFireGate(gate, cfg.Bullets.Cooldown),
		spawn:    core.V(cfg.Tank.Spawn1[0], cfg.Tank.Spawn1[1]),
		spawnRot: 0,
	}
	w.Tanks[1] = &Tank{
		Player:   core.Player2,
		Bullets:  sim.NewPool[Bullet](cfg.Bullets.Capacity),
		gate:     sim.NewFireGate(gate, cfg.Bullets.Cooldown),
		spawn:    core.V(cfg.Tank.Spawn2[0], cfg.Tank.Spawn2[1]),
		spawnRot: 180,
	}
	w.Reset()
	return w
}

// SetSounds routes sound requests to s.
func (w *World) SetSounds(s sim.SoundSink) {
	w.sounds = s
}

// Field returns the playfield size.
func (w *World) Field() sim.Field {
	return w.field
}

// Reset puts both tanks, their pools and lives back into new-game state.
func (w *World) Reset() {
	w.Tick = 0
	w.Round = sim.Round{}
	w.Winner = 0
	for _, t := range w.Tanks {
		t.Lives = w.cfg.Gameplay.Lives
		t.gate.Reset()
	}
	w.respawn()
}

// respawn puts both tanks on their spawn points and clears every bullet.
func (w *World) respawn() {
	for _, t := range w.Tanks {
		t.Pos = t.spawn
		t.Vel = core.Vec{}
		t.Rot = t.spawnRot
		t.Bullets.Clear()
	}
	w.hits = [2]int{-1, -1}
}

func (w *World) half() core.Vec {
	return core.V(w.cfg.Tank.Size/2, w.cfg.Tank.Size/2)
}

// Resolve reads each player's own frame: left/right rotate, up/down drive
// forward or back, fire shoots from the barrel.
func (w *World) Resolve(in core.MultiInputFrame) {
	w.Tick++
	for _, t := range w.Tanks {
		f := in.Player(t.Player)

		if f.Down(core.ActionLeft) {
			t.Rot -= w.cfg.Tank.RotationSpeed
		}
		if f.Down(core.ActionRight) {
			t.Rot += w.cfg.Tank.RotationSpeed
		}

		forward := core.Heading(t.Rot)
		t.Vel = core.Vec{}
		if f.Down(core.ActionUp) {
			t.Vel = t.Vel.Add(forward.Scale(w.cfg.Tank.Speed))
		}
		if f.Down(core.ActionDown) {
			t.Vel = t.Vel.Sub(forward.Scale(w.cfg.Tank.Speed))
		}

		if t.gate.Request(f, core.ActionFire) {
			w.fire(t, forward)
		}
	}
}

// fire spawns a bullet just outside the barrel. A full pool drops the shot.
func (w *World) fire(t *Tank, forward core.Vec) {
	b := Bullet{Body: sim.Body{
		Pos: t.Pos.Add(forward.Scale(w.cfg.Tank.Size/2 + w.cfg.Bullets.Radius)),
		Vel: forward.Scale(w.cfg.Bullets.Speed),
		Rot: t.Rot,
	}}
	if _, ok := t.Bullets.Spawn(b); ok {
		w.sounds.Play(sim.SoundLaser)
	}
}

// Integrate drives the tanks, keeping them inside the field, and moves the
// bullets. Bullets that leave the field are gone.
func (w *World) Integrate() {
	half := w.half()
	for _, t := range w.Tanks {
		t.Integrate(core.Vec{}, 1)
		t.Pos = w.boundary.ApplyCentered(t.Pos, half, w.field)

		for i, b := range t.Bullets.All() {
			b.Integrate(core.Vec{}, 1)
			if w.bulletEdge == sim.BoundNone && sim.OutOfField(b.Pos, w.field) {
				t.Bullets.Kill(i)
				continue
			}
			b.Pos = w.bulletEdge.Apply(b.Pos, core.Vec{}, w.field)
		}
	}
}

// Collide tests each tank's bullets against the opposing tank.
// A tank never collides with its own bullets.
func (w *World) Collide() {
	r := w.cfg.Tank.Size / 2
	for i, t := range w.Tanks {
		opp := w.Tanks[1-i]
		w.hits[i] = sim.FirstTarget(t.Bullets, func(b *Bullet) bool {
			return core.CircleCircle(b.Pos, w.cfg.Bullets.Radius, opp.Pos, r)
		})
	}
}

// React charges lives for hits and ends the round when a tank runs out.
func (w *World) React() {
	if w.hits[0] < 0 && w.hits[1] < 0 {
		return
	}

	for i, t := range w.Tanks {
		if w.hits[i] < 0 {
			continue
		}
		t.Bullets.Kill(w.hits[i])
		victim := w.Tanks[1-i]
		victim.Lives = max(victim.Lives-1, 0)
		w.sounds.Play(sim.SoundExplosion)
	}

	dead1, dead2 := w.Tanks[0].Lives == 0, w.Tanks[1].Lives == 0
	switch {
	case dead1 && dead2:
		w.Round.Lose()
		w.sounds.Play(sim.SoundLose)
	case dead1:
		w.Winner = core.Player2
		w.Round.Win()
		w.sounds.Play(sim.SoundWin)
	case dead2:
		w.Winner = core.Player1
		w.Round.Win()
		w.sounds.Play(sim.SoundWin)
	default:
		w.respawn()
	}
}

// TankByPlayer returns the tank driven by id, or nil.
func (w *World) TankByPlayer(id core.PlayerID) *Tank {
	for _, t := range w.Tanks {
		if t.Player == id {
			return t
		}
	}
	return nil
}
