package asteroids

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Ship is the player's mover. Its position is its center.
type Ship struct {
	sim.Body
	Radius    float64
	Thrusting bool
}

// Bullet is a circular projectile with a lifetime.
type Bullet struct {
	sim.Body
	Age int
}

// Rock is a breakable asteroid. Size is its radius.
type Rock struct {
	sim.Body
	Size  float64
	Sides int // Polygon side count, for rendering
}

// World is the complete Asteroids state. It owns every pool and counter.
//
// Loss policy: any ship hit reinitializes the whole game in the same tick
// (sim.LossReset). The round is won when the rock pool is empty.
type World struct {
	cfg   config.AsteroidsConfig
	field sim.Field
	seed  int64
	rng   *rand.Rand

	Ship    Ship
	Bullets *sim.Pool[Bullet]
	Rocks   *sim.Pool[Rock]
	Score   int
	Round   sim.Round
	Tick    int
	Resets  int // Number of loss resets since the world was created

	finished sim.Finished

	gate       sim.FireGate
	bulletEdge sim.Boundary
	difficulty *config.DifficultyManager
	sounds     sim.SoundSink

	// Per-tick scratch filled by Resolve and Collide, consumed by React.
	accel   core.Vec
	shipHit bool
	splits  []Rock
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.AsteroidsConfig, seed int64) *World {
	w := &World{
		cfg:        cfg,
		field:      sim.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		seed:       seed,
		Bullets:    sim.NewPool[Bullet](cfg.Bullets.Capacity),
		Rocks:      sim.NewPool[Rock](cfg.Rocks.Capacity),
		gate:       sim.NewFireGate(sim.ParseGateMode(cfg.Bullets.FireGate, sim.GateEdge), cfg.Bullets.Cooldown),
		bulletEdge: sim.ParseBoundary(cfg.Bullets.Boundary, sim.BoundWrap),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		sounds:     sim.NopSounds{},
		splits:     make([]Rock, 0, 2*max(cfg.Bullets.Capacity, 1)),
	}
	w.rng = sim.NewRand(seed)
	w.Reset()
	return w
}

// SetSounds routes sound requests to s.
func (w *World) SetSounds(s sim.SoundSink) {
	w.sounds = s
}

// TakeFinishedScore returns the score of the last game a ship hit ended,
// once.
func (w *World) TakeFinishedScore() (int, bool) {
	return w.finished.Take()
}

// Field returns the playfield size.
func (w *World) Field() sim.Field {
	return w.field
}

// Reset puts every pool and counter back into new-game state.
func (w *World) Reset() {
	w.Bullets.Clear()
	w.Rocks.Clear()
	w.Score = w.cfg.Gameplay.InitialScore
	w.Round = sim.Round{}
	w.Tick = 0
	w.gate.Reset()
	w.accel = core.Vec{}
	w.shipHit = false
	w.splits = w.splits[:0]

	w.Ship = Ship{
		Body:   sim.Body{Pos: core.V(w.field.W/2, w.field.H/2)},
		Radius: w.cfg.Ship.Radius,
	}

	for range w.cfg.Rocks.Initial {
		w.spawnFreshRock()
	}
}

// spawnFreshRock places an initial-size rock away from the ship.
func (w *World) spawnFreshRock() {
	pos := core.V(0, 0)
	clear2 := w.cfg.Rocks.Clearance * w.cfg.Rocks.Clearance
	for range 32 {
		p := core.V(w.rng.Float64()*w.field.W, w.rng.Float64()*w.field.H)
		if p.Sub(w.Ship.Pos).LenSq() >= clear2 {
			pos = p
			break
		}
	}
	w.Rocks.Spawn(w.newRock(pos, w.cfg.Rocks.InitialSize))
}

// newRock builds a rock with a random heading and speed.
func (w *World) newRock(pos core.Vec, size float64) Rock {
	heading := w.rng.Float64() * 360
	speed := w.cfg.Rocks.MinSpeed + w.rng.Float64()*(w.cfg.Rocks.MaxSpeed-w.cfg.Rocks.MinSpeed)
	speed = w.difficulty.Speed(speed, w.Score, w.Tick)
	sides := w.cfg.Rocks.MinSides
	if span := w.cfg.Rocks.MaxSides - w.cfg.Rocks.MinSides; span > 0 {
		sides += w.rng.IntN(span + 1)
	}
	return Rock{
		Body:  sim.Body{Pos: pos, Vel: core.Heading(heading).Scale(speed), Rot: heading},
		Size:  size,
		Sides: sides,
	}
}

// Resolve reads player 1's keys: left/right rotate, up thrusts, fire shoots.
func (w *World) Resolve(in core.MultiInputFrame) {
	f := in.Player1()
	w.Tick++

	if f.Down(core.ActionLeft) {
		w.Ship.Rot -= w.cfg.Ship.RotationSpeed
	}
	if f.Down(core.ActionRight) {
		w.Ship.Rot += w.cfg.Ship.RotationSpeed
	}

	heading := core.Heading(w.Ship.Rot)
	w.Ship.Thrusting = f.Down(core.ActionUp)
	w.accel = core.Vec{}
	if w.Ship.Thrusting {
		w.accel = heading.Scale(w.cfg.Ship.Acceleration)
	}

	if w.gate.Request(f, core.ActionFire) {
		w.fire(heading)
	}
}

// fire spawns a bullet at the ship's nose. A full pool drops the shot.
func (w *World) fire(heading core.Vec) {
	b := Bullet{Body: sim.Body{
		Pos: w.Ship.Pos.Add(heading.Scale(w.Ship.Radius)),
		Vel: heading.Scale(w.cfg.Bullets.Speed).Add(w.Ship.Vel),
		Rot: w.Ship.Rot,
	}}
	if _, ok := w.Bullets.Spawn(b); ok {
		w.sounds.Play(sim.SoundLaser)
	}
}

// Integrate moves the ship, bullets and rocks. Ship and rocks wrap.
func (w *World) Integrate() {
	w.Ship.Integrate(w.accel, w.cfg.Ship.Friction)
	w.Ship.Pos = sim.BoundWrap.Apply(w.Ship.Pos, core.Vec{}, w.field)

	for i, b := range w.Bullets.All() {
		b.Integrate(core.Vec{}, 1)
		b.Age++
		if w.cfg.Bullets.Lifetime > 0 && b.Age >= w.cfg.Bullets.Lifetime {
			w.Bullets.Kill(i)
			continue
		}
		if w.bulletEdge == sim.BoundNone && sim.OutOfField(b.Pos, w.field) {
			w.Bullets.Kill(i)
			continue
		}
		b.Pos = w.bulletEdge.Apply(b.Pos, core.Vec{}, w.field)
	}

	for _, r := range w.Rocks.All() {
		r.Integrate(core.Vec{}, 1)
		r.Pos = sim.BoundWrap.Apply(r.Pos, core.Vec{}, w.field)
	}
}

// Collide runs bullets against rocks, then the ship against rocks.
// Children of split rocks are queued for React so they cannot be hit in
// the tick they appear.
func (w *World) Collide() {
	w.splits = w.splits[:0]
	w.shipHit = false

	sim.FirstHit(w.Bullets, w.Rocks,
		func(b *Bullet, r *Rock) bool {
			return core.CircleCircle(b.Pos, w.cfg.Bullets.Radius, r.Pos, r.Size)
		},
		func(bi, ri int) {
			r := *w.Rocks.At(ri)
			w.Bullets.Kill(bi)
			w.Rocks.Kill(ri)
			w.Score += w.rockPoints(r.Size)
			w.sounds.Play(sim.SoundExplosion)
			if r.Size > w.cfg.Rocks.MinSize {
				half := r.Size / 2
				w.splits = append(w.splits, w.newRock(r.Pos, half), w.newRock(r.Pos, half))
			}
		},
	)

	hit := sim.FirstTarget(w.Rocks, func(r *Rock) bool {
		return core.CircleCircle(w.Ship.Pos, w.Ship.Radius, r.Pos, r.Size)
	})
	w.shipHit = hit >= 0
}

// rockPoints scores smaller rocks higher: points * initial / size.
func (w *World) rockPoints(size float64) int {
	if size <= 0 {
		return w.cfg.Rocks.Points
	}
	return int(math.Round(float64(w.cfg.Rocks.Points) * w.cfg.Rocks.InitialSize / size))
}

// React spawns split children, then applies the loss reset or the win.
func (w *World) React() {
	for _, r := range w.splits {
		w.Rocks.Spawn(r)
	}
	w.splits = w.splits[:0]

	if w.shipHit {
		w.sounds.Play(sim.SoundLose)
		w.finished.Record(w.Score)
		w.Resets++
		w.Reset()
		return
	}

	if w.Rocks.Len() == 0 {
		w.Round.Win()
		w.sounds.Play(sim.SoundWin)
	}
}
