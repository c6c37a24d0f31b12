package sandbox

import (
	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Player is the ship on the bottom row. Pos is its top-left corner.
type Player struct {
	sim.Body
	W, H float64
}

// Rect returns the player's bounds.
func (p *Player) Rect() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Bullet is the player's single shot. Pos is its top-left corner.
type Bullet struct {
	sim.Body
}

// Enemy waits at home until its timer runs out, then flies one swoop
// around the field center and returns home. Pos is its top-left corner.
type Enemy struct {
	sim.Body
	Flying   bool
	Progress int
}

// World is the sandbox: one player, one bullet, one enemy.
//
// Loss policy: the flying enemy touching the player costs a life; at zero
// lives the whole world reinitializes (sim.LossReset). There is no win.
type World struct {
	cfg   config.SandboxConfig
	field sim.Field
	arc   sim.ArcPath
	home  core.Vec

	Player    Player
	Bullets   *sim.Pool[Bullet]
	Enemies   *sim.Pool[Enemy]
	Score     int
	HighScore int
	Lives     int
	Tick      int
	Resets    int
	Wait      sim.Timer

	finished sim.Finished

	gate   sim.FireGate
	sounds sim.SoundSink

	// Per-tick scratch.
	playerHit bool
	enemyShot bool
}

// NewWorld creates a sandbox ready to play.
func NewWorld(cfg config.SandboxConfig) *World {
	field := sim.Field{W: cfg.Field.Width, H: cfg.Field.Height}
	w := &World{
		cfg:     cfg,
		field:   field,
		arc:     sim.ArcPath{Center: core.V(field.W/2, field.H/2), Radius: cfg.Enemy.Radius},
		home:    core.V((field.W-cfg.Enemy.Width)/2, field.H/2-cfg.Enemy.Height/2),
		Bullets: sim.NewPool[Bullet](cfg.Bullet.Capacity),
		Enemies: sim.NewPool[Enemy](1),
		gate:    sim.NewFireGate(sim.ParseGateMode(cfg.Bullet.FireGate, sim.GateEdge), cfg.Bullet.Cooldown),
		sounds:  sim.NopSounds{},
	}
	w.Reset()
	return w
}

// SetSounds routes sound requests to s.
func (w *World) SetSounds(s sim.SoundSink) {
	w.sounds = s
}

// TakeFinishedScore returns the score of the last game that ran out of
// lives, once.
func (w *World) TakeFinishedScore() (int, bool) {
	return w.finished.Take()
}

// Field returns the playfield size.
func (w *World) Field() sim.Field {
	return w.field
}

// Reset puts every pool and counter back into new-game state.
// The high score survives.
func (w *World) Reset() {
	w.Bullets.Clear()
	w.Score = w.cfg.Gameplay.InitialScore
	w.Lives = w.cfg.Gameplay.Lives
	w.Tick = 0
	w.gate.Reset()
	w.playerHit, w.enemyShot = false, false

	w.Player = Player{
		Body: sim.Body{Pos: core.V(
			(w.field.W-w.cfg.Player.Width)/2,
			w.field.H-w.cfg.Player.Height-w.cfg.Player.BottomOffset,
		)},
		W: w.cfg.Player.Width,
		H: w.cfg.Player.Height,
	}
	w.sendHome()
}

// sendHome parks the enemy at the field center and restarts its wait.
func (w *World) sendHome() {
	w.Enemies.Clear()
	w.Enemies.Spawn(Enemy{Body: sim.Body{Pos: w.home}})
	w.Wait = sim.NewTimer(w.cfg.Enemy.Wait)
}

func (w *World) enemyRect(e *Enemy) core.RectF {
	return core.RectF{X: e.Pos.X, Y: e.Pos.Y, W: w.cfg.Enemy.Width, H: w.cfg.Enemy.Height}
}

func (w *World) bulletRect(b *Bullet) core.RectF {
	return core.RectF{X: b.Pos.X, Y: b.Pos.Y, W: w.cfg.Bullet.Width, H: w.cfg.Bullet.Height}
}

// Resolve moves the player and fires the single bullet.
func (w *World) Resolve(in core.MultiInputFrame) {
	f := in.Player1()
	w.Tick++

	w.Player.Vel = core.Vec{}
	if f.Down(core.ActionLeft) {
		w.Player.Vel.X -= w.cfg.Player.Speed
	}
	if f.Down(core.ActionRight) {
		w.Player.Vel.X += w.cfg.Player.Speed
	}

	if w.gate.Request(f, core.ActionFire) {
		b := Bullet{Body: sim.Body{
			Pos: core.V(w.Player.Pos.X+(w.Player.W-w.cfg.Bullet.Width)/2, w.Player.Pos.Y-w.cfg.Bullet.Height),
			Vel: core.V(0, -w.cfg.Bullet.Speed),
		}}
		if _, ok := w.Bullets.Spawn(b); ok {
			w.sounds.Play(sim.SoundLaser)
		}
	}
}

// Integrate moves the player and bullet, and flies the enemy once its
// wait is over.
func (w *World) Integrate() {
	w.Player.Integrate(core.Vec{}, 1)
	w.Player.Pos = sim.BoundClamp.Apply(w.Player.Pos, core.V(w.Player.W, w.Player.H), w.field)

	for i, b := range w.Bullets.All() {
		b.Integrate(core.Vec{}, 1)
		if b.Pos.Y+w.cfg.Bullet.Height < 0 {
			w.Bullets.Kill(i)
		}
	}

	half := core.V(w.cfg.Enemy.Width/2, w.cfg.Enemy.Height/2)
	for _, e := range w.Enemies.All() {
		if !e.Flying {
			e.Flying = w.Wait.Tick()
			continue
		}
		e.Progress++
		t := float64(e.Progress) / float64(max(w.cfg.Enemy.ArcTicks, 1))
		e.Pos = w.arc.At(t).Sub(half)
		if t >= 1 {
			w.sendHome()
		}
	}
}

// Collide tests the bullet against the enemy and the enemy against the player.
func (w *World) Collide() {
	w.enemyShot = false
	sim.FirstHit(w.Bullets, w.Enemies,
		func(b *Bullet, e *Enemy) bool {
			return w.bulletRect(b).Overlaps(w.enemyRect(e))
		},
		func(bi, ei int) {
			w.Bullets.Kill(bi)
			w.Enemies.Kill(ei)
			w.enemyShot = true
		},
	)

	player := w.Player.Rect()
	w.playerHit = sim.FirstTarget(w.Enemies, func(e *Enemy) bool {
		return e.Flying && player.Overlaps(w.enemyRect(e))
	}) >= 0
}

// React scores a shot enemy, charges a life for a collision and resets the
// world when the lives run out.
func (w *World) React() {
	if w.enemyShot {
		w.Score += w.cfg.Enemy.Points
		w.HighScore = max(w.HighScore, w.Score)
		w.sounds.Play(sim.SoundExplosion)
		w.sendHome()
	}

	if w.playerHit {
		w.Lives--
		w.sounds.Play(sim.SoundLose)
		w.sendHome()
	}

	if w.Lives <= 0 {
		w.finished.Record(w.Score)
		w.Resets++
		w.Reset()
	}
}
