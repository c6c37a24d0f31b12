package galaxian

import (
	"math"
	"math/rand/v2"

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

// Bullet is a rectangular shot travelling up. Pos is its top-left corner.
type Bullet struct {
	sim.Body
}

// EnemyState is where an enemy is in its attack cycle.
type EnemyState int

const (
	InFormation EnemyState = iota
	Arcing                 // Following the swoop out of the formation
	Diving                 // Falling toward the player
	Returning              // Flying back to its formation slot
)

// Enemy is a breakable alien. Pos is its top-left corner.
type Enemy struct {
	sim.Body
	Row, Col int
	State    EnemyState
	Progress int // Ticks spent on the arc
	Arc      sim.ArcPath
}

// Attacking reports whether the enemy has left the formation.
func (e *Enemy) Attacking() bool {
	return e.State != InFormation
}

// World is the complete Galaxian state.
//
// Loss policy: an attacking enemy that touches the player costs a life
// (sim.LossLife); the enemy goes back to its slot and the player respawns
// in the middle. The last life ends the round as lost. Shooting every enemy
// wins the round.
type World struct {
	cfg   config.GalaxianConfig
	field sim.Field
	rng   *rand.Rand

	Player    Player
	Bullets   *sim.Pool[Bullet]
	Enemies   *sim.Pool[Enemy]
	Score     int
	HighScore int
	Lives     int
	Tick      int
	Round     sim.Round

	gate       sim.FireGate
	dive       sim.Timer
	difficulty *config.DifficultyManager
	sounds     sim.SoundSink

	// Per-tick scratch.
	playerHit int
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.GalaxianConfig, seed int64) *World {
	w := &World{
		cfg:        cfg,
		field:      sim.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		rng:        sim.NewRand(seed),
		Bullets:    sim.NewPool[Bullet](cfg.Bullets.Capacity),
		Enemies:    sim.NewPool[Enemy](cfg.Enemies.Rows * cfg.Enemies.Cols),
		gate:       sim.NewFireGate(sim.ParseGateMode(cfg.Bullets.FireGate, sim.GateEdge), cfg.Bullets.Cooldown),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		sounds:     sim.NopSounds{},
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

// Reset puts every pool and counter back into new-game state.
// The high score survives.
func (w *World) Reset() {
	w.Bullets.Clear()
	w.Enemies.Clear()
	w.Score = w.cfg.Gameplay.InitialScore
	w.Lives = w.cfg.Gameplay.Lives
	w.Tick = 0
	w.Round = sim.Round{}
	w.gate.Reset()
	w.dive = sim.NewTimer(w.cfg.Dive.Interval)
	w.playerHit = -1

	w.Player = Player{W: w.cfg.Player.Width, H: w.cfg.Player.Height}
	w.respawnPlayer()

	e := w.cfg.Enemies
	for row := range e.Rows {
		for col := range e.Cols {
			enemy := Enemy{Row: row, Col: col}
			enemy.Pos = w.slot(row, col)
			w.Enemies.Spawn(enemy)
		}
	}
}

func (w *World) respawnPlayer() {
	w.Player.Pos = core.V((w.field.W-w.Player.W)/2, w.field.H-w.cfg.Player.BottomOffset-w.Player.H)
	w.Player.Vel = core.Vec{}
}

// sway returns the formation's horizontal offset at the current tick.
func (w *World) sway() float64 {
	e := w.cfg.Enemies
	if e.SwayPeriod <= 0 {
		return 0
	}
	phase := 2 * math.Pi * float64(w.Tick%e.SwayPeriod) / float64(e.SwayPeriod)
	return e.SwayAmplitude * math.Sin(phase)
}

// slot returns the top-left of a formation cell, including sway.
func (w *World) slot(row, col int) core.Vec {
	e := w.cfg.Enemies
	width := float64(e.Cols-1)*e.SpacingX + e.Width
	left := (w.field.W - width) / 2
	return core.V(left+float64(col)*e.SpacingX+w.sway(), e.OffsetY+float64(row)*e.SpacingY)
}

// Resolve moves the player and fires.
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
			Pos: core.V(w.Player.Pos.X+(w.Player.W-w.cfg.Bullets.Width)/2, w.Player.Pos.Y-w.cfg.Bullets.Height),
			Vel: core.V(0, -w.cfg.Bullets.Speed),
		}}
		if _, ok := w.Bullets.Spawn(b); ok {
			w.sounds.Play(sim.SoundLaser)
		}
	}
}

// Integrate moves the player, bullets and enemies, and launches dives.
func (w *World) Integrate() {
	w.Player.Integrate(core.Vec{}, 1)
	w.Player.Pos = sim.BoundClamp.Apply(w.Player.Pos, core.V(w.Player.W, w.Player.H), w.field)

	for i, b := range w.Bullets.All() {
		b.Integrate(core.Vec{}, 1)
		if b.Pos.Y+w.cfg.Bullets.Height < 0 {
			w.Bullets.Kill(i)
		}
	}

	if w.dive.Tick() {
		w.startDive()
		w.dive = sim.NewTimer(w.difficulty.Interval(w.cfg.Dive.Interval, w.Score, w.Tick))
	}

	for _, e := range w.Enemies.All() {
		w.moveEnemy(e)
	}
}

// startDive sends a random enemy still in formation on the arc.
func (w *World) startDive() {
	n := 0
	for _, e := range w.Enemies.All() {
		if !e.Attacking() {
			n++
		}
	}
	if n == 0 {
		return
	}
	pick := w.rng.IntN(n)
	for _, e := range w.Enemies.All() {
		if e.Attacking() {
			continue
		}
		if pick > 0 {
			pick--
			continue
		}
		// Centre the arc so it starts at the enemy's current position.
		r := w.cfg.Dive.Radius
		start := e.Pos.Add(core.V(w.cfg.Enemies.Width/2, w.cfg.Enemies.Height/2))
		e.Arc = sim.ArcPath{
			Center: start.Sub(core.V(r*math.Cos(3*math.Pi/4), r*math.Sin(3*math.Pi/4))),
			Radius: r,
		}
		e.State = Arcing
		e.Progress = 0
		return
	}
}

func (w *World) moveEnemy(e *Enemy) {
	half := core.V(w.cfg.Enemies.Width/2, w.cfg.Enemies.Height/2)
	speed := w.difficulty.Speed(w.cfg.Dive.Speed, w.Score, w.Tick)

	switch e.State {
	case InFormation:
		e.Pos = w.slot(e.Row, e.Col)

	case Arcing:
		e.Progress++
		t := float64(e.Progress) / float64(max(w.cfg.Dive.ArcTicks, 1))
		e.Pos = e.Arc.At(t).Sub(half)
		if t >= 1 {
			e.State = Diving
			dx := core.Sign(w.Player.Pos.X + w.Player.W/2 - e.Pos.X - half.X)
			e.Vel = core.V(dx*speed/3, speed)
		}

	case Diving:
		e.Integrate(core.Vec{}, 1)
		if e.Pos.Y > w.field.H {
			e.Pos = core.V(e.Pos.X, -w.cfg.Enemies.Height)
			e.Vel = core.Vec{}
			e.State = Returning
		}

	case Returning:
		delta := w.slot(e.Row, e.Col).Sub(e.Pos)
		if dist := delta.Len(); dist > speed {
			e.Pos = e.Pos.Add(delta.Scale(speed / dist))
			return
		}
		e.Pos = w.slot(e.Row, e.Col)
		e.State = InFormation
	}
}

func (w *World) enemyRect(e *Enemy) core.RectF {
	return core.RectF{X: e.Pos.X, Y: e.Pos.Y, W: w.cfg.Enemies.Width, H: w.cfg.Enemies.Height}
}

// Collide runs bullets against enemies, then the player against attackers.
func (w *World) Collide() {
	sim.FirstHit(w.Bullets, w.Enemies,
		func(b *Bullet, e *Enemy) bool {
			shot := core.RectF{X: b.Pos.X, Y: b.Pos.Y, W: w.cfg.Bullets.Width, H: w.cfg.Bullets.Height}
			return shot.Overlaps(w.enemyRect(e))
		},
		func(bi, ei int) {
			points := w.cfg.Enemies.Points
			if w.Enemies.At(ei).Attacking() {
				points = w.cfg.Enemies.DivePoints
			}
			w.Bullets.Kill(bi)
			w.Enemies.Kill(ei)
			w.Score += points
			w.sounds.Play(sim.SoundExplosion)
		},
	)

	player := w.Player.Rect()
	w.playerHit = sim.FirstTarget(w.Enemies, func(e *Enemy) bool {
		return e.Attacking() && player.Overlaps(w.enemyRect(e))
	})
}

// React applies life loss and the win condition.
func (w *World) React() {
	w.HighScore = max(w.HighScore, w.Score)

	if w.playerHit >= 0 {
		e := w.Enemies.At(w.playerHit)
		e.State = InFormation
		e.Vel = core.Vec{}
		e.Pos = w.slot(e.Row, e.Col)
		w.Bullets.Clear()

		w.Lives--
		w.sounds.Play(sim.SoundLose)
		if w.Lives <= 0 {
			w.Lives = 0
			w.Round.Lose()
			return
		}
		w.respawnPlayer()
		return
	}

	if w.Enemies.Len() == 0 {
		w.Round.Win()
		w.sounds.Play(sim.SoundWin)
	}
}
