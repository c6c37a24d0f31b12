package invaders

import (
	"math/rand/v2"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// Player is the cannon on the bottom row. Pos is its top-left corner.
type Player struct {
	sim.Body
	W, H float64
}

// Rect returns the player's bounds.
func (p *Player) Rect() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Shot is a player or invader projectile. Pos is its top-left corner.
type Shot struct {
	sim.Body
}

// Invader is one cell of the marching grid. Pos is its top-left corner.
type Invader struct {
	sim.Body
	Row, Col int
}

// World is the complete Space Invaders state.
//
// Loss policy: a bomb hitting the cannon costs a life (sim.LossLife) and
// the cannon respawns in the middle. An invader reaching the cannon's row
// ends the round as lost at once, whatever the lives. Shooting every
// invader wins the round.
type World struct {
	cfg   config.InvadersConfig
	field sim.Field
	rng   *rand.Rand

	Player    Player
	Shots     *sim.Pool[Shot]
	Bombs     *sim.Pool[Shot]
	Invaders  *sim.Pool[Invader]
	Score     int
	HighScore int
	Lives     int
	Tick      int
	Round     sim.Round
	MarchDir  float64 // +1 right, -1 left

	gate       sim.FireGate
	bombs      sim.Timer
	difficulty *config.DifficultyManager
	sounds     sim.SoundSink

	// Per-tick scratch.
	bombHit int
	invaded bool
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.InvadersConfig, seed int64) *World {
	w := &World{
		cfg:        cfg,
		field:      sim.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		rng:        sim.NewRand(seed),
		Shots:      sim.NewPool[Shot](cfg.Shots.Capacity),
		Bombs:      sim.NewPool[Shot](cfg.Bombs.Capacity),
		Invaders:   sim.NewPool[Invader](cfg.Invaders.Rows * cfg.Invaders.Cols),
		gate:       sim.NewFireGate(sim.ParseGateMode(cfg.Shots.FireGate, sim.GateCooldown), cfg.Shots.Cooldown),
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
	w.Shots.Clear()
	w.Bombs.Clear()
	w.Invaders.Clear()
	w.Score = w.cfg.Gameplay.InitialScore
	w.Lives = w.cfg.Gameplay.Lives
	w.Tick = 0
	w.Round = sim.Round{}
	w.MarchDir = 1
	w.gate.Reset()
	w.bombs = sim.NewTimer(w.cfg.Bombs.Interval)
	w.bombHit = -1
	w.invaded = false

	w.Player = Player{W: w.cfg.Player.Width, H: w.cfg.Player.Height}
	w.respawnPlayer()

	g := w.cfg.Invaders
	for row := range g.Rows {
		for col := range g.Cols {
			w.Invaders.Spawn(Invader{
				Body: sim.Body{Pos: core.V(g.OffsetX+float64(col)*g.Spacing, g.OffsetY+float64(row)*g.Spacing)},
				Row:  row,
				Col:  col,
			})
		}
	}
}

func (w *World) respawnPlayer() {
	w.Player.Pos = core.V((w.field.W-w.Player.W)/2, w.field.H-w.cfg.Player.BottomOffset-w.Player.H)
	w.Player.Vel = core.Vec{}
}

// marchSpeed grows with difficulty and as the grid thins out.
func (w *World) marchSpeed() float64 {
	total := w.Invaders.Cap()
	if total == 0 {
		return 0
	}
	thinned := 1 - float64(w.Invaders.Len())/float64(total)
	return w.difficulty.Speed(w.cfg.Invaders.Speed, w.Score, w.Tick) * (1 + 2*thinned)
}

func (w *World) shotRect(s *Shot, p config.ProjectileConfig) core.RectF {
	return core.RectF{X: s.Pos.X, Y: s.Pos.Y, W: p.Width, H: p.Height}
}

func (w *World) invaderRect(inv *Invader) core.RectF {
	return core.RectF{X: inv.Pos.X, Y: inv.Pos.Y, W: w.cfg.Invaders.Width, H: w.cfg.Invaders.Height}
}

// Resolve moves the cannon and fires while the key is held, at most once
// per cooldown.
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
		s := Shot{Body: sim.Body{
			Pos: core.V(w.Player.Pos.X+(w.Player.W-w.cfg.Shots.Width)/2, w.Player.Pos.Y-w.cfg.Shots.Height),
			Vel: core.V(0, -w.cfg.Shots.Speed),
		}}
		if _, ok := w.Shots.Spawn(s); ok {
			w.sounds.Play(sim.SoundLaser)
		}
	}
}

// Integrate moves the cannon, both shot pools and the grid, and drops bombs.
func (w *World) Integrate() {
	w.Player.Integrate(core.Vec{}, 1)
	w.Player.Pos = sim.BoundClamp.Apply(w.Player.Pos, core.V(w.Player.W, w.Player.H), w.field)

	for i, s := range w.Shots.All() {
		s.Integrate(core.Vec{}, 1)
		if s.Pos.Y+w.cfg.Shots.Height < 0 {
			w.Shots.Kill(i)
		}
	}
	for i, b := range w.Bombs.All() {
		b.Integrate(core.Vec{}, 1)
		if b.Pos.Y > w.field.H {
			w.Bombs.Kill(i)
		}
	}

	w.march()

	if w.bombs.Tick() {
		w.dropBomb()
		w.bombs = sim.NewTimer(w.difficulty.Interval(w.cfg.Bombs.Interval, w.Score, w.Tick))
	}
}

// march slides the grid sideways. When any invader crosses a side wall the
// whole grid is pushed back inside, drops one step and turns around.
func (w *World) march() {
	step := w.marchSpeed() * w.MarchDir
	minX, maxX := w.field.W, 0.0
	for _, inv := range w.Invaders.All() {
		inv.Vel = core.V(step, 0)
		inv.Integrate(core.Vec{}, 1)
		minX = min(minX, inv.Pos.X)
		maxX = max(maxX, inv.Pos.X+w.cfg.Invaders.Width)
	}
	if w.Invaders.Len() == 0 {
		return
	}

	var push float64
	switch {
	case maxX > w.field.W:
		push = w.field.W - maxX
	case minX < 0:
		push = -minX
	default:
		return
	}
	for _, inv := range w.Invaders.All() {
		inv.Pos = inv.Pos.Add(core.V(push, w.cfg.Invaders.Drop))
	}
	w.MarchDir = -w.MarchDir
}

// dropBomb fires from the lowest invader in the column of a randomly
// picked invader. Fuller columns fire more often.
func (w *World) dropBomb() {
	n := w.Invaders.Len()
	if n == 0 {
		return
	}

	pick := w.rng.IntN(n)
	col := -1
	for _, inv := range w.Invaders.All() {
		if pick == 0 {
			col = inv.Col
			break
		}
		pick--
	}

	var shooter *Invader
	for _, inv := range w.Invaders.All() {
		if inv.Col == col && (shooter == nil || inv.Row > shooter.Row) {
			shooter = inv
		}
	}

	w.Bombs.Spawn(Shot{Body: sim.Body{
		Pos: core.V(shooter.Pos.X+(w.cfg.Invaders.Width-w.cfg.Bombs.Width)/2, shooter.Pos.Y+w.cfg.Invaders.Height),
		Vel: core.V(0, w.difficulty.Speed(w.cfg.Bombs.Speed, w.Score, w.Tick)),
	}})
}

// Collide runs shots against invaders, bombs against the cannon, and checks
// whether the grid has reached the cannon's row.
func (w *World) Collide() {
	sim.FirstHit(w.Shots, w.Invaders,
		func(s *Shot, inv *Invader) bool {
			return w.shotRect(s, w.cfg.Shots).Overlaps(w.invaderRect(inv))
		},
		func(si, ii int) {
			w.Shots.Kill(si)
			w.Invaders.Kill(ii)
			w.Score += w.cfg.Invaders.Points
			w.sounds.Play(sim.SoundExplosion)
		},
	)

	player := w.Player.Rect()
	w.bombHit = sim.FirstTarget(w.Bombs, func(b *Shot) bool {
		return w.shotRect(b, w.cfg.Bombs.ProjectileConfig).Overlaps(player)
	})
	w.invaded = sim.FirstTarget(w.Invaders, func(inv *Invader) bool {
		return inv.Pos.Y+w.cfg.Invaders.Height >= player.Y
	}) >= 0
}

// React applies the invasion loss, bomb hits and the win condition.
func (w *World) React() {
	w.HighScore = max(w.HighScore, w.Score)

	if w.invaded {
		w.sounds.Play(sim.SoundLose)
		w.Round.Lose()
		return
	}

	if w.bombHit >= 0 {
		w.Bombs.Clear()
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

	if w.Invaders.Len() == 0 {
		w.Round.Win()
		w.sounds.Play(sim.SoundWin)
	}
}
