package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Play forever, score until game over
)

// endlessSpeedUp is added to the ball speed multiplier per endless cycle.
const endlessSpeedUp = 0.1

// Paddle is the player's mover. Pos is its top-left corner.
type Paddle struct {
	sim.Body
	W, H float64
}

// Rect returns the paddle's bounds.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Ball is positioned by its center.
type Ball struct {
	sim.Body
	Radius float64
}

// Brick is a breakable target in the brick pool.
type Brick struct {
	Rect   core.RectF
	Type   BrickType
	Points int
	HP     int
	Row    int
}

// World is the complete Breakout state.
//
// Loss policy: a ball that leaves the bottom of the field costs a life and
// returns to the paddle (sim.LossLife with PhaseAwaitingLaunch); the last
// life ends the round as lost. Clearing the brick pool loads the next
// level, and clearing the last campaign level wins the round.
type World struct {
	cfg        config.BreakoutConfig
	field      sim.Field
	mode       GameMode
	levels     []*Level
	startLevel int

	Paddle     Paddle
	Ball       Ball
	Bricks     *sim.Pool[Brick]
	Walls      []core.RectF // Solid bricks: bounce the ball, never break
	Score      int
	Lives      int
	LevelIndex int
	Cycle      int // Completed passes through the pack (endless mode)
	Tick       int
	Round      sim.Round

	launch     sim.FireGate
	difficulty *config.DifficultyManager
	sounds     sim.SoundSink

	// Per-tick scratch.
	paddleHit bool
	brickHit  int
	wallHit   int
	ballLost  bool
}

// NewWorld creates a world at startLevel of the given pack.
func NewWorld(cfg config.BreakoutConfig, levels []*Level, mode GameMode, startLevel int) *World {
	if len(levels) == 0 {
		levels = BuiltinLevels(cfg.Bricks.Points)
	}
	w := &World{
		cfg:        cfg,
		field:      sim.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		mode:       mode,
		levels:     levels,
		startLevel: core.Clamp(startLevel, 0, len(levels)-1),
		Bricks:     sim.NewPool[Brick](MaxRows * MaxCols),
		Walls:      make([]core.RectF, 0, MaxRows*MaxCols),
		launch:     sim.NewFireGate(sim.ParseGateMode(cfg.LaunchGate, sim.GateEdge), 0),
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

// Levels returns the number of levels in the pack.
func (w *World) Levels() int {
	return len(w.levels)
}

// Level returns the level being played.
func (w *World) Level() *Level {
	return w.levels[w.LevelIndex]
}

// Reset puts every pool and counter back into new-game state.
func (w *World) Reset() {
	w.Score = w.cfg.Gameplay.InitialScore
	w.Lives = w.cfg.Gameplay.Lives
	w.LevelIndex = w.startLevel
	w.Cycle = 0
	w.Tick = 0
	w.Round = sim.Round{}
	w.launch.Reset()

	w.Paddle = Paddle{
		Body: sim.Body{Pos: core.V(
			(w.field.W-w.cfg.Paddle.Width)/2,
			w.field.H-w.cfg.Paddle.BottomOffset,
		)},
		W: w.cfg.Paddle.Width,
		H: w.cfg.Paddle.Height,
	}
	w.Ball = Ball{Radius: w.cfg.Ball.Radius}

	w.loadLevel(w.LevelIndex)
	w.serve()
}

// loadLevel fills the brick pool and wall list from a level.
func (w *World) loadLevel(index int) {
	w.Bricks.Clear()
	w.Walls = w.Walls[:0]

	b := w.cfg.Bricks
	for _, spec := range w.levels[index].Bricks {
		rect := core.RectF{
			X: b.OffsetX + float64(spec.Col)*(b.Width+b.Padding),
			Y: b.OffsetY + float64(spec.Row)*(b.Height+b.Padding),
			W: b.Width,
			H: b.Height,
		}
		if spec.Type == BrickSolid {
			w.Walls = append(w.Walls, rect)
			continue
		}
		w.Bricks.Spawn(Brick{Rect: rect, Type: spec.Type, Points: spec.Points, HP: spec.HP, Row: spec.Row})
	}
}

// serve parks the ball on the paddle until the next launch.
func (w *World) serve() {
	w.Round.Await()
	w.Ball.Vel = core.Vec{}
	w.stickBall()
}

func (w *World) stickBall() {
	w.Ball.Pos = core.V(w.Paddle.Pos.X+w.Paddle.W/2, w.Paddle.Pos.Y-w.Ball.Radius-2)
}

// speed returns the current ball speed.
func (w *World) speed() float64 {
	s := w.difficulty.Speed(w.cfg.Ball.Speed, w.Score, w.Tick)
	return s * (1 + endlessSpeedUp*float64(w.Cycle))
}

// Resolve moves the paddle with left/right and launches on fire.
func (w *World) Resolve(in core.MultiInputFrame) {
	f := in.Player1()
	w.Tick++

	w.Paddle.Vel = core.Vec{}
	if f.Down(core.ActionLeft) {
		w.Paddle.Vel.X -= w.cfg.Paddle.Speed
	}
	if f.Down(core.ActionRight) {
		w.Paddle.Vel.X += w.cfg.Paddle.Speed
	}

	fire := w.launch.Request(f, core.ActionFire)
	if fire && w.Round.Awaiting() {
		s := w.speed()
		w.Ball.Vel = core.V(s, -s)
		w.Round.Launch()
	}
}

// Integrate clamps the paddle and moves the ball, bouncing off the side
// and top walls. The bottom is open.
func (w *World) Integrate() {
	w.Paddle.Integrate(core.Vec{}, 1)
	w.Paddle.Pos = sim.BoundClamp.Apply(w.Paddle.Pos, core.V(w.Paddle.W, w.Paddle.H), w.field)

	if !w.Round.Playing() {
		w.stickBall()
		return
	}

	b := &w.Ball
	b.Integrate(core.Vec{}, 1)
	r := b.Radius
	if b.Pos.X < r {
		b.Pos.X = r
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.X > w.field.W-r {
		b.Pos.X = w.field.W - r
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = -b.Vel.Y
	}
}

// Collide tests the ball against the paddle, then the first brick, then walls.
func (w *World) Collide() {
	w.paddleHit, w.ballLost = false, false
	w.brickHit, w.wallHit = -1, -1
	if !w.Round.Playing() {
		return
	}

	b := &w.Ball
	w.paddleHit = core.CircleRect(b.Pos, b.Radius, w.Paddle.Rect())
	w.brickHit = sim.FirstTarget(w.Bricks, func(br *Brick) bool {
		return core.CircleRect(b.Pos, b.Radius, br.Rect)
	})
	if w.brickHit < 0 {
		for i, wall := range w.Walls {
			if core.CircleRect(b.Pos, b.Radius, wall) {
				w.wallHit = i
				break
			}
		}
	}
	w.ballLost = b.Pos.Y > w.field.H
}

// bounce flips the ball off a rectangle: horizontally when the ball's
// center is beside it, vertically otherwise. keepY leaves the vertical
// velocity alone, for a tick where the paddle already returned the ball.
func bounce(b *Ball, r core.RectF, keepY bool) {
	if b.Pos.X < r.X || b.Pos.X > r.Right() {
		b.Vel.X = -b.Vel.X
	} else if !keepY {
		b.Vel.Y = -b.Vel.Y
	}
}

// React applies paddle english, brick damage, life loss and level progress.
func (w *World) React() {
	if !w.Round.Playing() {
		return
	}
	b := &w.Ball

	if w.paddleHit {
		b.Pos.Y = w.Paddle.Pos.Y - b.Radius - 1
		s := w.speed()
		b.Vel.Y = -math.Max(math.Abs(b.Vel.Y), s)
		if w.cfg.Ball.English {
			center := w.Paddle.Pos.X + w.Paddle.W/2
			hit := core.ClampF((b.Pos.X-center)/(w.Paddle.W/2), -1, 1)
			b.Vel.X = s * hit
		}
		w.sounds.Play(sim.SoundBounce)
	}

	switch {
	case w.brickHit >= 0:
		br := w.Bricks.At(w.brickHit)
		bounce(b, br.Rect, w.paddleHit)
		br.HP--
		if br.HP <= 0 {
			w.Score += br.Points
			w.Bricks.Kill(w.brickHit)
			w.sounds.Play(sim.SoundExplosion)
		} else {
			w.sounds.Play(sim.SoundHit)
		}
	case w.wallHit >= 0:
		bounce(b, w.Walls[w.wallHit], w.paddleHit)
		w.sounds.Play(sim.SoundBounce)
	}

	if w.ballLost {
		w.Lives--
		w.sounds.Play(sim.SoundLose)
		if w.Lives <= 0 {
			w.Lives = 0
			w.Round.Lose()
			return
		}
		w.serve()
		return
	}

	if w.Bricks.Len() == 0 {
		w.levelCleared()
	}
}

// levelCleared advances to the next level or wins the campaign.
func (w *World) levelCleared() {
	w.LevelIndex++
	if w.LevelIndex >= len(w.levels) {
		if w.mode == ModeCampaign {
			w.LevelIndex = len(w.levels) - 1
			w.Round.Win()
			w.sounds.Play(sim.SoundWin)
			return
		}
		w.LevelIndex = 0
		w.Cycle++
	}
	w.loadLevel(w.LevelIndex)
	w.serve()
}
