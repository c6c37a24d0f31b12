package breakout

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

func testConfig() config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func oneBrickLevels(n int) []*Level {
	levels := make([]*Level, n)
	for i := range levels {
		levels[i] = ParseLevel("t", "Test", []string{"#"}, 10)
	}
	return levels
}

// aimAt clears the pool, places one brick at r and puts a launched ball
// just above it, falling.
func aimAt(w *World, r core.RectF) {
	w.Bricks.Clear()
	w.Bricks.Spawn(Brick{Rect: r, Type: BrickNormal, Points: 10, HP: 1})
	w.Round.Launch()
	w.Ball.Pos = core.V(r.X+30, r.Y-12)
	w.Ball.Vel = core.V(0, 6)
}

func TestBallHitsBrickAndBounces(t *testing.T) {
	w := NewWorld(testConfig(), BuiltinLevels(10), ModeCampaign, 0)
	w.Bricks.Clear()
	target, _ := w.Bricks.Spawn(Brick{Rect: core.RectF{X: 280, Y: 400, W: 60, H: 30}, Type: BrickNormal, Points: 10, HP: 1})
	w.Bricks.Spawn(Brick{Rect: core.RectF{X: 600, Y: 60, W: 60, H: 30}, Type: BrickNormal, Points: 10, HP: 1})
	w.Paddle.Pos.X = 300
	w.Round.Launch()
	w.Ball.Pos = core.V(310, 388)
	w.Ball.Vel = core.V(0, 6)

	sim.Advance(w, idle())

	if w.Bricks.Active(target) {
		t.Error("brick should be destroyed")
	}
	if w.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Score)
	}
	if w.Ball.Vel.Y != -6 {
		t.Errorf("ball vy = %v, expected -6", w.Ball.Vel.Y)
	}
	if !w.Round.Playing() {
		t.Error("round should still be playing with a brick left")
	}
}

func TestHardBrickTakesTwoHits(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	sounds := &sim.SoundLog{}
	w.SetSounds(sounds)

	aimAt(w, core.RectF{X: 300, Y: 300, W: 60, H: 30})
	w.Bricks.At(0).HP = 2
	w.Bricks.Spawn(Brick{Rect: core.RectF{X: 30, Y: 60, W: 60, H: 30}, HP: 1})
	sim.Advance(w, idle())

	if !w.Bricks.Active(0) || w.Bricks.At(0).HP != 1 {
		t.Fatal("first hit should only damage a hard brick")
	}
	if w.Score != 0 || sounds.Count(sim.SoundHit) != 1 {
		t.Errorf("score = %d, hits = %d", w.Score, sounds.Count(sim.SoundHit))
	}
}

func TestSolidBricksAreWalls(t *testing.T) {
	levels := []*Level{ParseLevel("w", "Walls", []string{"X#X"}, 10)}
	w := NewWorld(testConfig(), levels, ModeCampaign, 0)

	if w.Bricks.Len() != 1 {
		t.Errorf("pool = %d, expected only the breakable brick", w.Bricks.Len())
	}
	if len(w.Walls) != 2 {
		t.Errorf("walls = %d, expected 2", len(w.Walls))
	}
}

func TestPaddleStaysInField(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	limit := w.Field().W - w.Paddle.W

	for range 200 {
		sim.Advance(w, hold(core.ActionRight))
		if w.Paddle.Pos.X < 0 || w.Paddle.Pos.X > limit {
			t.Fatalf("paddle x = %v outside [0, %v]", w.Paddle.Pos.X, limit)
		}
	}
	if w.Paddle.Pos.X != limit {
		t.Errorf("paddle x = %v, expected to rest at %v", w.Paddle.Pos.X, limit)
	}

	for range 200 {
		sim.Advance(w, hold(core.ActionLeft))
	}
	if w.Paddle.Pos.X != 0 {
		t.Errorf("paddle x = %v, expected 0", w.Paddle.Pos.X)
	}
}

func TestBallRidesPaddleUntilLaunch(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	if !w.Round.Awaiting() {
		t.Fatal("new world should await launch")
	}

	for range 10 {
		sim.Advance(w, hold(core.ActionLeft))
	}
	center := w.Paddle.Pos.X + w.Paddle.W/2
	if w.Ball.Pos.X != center {
		t.Errorf("ball x = %v, expected paddle center %v", w.Ball.Pos.X, center)
	}

	sim.Advance(w, press(core.ActionFire))
	if !w.Round.Playing() {
		t.Fatal("fire should launch")
	}
	if w.Ball.Vel.Y >= 0 {
		t.Errorf("ball vy = %v, expected upward", w.Ball.Vel.Y)
	}
}

func TestPaddleReturnsBallUpward(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	sounds := &sim.SoundLog{}
	w.SetSounds(sounds)
	w.Round.Launch()

	// Land right of center: english pushes the ball right.
	w.Ball.Pos = core.V(w.Paddle.Pos.X+w.Paddle.W*0.75, w.Paddle.Pos.Y-12)
	w.Ball.Vel = core.V(0, 6)
	sim.Advance(w, idle())

	if w.Ball.Vel.Y >= 0 {
		t.Errorf("ball vy = %v, expected upward", w.Ball.Vel.Y)
	}
	if w.Ball.Vel.X <= 0 {
		t.Errorf("ball vx = %v, expected english to the right", w.Ball.Vel.X)
	}
	if sounds.Count(sim.SoundBounce) != 1 {
		t.Error("paddle hit should bounce")
	}
}

func TestPaddleAndBrickInOneTickKeepBallUp(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	w.Round.Launch()

	center := w.Paddle.Pos.X + w.Paddle.W/2
	w.Bricks.Clear()
	low, _ := w.Bricks.Spawn(Brick{Rect: core.RectF{X: center - 30, Y: w.Paddle.Pos.Y - 40, W: 60, H: 30}, HP: 1, Points: 10})
	w.Bricks.Spawn(Brick{Rect: core.RectF{X: 30, Y: 60, W: 60, H: 30}, HP: 1})
	w.Ball.Pos = core.V(center, w.Paddle.Pos.Y-12)
	w.Ball.Vel = core.V(0, 6)
	sim.Advance(w, idle())

	if w.Bricks.Active(low) {
		t.Fatal("the brick touching the ball should break")
	}
	if w.Ball.Vel.Y >= 0 {
		t.Errorf("ball vy = %v, expected the paddle return to stay upward", w.Ball.Vel.Y)
	}
}

func TestLostBallCostsLife(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	w.Round.Launch()
	w.Ball.Pos = core.V(20, w.Field().H-2)
	w.Ball.Vel = core.V(0, 6)

	sim.Advance(w, idle())

	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if !w.Round.Awaiting() {
		t.Error("a lost ball should wait for the next launch")
	}
}

func TestLastLifeLosesRound(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeCampaign, 0)
	w.Lives = 1
	w.Round.Launch()
	w.Ball.Pos = core.V(20, w.Field().H-2)
	w.Ball.Vel = core.V(0, 6)

	sim.Advance(w, idle())

	if !w.Round.Lost() {
		t.Error("losing the last life should lose the round")
	}
	if w.Lives != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives)
	}

	sim.Advance(w, press(core.ActionFire))
	if !w.Round.Over() {
		t.Error("a finished round should ignore fire")
	}
}

func TestLevelProgression(t *testing.T) {
	tests := []struct {
		name      string
		mode      GameMode
		levels    int
		wantWon   bool
		wantLevel int
		wantCycle int
	}{
		{"next level", ModeCampaign, 2, false, 1, 0},
		{"campaign win", ModeCampaign, 1, true, 0, 0},
		{"endless wraps", ModeEndless, 1, false, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(testConfig(), oneBrickLevels(tc.levels), tc.mode, 0)
			aimAt(w, core.RectF{X: 300, Y: 300, W: 60, H: 30})
			sim.Advance(w, idle())

			if w.Round.Won() != tc.wantWon {
				t.Errorf("won = %v, expected %v", w.Round.Won(), tc.wantWon)
			}
			if w.LevelIndex != tc.wantLevel || w.Cycle != tc.wantCycle {
				t.Errorf("level = %d cycle = %d, expected %d/%d", w.LevelIndex, w.Cycle, tc.wantLevel, tc.wantCycle)
			}
			if !tc.wantWon {
				if !w.Round.Awaiting() {
					t.Error("a new level should start with the ball on the paddle")
				}
				if w.Bricks.Len() != 1 {
					t.Errorf("bricks = %d, expected the next level loaded", w.Bricks.Len())
				}
			}
		})
	}
}

func TestEndlessCycleSpeedsUp(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(1), ModeEndless, 0)
	base := w.speed()
	w.Cycle = 2
	if got := w.speed(); got <= base {
		t.Errorf("speed after two cycles = %v, expected more than %v", got, base)
	}
}

func TestStartLevelIsClamped(t *testing.T) {
	w := NewWorld(testConfig(), oneBrickLevels(3), ModeCampaign, 7)
	if w.LevelIndex != 2 {
		t.Errorf("level = %d, expected last level", w.LevelIndex)
	}
	w.Reset()
	if w.LevelIndex != 2 {
		t.Error("reset should return to the start level")
	}
}
