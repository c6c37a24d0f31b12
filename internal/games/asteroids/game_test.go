package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
	"github.com/vovakirdan/arcade-classics/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.MultiInputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewMultiInputFrame()
		switch {
		case i%11 == 0:
			inputs[i].Press(core.Player1, core.ActionFire)
		case i%5 < 2:
			inputs[i].Hold(core.Player1, core.ActionUp)
		case i%5 == 3:
			inputs[i].Hold(core.Player1, core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New(registry.Options{})
		g.Reset(testRuntime())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.World().Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Tick != s2.Tick || s1.Score != s2.Score {
		t.Errorf("Determinism failed: tick/score differ")
	}
}

func TestGamePauseFreezesWorld(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	snap := g.World().Snapshot()
	for range 10 {
		g.Step(idle())
	}
	after := g.World().Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("a paused world should not move")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("P again should resume")
	}
}

func TestGameRestartAfterWin(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime())
	w := g.World()

	w.Rocks.Clear()
	w.Rocks.Spawn(Rock{Body: sim.Body{Pos: core.V(100, 100)}, Size: 15})
	w.Bullets.Spawn(Bullet{Body: sim.Body{Pos: core.V(100, 100)}})
	g.Step(idle())

	if st := g.State(); !st.GameOver || !st.Won {
		t.Fatalf("state = %+v, expected won", st)
	}

	g.Step(press(core.ActionFire))
	if !g.State().GameOver {
		t.Error("fire should not restart a finished round")
	}

	g.Step(press(core.ActionConfirm))
	if g.State().GameOver {
		t.Error("Enter should restart")
	}
	if w.Rocks.Len() != 5 {
		t.Errorf("rocks after restart = %d, expected 5", w.Rocks.Len())
	}
}

func TestGameRender(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), '↑') {
		t.Error("ship should be drawn pointing up")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New(registry.Options{})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	g.Step(press(core.ActionFire))
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small screen should show a warning")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rot  float64
		want rune
	}{
		{0, '↑'}, {90, '→'}, {180, '↓'}, {-90, '←'}, {405, '↗'}, {-720, '↑'},
	}
	for _, tc := range tests {
		if got := shipGlyph(tc.rot); got != tc.want {
			t.Errorf("shipGlyph(%v) = %q, expected %q", tc.rot, got, tc.want)
		}
	}
}
