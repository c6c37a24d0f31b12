package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

func TestTimerExpiresOnce(t *testing.T) {
	tm := NewTimer(3)
	var fired []int
	for tick := 1; tick <= 6; tick++ {
		if tm.Tick() {
			fired = append(fired, tick)
		}
	}
	if len(fired) != 1 || fired[0] != 3 {
		t.Errorf("fired on %v, expected [3]", fired)
	}
	if !tm.Done() {
		t.Error("timer should be done")
	}

	tm.Restart()
	if tm.Done() || tm.Remaining() != 3 {
		t.Errorf("after Restart Remaining() = %d", tm.Remaining())
	}
}

func TestArcPathEndpoints(t *testing.T) {
	a := ArcPath{Center: core.V(360, 450), Radius: 200}

	near := func(got, want core.Vec) bool {
		return math.Abs(got.X-want.X) < 1e-9 && math.Abs(got.Y-want.Y) < 1e-9
	}
	d := 200 * math.Sqrt2 / 2

	tests := []struct {
		t    float64
		want core.Vec
	}{
		{0, core.V(360-d, 450+d)},  // 3π/4
		{0.5, core.V(360+d, 450+d)}, // π/4
		{1, core.V(360-d, 450-d)},   // 5π/4
		{2, core.V(360-d, 450-d)},   // clamped
	}

	for _, tc := range tests {
		if got := a.At(tc.t); !near(got, tc.want) {
			t.Errorf("At(%v) = %v, expected %v", tc.t, got, tc.want)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Float64() != b.Float64() {
			t.Fatal("equal seeds should give equal sequences")
		}
	}
}
