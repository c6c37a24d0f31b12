package sim

import (
	"math"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Timer counts down whole ticks.
type Timer struct {
	Period int
	left   int
}

// NewTimer creates a timer that expires after period ticks.
func NewTimer(period int) Timer {
	return Timer{Period: period, left: period}
}

// Tick advances the timer and reports whether it expired on this tick.
// An expired timer stays done until Restart.
func (t *Timer) Tick() bool {
	if t.left <= 0 {
		return false
	}
	t.left--
	return t.left == 0
}

// Done reports whether the timer has run out.
func (t Timer) Done() bool { return t.left <= 0 }

// Remaining returns the ticks left.
func (t Timer) Remaining() int { return max(t.left, 0) }

// Restart rewinds the timer to its full period.
func (t *Timer) Restart() { t.left = t.Period }

// ArcPath is a two-leg swoop around Center: first from 3π/4 to π/4, then
// from π/4 to 5π/4, in screen coordinates (y grows downward).
type ArcPath struct {
	Center core.Vec
	Radius float64
}

// At returns the point on the path at progress t in [0, 1].
// Values outside the range are clamped.
func (a ArcPath) At(t float64) core.Vec {
	t = core.ClampF(t, 0, 1)
	var angle float64
	if t < 0.5 {
		angle = lerp(3*math.Pi/4, math.Pi/4, t*2)
	} else {
		angle = lerp(math.Pi/4, 5*math.Pi/4, (t-0.5)*2)
	}
	return core.Vec{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
