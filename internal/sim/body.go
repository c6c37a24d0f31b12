package sim

import "github.com/vovakirdan/arcade-classics/internal/core"

// Field is the playfield size in world units.
type Field struct {
	W, H float64
}

// Body is the kinematic part of a mover or projectile.
type Body struct {
	Pos core.Vec
	Vel core.Vec
	Rot float64 // Degrees; never normalized
}

// Integrate advances the body by one tick:
// velocity += accel, velocity *= friction, position += velocity.
// A friction of 0 means "not defined" and behaves like 1.0.
func (b *Body) Integrate(accel core.Vec, friction float64) {
	if friction == 0 {
		friction = 1
	}
	b.Vel = b.Vel.Add(accel).Scale(friction)
	b.Pos = b.Pos.Add(b.Vel)
}

// Boundary is the per-entity-class policy applied after integration.
type Boundary int

const (
	BoundNone  Boundary = iota // Leave position alone (projectiles that die off-field)
	BoundWrap                  // Exit one edge, re-enter the opposite one
	BoundClamp                 // Stop at the edge
)

// String returns the config name of the policy.
func (b Boundary) String() string {
	switch b {
	case BoundWrap:
		return "wrap"
	case BoundClamp:
		return "clamp"
	default:
		return "none"
	}
}

// ParseBoundary converts a config value to a Boundary.
// Unknown values fall back to def.
func ParseBoundary(s string, def Boundary) Boundary {
	switch s {
	case "wrap":
		return BoundWrap
	case "clamp":
		return BoundClamp
	case "none":
		return BoundNone
	}
	return def
}

// Apply enforces the policy on a top-left position for an entity of the
// given extent. Wrap folds into [0, W)x[0, H); clamp keeps the entity
// fully inside, [0, W-extent.X]x[0, H-extent.Y].
func (b Boundary) Apply(pos, extent core.Vec, f Field) core.Vec {
	switch b {
	case BoundWrap:
		return core.Vec{X: core.Wrap(pos.X, f.W), Y: core.Wrap(pos.Y, f.H)}
	case BoundClamp:
		return core.Vec{
			X: core.ClampF(pos.X, 0, max(f.W-extent.X, 0)),
			Y: core.ClampF(pos.Y, 0, max(f.H-extent.Y, 0)),
		}
	}
	return pos
}

// ApplyCentered is Apply for entities positioned by their center with the
// given half extent (tanks, ships).
func (b Boundary) ApplyCentered(center, half core.Vec, f Field) core.Vec {
	if b != BoundClamp {
		return b.Apply(center, core.Vec{}, f)
	}
	topLeft := b.Apply(center.Sub(half), half.Scale(2), f)
	return topLeft.Add(half)
}

// OutOfField reports whether p lies outside [0, W]x[0, H].
func OutOfField(p core.Vec, f Field) bool {
	return p.X < 0 || p.X > f.W || p.Y < 0 || p.Y > f.H
}
