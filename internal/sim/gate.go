package sim

import "github.com/vovakirdan/arcade-classics/internal/core"

// GateMode selects how a held fire key turns into fire requests.
type GateMode int

const (
	// GateEdge fires only on the tick the key went down.
	GateEdge GateMode = iota
	// GateLatch fires once per press and re-arms after the key is seen up.
	GateLatch
	// GateCooldown fires while the key is down, at most once every Cooldown ticks.
	GateCooldown
)

func (m GateMode) String() string {
	switch m {
	case GateLatch:
		return "latch"
	case GateCooldown:
		return "cooldown"
	default:
		return "edge"
	}
}

// ParseGateMode converts a config value to a GateMode.
// Unknown or empty values fall back to def.
func ParseGateMode(s string, def GateMode) GateMode {
	switch s {
	case "edge":
		return GateEdge
	case "latch":
		return GateLatch
	case "cooldown":
		return GateCooldown
	}
	return def
}

// FireGate debounces fire input for one controlled entity.
// The zero value is an armed edge gate.
type FireGate struct {
	Mode     GateMode
	Cooldown int // Ticks between shots in GateCooldown mode

	latched bool
	wait    int
}

// NewFireGate creates an armed gate.
func NewFireGate(mode GateMode, cooldown int) FireGate {
	return FireGate{Mode: mode, Cooldown: cooldown}
}

// Request reports whether action a in frame f produces a fire request
// this tick. It must be called exactly once per tick so latch and cooldown
// state stays in step with the clock.
func (g *FireGate) Request(f core.InputFrame, a core.Action) bool {
	switch g.Mode {
	case GateLatch:
		if !f.Down(a) {
			g.latched = false
			return false
		}
		if g.latched {
			return false
		}
		g.latched = true
		return true

	case GateCooldown:
		if g.wait > 0 {
			g.wait--
		}
		if !f.Down(a) || g.wait > 0 {
			return false
		}
		g.wait = g.Cooldown
		return true

	default:
		return f.Has(a)
	}
}

// Reset re-arms the gate.
func (g *FireGate) Reset() {
	g.latched = false
	g.wait = 0
}
