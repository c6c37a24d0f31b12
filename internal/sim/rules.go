package sim

import "github.com/vovakirdan/arcade-classics/internal/core"

// Rules is one game's frame simulation step, split into its four stages.
// Implementations own all of their state; nothing is shared between worlds.
type Rules interface {
	// Resolve turns this tick's key state into rotation, impulses and
	// gated fire requests, spawning projectiles where requested.
	Resolve(in core.MultiInputFrame)
	// Integrate advances every active body and applies boundary policies.
	Integrate()
	// Collide runs the first-match-wins pair scans and records hits.
	Collide()
	// React applies scoring, splitting, respawns, life loss and round end.
	React()
}

// Advance runs one tick of r: Resolve, Integrate, Collide, React.
func Advance(r Rules, in core.MultiInputFrame) {
	r.Resolve(in)
	r.Integrate()
	r.Collide()
	r.React()
}
