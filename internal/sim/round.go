package sim

import "github.com/vovakirdan/arcade-classics/internal/core"

// Phase is the round state.
type Phase int

const (
	PhasePlaying        Phase = iota
	PhaseAwaitingLaunch       // Ball held on the paddle until fire
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingLaunch:
		return "awaiting"
	case PhaseRoundOver:
		return "over"
	default:
		return "playing"
	}
}

// Outcome says how a finished round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// LossPolicy is how a game reacts to a losing collision.
type LossPolicy int

const (
	// LossReset reinitializes the whole game on the spot.
	LossReset LossPolicy = iota
	// LossLife costs one life and respawns; zero lives ends the round.
	LossLife
)

func (p LossPolicy) String() string {
	if p == LossLife {
		return "life"
	}
	return "reset"
}

// Round tracks phase and outcome. The zero value is a round in play.
type Round struct {
	Phase   Phase
	Outcome Outcome
}

// Playing reports whether entities move this tick.
func (r Round) Playing() bool { return r.Phase == PhasePlaying }

// Awaiting reports whether the round waits for a launch.
func (r Round) Awaiting() bool { return r.Phase == PhaseAwaitingLaunch }

// Over reports whether the round has ended.
func (r Round) Over() bool { return r.Phase == PhaseRoundOver }

// Won reports whether the round ended in a win.
func (r Round) Won() bool { return r.Over() && r.Outcome == OutcomeWon }

// Lost reports whether the round ended in a loss.
func (r Round) Lost() bool { return r.Over() && r.Outcome == OutcomeLost }

// Launch moves an awaiting round into play.
func (r *Round) Launch() {
	if r.Phase == PhaseAwaitingLaunch {
		r.Phase = PhasePlaying
	}
}

// Await parks a running round until the next launch.
func (r *Round) Await() {
	if r.Phase != PhaseRoundOver {
		r.Phase = PhaseAwaitingLaunch
	}
}

// Win ends the round as won. A finished round keeps its first outcome.
func (r *Round) Win() { r.finish(OutcomeWon) }

// Lose ends the round as lost. A finished round keeps its first outcome.
func (r *Round) Lose() { r.finish(OutcomeLost) }

func (r *Round) finish(o Outcome) {
	if r.Phase == PhaseRoundOver {
		return
	}
	r.Phase = PhaseRoundOver
	r.Outcome = o
}

// Restart reports whether the round is over and f asks for a new game
// (Enter or R). The caller performs the full reinitialization.
func (r Round) Restart(f core.InputFrame) bool {
	return r.Over() && (f.Has(core.ActionConfirm) || f.Has(core.ActionRestart))
}

// Finished holds the score of a game that ended in a loss reset instead of
// a RoundOver, until the platform collects it.
type Finished struct {
	score int
	ok    bool
}

// Record stores the score of the game that just ended.
func (f *Finished) Record(score int) {
	f.score, f.ok = score, true
}

// Take returns the recorded score once and forgets it.
func (f *Finished) Take() (int, bool) {
	score, ok := f.score, f.ok
	*f = Finished{}
	return score, ok
}
