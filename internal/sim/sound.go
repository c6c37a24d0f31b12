package sim

// SoundID names a sound effect. The audio backend decides what it sounds like.
type SoundID int

const (
	SoundLaser SoundID = iota
	SoundExplosion
	SoundBounce
	SoundHit
	SoundLose
	SoundWin
)

func (s SoundID) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundBounce:
		return "bounce"
	case SoundHit:
		return "hit"
	case SoundLose:
		return "lose"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// SoundSink receives fire-and-forget sound requests from the simulation.
// Play must not block the tick.
type SoundSink interface {
	Play(id SoundID)
}

// NopSounds discards every request.
type NopSounds struct{}

// Play does nothing.
func (NopSounds) Play(SoundID) {}

// SoundLog records requests in order. Useful in tests.
type SoundLog struct {
	Played []SoundID
}

// Play appends id to the log.
func (l *SoundLog) Play(id SoundID) {
	l.Played = append(l.Played, id)
}

// Count returns how many times id was played.
func (l *SoundLog) Count(id SoundID) int {
	n := 0
	for _, p := range l.Played {
		if p == id {
			n++
		}
	}
	return n
}
