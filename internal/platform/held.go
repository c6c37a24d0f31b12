package platform

import (
	"time"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Hold windows. A terminal only reports presses, so a key counts as held
// while its auto-repeat keeps arriving. The first repeat comes after the
// keyboard's repeat delay, later ones much faster.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type heldEntry struct {
	last    int // Tick of the latest press or repeat
	repeats int
}

// HeldKeys derives held state from a stream of key presses.
type HeldKeys struct {
	initial int
	repeat  int
	keys    map[Hit]heldEntry
}

// NewHeldKeys creates a tracker for a loop running at tickRate.
func NewHeldKeys(tickRate int) *HeldKeys {
	return NewHeldKeysWindow(tickRate, DefaultInitialHold, DefaultRepeatHold)
}

// NewHeldKeysWindow creates a tracker with explicit hold windows.
func NewHeldKeysWindow(tickRate int, initial, repeat time.Duration) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	toTicks := func(d time.Duration) int {
		return max(1, int(d*time.Duration(tickRate)/time.Second))
	}
	return &HeldKeys{
		initial: toTicks(initial),
		repeat:  toTicks(repeat),
		keys:    make(map[Hit]heldEntry),
	}
}

// opposite returns the action a press of a cancels for the same player.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// confirmed reports whether e counts as held. Fire is only held once the
// terminal's auto-repeat has arrived, so a single tap is a single shot.
func confirmed(hit Hit, e heldEntry) bool {
	return hit.Action != core.ActionFire || e.repeats > 0
}

func (h *HeldKeys) window(e heldEntry) int {
	if e.repeats == 0 {
		return h.initial
	}
	return h.repeat
}

// Press records hit at tick. It returns true for a fresh press and false
// when the press is an auto-repeat of a key already held.
func (h *HeldKeys) Press(hit Hit, tick int) bool {
	if opp := opposite(hit.Action); opp != core.ActionNone {
		delete(h.keys, Hit{Player: hit.Player, Action: opp})
	}

	e, ok := h.keys[hit]
	if ok && tick-e.last <= h.window(e) {
		e.last = tick
		e.repeats++
		h.keys[hit] = e
		return false
	}
	h.keys[hit] = heldEntry{last: tick}
	return true
}

// Apply marks every still-held action in frame and forgets expired keys.
func (h *HeldKeys) Apply(frame *core.MultiInputFrame, tick int) {
	for hit, e := range h.keys {
		if tick-e.last > h.window(e) {
			delete(h.keys, hit)
			continue
		}
		if confirmed(hit, e) {
			frame.Hold(hit.Player, hit.Action)
		}
	}
}

// Held reports whether hit is currently considered down.
func (h *HeldKeys) Held(hit Hit, tick int) bool {
	e, ok := h.keys[hit]
	return ok && confirmed(hit, e) && tick-e.last <= h.window(e)
}

// Clear forgets every key.
func (h *HeldKeys) Clear() {
	clear(h.keys)
}
