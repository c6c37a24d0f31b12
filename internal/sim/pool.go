// Package sim holds the frame simulation pieces every game shares:
// fixed-capacity entity pools, kinematics with boundary policies,
// first-match collision scans, fire gating and the round state machine.
//
// Nothing here allocates per tick or spawns goroutines. A game's World owns
// its pools exclusively and runs Resolve, Integrate, Collide and React once
// per tick through Advance.
package sim

import "iter"

// Pool is a fixed-capacity arena of entity slots.
// A slot is either active and readable or inactive and zeroed; the active
// flag is the only liveness signal. Spawning into a full pool is a no-op.
type Pool[T any] struct {
	items  []T
	active []bool
	count  int
}

// NewPool creates a pool with the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	capacity = max(capacity, 0)
	return &Pool[T]{
		items:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// Len returns the number of active slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Full reports whether every slot is active.
func (p *Pool[T]) Full() bool {
	return p.count == len(p.items)
}

// Spawn stores v in the first free slot and returns its index.
// Returns -1, false when the pool is full; the request is dropped.
func (p *Pool[T]) Spawn(v T) (int, bool) {
	for i, on := range p.active {
		if !on {
			p.items[i] = v
			p.active[i] = true
			p.count++
			return i, true
		}
	}
	return -1, false
}

// Kill deactivates slot i and zeroes its contents.
// Killing an inactive or out-of-range slot does nothing.
func (p *Pool[T]) Kill(i int) {
	if !p.Active(i) {
		return
	}
	var zero T
	p.items[i] = zero
	p.active[i] = false
	p.count--
}

// Active reports whether slot i holds a live entity.
func (p *Pool[T]) Active(i int) bool {
	return i >= 0 && i < len(p.active) && p.active[i]
}

// At returns a pointer to the entity in slot i, or nil if the slot is inactive.
func (p *Pool[T]) At(i int) *T {
	if !p.Active(i) {
		return nil
	}
	return &p.items[i]
}

// All iterates over active slots in index order.
// Slots killed during iteration are skipped; slots spawned during iteration
// are visited only if their index is still ahead of the cursor.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.items {
			if !p.active[i] {
				continue
			}
			if !yield(i, &p.items[i]) {
				return
			}
		}
	}
}

// Clear deactivates every slot.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
		p.active[i] = false
	}
	p.count = 0
}
