package sim

// FirstHit scans every active shot against every active target in slot
// order. For each shot, scanning stops at the first target for which hit
// reports true and react is called with both slot indices; later targets are
// never considered for that shot, even if they overlap too.
//
// react may kill the shot, the target or both. Targets spawned by react are
// only seen by later shots. Returns the number of hits.
func FirstHit[S, T any](shots *Pool[S], targets *Pool[T], hit func(*S, *T) bool, react func(shot, target int)) int {
	hits := 0
	for si, s := range shots.All() {
		for ti, t := range targets.All() {
			if !hit(s, t) {
				continue
			}
			react(si, ti)
			hits++
			break
		}
	}
	return hits
}

// FirstTarget returns the lowest active slot for which test reports true,
// or -1. Used for a single mover against a pool.
func FirstTarget[T any](targets *Pool[T], test func(*T) bool) int {
	for i, t := range targets.All() {
		if test(t) {
			return i
		}
	}
	return -1
}
