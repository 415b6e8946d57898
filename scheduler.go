package lumen

// scheduler coalesces update requests into at most one tick per display
// frame. The host drives frames by calling frame() once per refresh (see
// Engine.Frame); schedule() only marks the pending flag, so N calls before
// the next frame boundary collapse into exactly one tick.
//
// The flag is cleared before the tick runs: a schedule() issued during tick
// execution (a visibility callback firing synchronously, for example) leaves
// the flag set and produces a subsequent tick rather than being dropped.
// Single-threaded by contract, so a plain bool suffices — no atomics.
type scheduler struct {
	pending bool
	tick    func()
}

// schedule requests a recomputation on the next frame. Idempotent while a
// tick is pending.
func (s *scheduler) schedule() {
	s.pending = true
}

// frame runs the pending tick, if any. Called once per display refresh.
func (s *scheduler) frame() {
	if !s.pending {
		return
	}
	s.pending = false
	s.tick()
}
