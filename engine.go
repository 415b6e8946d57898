package lumen

import "time"

// Engine runs the update loop: it tracks opted-in elements of a Document,
// watches their visibility against the viewport, coalesces change signals
// into frame-aligned ticks, and publishes light geometry for every visible
// member to the write surface.
//
// Everything happens on the host's frame thread. The host calls Frame once
// per display refresh; all other entry points only mutate state and mark the
// scheduler pending.
type Engine struct {
	doc    *Document
	vars   VarMap
	source Source
	sink   Sink
	store  EventStore

	track tracker
	vis   *visibility
	sched scheduler

	started bool
}

// NewEngine creates an engine for the given document. The global read
// surface defaults to a fresh VarMap (see Vars) and the write surface to the
// nodes' own var surfaces (see Node.Var).
func NewEngine(doc *Document) *Engine {
	e := &Engine{
		doc:   doc,
		vars:  VarMap{},
		sink:  nodeSink{},
		track: newTracker(),
	}
	e.source = e.vars
	e.vis = newVisibility(doc, DefaultMargin, e.Schedule, e.visibilityChanged)
	e.sched.tick = e.update
	return e
}

// Vars returns the default global VarMap. Mutations take effect on the next
// tick; remember to call Schedule so one happens.
func (e *Engine) Vars() VarMap {
	return e.vars
}

// SetSource replaces the global read surface. Passing nil restores the
// default VarMap.
func (e *Engine) SetSource(src Source) {
	if src == nil {
		e.source = e.vars
		return
	}
	e.source = src
}

// SetSink replaces the write surface. Passing nil restores the default
// node-surface sink.
func (e *Engine) SetSink(sink Sink) {
	if sink == nil {
		e.sink = nodeSink{}
		return
	}
	e.sink = sink
}

// SetEventStore sets the optional ECS bridge.
func (e *Engine) SetEventStore(store EventStore) {
	e.store = store
}

// SetMargin overrides the visibility trigger margin. Takes effect on the
// next visibility refresh.
func (e *Engine) SetMargin(m float64) {
	e.vis.margin = m
}

// --- Lifecycle ---

// Start performs the initial full scan of the document for opted-in
// elements, begins listening for structural-change and viewport signals,
// and requests an initial tick. Idempotent.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	qualifying(e.doc.Root(), e.Register)
	e.doc.addObserver(e)
	e.Schedule()
}

// Stop releases everything Start acquired: the document observer, every
// visibility observation, and the tracked set. Previously published values
// remain on the nodes. Idempotent.
func (e *Engine) Stop() {
	if !e.started {
		return
	}
	e.started = false
	e.doc.removeObserver(e)
	for _, n := range e.track.members {
		e.vis.unobserve(n)
	}
	e.track.clear()
	e.vis.clear()
	e.sched.pending = false
}

// Started reports whether the engine is currently running.
func (e *Engine) Started() bool {
	return e.started
}

// --- Membership ---

// Register adds n to the tracked set, begins visibility observation for it,
// and copies its authoring knobs to the write surface once. Idempotent:
// registering a tracked node is a no-op, so rapid remove/re-add cycles never
// double-observe.
func (e *Engine) Register(n *Node) {
	if !e.track.add(n) {
		return
	}
	e.applyKnobs(n)
	e.emit(LightingEvent{Type: EventRegistered, Node: n})
	e.vis.observe(n)
}

// Unregister ends visibility observation for n and removes it from the
// tracked set. Idempotent no-op if n is not tracked.
func (e *Engine) Unregister(n *Node) {
	if !e.track.remove(n) {
		return
	}
	e.vis.unobserve(n)
	e.emit(LightingEvent{Type: EventUnregistered, Node: n})
}

// Members returns the tracked elements in registration order.
// The returned slice MUST NOT be mutated.
func (e *Engine) Members() []*Node {
	return e.track.members
}

// Visible returns n's last known visibility flag. Always false for nodes
// that are not tracked.
func (e *Engine) Visible(n *Node) bool {
	return e.vis.visible(n)
}

// applyKnobs copies the authoring overrides from n's attributes to the
// write surface, verbatim. Missing knobs are skipped, not defaulted.
func (e *Engine) applyKnobs(n *Node) {
	for _, name := range knobNames {
		if v, ok := n.Attr(name); ok {
			e.sink.Set(n, name, v)
		}
	}
}

// --- Scheduling ---

// Schedule requests a recomputation on the next frame. Idempotent while a
// tick is pending; safe to call from inside a running tick, which yields a
// subsequent tick rather than a dropped one.
func (e *Engine) Schedule() {
	e.sched.schedule()
}

// Frame runs the pending tick, if any. The host calls this once per display
// refresh (from an ebiten Update, for example).
func (e *Engine) Frame() {
	e.sched.frame()
}

// Pending reports whether a tick is scheduled for the next frame.
func (e *Engine) Pending() bool {
	return e.sched.pending
}

// --- Document observer ---

func (e *Engine) subtreeAdded(root *Node) {
	qualifying(root, e.Register)
}

func (e *Engine) subtreeRemoved(root *Node) {
	e.track.trackedIn(root, e.Unregister)
}

func (e *Engine) viewportChanged() {
	e.vis.refresh()
	e.Schedule()
}

func (e *Engine) visibilityChanged(n *Node, visible bool) {
	if visible {
		e.emit(LightingEvent{Type: EventShown, Node: n})
	} else {
		e.emit(LightingEvent{Type: EventHidden, Node: n})
	}
}

// --- The tick ---

// update is one tick of the orchestrator: snapshot the light parameters,
// measure every visible member against its current bounds, publish.
// Hidden members are skipped; their previously published values persist.
func (e *Engine) update() {
	var stats tickStats
	var t0 time.Time
	debug := e.doc.debug

	if debug {
		t0 = time.Now()
	}

	params := e.readParams()

	for _, n := range e.track.members {
		if !e.vis.visible(n) {
			continue
		}
		m := Measure(n.Bounds(), params)
		e.publish(n, m)
		stats.published++
	}

	if debug {
		stats.tickTime = time.Since(t0)
		stats.members = e.track.len()
		stats.observed = e.vis.count()
		e.debugLog(stats)
	}
}

// readParams snapshots the global light parameters from the read surface.
// Absent or unparsable values come back as NaN and degrade downstream per
// the geometry engine's policy; a tick never fails outright.
func (e *Engine) readParams() LightParams {
	return LightParams{
		X:         lookupNumber(e.source, VarLightX),
		Y:         lookupNumber(e.source, VarLightY),
		Range:     lookupNumber(e.source, VarLightRange),
		Intensity: lookupNumber(e.source, VarLightIntensity),
		Ambient:   lookupNumber(e.source, VarLightAmbient),
	}
}

// publish writes every Measurement field as an individually named value so
// the styling layer can consume any subset independently.
func (e *Engine) publish(n *Node, m Measurement) {
	e.sink.Set(n, VarCenterX, formatLength(m.CenterX))
	e.sink.Set(n, VarCenterY, formatLength(m.CenterY))
	e.sink.Set(n, VarDX, formatLength(m.DX))
	e.sink.Set(n, VarDY, formatLength(m.DY))
	e.sink.Set(n, VarDistance, formatLength(m.Distance))
	e.sink.Set(n, VarAngle, formatAngle(m.Angle))
	e.sink.Set(n, VarFalloff, formatScalar(m.Falloff))
	e.sink.Set(n, VarLightness, formatScalar(m.Lightness))
	if e.store != nil {
		e.store.EmitEvent(LightingEvent{Type: EventMeasured, Node: n, Measurement: m})
	}
}

// emit forwards a lifecycle event to the ECS bridge, if one is attached.
func (e *Engine) emit(ev LightingEvent) {
	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}
