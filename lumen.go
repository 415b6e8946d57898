package lumen

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Expand returns a copy of r grown by m units on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// --- Variable names ---

// Global light parameters, read from the engine's Source each tick.
const (
	VarLightX         = "light-x"
	VarLightY         = "light-y"
	VarLightRange     = "light-range"
	VarLightIntensity = "light-intensity"
	VarLightAmbient   = "light-ambient"
)

// Per-element outputs, published to the engine's Sink each tick.
const (
	VarCenterX   = "light-center-x"
	VarCenterY   = "light-center-y"
	VarDX        = "light-dx"
	VarDY        = "light-dy"
	VarDistance  = "light-distance"
	VarAngle     = "light-angle"
	VarFalloff   = "light-falloff"
	VarLightness = "light-lightness"
)

// knobNames are the authoring overrides copied verbatim from Node.Attrs to
// the element's var surface once at registration. Missing knobs are skipped,
// never defaulted.
var knobNames = []string{"light-elevation", "light-roughness", "light-metallic"}

// --- External surfaces ---

// Source is the global read surface for light parameters. Lookup returns the
// raw textual value for a name, or ok=false when the name is absent. Absent
// or unparsable values degrade to NaN in the tick that reads them.
type Source interface {
	Lookup(name string) (value string, ok bool)
}

// Sink is the write surface the engine publishes computed values to.
// Implementations must not retain n beyond the call.
type Sink interface {
	Set(n *Node, name, value string)
}

// nodeSink is the default Sink: values land on the node's own var surface
// and are readable via Node.Var.
type nodeSink struct{}

func (nodeSink) Set(n *Node, name, value string) {
	n.setVar(name, value)
}

// --- Event bridge ---

// EventType identifies a kind of engine lifecycle event.
type EventType uint8

const (
	EventRegistered   EventType = iota // node joined the tracked set
	EventUnregistered                  // node left the tracked set
	EventShown                         // visibility flag flipped to true
	EventHidden                        // visibility flag flipped to false
	EventMeasured                      // a Measurement was published this tick
)

// LightingEvent carries engine lifecycle data for the ECS bridge.
// Measurement is valid only for EventMeasured.
type LightingEvent struct {
	Type        EventType
	Node        *Node
	Measurement Measurement
}

// EventStore is the interface for optional ECS integration.
// When set on an Engine, lifecycle events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event LightingEvent)
}
