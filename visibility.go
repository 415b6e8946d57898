package lumen

// DefaultMargin is the distance in units the visibility trigger region
// extends beyond the viewport edges. Elements become visible slightly before
// entering frame, which avoids visible popping when values first publish.
const DefaultMargin = 200

// visibility maintains which tracked elements are currently within or near
// the viewport. Flags live in a side-table keyed by node, never on the nodes
// themselves; a flag is defined if and only if the element is observed, and
// every observed element is a tracked member (the engine mirrors the two
// lifecycles exactly).
type visibility struct {
	doc      *Document
	margin   float64
	flags    map[*Node]bool
	schedule func()
	onChange func(n *Node, visible bool)
}

func newVisibility(doc *Document, margin float64, schedule func(), onChange func(*Node, bool)) *visibility {
	return &visibility{
		doc:      doc,
		margin:   margin,
		flags:    make(map[*Node]bool),
		schedule: schedule,
		onChange: onChange,
	}
}

// region returns the margin-expanded trigger rectangle.
func (v *visibility) region() Rect {
	return v.doc.Viewport().Expand(v.margin)
}

// observe begins visibility observation for n: the flag is computed
// immediately against the current trigger region and a schedule is
// requested, mirroring an intersection watcher's initial callback.
func (v *visibility) observe(n *Node) {
	visible := n.Bounds().Intersects(v.region())
	v.flags[n] = visible
	if v.onChange != nil && visible {
		v.onChange(n, true)
	}
	v.schedule()
}

// unobserve ends observation and removes the flag. Idempotent.
func (v *visibility) unobserve(n *Node) {
	delete(v.flags, n)
}

// visible returns n's last known visibility flag. False for unobserved nodes.
func (v *visibility) visible(n *Node) bool {
	return v.flags[n]
}

// refresh recomputes every flag against the current trigger region.
// Each flip is reported through onChange; any flip requests a schedule.
func (v *visibility) refresh() {
	region := v.region()
	changed := false
	for n, was := range v.flags {
		now := n.Bounds().Intersects(region)
		if now == was {
			continue
		}
		v.flags[n] = now
		changed = true
		if v.onChange != nil {
			v.onChange(n, now)
		}
	}
	if changed {
		v.schedule()
	}
}

// count returns the number of observed elements.
func (v *visibility) count() int {
	return len(v.flags)
}

// clear drops every flag, releasing all references.
func (v *visibility) clear() {
	v.flags = make(map[*Node]bool)
}
