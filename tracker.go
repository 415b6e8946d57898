package lumen

// tracker owns the live set of tracked elements. Membership is kept in both
// a slice (deterministic publish order: registration order) and an index map
// (O(1) idempotence checks). The engine layers visibility observation and
// knob extraction on top of add/remove.
type tracker struct {
	members []*Node
	index   map[*Node]struct{}
}

func newTracker() tracker {
	return tracker{index: make(map[*Node]struct{})}
}

// add inserts n into the tracked set. Returns false if n was already
// tracked (the call is an idempotent no-op).
func (t *tracker) add(n *Node) bool {
	if _, ok := t.index[n]; ok {
		return false
	}
	t.index[n] = struct{}{}
	t.members = append(t.members, n)
	return true
}

// remove deletes n from the tracked set. Returns false if n was not
// tracked (the call is an idempotent no-op).
func (t *tracker) remove(n *Node) bool {
	if _, ok := t.index[n]; !ok {
		return false
	}
	delete(t.index, n)
	for i, m := range t.members {
		if m == n {
			copy(t.members[i:], t.members[i+1:])
			t.members[len(t.members)-1] = nil
			t.members = t.members[:len(t.members)-1]
			break
		}
	}
	return true
}

// has reports whether n is currently tracked.
func (t *tracker) has(n *Node) bool {
	_, ok := t.index[n]
	return ok
}

// len returns the number of tracked elements.
func (t *tracker) len() int {
	return len(t.members)
}

// clear empties the set, releasing all references.
func (t *tracker) clear() {
	for i := range t.members {
		t.members[i] = nil
	}
	t.members = t.members[:0]
	t.index = make(map[*Node]struct{})
}

// qualifying walks the subtree rooted at root and calls fn for root and
// every descendant that is opted in (Lit).
func qualifying(root *Node, fn func(*Node)) {
	walkSubtree(root, func(n *Node) {
		if n.Lit {
			fn(n)
		}
	})
}

// trackedIn walks the subtree rooted at root and calls fn for every node the
// tracker currently holds, root included. Used on structural removal.
func (t *tracker) trackedIn(root *Node, fn func(*Node)) {
	walkSubtree(root, func(n *Node) {
		if t.has(n) {
			fn(n)
		}
	})
}
