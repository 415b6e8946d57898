package lumen

// observer receives structural-change and viewport notifications from a
// Document. The Engine is the only implementation in this package; the
// indirection keeps Document free of any engine knowledge.
type observer interface {
	subtreeAdded(root *Node)
	subtreeRemoved(root *Node)
	viewportChanged()
}

// Document owns a node tree and the viewport it is viewed through.
// It is the host-facing structural surface: tree mutations under the root
// and viewport moves are reported to attached observers in registration
// order, synchronously, on the frame thread.
type Document struct {
	root      *Node
	viewport  Rect
	observers []observer
	debug     bool
}

// NewDocument creates a document with a pre-created root node covering the
// given viewport.
func NewDocument(viewport Rect) *Document {
	root := NewNode("root", 0, 0, viewport.Width, viewport.Height)
	d := &Document{
		root:     root,
		viewport: viewport,
	}
	root.doc = d
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Viewport returns the current viewport rectangle.
func (d *Document) Viewport() Rect {
	return d.viewport
}

// SetViewport replaces the viewport rectangle (a resize signal) and notifies
// observers.
func (d *Document) SetViewport(r Rect) {
	d.viewport = r
	for _, o := range d.observers {
		o.viewportChanged()
	}
}

// ScrollBy shifts the viewport origin by (dx, dy) (a scroll signal) and
// notifies observers.
func (d *Document) ScrollBy(dx, dy float64) {
	d.viewport.X += dx
	d.viewport.Y += dy
	for _, o := range d.observers {
		o.viewportChanged()
	}
}

// Find returns the first node in the tree with the given name, depth-first,
// or nil if no node matches.
func (d *Document) Find(name string) *Node {
	var found *Node
	walkSubtree(d.root, func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-tick stats from
// attached engines are logged to stderr.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Document debug flag so that node
// operations (which lack a Document pointer while detached) can check it
// cheaply. Only valid with a single Document; multiple Documents with
// differing debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// addObserver attaches an observer if not already attached.
func (d *Document) addObserver(o observer) {
	for _, existing := range d.observers {
		if existing == o {
			return
		}
	}
	d.observers = append(d.observers, o)
}

// removeObserver detaches an observer. No-op if not attached.
func (d *Document) removeObserver(o observer) {
	for i, existing := range d.observers {
		if existing == o {
			copy(d.observers[i:], d.observers[i+1:])
			d.observers[len(d.observers)-1] = nil
			d.observers = d.observers[:len(d.observers)-1]
			return
		}
	}
}

// notifyAdded reports a subtree that just joined the rooted tree.
func (d *Document) notifyAdded(root *Node) {
	for _, o := range d.observers {
		o.subtreeAdded(root)
	}
}

// notifyRemoved reports a subtree that is about to leave the rooted tree.
// Called before detachment so observers can still walk it.
func (d *Document) notifyRemoved(root *Node) {
	for _, o := range d.observers {
		o.subtreeRemoved(root)
	}
}
