package lumen

// nodeIDCounter is a plain counter (no atomic — lumen is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the document tree. A single flat struct is used for
// every element; whether the light engine computes geometry for a node is
// controlled by the Lit flag, not a separate type.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Bounds (local): X and Y are relative to the parent's origin.
	X, Y          float64
	Width, Height float64

	// Lit opts this node into light geometry computation. Checked by the
	// engine's subtree scans; flipping it after registration has no effect
	// until the node is re-added.
	Lit bool

	// Attrs holds authoring attributes. The knob names (light-elevation,
	// light-roughness, light-metallic) are copied to the var surface once
	// at registration.
	Attrs map[string]string

	// vars is the node's named-value surface — the default publish target,
	// read by the styling layer via Var.
	vars map[string]string

	// Metadata
	UserData any

	// Internal
	doc      *Document // owning document; nil while detached
	disposed bool
}

// NewNode creates a detached node with the given name and bounds.
func NewNode(name string, x, y, w, h float64) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

// NewLitNode creates a detached node that is opted into light computation.
func NewLitNode(name string, x, y, w, h float64) *Node {
	n := NewNode(name, x, y, w, h)
	n.Lit = true
	return n
}

// SetAttr sets an authoring attribute, allocating the map on first use.
func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

// Attr returns the authoring attribute for name, or ok=false if unset.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Var returns the published value for name on this node's var surface,
// or ok=false if nothing has been published under that name.
func (n *Node) Var(name string) (string, bool) {
	v, ok := n.vars[name]
	return v, ok
}

// setVar writes to the node's var surface, allocating the map on first use.
func (n *Node) setVar(name, value string) {
	if n.vars == nil {
		n.vars = make(map[string]string)
	}
	n.vars[name] = value
}

// Bounds returns the node's world-space rectangle, accumulating ancestor
// offsets at call time so the result always reflects the current tree.
func (n *Node) Bounds() Rect {
	x, y := n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("lumen: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("lumen: adding child would create a cycle")
	}
	detachForReparent(child, n.doc)
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
	attachSubtree(child, n.doc)
	if n.doc != nil {
		n.doc.notifyAdded(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("lumen: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("lumen: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("lumen: child index out of range")
	}
	detachForReparent(child, n.doc)
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
	}
	attachSubtree(child, n.doc)
	if n.doc != nil {
		n.doc.notifyAdded(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("lumen: child's parent is not this node")
	}
	if n.doc != nil {
		n.doc.notifyRemoved(child)
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	attachSubtree(child, nil)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.doc = nil
	n.Attrs = nil
	n.vars = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detachForReparent pulls child out of its current parent ahead of an add.
// If the move takes child out of a document's scope (onto a detached parent
// or into a different document), the old document is notified of the removal
// so observers see the move as removal plus addition.
func detachForReparent(child *Node, newDoc *Document) {
	if child.Parent == nil {
		return
	}
	if old := child.Parent.doc; old != nil && old != newDoc {
		old.notifyRemoved(child)
	}
	child.Parent.removeChildByPtr(child)
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// attachSubtree sets the owning document on node and all its descendants.
// Pass nil to detach.
func attachSubtree(node *Node, doc *Document) {
	node.doc = doc
	for _, child := range node.children {
		attachSubtree(child, doc)
	}
}

// walkSubtree calls fn for node and every descendant, depth-first.
func walkSubtree(node *Node, fn func(*Node)) {
	fn(node)
	for _, child := range node.children {
		walkSubtree(child, fn)
	}
}
