package hazel

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic — hazel is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the styleable scene graph element. A single flat struct is used
// for all node types to avoid interface dispatch on the hot path. The hover
// machinery never stores its bookkeeping on the node itself; per-node hover
// state lives in the Highlighter's side table.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Ordering
	ZIndex int

	// Live style record. Accessed by key; renderers read it each frame.
	style StyleDelta

	// HoverStyle is the node's own hover override. When set, it always wins
	// over a delta passed to Highlighter.SetHoverStyle for this node.
	HoverStyle StyleDelta

	// UseHoverLayer opts this node into overlay-based hover rendering:
	// hover visuals are handed to the Highlighter's HoverOverlay instead of
	// mutating the node's own style.
	UseHoverLayer bool

	// Event handlers keyed by (event, subscription key). Registering under
	// an existing key replaces the previous handler, so re-subscription is
	// idempotent.
	handlers map[EventType]map[string]func(Event)

	// Internal
	dirty    bool
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.style = StyleDelta{}
	n.dirty = true
}

// NewContainer creates a container node that groups other nodes.
// Containers are never directly styled for hover.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewShape creates a shape node with the given initial style.
// A nil style starts the node with an empty style record.
func NewShape(name string, style StyleDelta) *Node {
	n := &Node{Name: name, Type: NodeTypeShape}
	nodeDefaults(n)
	for k, v := range style {
		n.style[k] = v
	}
	return n
}

// NewText creates a text node with the given initial style.
func NewText(name string, style StyleDelta) *Node {
	n := &Node{Name: name, Type: NodeTypeText}
	nodeDefaults(n)
	for k, v := range style {
		n.style[k] = v
	}
	return n
}

// IsGroup reports whether this node is a container.
func (n *Node) IsGroup() bool {
	return n.Type == NodeTypeContainer
}

// --- Style record ---

// StyleValue returns the live style value for key, or nil if unset.
func (n *Node) StyleValue(key StyleKey) any {
	return n.style[key]
}

// SetStyleValue writes one live style value and marks the node dirty.
// A nil value removes the key.
func (n *Node) SetStyleValue(key StyleKey, value any) {
	if value == nil {
		delete(n.style, key)
	} else {
		n.style[key] = value
	}
	n.dirty = true
}

// ApplyStyle merges delta onto the live style: only keys with non-nil values
// overwrite, so a partial delta never erases unrelated live properties.
func (n *Node) ApplyStyle(delta StyleDelta) {
	for k, v := range delta {
		if v != nil {
			n.style[k] = v
		}
	}
	n.dirty = true
}

// RestoreStyle writes snapshot back into the live style, replacing each
// captured key outright: a nil snapshot value means the key was unset before
// capture and is removed again, so keys are never left stuck at hover values.
func (n *Node) RestoreStyle(snapshot StyleDelta) {
	for k, v := range snapshot {
		if v == nil {
			delete(n.style, k)
		} else {
			n.style[k] = v
		}
	}
	n.dirty = true
}

// Style returns the live style record. The returned map MUST NOT be mutated
// by the caller; use SetStyleValue or ApplyStyle.
func (n *Node) Style() StyleDelta {
	return n.style
}

// MarkDirty flags the node for re-render by the host.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// IsDirty reports whether the node changed since the last ClearDirty.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// ClearDirty resets the dirty flag. Called by the host after rendering.
func (n *Node) ClearDirty() {
	n.dirty = false
}

// --- Events ---

// On subscribes fn to the given event under a subscription key. Registering
// the same (event, key) pair again replaces the previous handler, so repeat
// calls never produce duplicate subscriptions.
func (n *Node) On(event EventType, key string, fn func(Event)) {
	if fn == nil {
		panic("hazel: cannot subscribe nil handler")
	}
	if n.handlers == nil {
		n.handlers = make(map[EventType]map[string]func(Event))
	}
	m := n.handlers[event]
	if m == nil {
		m = make(map[string]func(Event))
		n.handlers[event] = m
	}
	m[key] = fn
}

// Off removes the handler registered under (event, key). No-op if absent.
func (n *Node) Off(event EventType, key string) {
	if m := n.handlers[event]; m != nil {
		delete(m, key)
	}
}

// Emit dispatches an event to every handler subscribed to e.Type on this
// node. e.Target is set to the node before dispatch.
func (n *Node) Emit(e Event) {
	e.Target = n
	for _, fn := range n.handlers[e.Type] {
		fn(e)
	}
}

// handlerCount reports the number of handlers subscribed to event.
func (n *Node) handlerCount(event EventType) int {
	return len(n.handlers[event])
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("hazel: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("hazel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("hazel: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk visits this node and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Disposal ---

// Dispose detaches this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Disposed nodes are skipped by
// style transitions.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
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
	n.style = nil
	n.HoverStyle = nil
	n.handlers = nil
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
