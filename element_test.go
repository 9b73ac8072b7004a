package hazel

import "testing"

// --- Constructor defaults ---

func TestNewShapeDefaults(t *testing.T) {
	n := NewShape("box", StyleDelta{StyleFill: "#336699"})
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "box" {
		t.Errorf("Name = %q, want %q", n.Name, "box")
	}
	if n.Type != NodeTypeShape {
		t.Errorf("Type = %d, want %d", n.Type, NodeTypeShape)
	}
	if n.StyleValue(StyleFill) != "#336699" {
		t.Errorf("fill = %v, want #336699", n.StyleValue(StyleFill))
	}
	if !n.IsDirty() {
		t.Error("new node should start dirty")
	}
}

func TestNewContainerIsGroup(t *testing.T) {
	if !NewContainer("g").IsGroup() {
		t.Error("container should report IsGroup")
	}
	if NewShape("s", nil).IsGroup() {
		t.Error("shape should not report IsGroup")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewShape("b", nil)
	c := NewText("c", nil)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Style record ---

func TestApplyStyleMergesNonNilOnly(t *testing.T) {
	n := NewShape("s", StyleDelta{StyleFill: "#fff", StyleOpacity: 1.0})
	n.ApplyStyle(StyleDelta{StyleFill: "#000", StyleStroke: nil})
	if n.StyleValue(StyleFill) != "#000" {
		t.Errorf("fill = %v, want #000", n.StyleValue(StyleFill))
	}
	if n.StyleValue(StyleOpacity) != 1.0 {
		t.Error("merge must not touch keys absent from the delta")
	}
	if _, present := n.Style()[StyleStroke]; present {
		t.Error("nil delta values must be skipped by merge")
	}
}

func TestRestoreStyleRemovesNilKeys(t *testing.T) {
	n := NewShape("s", nil)
	n.SetStyleValue(StyleFill, "#123456")
	n.RestoreStyle(StyleDelta{StyleFill: "#fff", StyleStroke: nil})
	if n.StyleValue(StyleFill) != "#fff" {
		t.Errorf("fill = %v, want #fff", n.StyleValue(StyleFill))
	}
	if _, present := n.Style()[StyleStroke]; present {
		t.Error("restore must delete keys that were unset at capture")
	}
}

func TestSetStyleValueNilDeletes(t *testing.T) {
	n := NewShape("s", StyleDelta{StyleFill: "#fff"})
	n.SetStyleValue(StyleFill, nil)
	if _, present := n.Style()[StyleFill]; present {
		t.Error("nil SetStyleValue should remove the key")
	}
}

// --- Events ---

func TestOnReplacesSameKey(t *testing.T) {
	n := NewShape("s", nil)
	var first, second int
	n.On(EventPointerEnter, "k", func(Event) { first++ })
	n.On(EventPointerEnter, "k", func(Event) { second++ })
	n.Emit(Event{Type: EventPointerEnter})
	if first != 0 {
		t.Error("replaced handler must not fire")
	}
	if second != 1 {
		t.Errorf("second handler fired %d times, want 1", second)
	}
	if n.handlerCount(EventPointerEnter) != 1 {
		t.Errorf("handlerCount = %d, want 1", n.handlerCount(EventPointerEnter))
	}
}

func TestOffRemovesHandler(t *testing.T) {
	n := NewShape("s", nil)
	var fired int
	n.On(EventPointerLeave, "k", func(Event) { fired++ })
	n.Off(EventPointerLeave, "k")
	n.Emit(Event{Type: EventPointerLeave})
	if fired != 0 {
		t.Error("removed handler must not fire")
	}
}

func TestEmitSetsTarget(t *testing.T) {
	n := NewShape("s", nil)
	var got *Node
	n.On(EventEmphasisStart, "k", func(e Event) { got = e.Target })
	n.Emit(Event{Type: EventEmphasisStart})
	if got != n {
		t.Error("Emit should stamp the node as Target")
	}
}

func TestOnNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil handler")
		}
	}()
	NewShape("s", nil).On(EventPointerEnter, "k", nil)
}

// --- Tree ---

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewShape("child", nil)

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for cycle")
		}
	}()
	child.AddChild(parent)
}

func TestWalkVisitsAll(t *testing.T) {
	root := NewContainer("root")
	inner := NewContainer("inner")
	leaf1 := NewShape("l1", nil)
	leaf2 := NewShape("l2", nil)
	root.AddChild(inner)
	inner.AddChild(leaf1)
	root.AddChild(leaf2)

	var visited int
	root.Walk(func(*Node) { visited++ })
	if visited != 4 {
		t.Errorf("visited %d nodes, want 4", visited)
	}
}

func TestDispose(t *testing.T) {
	parent := NewContainer("p")
	child := NewShape("c", nil)
	parent.AddChild(child)

	child.Dispose()
	if !child.IsDisposed() {
		t.Error("child should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child should be detached")
	}
}
