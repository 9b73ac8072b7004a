package hazel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitTestFunc asks the host renderer which node sits under a screen
// coordinate, or nil for empty space. Picking is the renderer's job; hazel
// only routes the answer.
type HitTestFunc func(x, y float64) *Node

// PointerBinding is the thin adapter between platform pointer state and the
// hover state machine. Each Update it polls the ebiten mouse cursor and
// active touches, runs the host's hit test, and emits pointer enter/leave
// events on the nodes whose hover target changed. Touch-driven events carry
// FromTouch so SilentOnTouch configurations can suppress them.
//
// The state machine itself (Highlighter) has no event-system dependency;
// this binding is the only piece that touches ebiten input.
type PointerBinding struct {
	hitTest HitTestFunc

	mouseHover *Node
	touchHover *Node
	touchIDs   []ebiten.TouchID
}

// NewPointerBinding creates a binding over the host's hit test.
func NewPointerBinding(hitTest HitTestFunc) *PointerBinding {
	if hitTest == nil {
		panic("hazel: pointer binding requires a hit test")
	}
	return &PointerBinding{hitTest: hitTest}
}

// Update polls pointer state and routes hover changes.
// Call once per frame from the host's update loop.
func (b *PointerBinding) Update() {
	mx, my := ebiten.CursorPosition()
	b.mouseHover = routeHover(b.mouseHover, b.hitTest(float64(mx), float64(my)), false)

	// First active touch acts as a hover pointer; releasing all touches
	// leaves whatever was touch-hovered.
	b.touchIDs = ebiten.AppendTouchIDs(b.touchIDs[:0])
	var target *Node
	if len(b.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(b.touchIDs[0])
		target = b.hitTest(float64(tx), float64(ty))
	}
	b.touchHover = routeHover(b.touchHover, target, true)
}

// routeHover emits leave/enter events when the hovered node changes and
// returns the new hover node. Kept separate from polling so hover routing is
// testable without an input backend.
func routeHover(prev, target *Node, fromTouch bool) *Node {
	if target == prev {
		return prev
	}
	if prev != nil {
		prev.Emit(Event{Type: EventPointerLeave, FromTouch: fromTouch})
	}
	if target != nil {
		target.Emit(Event{Type: EventPointerEnter, FromTouch: fromTouch})
	}
	return target
}
