package hazel

import (
	"github.com/tanema/gween/ease"
)

// zEmphasisLift is the fixed z-order bump applied while a node is in hover
// presentation, so highlighted nodes draw above their siblings.
const zEmphasisLift = 1

// hoverSubKey is the subscription key the Highlighter registers its node
// event handlers under. Reconfiguring replaces rather than duplicates them.
const hoverSubKey = "hazel.hover"

// HoverOverlay renders hover visuals on a separate layer instead of mutating
// a node's own style. Nodes opt in via Node.UseHoverLayer.
type HoverOverlay interface {
	AddOverlay(el *Node, delta StyleDelta)
	RemoveOverlay(el *Node)
}

// Animator applies a style delta over time instead of instantly. The
// Highlighter decides whether and with what parameters to animate; the
// interpolation itself is the animator's job. See TweenAnimator.
type Animator interface {
	AnimateStyle(el *Node, delta StyleDelta, duration float32, fn ease.TweenFunc)
	Cancel(el *Node)
}

// HoverOptions configures how hover presentation behaves for a node.
type HoverOptions struct {
	// SilentOnTouch suppresses pointer-driven hover transitions that
	// originate from touch-synthesized pointer signals. Manual and emphasis
	// triggers are never suppressed.
	SilentOnTouch bool

	// TransitionDuration animates the enter transition's numeric style keys
	// over this many seconds when an Animator is set. Zero applies instantly.
	// Leave is always instant so restoration is exact.
	TransitionDuration float32

	// Easing selects the transition curve. Nil means ease.Linear.
	Easing ease.TweenFunc
}

// Highlighter toggles nodes between normal and hover presentation. Each node
// is in hover presentation iff at least one of its two trigger sources
// (pointer, emphasis) currently requests it, and the style mutation and
// z-order bump are applied exactly once across both.
//
// Per-node bookkeeping lives in a side table keyed by node identity, never
// on the node itself. All operations are synchronous; re-entrant calls on
// the same node are guarded by the current-state check only (hazel assumes a
// single logical thread of control).
type Highlighter struct {
	overlay  HoverOverlay
	animator Animator
	states   map[*Node]*hoverState
}

// NewHighlighter creates a Highlighter. overlay may be nil; it is required
// only if a configured node sets UseHoverLayer.
func NewHighlighter(overlay HoverOverlay) *Highlighter {
	return &Highlighter{
		overlay: overlay,
		states:  make(map[*Node]*hoverState),
	}
}

// SetAnimator sets the optional transition animator. Without one, hover
// deltas are always applied instantly regardless of TransitionDuration.
func (h *Highlighter) SetAnimator(a Animator) {
	h.animator = a
}

// --- Configuration ---

// SetHoverStyle configures hover presentation for el, or for every
// non-container descendant when el is a container. delta holds the style
// keys to apply on enter; a node's own HoverStyle field, when set, always
// wins over delta. A nil delta is valid and enables the default lift rule
// only.
//
// The node is subscribed to pointer enter/leave and emphasis start/end
// events under a fixed key, so repeat calls update the configuration without
// duplicating subscriptions. Container traversal happens at call time;
// children added later are not configured automatically.
func (h *Highlighter) SetHoverStyle(el *Node, delta StyleDelta, opts HoverOptions) {
	if el == nil {
		panic("hazel: cannot configure hover style on nil node")
	}
	if el.IsGroup() {
		el.Walk(func(c *Node) {
			if !c.IsGroup() {
				h.configureOne(c, delta, opts)
			}
		})
		return
	}
	h.configureOne(el, delta, opts)
}

func (h *Highlighter) configureOne(el *Node, delta StyleDelta, opts HoverOptions) {
	st := h.states[el]
	if st == nil {
		st = &hoverState{}
		h.states[el] = st
	}
	if el.HoverStyle != nil {
		delta = el.HoverStyle
	}
	st.pending = delta.Clone()
	st.dirty = true
	st.opts = opts

	// Already presenting by direct mutation: re-capture now so keys the new
	// delta introduces are covered by the snapshot before they get
	// overwritten.
	if st.mode == hoverPlain {
		st.capture(el, st.effectiveDelta(el))
	}

	el.On(EventPointerEnter, hoverSubKey, func(e Event) {
		h.pointerTransition(e.Target, true, e.FromTouch)
	})
	el.On(EventPointerLeave, hoverSubKey, func(e Event) {
		h.pointerTransition(e.Target, false, e.FromTouch)
	})
	el.On(EventEmphasisStart, hoverSubKey, func(e Event) {
		h.EnterEmphasis(e.Target)
	})
	el.On(EventEmphasisEnd, hoverSubKey, func(e Event) {
		h.LeaveEmphasis(e.Target)
	})
}

// ClearHoverStyle removes hover configuration from el (or its subtree):
// presentation is restored if currently applied, the event subscriptions are
// removed, and the side-table entry is dropped. No-op for unconfigured nodes.
func (h *Highlighter) ClearHoverStyle(el *Node) {
	if el == nil {
		panic("hazel: cannot clear hover style on nil node")
	}
	el.Walk(func(c *Node) {
		st := h.states[c]
		if st == nil {
			return
		}
		h.unapply(c, st)
		c.Off(EventPointerEnter, hoverSubKey)
		c.Off(EventPointerLeave, hoverSubKey)
		c.Off(EventEmphasisStart, hoverSubKey)
		c.Off(EventEmphasisEnd, hoverSubKey)
		delete(h.states, c)
	})
}

// --- Pointer-source transitions ---

// EnterHover requests hover presentation from the pointer source for el, or
// for every configured non-container descendant when el is a container.
// No-op if already hovering or while the node is emphasized.
func (h *Highlighter) EnterHover(el *Node) {
	h.pointerTransition(el, true, false)
}

// LeaveHover releases the pointer source's hover request for el (or its
// subtree). No-op if not hovering or while the node is emphasized.
func (h *Highlighter) LeaveHover(el *Node) {
	h.pointerTransition(el, false, false)
}

// pointerTransition routes a pointer-driven enter/leave, honoring touch
// suppression and the emphasis mask. Unconfigured nodes are skipped.
func (h *Highlighter) pointerTransition(el *Node, entered, fromTouch bool) {
	if el == nil {
		panic("hazel: hover transition on nil node")
	}
	el.Walk(func(c *Node) {
		if c.IsGroup() {
			return
		}
		st := h.states[c]
		if st == nil {
			return
		}
		if fromTouch && st.opts.SilentOnTouch {
			return
		}
		// Emphasis wins: pointer transitions are ignored outright until
		// emphasis is left, and leaving emphasis does not re-probe the
		// pointer. Callers that need hover back must re-enter it.
		if st.emphasized {
			return
		}
		if entered {
			st.hovering = true
			h.apply(c, st)
		} else {
			st.hovering = false
			h.unapply(c, st)
		}
	})
}

// --- Emphasis-source transitions ---

// EnterEmphasis requests hover presentation from the emphasis source for el
// (or its configured subtree). The presentation persists regardless of
// pointer position until LeaveEmphasis. No-op if already emphasized.
func (h *Highlighter) EnterEmphasis(el *Node) {
	if el == nil {
		panic("hazel: emphasis transition on nil node")
	}
	el.Walk(func(c *Node) {
		if c.IsGroup() {
			return
		}
		st := h.states[c]
		if st == nil {
			return
		}
		st.emphasized = true
		h.apply(c, st)
	})
}

// LeaveEmphasis releases the emphasis source's request for el (or its
// configured subtree) and restores normal presentation. A pointer-hover
// state that was true before emphasis began is dropped, not re-applied.
func (h *Highlighter) LeaveEmphasis(el *Node) {
	if el == nil {
		panic("hazel: emphasis transition on nil node")
	}
	el.Walk(func(c *Node) {
		if c.IsGroup() {
			return
		}
		st := h.states[c]
		if st == nil || !st.emphasized {
			return
		}
		st.emphasized = false
		st.hovering = false
		h.unapply(c, st)
	})
}

// --- State queries ---

// IsHighlighted reports whether el currently has hover presentation applied
// by either trigger source.
func (h *Highlighter) IsHighlighted(el *Node) bool {
	st := h.states[el]
	return st != nil && st.mode != hoverOff
}

// IsEmphasized reports whether el is currently in the emphasis state.
func (h *Highlighter) IsEmphasized(el *Node) bool {
	st := h.states[el]
	return st != nil && st.emphasized
}

// --- Apply / unapply ---

// apply puts the node into hover presentation. Idempotent: a node already
// presenting (by either mechanism) is left untouched, so the z bump and
// snapshot happen exactly once across overlapping triggers.
func (h *Highlighter) apply(el *Node, st *hoverState) {
	if st.mode != hoverOff {
		return
	}
	eff := st.effectiveDelta(el)
	st.capture(el, eff)

	if el.UseHoverLayer {
		if h.overlay == nil {
			panic("hazel: node uses hover layer but Highlighter has no HoverOverlay")
		}
		h.overlay.AddOverlay(el, eff)
		st.mode = hoverOverlay
		return
	}

	if st.opts.TransitionDuration > 0 && h.animator != nil {
		h.animator.AnimateStyle(el, eff, st.opts.TransitionDuration, st.opts.Easing)
	} else {
		el.ApplyStyle(eff)
	}
	el.ZIndex += zEmphasisLift
	el.MarkDirty()
	st.mode = hoverPlain
}

// unapply restores the node to normal presentation. Idempotent.
func (h *Highlighter) unapply(el *Node, st *hoverState) {
	switch st.mode {
	case hoverOff:
		return
	case hoverOverlay:
		h.overlay.RemoveOverlay(el)
	case hoverPlain:
		if h.animator != nil {
			h.animator.Cancel(el)
		}
		el.RestoreStyle(st.normal)
		el.ZIndex -= zEmphasisLift
		el.MarkDirty()
	}
	st.normal = nil
	st.mode = hoverOff
}
