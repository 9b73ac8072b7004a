package hazel

// hoverApplyMode records how the hover presentation is currently applied to
// a node, if at all.
type hoverApplyMode uint8

const (
	hoverOff     hoverApplyMode = iota // normal presentation
	hoverPlain                         // applied by direct style mutation + z bump
	hoverOverlay                       // handed to the HoverOverlay collaborator
)

// hoverState is the per-node entry in the Highlighter's side table. It holds
// the two trigger flags, the configured delta, and the cached pre-hover
// snapshot. Nodes never carry this bookkeeping themselves.
type hoverState struct {
	hovering   bool // pointer source currently requests hover presentation
	emphasized bool // emphasis source currently requests hover presentation

	opts    HoverOptions
	pending StyleDelta // configured delta; node's own HoverStyle already folded in
	dirty   bool       // pending changed since the last snapshot capture

	normal StyleDelta // captured pre-hover values; nil until first capture
	mode   hoverApplyMode
}

// effectiveDelta returns the delta that will actually be applied on enter:
// the pending delta plus the default lift rule. If the delta does not touch
// fill or stroke itself and the node's live value for that key is paintable,
// a darkened variant of the live color becomes the hover value.
func (st *hoverState) effectiveDelta(el *Node) StyleDelta {
	eff := st.pending.Clone()
	if eff == nil {
		eff = StyleDelta{}
	}
	for _, key := range [2]StyleKey{StyleFill, StyleStroke} {
		if _, declared := eff[key]; declared {
			continue
		}
		if live := el.StyleValue(key); isPaintable(live) {
			eff[key] = Lift(live.(string), liftIntensity)
		}
	}
	return eff
}

// capture records, for every key in delta, the node's current style value so
// leave can restore it exactly. It runs only when the snapshot is missing or
// the pending delta changed since the last capture, and it never overwrites
// an already-captured key: once hover styling has been applied, re-reading a
// covered key would snapshot the hover value and corrupt the restore.
func (st *hoverState) capture(el *Node, delta StyleDelta) {
	if st.normal != nil && !st.dirty {
		return
	}
	if st.normal == nil {
		st.normal = StyleDelta{}
	}
	for key := range delta {
		if _, captured := st.normal[key]; !captured {
			st.normal[key] = el.StyleValue(key)
		}
	}
	st.dirty = false
}
