package hazel

// StyleKey identifies one entry in a node's style record.
type StyleKey string

// Style keys understood by the built-in renderer contract. Hosts may define
// additional keys; the hover machinery treats keys opaquely.
const (
	StyleFill          StyleKey = "fill"
	StyleStroke        StyleKey = "stroke"
	StyleLineWidth     StyleKey = "lineWidth"
	StyleOpacity       StyleKey = "opacity"
	StyleShadowColor   StyleKey = "shadowColor"
	StyleShadowBlur    StyleKey = "shadowBlur"
	StyleShadowOffsetX StyleKey = "shadowOffsetX"
	StyleShadowOffsetY StyleKey = "shadowOffsetY"
)

// Color sentinels. "none" marks a disabled paint; "auto" defers to the
// caller-supplied contextual color during text style resolution.
const (
	ColorNone = "none"
	ColorAuto = "auto"
)

// StyleDelta is a partial style record. Key presence carries intent: a key
// that is absent is left alone by merge application, while a present key
// overwrites the live value (nil values are skipped by merges but still
// participate in snapshot capture).
type StyleDelta map[StyleKey]any

// Clone returns a shallow copy of the delta. A nil delta clones to nil.
func (d StyleDelta) Clone() StyleDelta {
	if d == nil {
		return nil
	}
	out := make(StyleDelta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Vec2 is a 2D vector used for offsets and positions throughout the API.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes scene node behavior.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node, never directly styled for hover
	NodeTypeShape                     // renders a filled/stroked shape
	NodeTypeText                      // renders a text block
)

// EventType identifies a kind of node event.
type EventType uint8

const (
	EventPointerEnter  EventType = iota // pointer moved onto the node
	EventPointerLeave                   // pointer moved off the node
	EventEmphasisStart                  // manual emphasis requested
	EventEmphasisEnd                    // manual emphasis released
)

// Event carries node event data to subscribed handlers.
type Event struct {
	Type      EventType
	Target    *Node
	FromTouch bool // true when the pointer signal was synthesized from touch
}
