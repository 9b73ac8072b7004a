// Package hazel is a styling and interaction layer for retained-mode 2D
// scene graphs built on [Ebitengine].
//
// Hazel provides two things: a hover/emphasis state machine that toggles an
// element's presentation in response to pointer events or explicit emphasis
// triggers, and a cascading text-style resolver that flattens a multi-level
// style configuration into one concrete style record for a renderer.
//
// # Hover and emphasis
//
// Every styleable element is a [Node]. Configure a hover presentation with
// [Highlighter.SetHoverStyle], then drive it from pointer events (via
// [PointerBinding] or your own hit testing) or manually:
//
//	h := NewHighlighter(nil)
//	h.SetHoverStyle(node, StyleDelta{StyleOpacity: 0.8}, HoverOptions{})
//	h.EnterHover(node) // apply hover presentation
//	h.LeaveHover(node) // restore the original style exactly
//
// The original value of every key the hover delta touches is snapshotted on
// first application and restored exactly on leave. Emphasis is a persistent
// hover-like state independent of pointer position:
//
//	h.EnterEmphasis(node) // stays highlighted until LeaveEmphasis
//
// While a node is emphasized, pointer-driven hover transitions on it are
// ignored.
//
// # Text style resolution
//
// Label styling is configured as a tree of [StyleModel] nodes (normal and
// emphasis variants), resolved against a [Theme] into flat [TextStyle]
// records:
//
//	normal, emphasis := ResolveLabel(normalModel, emphasisModel, theme, opts)
//
// Per-segment "rich text" token styles cascade through the model's parent
// chain and are resolved independently of the enclosing label's box styling.
//
// # Transitions
//
// Hover application can be animated. Pass a TransitionDuration in
// [HoverOptions] and give the Highlighter a [TweenAnimator] (backed by
// [gween]); call its Update each frame. Leave transitions are immediate so
// restoration is always exact.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package hazel
