package hazel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StyleTransition animates the numeric keys of a style delta onto a node's
// live style record. Non-numeric keys (colors, strings) are applied
// immediately at creation; only keys whose current live value is also
// numeric are tweened. Call Update(dt) each frame. If the target node is
// disposed, the transition stops immediately.
type StyleTransition struct {
	tweens []*gween.Tween
	keys   []StyleKey
	target *Node
	Done   bool
}

// newStyleTransition applies the non-numeric part of delta instantly and
// sets up tweens for the numeric part.
func newStyleTransition(node *Node, delta StyleDelta, duration float32, fn ease.TweenFunc) *StyleTransition {
	if fn == nil {
		fn = ease.Linear
	}
	t := &StyleTransition{target: node}
	for key, v := range delta {
		if v == nil {
			continue
		}
		to, numeric := asFloat(v)
		if !numeric {
			node.SetStyleValue(key, v)
			continue
		}
		from, ok := asFloat(node.StyleValue(key))
		if !ok {
			node.SetStyleValue(key, to)
			continue
		}
		t.tweens = append(t.tweens, gween.New(float32(from), float32(to), duration, fn))
		t.keys = append(t.keys, key)
	}
	t.Done = len(t.tweens) == 0
	return t
}

// Update advances all tweens by dt seconds and writes values to the target's
// style record. If the target node has been disposed, Done is set to true
// and no writes occur.
func (t *StyleTransition) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.IsDisposed() {
		t.Done = true
		return
	}
	allDone := true
	for i, tw := range t.tweens {
		val, finished := tw.Update(dt)
		t.target.SetStyleValue(t.keys[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

// TweenAnimator is the gween-backed Animator used for hover transitions.
// It keeps at most one active transition per node; starting a new one
// replaces the old. There is no global animation manager — call Update
// yourself each frame.
type TweenAnimator struct {
	active map[*Node]*StyleTransition
}

// NewTweenAnimator creates an empty animator.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{active: make(map[*Node]*StyleTransition)}
}

// AnimateStyle starts animating delta onto el over duration seconds.
func (a *TweenAnimator) AnimateStyle(el *Node, delta StyleDelta, duration float32, fn ease.TweenFunc) {
	tr := newStyleTransition(el, delta, duration, fn)
	if tr.Done {
		delete(a.active, el)
		return
	}
	a.active[el] = tr
}

// Cancel drops el's active transition, leaving the style at its current
// intermediate values. The Highlighter restores the snapshot afterwards.
func (a *TweenAnimator) Cancel(el *Node) {
	delete(a.active, el)
}

// Update advances all active transitions by dt seconds and drops the
// finished ones.
func (a *TweenAnimator) Update(dt float32) {
	for el, tr := range a.active {
		tr.Update(dt)
		if tr.Done {
			delete(a.active, el)
		}
	}
}
