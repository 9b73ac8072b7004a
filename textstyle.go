package hazel

import (
	"math"
	"strings"
)

// ResolveMode selects how missing text style values are filled.
type ResolveMode uint8

const (
	// WithDefaults falls back to the theme's text style and, for fill,
	// to a position-dependent computed default.
	WithDefaults ResolveMode = iota

	// OverridesOnly leaves every value the model chain does not declare
	// unset. Used for emphasis overlays, which must never introduce values
	// absent from the underlying normal style.
	OverridesOnly
)

// defaultTextDistance separates rect-text labels from their host shape edge.
const defaultTextDistance = 5.0

// insideStrokeWidth is the legibility stroke added around white inside-labels.
const insideStrokeWidth = 2.0

// TextResolveOptions carries the per-call context of a resolution.
type TextResolveOptions struct {
	Mode ResolveMode

	// AutoColor substitutes the "auto" sentinel and supplies the legibility
	// stroke for inside-positioned labels. Empty means no contextual color:
	// "auto" then resolves to unset.
	AutoColor string

	// IsRectText enables the placement property group (position, offset,
	// rotation, distance) used by labels attached to a host rectangle.
	IsRectText bool

	// DisableBox skips background/padding/border/box-shadow resolution.
	// Rich token styles are always resolved with boxes disabled.
	DisableBox bool

	// Inside overrides the "does this position sit inside the host shape"
	// predicate. Nil tests whether the position string contains "inside".
	Inside func(position string) bool
}

// Theme carries global default text style values, keyed by the same names
// used in style model declarations.
type Theme struct {
	TextStyle map[string]any
}

func (t *Theme) value(key string) any {
	if t == nil || t.TextStyle == nil {
		return nil
	}
	return t.TextStyle[key]
}

// DefaultTheme supplies the stock font defaults.
var DefaultTheme = &Theme{TextStyle: map[string]any{
	"fontStyle":  "normal",
	"fontWeight": "normal",
	"fontSize":   12.0,
	"fontFamily": "sans-serif",
}}

// TextStyle is the flattened output of a resolution: one concrete record the
// renderer consumes directly. String fields use "" for unset; pointer fields
// are nil when unset, so a deliberate zero survives the cascade.
type TextStyle struct {
	// Text content, stamped by ResolveLabel. "" means no text.
	Text string

	Fill        string
	Stroke      string
	StrokeWidth *float64

	FontStyle  string
	FontWeight string
	FontSize   *float64
	FontFamily string

	Align         string
	VerticalAlign string
	LineHeight    *float64

	// Placement, set only when resolving rect text.
	Position string
	Offset   *Vec2
	Rotation *float64 // radians
	Distance *float64

	// Box properties, set only on block-level records with boxes enabled.
	BackgroundColor  string
	Padding          []float64
	BorderColor      string
	BorderWidth      *float64
	BorderRadius     *float64
	BoxShadowColor   string
	BoxShadowBlur    *float64
	BoxShadowOffsetX *float64
	BoxShadowOffsetY *float64

	// Text shadow (independent of the box shadow above).
	ShadowColor   string
	ShadowBlur    *float64
	ShadowOffsetX *float64
	ShadowOffsetY *float64

	// Rich token styles. nil means no rich segments were declared anywhere;
	// a non-nil empty map is meaningfully different to markup rendering
	// downstream and is preserved as such.
	Rich map[string]*TextStyle
}

// ResolveTextStyle flattens one style model node into a concrete TextStyle,
// without its Rich field (see ResolveRichTokens). The inputs are never
// mutated; repeated calls with different options against the same node are
// safe.
//
// In WithDefaults mode, values missing from the model chain fall back to the
// theme, and a label positioned inside its host shape with no explicit fill
// gets white fill plus an AutoColor legibility stroke of width 2. In
// OverridesOnly mode unresolved values stay unset.
func ResolveTextStyle(model StyleModel, theme *Theme, opts TextResolveOptions) *TextStyle {
	if model == nil {
		panic("hazel: cannot resolve text style without a model")
	}
	ts := &TextStyle{}
	withDefaults := opts.Mode == WithDefaults

	// get folds the explicit layer list: model chain, then (WithDefaults
	// only) the theme. Computed defaults are applied separately below.
	get := func(key string) any {
		if v := chainValue(model, key); v != nil {
			return v
		}
		if withDefaults {
			return theme.value(key)
		}
		return nil
	}

	// Placement group, gated on rect text.
	if opts.IsRectText {
		pos, _ := asString(get("position"))
		if pos == "" && withDefaults {
			pos = "inside"
		}
		if pos == "outside" {
			// Legacy alias.
			pos = "top"
		}
		ts.Position = pos

		if off, ok := asFloats(get("offset"), 2); ok && len(off) >= 2 {
			ts.Offset = &Vec2{X: off[0], Y: off[1]}
		}
		if deg, ok := asFloat(get("rotate")); ok {
			ts.Rotation = fptr(deg * math.Pi / 180)
		}
		if d, ok := asFloat(get("distance")); ok {
			ts.Distance = fptr(d)
		} else if withDefaults {
			ts.Distance = fptr(defaultTextDistance)
		}
	}

	// Color group. "auto" is never a real color: it resolves to the
	// caller-supplied contextual color, or stays unset without one.
	ts.Fill = resolveColor(chainValue(model, "color"), opts.AutoColor)
	ts.Stroke = resolveColor(chainValue(model, "textBorderColor"), opts.AutoColor)
	if w, ok := asFloat(chainValue(model, "textBorderWidth")); ok {
		ts.StrokeWidth = fptr(w)
	}
	if withDefaults {
		if ts.Fill == "" {
			ts.Fill = resolveColor(theme.value("color"), opts.AutoColor)
		}
		if ts.Stroke == "" {
			ts.Stroke = resolveColor(theme.value("textBorderColor"), opts.AutoColor)
		}
		if ts.StrokeWidth == nil {
			if w, ok := asFloat(theme.value("textBorderWidth")); ok {
				ts.StrokeWidth = fptr(w)
			}
		}
		// Computed default: a label sitting inside its host shape with no
		// fill anywhere gets white text, stroked in the contextual color so
		// it stays legible over a white host fill.
		if ts.Fill == "" && positionInside(ts.Position, opts.Inside) {
			ts.Fill = "#fff"
			if ts.Stroke == "" && opts.AutoColor != "" {
				ts.Stroke = opts.AutoColor
				ts.StrokeWidth = fptr(insideStrokeWidth)
			}
		}
	}

	// Font and alignment: plain local-else-theme, no position dependence.
	ts.FontStyle, _ = asString(get("fontStyle"))
	ts.FontWeight, _ = asString(get("fontWeight"))
	if size, ok := asFloat(get("fontSize")); ok {
		ts.FontSize = fptr(size)
	}
	ts.FontFamily, _ = asString(get("fontFamily"))
	ts.Align, _ = asString(get("align"))
	ts.VerticalAlign, _ = asString(get("verticalAlign"))
	if lh, ok := asFloat(get("lineHeight")); ok {
		ts.LineHeight = fptr(lh)
	}

	// Box group: block-level records only, model chain only (boxes have no
	// theme defaults). Rich token records never reach this branch.
	if !opts.DisableBox {
		ts.BackgroundColor = resolveColor(chainValue(model, "backgroundColor"), opts.AutoColor)
		if pad, ok := asFloats(chainValue(model, "padding"), 4); ok {
			ts.Padding = pad
		}
		ts.BorderColor = resolveColor(chainValue(model, "borderColor"), opts.AutoColor)
		if w, ok := asFloat(chainValue(model, "borderWidth")); ok {
			ts.BorderWidth = fptr(w)
		}
		if r, ok := asFloat(chainValue(model, "borderRadius")); ok {
			ts.BorderRadius = fptr(r)
		}
		ts.BoxShadowColor, _ = asString(chainValue(model, "shadowColor"))
		if b, ok := asFloat(chainValue(model, "shadowBlur")); ok {
			ts.BoxShadowBlur = fptr(b)
		}
		if x, ok := asFloat(chainValue(model, "shadowOffsetX")); ok {
			ts.BoxShadowOffsetX = fptr(x)
		}
		if y, ok := asFloat(chainValue(model, "shadowOffsetY")); ok {
			ts.BoxShadowOffsetY = fptr(y)
		}
	}

	// Text shadow: local-else-theme, independent of rect-text gating.
	ts.ShadowColor, _ = asString(get("textShadowColor"))
	if b, ok := asFloat(get("textShadowBlur")); ok {
		ts.ShadowBlur = fptr(b)
	}
	if x, ok := asFloat(get("textShadowOffsetX")); ok {
		ts.ShadowOffsetX = fptr(x)
	}
	if y, ok := asFloat(get("textShadowOffsetY")); ok {
		ts.ShadowOffsetY = fptr(y)
	}

	return ts
}

// resolveColor maps a raw model value to a concrete color string. The "auto"
// sentinel becomes autoColor (which may itself be empty, i.e. unset).
func resolveColor(v any, autoColor string) string {
	s, ok := asString(v)
	if !ok {
		return ""
	}
	if s == ColorAuto {
		return autoColor
	}
	return s
}

// positionInside applies the caller's inside predicate, defaulting to a
// substring test.
func positionInside(position string, inside func(string) bool) bool {
	if inside != nil {
		return inside(position)
	}
	return strings.Contains(position, "inside")
}

// Overlay writes every set field of o onto t, so caller-supplied explicit
// styles win over everything the cascade computed. Unset fields of o leave t
// untouched.
func (t *TextStyle) Overlay(o *TextStyle) {
	if o == nil {
		return
	}
	if o.Text != "" {
		t.Text = o.Text
	}
	if o.Fill != "" {
		t.Fill = o.Fill
	}
	if o.Stroke != "" {
		t.Stroke = o.Stroke
	}
	if o.StrokeWidth != nil {
		t.StrokeWidth = o.StrokeWidth
	}
	if o.FontStyle != "" {
		t.FontStyle = o.FontStyle
	}
	if o.FontWeight != "" {
		t.FontWeight = o.FontWeight
	}
	if o.FontSize != nil {
		t.FontSize = o.FontSize
	}
	if o.FontFamily != "" {
		t.FontFamily = o.FontFamily
	}
	if o.Align != "" {
		t.Align = o.Align
	}
	if o.VerticalAlign != "" {
		t.VerticalAlign = o.VerticalAlign
	}
	if o.LineHeight != nil {
		t.LineHeight = o.LineHeight
	}
	if o.Position != "" {
		t.Position = o.Position
	}
	if o.Offset != nil {
		t.Offset = o.Offset
	}
	if o.Rotation != nil {
		t.Rotation = o.Rotation
	}
	if o.Distance != nil {
		t.Distance = o.Distance
	}
	if o.BackgroundColor != "" {
		t.BackgroundColor = o.BackgroundColor
	}
	if o.Padding != nil {
		t.Padding = o.Padding
	}
	if o.BorderColor != "" {
		t.BorderColor = o.BorderColor
	}
	if o.BorderWidth != nil {
		t.BorderWidth = o.BorderWidth
	}
	if o.BorderRadius != nil {
		t.BorderRadius = o.BorderRadius
	}
	if o.BoxShadowColor != "" {
		t.BoxShadowColor = o.BoxShadowColor
	}
	if o.BoxShadowBlur != nil {
		t.BoxShadowBlur = o.BoxShadowBlur
	}
	if o.BoxShadowOffsetX != nil {
		t.BoxShadowOffsetX = o.BoxShadowOffsetX
	}
	if o.BoxShadowOffsetY != nil {
		t.BoxShadowOffsetY = o.BoxShadowOffsetY
	}
	if o.ShadowColor != "" {
		t.ShadowColor = o.ShadowColor
	}
	if o.ShadowBlur != nil {
		t.ShadowBlur = o.ShadowBlur
	}
	if o.ShadowOffsetX != nil {
		t.ShadowOffsetX = o.ShadowOffsetX
	}
	if o.ShadowOffsetY != nil {
		t.ShadowOffsetY = o.ShadowOffsetY
	}
	if o.Rich != nil {
		t.Rich = o.Rich
	}
}

func fptr(f float64) *float64 {
	return &f
}
