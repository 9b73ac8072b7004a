package hazel

import (
	"github.com/lucasb-eyer/go-colorful"
)

// liftIntensity is the fixed darkening applied to a node's own fill/stroke
// when a hover delta does not override that key itself.
const liftIntensity = -0.1

// Lift shifts a hex color's lightness by amount: negative values darken,
// positive values brighten. Amount is clamped to [-1, 1]. Colors that do not
// parse as hex (named colors, sentinels) are returned unchanged.
func Lift(color string, amount float64) string {
	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	if amount < -1 {
		amount = -1
	} else if amount > 1 {
		amount = 1
	}
	h, s, l := c.Hsl()
	if amount < 0 {
		l *= 1 + amount
	} else {
		l += (1 - l) * amount
	}
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// isPaintable reports whether a live style value is a real, drawable paint:
// a non-empty color string that is neither the "none" nor "auto" sentinel.
func isPaintable(v any) bool {
	s, ok := v.(string)
	return ok && s != "" && s != ColorNone && s != ColorAuto
}
