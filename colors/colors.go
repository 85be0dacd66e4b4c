package colors

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for color parsing.
var (
	// ErrInvalidHex indicates the input is not "#RGB" or "#RRGGBB".
	ErrInvalidHex = errors.New("colors: invalid hex color string")
)

// hexPattern accepts one or more leading '#' followed by 3 or 6 hex digits.
var hexPattern = regexp.MustCompile(`^#+([a-fA-F\d]{6}|[a-fA-F\d]{3})$`)

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B int
}

// ParseHex converts a hex color string to an RGB triple. Shorthand "#abc"
// expands to "#aabbcc". Returns ErrInvalidHex for anything else.
func ParseHex(s string) (RGB, error) {
	var m = hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, ErrInvalidHex
	}

	var hex = m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var c RGB
	// The pattern guarantees six hex digits; Sscanf cannot fail here.
	_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)

	return c, nil
}

// Hex formats the triple as "#rrggbb", clamping channels to [0, 255].
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampInt(c.R, 0, 255), clampInt(c.G, 0, 255), clampInt(c.B, 0, 255))
}

// RGBA formats the triple and an alpha in [0, 1] as a CSS
// "rgba(r, g, b, a)" string, clamping every component.
func RGBA(c RGB, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %v)",
		clampInt(c.R, 0, 255), clampInt(c.G, 0, 255), clampInt(c.B, 0, 255),
		clampFloat(alpha, 0, 1))
}

// Blend mixes two hex colors channel-wise: t=0 returns c1, t=1 returns c2,
// t is clamped to [0, 1] and channels round half up. Either input failing
// to parse yields "#000000" (forgiving by design of the styling call
// sites; use ParseHex directly when strictness matters).
func Blend(c1, c2 string, t float64) string {
	var a, errA = ParseHex(c1)
	var b, errB = ParseHex(c2)
	if errA != nil || errB != nil {
		return "#000000"
	}

	t = clampFloat(t, 0, 1)

	return RGB{
		R: mathRound((1-t)*float64(a.R) + t*float64(b.R)),
		G: mathRound((1-t)*float64(a.G) + t*float64(b.G)),
		B: mathRound((1-t)*float64(a.B) + t*float64(b.B)),
	}.Hex()
}

// mathRound rounds x to the nearest integer using round half up.
func mathRound(x float64) int {
	return int(x + 0.5)
}

// clampInt constrains v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// clampFloat constrains v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
