package svg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// G is a <g> group whose placement is controlled through Pos/Scale/Angle
// rather than a raw transform string. The transform attribute is always
// emitted in the fixed order rotate → translate → scale, so identical
// state serializes identically.
type G struct {
	*Element
	pos   Vector
	scale Vector
	angle float64
}

// NewG returns an identity group: no translation, unit scale, no rotation.
func NewG() *G {
	var g = &G{Element: NewElement("g"), scale: Vector{X: 1, Y: 1}}

	return g
}

// Pos returns the group's translation.
func (g *G) Pos() Vector {
	return g.pos
}

// SetPos sets the translation and rewrites the transform attribute.
func (g *G) SetPos(v Vector) *G {
	g.pos = v
	g.updateTransform()

	return g
}

// Scale returns the group's scale factors.
func (g *G) Scale() Vector {
	return g.scale
}

// SetScale sets the scale factors and rewrites the transform attribute.
func (g *G) SetScale(v Vector) *G {
	g.scale = v
	g.updateTransform()

	return g
}

// Angle returns the group's rotation in degrees.
func (g *G) Angle() float64 {
	return g.angle
}

// SetAngle sets the rotation and rewrites the transform attribute.
func (g *G) SetAngle(deg float64) *G {
	g.angle = deg
	g.updateTransform()

	return g
}

// SetTransform parses an existing transform string (rotate/translate/
// scale components) into the group's state, then re-emits it in canonical
// order. Unknown components are dropped — the group owns its transform.
func (g *G) SetTransform(transform string) *G {
	g.pos = Vector{}
	g.scale = Vector{X: 1, Y: 1}
	g.angle = 0

	if m := rotateRe.FindStringSubmatch(transform); m != nil {
		g.angle, _ = strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	}
	if m := translateRe.FindStringSubmatch(transform); m != nil {
		var parts = splitNumbers(m[1])
		if len(parts) >= 2 {
			g.pos = Vector{X: parts[0], Y: parts[1]}
		}
	}
	if m := scaleRe.FindStringSubmatch(transform); m != nil {
		var parts = splitNumbers(m[1])
		switch {
		case len(parts) == 1:
			g.scale = Vector{X: parts[0], Y: parts[0]}
		case len(parts) >= 2:
			g.scale = Vector{X: parts[0], Y: parts[1]}
		}
	}
	g.updateTransform()

	return g
}

// updateTransform rewrites (or drops) the transform attribute from the
// group's state. Identity components are omitted entirely.
func (g *G) updateTransform() {
	var parts []string
	if g.angle != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%v)", g.angle))
	}
	if g.pos != (Vector{}) {
		parts = append(parts, fmt.Sprintf("translate(%v %v)", g.pos.X, g.pos.Y))
	}
	if g.scale != (Vector{X: 1, Y: 1}) {
		parts = append(parts, fmt.Sprintf("scale(%v %v)", g.scale.X, g.scale.Y))
	}

	if len(parts) == 0 {
		g.Unset("transform")

		return
	}
	g.Set("transform", strings.Join(parts, " "))
}

// Transform component patterns, shared by SetTransform.
var (
	rotateRe    = regexp.MustCompile(`rotate\(([^)]+)\)`)
	translateRe = regexp.MustCompile(`translate\(([^)]+)\)`)
	scaleRe     = regexp.MustCompile(`scale\(([^)]+)\)`)
)

// splitNumbers parses a whitespace/comma separated number list, skipping
// anything unparsable.
func splitNumbers(s string) []float64 {
	var fields = strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var out []float64
	var f string
	for _, f = range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}

	return out
}
