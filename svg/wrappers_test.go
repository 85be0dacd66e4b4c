// Package svg_test validates the typed wrappers: native-attribute
// accessors, transform groups, multi-line text and animation keyframes.
package svg_test

import (
	"testing"

	"github.com/katalvlaran/dreamplet/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCircle_Accessors checks the cx/cy/r round-trip and derived values.
func TestCircle_Accessors(t *testing.T) {
	var c = svg.NewCircle().SetPos(svg.Vector{X: 3, Y: 4}).SetRadius(5)

	assert.Equal(t, svg.Vector{X: 3, Y: 4}, c.Pos())
	assert.Equal(t, 5.0, c.Radius())
	assert.Equal(t, 10.0, c.Diameter())
	assert.Equal(t, `<circle cx="3" cy="4" r="5"/>`, c.String())
}

// TestRect_Accessors checks the x/y/width/height accessors.
func TestRect_Accessors(t *testing.T) {
	var r = svg.NewRect().SetPos(svg.Vector{X: 1, Y: 2})
	r.Set("width", 30).Set("height", 40)

	assert.Equal(t, svg.Vector{X: 1, Y: 2}, r.Pos())
	assert.Equal(t, 30.0, r.Width())
	assert.Equal(t, 40.0, r.Height())
}

// TestLine_Geometry checks the derived length and angle of a 3-4-5 line.
func TestLine_Geometry(t *testing.T) {
	var l = svg.NewLine(0, 0, 3, 4)
	assert.Equal(t, 5.0, l.Length())
	assert.InDelta(t, 53.13010235415598, l.Angle(), 1e-9)

	// Angle normalizes into [0, 360).
	var up = svg.NewLine(0, 0, 0, -1)
	assert.InDelta(t, 270.0, up.Angle(), 1e-9)
}

// TestPath_D checks the d-string accessors.
func TestPath_D(t *testing.T) {
	var p = svg.NewPath("M 0,0 L 10,10")
	assert.Equal(t, "M 0,0 L 10,10", p.D())

	p.SetD("M 1,1")
	assert.Equal(t, `<path d="M 1,1"/>`, p.String())
}

// TestG_TransformOrder verifies the fixed rotate → translate → scale
// emission order regardless of setter call order.
func TestG_TransformOrder(t *testing.T) {
	var g = svg.NewG()
	g.SetScale(svg.Vector{X: 2, Y: 3})
	g.SetPos(svg.Vector{X: 10, Y: 20})
	g.SetAngle(45)

	var tr, ok = g.Get("transform")
	require.True(t, ok)
	assert.Equal(t, "rotate(45) translate(10 20) scale(2 3)", tr)
}

// TestG_IdentityOmitsTransform checks that identity components drop out
// of the attribute entirely.
func TestG_IdentityOmitsTransform(t *testing.T) {
	var g = svg.NewG()
	var _, ok = g.Get("transform")
	assert.False(t, ok, "identity group must carry no transform")

	g.SetPos(svg.Vector{X: 1, Y: 1})
	_, ok = g.Get("transform")
	require.True(t, ok)

	g.SetPos(svg.Vector{})
	_, ok = g.Get("transform")
	assert.False(t, ok, "returning to identity must drop the attribute")
}

// TestG_SetTransformParse parses a raw transform string back into state
// and re-emits it canonically.
func TestG_SetTransformParse(t *testing.T) {
	var g = svg.NewG()
	g.SetTransform("scale(2) rotate(30) translate(5, 6)")

	assert.Equal(t, 30.0, g.Angle())
	assert.Equal(t, svg.Vector{X: 5, Y: 6}, g.Pos())
	assert.Equal(t, svg.Vector{X: 2, Y: 2}, g.Scale(), "single scale factor applies to both axes")

	var tr, _ = g.Get("transform")
	assert.Equal(t, "rotate(30) translate(5 6) scale(2 2)", tr)
}

// TestText_SingleLine keeps single-line content as plain element text.
func TestText_SingleLine(t *testing.T) {
	var txt = svg.NewText("hello")
	txt.SetPos(svg.Vector{X: 5, Y: 10})

	assert.Equal(t, "hello", txt.Content())
	assert.Equal(t, `<text x="5" y="10">hello</text>`, txt.String())
}

// TestText_MultiLine expands newlines into tspans: the first anchored at
// x/y, the rest stepped down by font-size.
func TestText_MultiLine(t *testing.T) {
	var txt = svg.NewText("")
	txt.Set("font-size", 12)
	txt.SetPos(svg.Vector{X: 5, Y: 10})
	txt.SetContent("one\ntwo")

	assert.Equal(t, "one\ntwo", txt.Content())
	var spans = txt.FindAll("tspan", false)
	require.Len(t, spans, 2)

	var y, _ = spans[0].Get("y")
	assert.Equal(t, "10", y)
	var dy, _ = spans[1].Get("dy")
	assert.Equal(t, "12", dy)
	var x, _ = spans[1].Get("x")
	assert.Equal(t, "5", x)
	assert.Equal(t, "two", spans[1].Text())
}

// TestTextOnPath_Structure checks the nested textPath and its href.
func TestTextOnPath_Structure(t *testing.T) {
	var tp = svg.NewTextOnPath("curved words", "#wave")
	assert.Equal(t, "curved words", tp.Content())

	var inner = tp.Find("textPath", false)
	require.NotNil(t, inner)
	var href, _ = inner.Get("href")
	assert.Equal(t, "#wave", href)

	tp.SetContent("updated")
	assert.Equal(t, "updated", tp.Content())
}

// TestAnimate_Defaults pins the looping defaults and keyframe join.
func TestAnimate_Defaults(t *testing.T) {
	var a = svg.NewAnimate().SetAttributeName("r").SetDur("3s").SetValues(4, 8, 4)

	var rc, _ = a.Get("repeatCount")
	assert.Equal(t, "indefinite", rc)
	var at, _ = a.Get("attributeType")
	assert.Equal(t, "XML", at)
	var vals, _ = a.Get("values")
	assert.Equal(t, "4;8;4", vals)
	assert.Equal(t, []float64{4, 8, 4}, a.Values())

	a.SetRepeatCount(3)
	rc, _ = a.Get("repeatCount")
	assert.Equal(t, "3", rc)
}
