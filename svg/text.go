package svg

import (
	"strconv"
	"strings"
)

// defaultLineHeight is the tspan dy fallback when a multi-line text
// carries no font-size attribute.
const defaultLineHeight = 16.0

// Text wraps a <text> element. Multi-line content (embedded newlines)
// expands into stacked <tspan> children: each line re-anchors at the text
// x and steps down by the font-size.
type Text struct {
	*Element
	raw string
}

// NewText returns a <text> with the given content.
func NewText(content string) *Text {
	var t = &Text{Element: NewElement("text")}
	if content != "" {
		t.SetContent(content)
	}

	return t
}

// Pos returns the anchor from x/y.
func (t *Text) Pos() Vector {
	return Vector{X: t.Float("x"), Y: t.Float("y")}
}

// SetPos sets x/y and re-expands multi-line content so the tspans pick up
// the new anchor.
func (t *Text) SetPos(v Vector) *Text {
	t.Set("x", v.X).Set("y", v.Y)
	if strings.Contains(t.raw, "\n") {
		t.SetContent(t.raw)
	}

	return t
}

// Content returns the logical text (with newlines), not the serialized
// tspan structure.
func (t *Text) Content() string {
	return t.raw
}

// SetContent replaces the text. Single-line content becomes element text;
// multi-line content becomes one <tspan> per line, the first anchored at
// x/y, the rest stepped down by the font-size (or a 16px fallback).
func (t *Text) SetContent(content string) *Text {
	t.raw = content

	// Rebuild from scratch: drop previous tspans and text.
	var c *Element
	for _, c = range append([]*Element(nil), t.Children()...) {
		t.Remove(c)
	}
	t.SetText("")

	if !strings.Contains(content, "\n") {
		t.SetText(content)

		return t
	}

	var dy = defaultLineHeight
	if fs, ok := t.Get("font-size"); ok {
		if v, err := strconv.ParseFloat(fs, 64); err == nil {
			dy = v
		}
	}

	var x, hasX = t.Get("x")
	var y, hasY = t.Get("y")

	var i int
	var line string
	for i, line = range strings.Split(content, "\n") {
		var span = NewElement("tspan")
		if hasX {
			span.Set("x", x)
		}
		if i == 0 {
			if hasY {
				span.Set("y", y)
			}
		} else {
			span.Set("dy", dy)
		}
		span.SetText(line)
		t.Append(span)
	}

	return t
}

// TextOnPath wraps a <text> holding a single <textPath> child that refers
// to a path by href.
type TextOnPath struct {
	*Element
	textPath *Element
}

// NewTextOnPath returns a <text><textPath href=...> pair with content.
func NewTextOnPath(content, href string) *TextOnPath {
	var tp = NewElement("textPath")
	if href != "" {
		tp.Set("href", href)
	}
	tp.SetText(content)

	var t = &TextOnPath{Element: NewElement("text"), textPath: tp}
	t.Append(tp)

	return t
}

// TextPath exposes the inner <textPath> for attribute styling
// (startOffset, method, spacing...).
func (t *TextOnPath) TextPath() *Element {
	return t.textPath
}

// Content returns the textPath content.
func (t *TextOnPath) Content() string {
	return t.textPath.Text()
}

// SetContent replaces the textPath content.
func (t *TextOnPath) SetContent(content string) *TextOnPath {
	t.textPath.SetText(content)

	return t
}
