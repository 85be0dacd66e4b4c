package svg

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Element is one node of the SVG tree: a tag, attributes in insertion
// order, child elements and optional text content. Attribute values are
// stored as strings (the wire format); Set stringifies whatever it is
// given, and the typed getters parse back on demand.
//
// An Element is not goroutine-safe: build the tree, then serialize.
type Element struct {
	tag      string
	keys     []string
	attrs    map[string]string
	children []*Element
	text     string
	parent   *Element
}

// NewElement returns an element with the given tag and optional leading
// attributes as key/value pairs: NewElement("rect", "width", 10, "fill",
// "teal"). An odd trailing key is ignored.
func NewElement(tag string, kv ...any) *Element {
	var e = &Element{tag: tag, attrs: make(map[string]string)}
	var i int
	for i = 0; i+1 < len(kv); i += 2 {
		e.Set(fmt.Sprint(kv[i]), kv[i+1])
	}

	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Set stores an attribute, stringifying the value with %v semantics.
// First-time keys append to the serialization order; repeated keys update
// in place. Returns the element for chaining.
func (e *Element) Set(key string, value any) *Element {
	if _, ok := e.attrs[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.attrs[key] = fmt.Sprint(value)

	return e
}

// Unset removes an attribute and its serialization slot. Unsetting an
// absent key is a no-op.
func (e *Element) Unset(key string) *Element {
	if _, ok := e.attrs[key]; !ok {
		return e
	}
	delete(e.attrs, key)
	var i int
	var k string
	for i, k = range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)

			break
		}
	}

	return e
}

// Get returns the raw attribute string; the second return is false when
// the attribute is absent.
func (e *Element) Get(key string) (string, bool) {
	var v, ok = e.attrs[key]

	return v, ok
}

// Float parses the attribute as a float64, returning 0 for absent or
// unparsable values — the forgiving accessor styling code wants.
func (e *Element) Float(key string) float64 {
	var v, err = strconv.ParseFloat(e.attrs[key], 64)
	if err != nil {
		return 0
	}

	return v
}

// Int parses the attribute as an int, returning 0 for absent or
// unparsable values.
func (e *Element) Int(key string) int {
	var v, err = strconv.Atoi(e.attrs[key])
	if err != nil {
		return 0
	}

	return v
}

// SetText replaces the element's text content. Elements with both text and
// children serialize text first, matching the original tree semantics.
func (e *Element) SetText(text string) *Element {
	e.text = text

	return e
}

// Text returns the element's direct text content.
func (e *Element) Text() string {
	return e.text
}

// Append attaches children to e, recording e as their parent. Returns the
// element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	var c *Element
	for _, c = range children {
		c.parent = e
		e.children = append(e.children, c)
	}

	return e
}

// Remove detaches the first occurrence of child from e. Removing an
// element that is not a child is a no-op.
func (e *Element) Remove(child *Element) *Element {
	var i int
	var c *Element
	for i, c = range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil

			break
		}
	}

	return e
}

// Parent returns the element this node is attached to, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the direct children in document order. The slice is
// shared; treat it as read-only.
func (e *Element) Children() []*Element {
	return e.children
}

// Find returns the first child with the given tag, or nil. With nested
// true the whole subtree is searched depth-first.
func (e *Element) Find(tag string, nested bool) *Element {
	var c *Element
	for _, c = range e.children {
		if c.tag == tag {
			return c
		}
		if nested {
			if hit := c.Find(tag, true); hit != nil {
				return hit
			}
		}
	}

	return nil
}

// FindAll returns every child with the given tag in document order. With
// nested true the whole subtree is searched depth-first.
func (e *Element) FindAll(tag string, nested bool) []*Element {
	var out []*Element
	var c *Element
	for _, c = range e.children {
		if c.tag == tag {
			out = append(out, c)
		}
		if nested {
			out = append(out, c.FindAll(tag, true)...)
		}
	}

	return out
}

// String serializes the subtree. Attributes appear in insertion order and
// values are XML-escaped, so output is deterministic for a given build
// sequence.
func (e *Element) String() string {
	var sb strings.Builder
	e.write(&sb)

	return sb.String()
}

// write emits the element and its subtree into sb.
func (e *Element) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	var k string
	for _, k = range e.keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(escape(e.attrs[k]))
		sb.WriteByte('"')
	}

	if e.text == "" && len(e.children) == 0 {
		sb.WriteString("/>")

		return
	}

	sb.WriteByte('>')
	if e.text != "" {
		sb.WriteString(escape(e.text))
	}
	var c *Element
	for _, c = range e.children {
		c.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

// escape XML-escapes attribute values and text content.
func escape(s string) string {
	var sb strings.Builder
	// xml.EscapeText writes to an io.Writer and never fails on a Builder.
	_ = xml.EscapeText(&sb, []byte(s))

	return sb.String()
}
