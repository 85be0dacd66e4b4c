package svg

// Typed wrappers over Element for the common shape tags. Wrappers control
// position through native attributes (cx/cy, x/y, …), never through
// transform — only G carries transforms.

// Circle wraps a <circle>.
type Circle struct {
	*Element
}

// NewCircle returns an empty <circle>.
func NewCircle() *Circle {
	return &Circle{Element: NewElement("circle")}
}

// Pos returns the center from cx/cy.
func (c *Circle) Pos() Vector {
	return Vector{X: c.Float("cx"), Y: c.Float("cy")}
}

// SetPos sets cx/cy from a vector.
func (c *Circle) SetPos(v Vector) *Circle {
	c.Set("cx", v.X).Set("cy", v.Y)

	return c
}

// Radius returns the r attribute.
func (c *Circle) Radius() float64 {
	return c.Float("r")
}

// SetRadius sets the r attribute.
func (c *Circle) SetRadius(r float64) *Circle {
	c.Set("r", r)

	return c
}

// Diameter returns 2r.
func (c *Circle) Diameter() float64 {
	return 2 * c.Radius()
}

// Ellipse wraps an <ellipse>.
type Ellipse struct {
	*Element
}

// NewEllipse returns an empty <ellipse>.
func NewEllipse() *Ellipse {
	return &Ellipse{Element: NewElement("ellipse")}
}

// Pos returns the center from cx/cy.
func (e *Ellipse) Pos() Vector {
	return Vector{X: e.Float("cx"), Y: e.Float("cy")}
}

// SetPos sets cx/cy from a vector.
func (e *Ellipse) SetPos(v Vector) *Ellipse {
	e.Set("cx", v.X).Set("cy", v.Y)

	return e
}

// Rect wraps a <rect>.
type Rect struct {
	*Element
}

// NewRect returns an empty <rect>.
func NewRect() *Rect {
	return &Rect{Element: NewElement("rect")}
}

// Pos returns the top-left corner from x/y.
func (r *Rect) Pos() Vector {
	return Vector{X: r.Float("x"), Y: r.Float("y")}
}

// SetPos sets x/y from a vector.
func (r *Rect) SetPos(v Vector) *Rect {
	r.Set("x", v.X).Set("y", v.Y)

	return r
}

// Width returns the width attribute.
func (r *Rect) Width() float64 {
	return r.Float("width")
}

// Height returns the height attribute.
func (r *Rect) Height() float64 {
	return r.Float("height")
}

// Line wraps a <line>.
type Line struct {
	*Element
}

// NewLine returns a line between two endpoints.
func NewLine(x1, y1, x2, y2 float64) *Line {
	var l = &Line{Element: NewElement("line")}
	l.Set("x1", x1).Set("y1", y1).Set("x2", x2).Set("y2", y2)

	return l
}

// Length returns the Euclidean length between the endpoints.
func (l *Line) Length() float64 {
	return l.delta().Length()
}

// Angle returns the line direction in degrees, normalized to [0, 360).
func (l *Line) Angle() float64 {
	return l.delta().Angle()
}

// delta is the endpoint difference vector.
func (l *Line) delta() Vector {
	return Vector{
		X: l.Float("x2") - l.Float("x1"),
		Y: l.Float("y2") - l.Float("y1"),
	}
}

// Path wraps a <path>.
type Path struct {
	*Element
}

// NewPath returns a <path> with the given d-string.
func NewPath(d string) *Path {
	var p = &Path{Element: NewElement("path")}
	if d != "" {
		p.Set("d", d)
	}

	return p
}

// D returns the path data string.
func (p *Path) D() string {
	var d, _ = p.Get("d")

	return d
}

// SetD replaces the path data string.
func (p *Path) SetD(d string) *Path {
	p.Set("d", d)

	return p
}
