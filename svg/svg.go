package svg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// svgNS is the SVG XML namespace emitted on every root element.
const svgNS = "http://www.w3.org/2000/svg"

// SVG is the document root. It carries the xmlns declaration and keeps
// viewBox, width and height consistent.
type SVG struct {
	*Element
}

// NewSVG returns a root spanning `0 0 w h` with pixel width/height to
// match.
func NewSVG(w, h float64) *SVG {
	return NewSVGViewBox(0, 0, w, h)
}

// NewSVGViewBox returns a root with an explicit viewBox; width/height
// pick up the viewBox extent in pixels.
func NewSVGViewBox(minX, minY, w, h float64) *SVG {
	var root = NewElement("svg")
	root.Set("xmlns", svgNS)
	root.Set("viewBox", fmt.Sprintf("%v %v %v %v", minX, minY, w, h))
	root.Set("width", fmt.Sprintf("%vpx", w))
	root.Set("height", fmt.Sprintf("%vpx", h))

	return &SVG{Element: root}
}

// Width returns the horizontal extent of the viewBox.
func (s *SVG) Width() float64 {
	var vb = s.viewBox()

	return vb[2]
}

// Height returns the vertical extent of the viewBox.
func (s *SVG) Height() float64 {
	var vb = s.viewBox()

	return vb[3]
}

// viewBox parses the four viewBox numbers, zero-filling on malformed
// content (only hand-edited attributes can be malformed).
func (s *SVG) viewBox() [4]float64 {
	var out [4]float64
	var raw, _ = s.Get("viewBox")
	var parts = strings.Fields(raw)
	var i int
	for i = 0; i < len(parts) && i < 4; i++ {
		out[i], _ = strconv.ParseFloat(parts[i], 64)
	}

	return out
}

// Save writes the serialized document to path with 0644 permissions.
func (s *SVG) Save(path string) error {
	return os.WriteFile(path, []byte(s.String()), 0o644)
}
