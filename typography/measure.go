package typography

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultDPI makes one point equal one pixel.
const defaultDPI = 72.0

// Measurer measures rendered text extents at a fixed DPI.
type Measurer struct {
	// DPI scales points to pixels: pixel size = point size × DPI / 72.
	DPI float64
}

// NewMeasurer returns a Measurer at the given DPI; zero or negative
// values fall back to 72.
func NewMeasurer(dpi float64) *Measurer {
	if dpi <= 0 {
		dpi = defaultDPI
	}

	return &Measurer{DPI: dpi}
}

// MeasureText measures text rendered with the system font matching
// family and weight at size points. Multiline text measures the widest
// line and stacks line heights. Width and height come back in pixels.
func (m *Measurer) MeasureText(text, family string, weight int, size float64) (float64, float64, error) {
	var path, errFind = FindSystemFont(family, weight)
	if errFind != nil {
		return 0, 0, errFind
	}

	var data, errRead = os.ReadFile(path)
	if errRead != nil {
		return 0, 0, fmt.Errorf("typography: read %s: %w", path, errRead)
	}

	var fnt, errParse = opentype.Parse(data)
	if errParse != nil {
		return 0, 0, fmt.Errorf("typography: parse %s: %w", path, errParse)
	}

	return m.MeasureFont(fnt, text, size)
}

// MeasureFont measures text against an already parsed font, for callers
// carrying embedded fonts instead of system ones.
func (m *Measurer) MeasureFont(fnt *opentype.Font, text string, size float64) (float64, float64, error) {
	var face, errFace = opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     m.DPI,
		Hinting: font.HintingNone,
	})
	if errFace != nil {
		return 0, 0, fmt.Errorf("typography: build face: %w", errFace)
	}
	defer face.Close()

	var metrics = face.Metrics()
	var lineHeight = fixedToFloat(metrics.Ascent + metrics.Descent)

	var lines = strings.Split(text, "\n")

	var width float64
	var line string
	for _, line = range lines {
		var w = fixedToFloat(font.MeasureString(face, line))
		if w > width {
			width = w
		}
	}

	return width, lineHeight * float64(len(lines)), nil
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
