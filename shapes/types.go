package shapes

import (
	"errors"
	"math"

	"github.com/katalvlaran/dreamplet/noise"
)

// Sentinel errors for shape generation.
var (
	// ErrLengthMismatch indicates Polyline received coordinate slices of
	// differing lengths.
	ErrLengthMismatch = errors.New("shapes: x and y coordinate slices must have the same length")
	// ErrTooFewPoints indicates a radial generator cannot close a polygon
	// with the requested vertex count.
	ErrTooFewPoints = errors.New("shapes: at least three points are required")
)

// Source yields a radius per angular position for radial generators.
// Two variants exist: Constant for fixed radii and Procedural for
// noise-driven outlines. The noise engine itself stays unaware of shapes.
type Source interface {
	// radius reports the radius at angle theta (radians).
	radius(theta float64) float64
}

// constant is the fixed-radius Source variant.
type constant struct {
	v float64
}

// Constant returns a Source with the same radius at every angle.
func Constant(v float64) Source {
	return constant{v: v}
}

func (c constant) radius(_ float64) float64 {
	return c.v
}

// procedural is the noise-driven Source variant.
type procedural struct {
	gen       *noise.Noise
	base      float64
	amplitude float64
	frequency float64
}

// Procedural returns a Source sampling 2D noise around the unit circle:
// radius(θ) = base + amplitude × noise2d(cos θ × frequency, sin θ × frequency).
// Sampling on a circle (rather than along an unwrapped angle axis) makes
// the radius seamless at θ=0/2π. Higher frequency means wigglier outlines.
func Procedural(gen *noise.Noise, base, amplitude, frequency float64) Source {
	return procedural{gen: gen, base: base, amplitude: amplitude, frequency: frequency}
}

func (p procedural) radius(theta float64) float64 {
	var x = math.Cos(theta) * p.frequency
	var y = math.Sin(theta) * p.frequency

	return p.base + p.amplitude*p.gen.Noise2D(x, y)
}
