package svg

import "math"

// Vector is a 2D float pair: positions, scale factors, directions.
type Vector struct {
	X, Y float64
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s component-wise.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in degrees, normalized to [0, 360).
func (v Vector) Angle() float64 {
	var a = math.Atan2(v.Y, v.X) * 180 / math.Pi
	if a < 0 {
		a += 360
	}

	return a
}
