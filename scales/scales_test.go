// Package scales_test validates the domain→range mappers: construction
// errors, mapping math, padding layout and lookup misses.
package scales_test

import (
	"testing"

	"github.com/katalvlaran/dreamplet/scales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinear_MapAndInvert checks the affine map, its inverse and linear
// extrapolation outside the domain.
func TestLinear_MapAndInvert(t *testing.T) {
	var s, err = scales.NewLinear([2]float64{0, 10}, [2]float64{0, 100})
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Map(0))
	assert.Equal(t, 50.0, s.Map(5))
	assert.Equal(t, 100.0, s.Map(10))
	assert.Equal(t, -10.0, s.Map(-1), "values outside the domain extrapolate")
	assert.Equal(t, 5.0, s.Invert(50))
}

// TestLinear_ReversedRange verifies axis inversion via a descending range.
func TestLinear_ReversedRange(t *testing.T) {
	var s, err = scales.NewLinear([2]float64{0, 1}, [2]float64{100, 0})
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Map(0))
	assert.Equal(t, 0.0, s.Map(1))
}

// TestLinear_DegenerateDomain rejects coinciding endpoints.
func TestLinear_DegenerateDomain(t *testing.T) {
	var _, err = scales.NewLinear([2]float64{3, 3}, [2]float64{0, 1})
	assert.ErrorIs(t, err, scales.ErrBadDomain)
}

// TestBand_Layout pins the band positions and bandwidth for the canonical
// three-band, 10%-padding configuration.
func TestBand_Layout(t *testing.T) {
	var s, err = scales.NewBand([]string{"a", "b", "c"}, [2]float64{0, 100}, 0.1)
	require.NoError(t, err)

	// step = 100 / (3 + 0.1·2) = 31.25, bandwidth = step·0.9 = 28.125.
	assert.InDelta(t, 28.125, s.Bandwidth(), 1e-12)

	var pos, ok = s.Map("a")
	require.True(t, ok)
	assert.InDelta(t, 0.0, pos, 1e-12)

	pos, ok = s.Map("b")
	require.True(t, ok)
	assert.InDelta(t, 34.375, pos, 1e-12)

	pos, ok = s.Map("c")
	require.True(t, ok)
	assert.InDelta(t, 68.75, pos, 1e-12)
}

// TestBand_UnknownValue returns (0, false) for values outside the domain.
func TestBand_UnknownValue(t *testing.T) {
	var s, err = scales.NewBand([]string{"a"}, [2]float64{0, 10}, 0.1)
	require.NoError(t, err)

	var _, ok = s.Map("zzz")
	assert.False(t, ok, "unknown categorical value must miss")
}

// TestBand_EmptyDomain rejects an empty domain.
func TestBand_EmptyDomain(t *testing.T) {
	var _, err = scales.NewBand(nil, [2]float64{0, 10}, 0.1)
	assert.ErrorIs(t, err, scales.ErrEmptyDomain)
}

// TestPoint_Layout checks edge padding: three points over [0,100] with
// padding 0.5 sit at 1/6, 1/2 and 5/6 of the range.
func TestPoint_Layout(t *testing.T) {
	var s, err = scales.NewPoint([]string{"a", "b", "c"}, [2]float64{0, 100}, 0.5)
	require.NoError(t, err)

	var pos, ok = s.Map("a")
	require.True(t, ok)
	assert.InDelta(t, 100.0/6, pos, 1e-9)

	pos, ok = s.Map("b")
	require.True(t, ok)
	assert.InDelta(t, 50.0, pos, 1e-9)

	pos, ok = s.Map("c")
	require.True(t, ok)
	assert.InDelta(t, 500.0/6, pos, 1e-9)
}

// TestPoint_EmptyDomain rejects an empty domain.
func TestPoint_EmptyDomain(t *testing.T) {
	var _, err = scales.NewPoint([]string{}, [2]float64{0, 10}, 0.5)
	assert.ErrorIs(t, err, scales.ErrEmptyDomain)
}

// TestOrdinal_CyclicAssignment verifies that outputs wrap around when the
// domain outnumbers the value set, and that misses report false.
func TestOrdinal_CyclicAssignment(t *testing.T) {
	var s, err = scales.NewOrdinal([]string{"a", "b", "c", "d"}, []string{"x", "y", "z"})
	require.NoError(t, err)

	var v, ok = s.Map("a")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = s.Map("d")
	require.True(t, ok)
	assert.Equal(t, "x", v, "fourth value must wrap to the first output")

	_, ok = s.Map("nope")
	assert.False(t, ok)
}

// TestOrdinal_EmptyValues rejects an empty output set.
func TestOrdinal_EmptyValues(t *testing.T) {
	var _, err = scales.NewOrdinal[string]([]string{"a"}, nil)
	assert.ErrorIs(t, err, scales.ErrEmptyRange)
}

// TestSquare_AreaProportional checks the √ transform: a quarter of the
// domain maps to half the side range.
func TestSquare_AreaProportional(t *testing.T) {
	var s, err = scales.NewSquare([2]float64{0, 100}, [2]float64{0, 10})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.Map(0), 1e-12)
	assert.InDelta(t, 5.0, s.Map(25), 1e-12)
	assert.InDelta(t, 10.0, s.Map(100), 1e-12)
}

// TestSquare_BadDomain rejects negative endpoints and degenerate domains.
func TestSquare_BadDomain(t *testing.T) {
	var _, err = scales.NewSquare([2]float64{-1, 100}, [2]float64{0, 10})
	assert.ErrorIs(t, err, scales.ErrBadDomain, "negative endpoint")

	_, err = scales.NewSquare([2]float64{4, 4}, [2]float64{0, 10})
	assert.ErrorIs(t, err, scales.ErrBadDomain, "coinciding square roots")
}

// TestCircle_AreaTrue verifies that the mapped radius keeps circle area
// linear in the input: the domain midpoint yields √(r1²/2).
func TestCircle_AreaTrue(t *testing.T) {
	var s, err = scales.NewCircle([2]float64{0, 100}, [2]float64{0, 10})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.Map(0), 1e-12)
	assert.InDelta(t, 7.0710678118654755, s.Map(50), 1e-12, "half the value → half the area")
	assert.InDelta(t, 10.0, s.Map(100), 1e-12)
}

// TestCircle_DegenerateDomain rejects coinciding endpoints.
func TestCircle_DegenerateDomain(t *testing.T) {
	var _, err = scales.NewCircle([2]float64{5, 5}, [2]float64{0, 10})
	assert.ErrorIs(t, err, scales.ErrBadDomain)
}

// TestColor_TwoStops pins endpoint clamping and the midpoint blend.
func TestColor_TwoStops(t *testing.T) {
	var s, err = scales.NewColor([2]float64{0, 1}, []string{"#000000", "#ffffff"})
	require.NoError(t, err)

	assert.Equal(t, "#000000", s.Map(0))
	assert.Equal(t, "#ffffff", s.Map(1))
	assert.Equal(t, "#808080", s.Map(0.5), "midpoint rounds half up to 0x80")
	assert.Equal(t, "#000000", s.Map(-5), "below domain clamps to first stop")
	assert.Equal(t, "#ffffff", s.Map(9), "above domain clamps to last stop")
}

// TestColor_MultiStop checks segment selection in a three-stop palette.
func TestColor_MultiStop(t *testing.T) {
	var s, err = scales.NewColor([2]float64{0, 1}, []string{"#ff0000", "#00ff00", "#0000ff"})
	require.NoError(t, err)

	assert.Equal(t, "#00ff00", s.Map(0.5), "middle stop is hit exactly")
	assert.Equal(t, "#808000", s.Map(0.25), "first segment midpoint")
	assert.Equal(t, "#008080", s.Map(0.75), "second segment midpoint")
}

// TestColor_ConstructorErrors rejects degenerate domains and tiny palettes.
func TestColor_ConstructorErrors(t *testing.T) {
	var _, err = scales.NewColor([2]float64{1, 1}, []string{"#000000", "#ffffff"})
	assert.ErrorIs(t, err, scales.ErrBadDomain)

	_, err = scales.NewColor([2]float64{0, 1}, []string{"#000000"})
	assert.ErrorIs(t, err, scales.ErrPaletteTooSmall)
}

// TestQuantile_Buckets checks empirical thresholds over 1..10 with three
// buckets: thresholds land on 4 and 7, boundaries belong upward.
func TestQuantile_Buckets(t *testing.T) {
	var sample = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	var s, err = scales.NewQuantile(sample, []string{"low", "mid", "high"})
	require.NoError(t, err)

	assert.Equal(t, "low", s.Map(1))
	assert.Equal(t, "low", s.Map(3.9))
	assert.Equal(t, "mid", s.Map(4), "boundary value joins the upper bucket")
	assert.Equal(t, "mid", s.Map(6.9))
	assert.Equal(t, "high", s.Map(7))
	assert.Equal(t, "high", s.Map(100), "values beyond the sample stay in the top bucket")
	assert.Equal(t, "low", s.Map(-100))
}

// TestQuantile_ConstructorErrors rejects empty samples and value sets.
func TestQuantile_ConstructorErrors(t *testing.T) {
	var _, err = scales.NewQuantile(nil, []string{"a"})
	assert.ErrorIs(t, err, scales.ErrEmptyDomain)

	_, err = scales.NewQuantile([]float64{1}, []string{})
	assert.ErrorIs(t, err, scales.ErrEmptyRange)
}

// TestQuantile_SampleNotMutated guards the construction-copies contract.
func TestQuantile_SampleNotMutated(t *testing.T) {
	var sample = []float64{3, 1, 2}
	var _, err = scales.NewQuantile(sample, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, sample, "caller's sample must stay unsorted")
}
