// Package scales maps data domains onto visual ranges: positions, sizes,
// radii and colors.
//
// What:
//
//   - Linear   — affine numeric map (with inversion).
//   - Band     — categorical values → evenly spaced bands with padding;
//     exposes the computed Bandwidth.
//   - Point    — categorical values → points with edge padding.
//   - Ordinal  — categorical values → arbitrary outputs assigned cyclically.
//   - Square   — √-transformed map: side lengths whose *area* tracks the value.
//   - Circle   — area-true radius map: π·r² stays proportional to the value.
//   - Color    — numeric values → piecewise-interpolated hex palette.
//   - Quantile — sample-driven map: empirical quantile thresholds → outputs.
//
// Why:
//
//   - Chart layout: pixel positions from data values (Linear, Band, Point).
//   - Honest encodings: human eyes read area, not radius (Square, Circle).
//   - Choropleths and heat styling (Color, Quantile).
//   - Noise-driven art: a noise sample in [-1,1] becomes a coordinate,
//     radius or color through exactly these mappers.
//
// Complexity:
//
//   - Construction: O(n) for categorical/sample domains, O(1) otherwise
//     (Quantile sorts: O(n log n)).
//   - Map: O(1) for every scale (categorical lookups are map-backed).
//
// Errors:
//
//   - ErrEmptyDomain:    a categorical domain or sample has no values.
//   - ErrBadDomain:      numeric domain endpoints coincide or are negative
//     where non-negative values are required.
//   - ErrEmptyRange:     an output value set is empty.
//   - ErrPaletteTooSmall: a color palette holds fewer than two stops.
//
// Unknown categorical inputs are not errors: Map returns (zero, false),
// the Go rendition of the original's “returns nothing” lookup miss.
package scales
