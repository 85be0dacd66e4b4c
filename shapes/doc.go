// Package shapes generates SVG path data strings ("d" attributes) for
// geometric figures.
//
// What:
//
//   - Star     — alternating inner/outer vertices around a center.
//   - Cross    — a 12-vertex plus sign with optional rotation.
//   - Arc      — a circular arc; full circles split into two 180° sweeps.
//   - Ring     — a donut, ring segment, or chord-closed segment.
//   - Polyline — connect-the-dots through coordinate slices.
//   - Blob     — a closed radial polygon whose radius comes from a Source:
//     Constant for circles, Procedural for noise-perturbed organic forms.
//
// Why:
//
//   - Generators are pure string producers: no tree, no state, no
//     side effects. The svg package turns the result into a <path>.
//
// Coordinates format with two decimal places, so identical inputs always
// yield byte-identical path data.
//
// Errors:
//
//   - ErrLengthMismatch — Polyline coordinate slices differ in length.
//   - ErrTooFewPoints   — a radial generator was asked for a degenerate
//     vertex count.
package shapes
