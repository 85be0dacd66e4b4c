// Package colors provides small color utilities for generative graphics:
// hex string parsing, channel blending and seeded random palettes.
//
// What:
//
//   - ParseHex / RGB.Hex: "#RRGGBB" (and shorthand "#RGB") ⇄ channel triple.
//   - RGBA: formats an "rgba(r, g, b, a)" CSS string with channel clamping.
//   - Blend: mixes two hex colors channel-wise with round-half-up.
//   - Generator: deterministic random colors from a seed (same seed policy
//     as the noise engine — seed 0 selects a fixed default).
//
// Why:
//
//   - SVG attributes speak strings; data pipelines speak numbers. This
//     package is the translation layer used by scales.Color and by direct
//     styling code.
//
// Errors:
//
//   - ErrInvalidHex: ParseHex input is not a 3- or 6-digit hex color.
//     Blend deliberately does not surface it — invalid inputs blend to
//     "#000000", mirroring the forgiving behavior expected by styling
//     code paths.
package colors
