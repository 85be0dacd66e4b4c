// Package svg builds and serializes SVG documents as an in-memory element
// tree with typed wrappers for the common shape, text and animation
// elements.
//
// What:
//
//   - Element  — tag + ordered attributes + children; Set/Get, Append/
//     Remove, Find/FindAll, deterministic String() serialization.
//   - SVG      — the root element with viewBox/width/height handling and
//     Save-to-file.
//   - G        — a transform group emitting rotate → translate → scale in
//     fixed order, with parsing of existing transform strings.
//   - Typed wrappers — Circle, Ellipse, Rect, Line, Path, Text,
//     TextOnPath, Animate: native-attribute accessors over the same tree.
//   - Vector   — a 2D float pair used for positions and scale factors.
//
// Why:
//
//   - Generative graphics compose thousands of elements procedurally; a
//     tree with ordered attributes serializes identically run after run,
//     which keeps seeded artwork diffable.
//
// Complexity:
//
//   - Append/Set: O(1) amortized. Find: O(children) (O(subtree) nested).
//   - String: O(subtree).
//
// Errors: tree operations cannot fail; SVG.Save surfaces file-system
// errors from os.WriteFile verbatim.
package svg
