// Package typography locates system fonts and measures rendered text,
// so labels can be sized and placed before an SVG is ever rasterized.
//
// What:
//
//   - FindSystemFont — walk the platform font directories for a TrueType
//     file matching a family name and numeric weight (±100 tolerance).
//   - Measurer — convert a text block to its pixel width and height for
//     a given font, weight, size and DPI (72 DPI means 1pt = 1px).
//
// Why:
//
//   - SVG text has no intrinsic box. Centering a label or fitting a
//     value inside a bar needs the rendered extent up front.
//
// Font weights follow the CSS scale: 400 regular, 700 bold. Files that
// do not declare a weight are classified from their subfamily and file
// name ("Bold", "Light", ...).
//
// Errors:
//
//   - ErrFontNotFound — no font directory holds a matching .ttf file.
package typography
