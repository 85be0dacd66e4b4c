// Package dreamplet is your seed-in, artwork-out toolkit for
// deterministic generative graphics: seeded simplex noise at the core,
// with scales, colors, shapes and an SVG document tree built around it.
//
// 🚀 What is dreamplet?
//
//	A reproducible generative-graphics library that brings together:
//		• Noise engine: 1D/2D/3D simplex noise + fractal Brownian motion
//		• Scales: linear, band, point, ordinal, radial, color & quantile mappings
//		• Colors: hex/rgb parsing, blending, seeded palette generation
//		• Shapes: path-data generators (star, cross, arc, ring, polyline, blob)
//		• SVG: an element tree with typed wrappers, transforms, text & animation
//		• Typography: system font lookup and text measurement
//
// ✨ Why choose dreamplet?
//
//   - Reproducible – every output is a pure function of its seed
//   - Concurrent reads – one noise engine can serve many goroutines
//   - Composable – noise feeds shapes, scales feed attributes, all pure values
//   - Explicit errors – invalid domains and degenerate inputs fail loudly
//
// Under the hood, everything is organized under six subpackages:
//
//	noise/      — the seeded simplex engine and fractal stacking
//	scales/     — domain→range mappings for layout, size and color
//	colors/     — hex/rgb utilities and the seeded generator
//	shapes/     — pure "d" attribute string producers
//	svg/        — the element tree, wrappers, serialization and saving
//	typography/ — font discovery and text extents
//
// Quick start:
//
//	gen := noise.New(42)
//	v := gen.Noise2D(0.3, 0.7) // deterministic, in [-1, 1]
//
//	d, _ := shapes.Blob(100, 100, 96, shapes.Procedural(gen, 60, 20, 1.5))
//	canvas := svg.NewSVG(200, 200)
//	canvas.Append(svg.NewPath(d).Element)
//	_ = canvas.Save("blob.svg")
//
// Dive into examples/ for complete generative scenes: flow fields,
// fractal terrain, blob gardens and scale-driven charts.
//
//	go get github.com/katalvlaran/dreamplet
package dreamplet
