package shapes_test

import (
	"fmt"

	"github.com/katalvlaran/dreamplet/shapes"
)

// ExamplePolyline connects measurement points into open path data.
func ExamplePolyline() {
	var d, _ = shapes.Polyline([]float64{0, 10}, []float64{0, 20})
	fmt.Println(d)
	// Output:
	// M 0.00,0.00 L 10.00,20.00
}

// ExampleArc draws a quarter arc around (100, 100).
func ExampleArc() {
	fmt.Println(shapes.Arc(100, 100, 50, 0, 90))
	// Output:
	// M 150.00,100.00 A 50.00 50.00 0 0 1 100.00,150.00
}

// ExampleBlob shows the degenerate-count guard.
func ExampleBlob() {
	var _, err = shapes.Blob(0, 0, 2, shapes.Constant(10))
	fmt.Println(err)
	// Output:
	// shapes: at least three points are required
}
