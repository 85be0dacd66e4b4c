// Package scales defines sentinel errors shared by all scale constructors.
package scales

import "errors"

// Sentinel errors for scale construction.
var (
	// ErrEmptyDomain indicates a categorical domain or sample with no values.
	ErrEmptyDomain = errors.New("scales: domain must contain at least one value")
	// ErrBadDomain indicates numeric domain endpoints that coincide, or are
	// negative where the transform requires non-negative values.
	ErrBadDomain = errors.New("scales: invalid numeric domain")
	// ErrEmptyRange indicates an empty output value set.
	ErrEmptyRange = errors.New("scales: range must contain at least one value")
	// ErrPaletteTooSmall indicates a color palette with fewer than two stops.
	ErrPaletteTooSmall = errors.New("scales: palette must contain at least two colors")
)
