package svg

import (
	"fmt"
	"strings"
)

// Animate wraps an <animate> element. Fresh instances default to
// attributeType="XML" and repeatCount="indefinite", the configuration
// every looping generative piece starts from.
type Animate struct {
	*Element
	values []float64
}

// NewAnimate returns an <animate> with the looping defaults applied.
func NewAnimate() *Animate {
	var a = &Animate{Element: NewElement("animate")}
	a.Set("attributeType", "XML")
	a.Set("repeatCount", "indefinite")

	return a
}

// SetAttributeName selects the attribute being animated (e.g. "r").
func (a *Animate) SetAttributeName(name string) *Animate {
	a.Set("attributeName", name)

	return a
}

// SetDur sets the cycle duration (e.g. "3s").
func (a *Animate) SetDur(dur string) *Animate {
	a.Set("dur", dur)

	return a
}

// SetRepeatCount overrides the "indefinite" default with a finite count
// or any raw SMIL value.
func (a *Animate) SetRepeatCount(count any) *Animate {
	a.Set("repeatCount", count)

	return a
}

// Values returns the keyframe values last set through SetValues.
func (a *Animate) Values() []float64 {
	return a.values
}

// SetValues stores the keyframes and serializes them semicolon-joined
// into the values attribute.
func (a *Animate) SetValues(values ...float64) *Animate {
	a.values = append(a.values[:0], values...)

	var parts = make([]string, len(values))
	var i int
	var v float64
	for i, v = range values {
		parts[i] = fmt.Sprint(v)
	}
	a.Set("values", strings.Join(parts, ";"))

	return a
}
