// Package model provides the manufacturing cost models.
// Pure closed-form arithmetic; no I/O, no state between calls.
package model

// Point is a single sampled comparison at one input value
type Point struct {
	// Input is the sampled axis value (volume or complexity)
	Input float64 `json:"input"`

	// Conventional is the conventional manufacturing cost at Input
	Conventional float64 `json:"conventional"`

	// Additive is the additive manufacturing cost at Input
	Additive float64 `json:"additive"`
}

// Curve is an ordered sequence of sampled points.
// Inputs are strictly increasing; curves are never mutated after sampling.
type Curve []Point

// Len returns the number of sampled points
func (c Curve) Len() int {
	return len(c)
}

// First returns the first point.
// Panics on an empty curve; sampling always yields at least two points.
func (c Curve) First() Point {
	return c[0]
}

// Last returns the last point
func (c Curve) Last() Point {
	return c[len(c)-1]
}

// Inputs returns just the input column
func (c Curve) Inputs() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Input
	}
	return out
}

// MaxCost returns the largest cost value on either series.
// Used by renderers to scale the vertical axis.
func (c Curve) MaxCost() float64 {
	var max float64
	for _, p := range c {
		if p.Conventional > max {
			max = p.Conventional
		}
		if p.Additive > max {
			max = p.Additive
		}
	}
	return max
}

// linspace returns points evenly spaced values on [min, max] inclusive.
// Precondition: points >= 2, max > min; callers validate before sampling.
func linspace(min, max float64, points int) []float64 {
	out := make([]float64, points)
	step := (max - min) / float64(points-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// Pin the endpoint so accumulated step error never overshoots max
	out[points-1] = max
	return out
}
