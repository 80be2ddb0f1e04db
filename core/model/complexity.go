// Package model - Complexity-driven cost comparison
package model

import (
	"math"

	"amcost/internal/errors"
)

// ComplexityModel compares cost per piece as geometric complexity grows.
// Conventional cost grows superlinearly with complexity; additive cost is
// flat, which is the usual argument for printing intricate geometry.
type ComplexityModel struct {
	// Coefficient scales the conventional complexity cost
	Coefficient float64 `json:"complexity_coefficient"`

	// Exponent is the growth rate of conventional cost with complexity
	Exponent float64 `json:"complexity_exponent"`

	// AdditivePieceCost is the flat additive cost per piece
	AdditivePieceCost float64 `json:"additive_piece_cost"`
}

// ConventionalCost returns coefficient * complexity^exponent.
// Zero complexity is legal and costs zero for any positive exponent;
// negative complexity has no physical meaning and is rejected.
func (m ComplexityModel) ConventionalCost(complexity float64) (float64, error) {
	if complexity < 0 {
		return 0, errors.Domainf("complexity must be >= 0, got %g", complexity)
	}
	if complexity == 0 {
		return 0, nil
	}
	return m.Coefficient * math.Pow(complexity, m.Exponent), nil
}

// AdditiveCost returns the flat per-piece cost, independent of complexity
func (m ComplexityModel) AdditiveCost(_ float64) float64 {
	return m.AdditivePieceCost
}

// BreakEvenComplexity solves coefficient * c^exponent = additive for c.
// The second return is false when no meaningful positive root exists:
// degenerate coefficient, non-positive target, or non-positive exponent
// (a flat or decreasing conventional curve never crosses upward).
func (m ComplexityModel) BreakEvenComplexity() (float64, bool) {
	if m.Coefficient <= 0 || m.Exponent <= 0 || m.AdditivePieceCost <= 0 {
		return 0, false
	}
	c := math.Pow(m.AdditivePieceCost/m.Coefficient, 1/m.Exponent)
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, false
	}
	return c, true
}

// Sample evaluates both cost series at points evenly spaced complexity
// scores on [minComplexity, maxComplexity]. Unlike the volume axis, a
// minimum of exactly zero is allowed.
func (m ComplexityModel) Sample(minComplexity, maxComplexity float64, points int) (Curve, error) {
	if minComplexity < 0 {
		return nil, errors.Domainf("min complexity must be >= 0, got %g", minComplexity)
	}
	if maxComplexity <= minComplexity {
		return nil, errors.Domainf("max complexity %g must exceed min complexity %g", maxComplexity, minComplexity)
	}
	if points < 2 {
		return nil, errors.Configf("points must be >= 2, got %d", points)
	}

	curve := make(Curve, 0, points)
	for _, c := range linspace(minComplexity, maxComplexity, points) {
		conventional, err := m.ConventionalCost(c)
		if err != nil {
			return nil, err
		}
		curve = append(curve, Point{
			Input:        c,
			Conventional: conventional,
			Additive:     m.AdditiveCost(c),
		})
	}
	return curve, nil
}
