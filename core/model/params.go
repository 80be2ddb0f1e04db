// Package model - Shared cost parameters
package model

import (
	"amcost/internal/errors"
)

// Parameters holds every configurable cost assumption for both models.
// Constructed once from defaults, a scenario file, or CLI flags, then
// validated before any curve is sampled. Immutable by convention: models
// receive it by value.
type Parameters struct {
	// SetupCost is the fixed conventional setup/tooling cost
	SetupCost float64 `json:"setup_cost"`

	// VariableCost is the conventional per-unit marginal cost
	VariableCost float64 `json:"variable_cost"`

	// AdditiveUnitCost is the flat additive cost per unit (volume model)
	AdditiveUnitCost float64 `json:"additive_unit_cost"`

	// ComplexityCoefficient scales conventional complexity cost
	ComplexityCoefficient float64 `json:"complexity_coefficient"`

	// ComplexityExponent is the superlinear growth rate, typically > 1
	ComplexityExponent float64 `json:"complexity_exponent"`

	// AdditivePieceCost is the flat additive cost per piece (complexity model)
	AdditivePieceCost float64 `json:"additive_piece_cost"`

	// MinVolume is the lower bound of the volume axis, strictly positive
	MinVolume float64 `json:"min_volume"`

	// MaxVolume is the upper bound of the volume axis
	MaxVolume float64 `json:"max_volume"`

	// MinComplexity is the lower bound of the complexity axis, zero allowed
	MinComplexity float64 `json:"min_complexity"`

	// MaxComplexity is the upper bound of the complexity axis
	MaxComplexity float64 `json:"max_complexity"`

	// Points is the number of samples per curve
	Points int `json:"points"`
}

// Default returns the stock cost assumptions
func Default() Parameters {
	return Parameters{
		SetupCost:             200,
		VariableCost:          8,
		AdditiveUnitCost:      15,
		ComplexityCoefficient: 0.05,
		ComplexityExponent:    2.0,
		AdditivePieceCost:     50,
		MinVolume:             1,
		MaxVolume:             100,
		MinComplexity:         0,
		MaxComplexity:         100,
		Points:                500,
	}
}

// Validate rejects inconsistent parameters before any model runs, so a
// partial or degenerate curve is never produced.
func (p Parameters) Validate() error {
	if p.SetupCost <= 0 {
		return errors.Configf("setup cost must be > 0, got %g", p.SetupCost)
	}
	if p.VariableCost < 0 {
		return errors.Configf("variable cost must be >= 0, got %g", p.VariableCost)
	}
	if p.AdditiveUnitCost < 0 {
		return errors.Configf("additive unit cost must be >= 0, got %g", p.AdditiveUnitCost)
	}
	if p.ComplexityCoefficient <= 0 {
		return errors.Configf("complexity coefficient must be > 0, got %g", p.ComplexityCoefficient)
	}
	if p.AdditivePieceCost < 0 {
		return errors.Configf("additive piece cost must be >= 0, got %g", p.AdditivePieceCost)
	}
	if p.MinVolume <= 0 {
		return errors.Configf("min volume must be > 0, got %g", p.MinVolume)
	}
	if p.MaxVolume <= p.MinVolume {
		return errors.Configf("max volume must be > min volume %g, got %g", p.MinVolume, p.MaxVolume)
	}
	if p.MinComplexity < 0 {
		return errors.Configf("min complexity must be >= 0, got %g", p.MinComplexity)
	}
	if p.MaxComplexity <= p.MinComplexity {
		return errors.Configf("max complexity must be > min complexity %g, got %g", p.MinComplexity, p.MaxComplexity)
	}
	if p.Points < 2 {
		return errors.Configf("points must be >= 2, got %d", p.Points)
	}
	return nil
}

// Volume returns the volume comparison model for these parameters
func (p Parameters) Volume() VolumeModel {
	return VolumeModel{
		SetupCost:        p.SetupCost,
		VariableCost:     p.VariableCost,
		AdditiveUnitCost: p.AdditiveUnitCost,
	}
}

// Complexity returns the complexity comparison model for these parameters
func (p Parameters) Complexity() ComplexityModel {
	return ComplexityModel{
		Coefficient:       p.ComplexityCoefficient,
		Exponent:          p.ComplexityExponent,
		AdditivePieceCost: p.AdditivePieceCost,
	}
}
