// Package model - Volume-driven cost comparison
package model

import (
	"amcost/internal/errors"
)

// VolumeModel compares cost per unit as production volume scales.
// Conventional manufacturing amortizes a fixed setup cost over volume;
// additive manufacturing pays a flat cost per unit regardless of volume.
type VolumeModel struct {
	// SetupCost is the fixed conventional setup/tooling cost
	SetupCost float64 `json:"setup_cost"`

	// VariableCost is the conventional marginal cost per unit
	VariableCost float64 `json:"variable_cost"`

	// AdditiveUnitCost is the flat additive cost per unit
	AdditiveUnitCost float64 `json:"additive_unit_cost"`
}

// ConventionalCost returns setup_cost/volume + variable_cost.
// Amortized fixed cost is undefined at zero volume, so volume must be
// strictly positive.
func (m VolumeModel) ConventionalCost(volume float64) (float64, error) {
	if volume <= 0 {
		return 0, errors.Domainf("volume must be > 0, got %g", volume)
	}
	return m.SetupCost/volume + m.VariableCost, nil
}

// AdditiveCost returns the flat per-unit cost. Volume-independent; the
// argument exists so both series share a sampling signature.
func (m VolumeModel) AdditiveCost(_ float64) float64 {
	return m.AdditiveUnitCost
}

// BreakEvenVolume solves setup/v + variable = additive for v.
// The second return is false when no finite positive solution exists:
// if the additive unit cost does not exceed the conventional variable
// cost, the conventional curve stays above the additive line at every
// volume (or approaches it asymptotically, never crossing).
func (m VolumeModel) BreakEvenVolume() (float64, bool) {
	margin := m.AdditiveUnitCost - m.VariableCost
	if margin <= 0 {
		return 0, false
	}
	v := m.SetupCost / margin
	if v <= 0 {
		return 0, false
	}
	return v, true
}

// Sample evaluates both cost series at points evenly spaced volumes on
// [minVolume, maxVolume]. minVolume must be strictly positive to keep the
// 1/v singularity out of the sampled domain.
func (m VolumeModel) Sample(minVolume, maxVolume float64, points int) (Curve, error) {
	if minVolume <= 0 {
		return nil, errors.Domainf("min volume must be > 0, got %g", minVolume)
	}
	if maxVolume <= minVolume {
		return nil, errors.Domainf("max volume %g must exceed min volume %g", maxVolume, minVolume)
	}
	if points < 2 {
		return nil, errors.Configf("points must be >= 2, got %d", points)
	}

	curve := make(Curve, 0, points)
	for _, v := range linspace(minVolume, maxVolume, points) {
		conventional, err := m.ConventionalCost(v)
		if err != nil {
			return nil, err
		}
		curve = append(curve, Point{
			Input:        v,
			Conventional: conventional,
			Additive:     m.AdditiveCost(v),
		})
	}
	return curve, nil
}
