// Package model - Parameter validation tests
package model

import (
	"testing"

	"amcost/internal/errors"
)

func TestDefaultParametersValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default parameters failed validation: %v", err)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero points", func(p *Parameters) { p.Points = 0 }},
		{"one point", func(p *Parameters) { p.Points = 1 }},
		{"negative setup cost", func(p *Parameters) { p.SetupCost = -5 }},
		{"zero setup cost", func(p *Parameters) { p.SetupCost = 0 }},
		{"negative variable cost", func(p *Parameters) { p.VariableCost = -1 }},
		{"negative additive unit cost", func(p *Parameters) { p.AdditiveUnitCost = -1 }},
		{"zero complexity coefficient", func(p *Parameters) { p.ComplexityCoefficient = 0 }},
		{"negative additive piece cost", func(p *Parameters) { p.AdditivePieceCost = -1 }},
		{"zero min volume", func(p *Parameters) { p.MinVolume = 0 }},
		{"inverted volume range", func(p *Parameters) { p.MaxVolume = 0.5 }},
		{"negative min complexity", func(p *Parameters) { p.MinComplexity = -1 }},
		{"inverted complexity range", func(p *Parameters) { p.MaxComplexity = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}

func TestParametersBuildModels(t *testing.T) {
	p := Default()

	vm := p.Volume()
	if vm.SetupCost != p.SetupCost || vm.VariableCost != p.VariableCost || vm.AdditiveUnitCost != p.AdditiveUnitCost {
		t.Errorf("volume model %+v does not match parameters %+v", vm, p)
	}

	cm := p.Complexity()
	if cm.Coefficient != p.ComplexityCoefficient || cm.Exponent != p.ComplexityExponent || cm.AdditivePieceCost != p.AdditivePieceCost {
		t.Errorf("complexity model %+v does not match parameters %+v", cm, p)
	}
}

func TestCurveMaxCost(t *testing.T) {
	curve := Curve{
		{Input: 1, Conventional: 208, Additive: 15},
		{Input: 100, Conventional: 10, Additive: 15},
	}
	if got := curve.MaxCost(); got != 208 {
		t.Errorf("MaxCost = %g, want 208", got)
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	xs := linspace(0.1, 99.7, 7)
	if len(xs) != 7 {
		t.Fatalf("linspace returned %d values, want 7", len(xs))
	}
	if xs[0] != 0.1 {
		t.Errorf("first value = %g, want 0.1", xs[0])
	}
	if xs[6] != 99.7 {
		t.Errorf("last value = %g, want exactly 99.7", xs[6])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("values not strictly increasing at %d: %g then %g", i, xs[i-1], xs[i])
		}
	}
}
